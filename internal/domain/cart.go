package domain

// Cart accumulates selected items before checkout. It is never persisted:
// checkout receives its lines and the cart is discarded once the order is
// placed. Adding to the cart does not touch stock; stock is only decremented
// when the order is placed.
type Cart struct {
	lines []CartLine
}

// AddLine appends a line for the item, merging quantities when the item is
// already in the cart.
func (c *Cart) AddLine(item Item, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	if item.AvailableQty <= 0 {
		return ErrItemOutOfStock
	}
	for i := range c.lines {
		if c.lines[i].ItemID == item.ID {
			c.lines[i].Quantity += qty
			return nil
		}
	}
	c.lines = append(c.lines, CartLine{
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: qty,
		ImageURL: item.ImageURL,
	})
	return nil
}

// RemoveLine drops the line for the item; removing an absent item is not an
// error.
func (c *Cart) RemoveLine(itemID string) {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Lines() []CartLine { return c.lines }

func (c *Cart) Empty() bool { return len(c.lines) == 0 }

func (c *Cart) Total() float64 { return CartTotal(c.lines) }

// CartTotal is the price snapshot sum over a set of lines.
func CartTotal(lines []CartLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}
