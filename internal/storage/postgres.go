package storage

import (
	"database/sql"
	"fmt"

	"campus-canteen/internal/domain"
	"campus-canteen/internal/service"
)

var (
	_ service.OrderRepository   = (*PostgresRepository)(nil)
	_ service.CatalogRepository = (*PostgresRepository)(nil)
	_ service.UserRepository    = (*PostgresRepository)(nil)
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			email TEXT PRIMARY KEY,
			fullname TEXT NOT NULL,
			contactnumber TEXT NOT NULL,
			passwordhash TEXT NOT NULL,
			createdat TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			lastlogin TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS managers (
			email TEXT PRIMARY KEY,
			fullname TEXT NOT NULL,
			contactnumber TEXT NOT NULL,
			passwordhash TEXT NOT NULL,
			createdat TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			lastlogin TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS items (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL DEFAULT 0,
			imgurl TEXT NOT NULL DEFAULT '',
			available_qty INTEGER NOT NULL DEFAULT 0 CHECK (available_qty >= 0),
			createdat TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updatedat TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			user_email TEXT NOT NULL,
			total_amount DOUBLE PRECISION NOT NULL,
			order_type TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'Pending',
			token_no INTEGER NOT NULL,
			counter_no INTEGER NOT NULL,
			expected_pickup TIMESTAMPTZ NOT NULL,
			otp TEXT NOT NULL,
			pickup_pass BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id),
			item_id TEXT NOT NULL,
			name TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			quantity INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id TEXT PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id),
			user_email TEXT NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			status TEXT NOT NULL,
			paid_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS counter_load (
			counter_no INTEGER PRIMARY KEY,
			open_orders INTEGER NOT NULL DEFAULT 0
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

// CreateOrder persists the order, its lines, the stock decrements and the
// payment record in one transaction. Each decrement is conditional on enough
// stock remaining; a line that misses aborts everything.
func (r *PostgresRepository) CreateOrder(order *domain.Order, txn *domain.Transaction) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO orders (user_email, total_amount, order_type, status, token_no, counter_no, expected_pickup, otp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, order.UserEmail, order.TotalAmount, order.OrderType, order.Status,
		order.TokenNo, order.CounterNo, order.ExpectedPickup, order.OTP).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return err
	}

	for _, line := range order.Lines {
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, item_id, name, price, quantity)
			VALUES ($1, $2, $3, $4, $5)
		`, order.ID, line.ItemID, line.Name, line.Price, line.Quantity); err != nil {
			return err
		}

		res, err := tx.Exec(`
			UPDATE items
			SET available_qty = available_qty - $2, updatedat = CURRENT_TIMESTAMP
			WHERE id = $1 AND available_qty >= $2
		`, line.ItemID, line.Quantity)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			var available int
			switch err := tx.QueryRow(`SELECT available_qty FROM items WHERE id = $1`, line.ItemID).Scan(&available); {
			case err == sql.ErrNoRows:
				return fmt.Errorf("%w: %s", domain.ErrItemNotFound, line.ItemID)
			case err != nil:
				return err
			}
			return &domain.StockShortage{ItemID: line.ItemID, Required: line.Quantity, Available: available}
		}
	}

	txn.OrderID = order.ID
	if _, err := tx.Exec(`
		INSERT INTO transactions (id, order_id, user_email, amount, status, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, txn.ID, txn.OrderID, txn.UserEmail, txn.Amount, txn.Status, txn.PaidAt); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(orderID int) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(`
		SELECT id, user_email, total_amount, order_type, status, token_no, counter_no, expected_pickup, otp, created_at
		FROM orders WHERE id = $1
	`, orderID).Scan(&order.ID, &order.UserEmail, &order.TotalAmount, &order.OrderType,
		&order.Status, &order.TokenNo, &order.CounterNo, &order.ExpectedPickup,
		&order.OTP, &order.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	lines, err := r.orderLines(order.ID)
	if err != nil {
		return nil, err
	}
	order.Lines = lines
	return &order, nil
}

func (r *PostgresRepository) orderLines(orderID int) ([]domain.CartLine, error) {
	rows, err := r.DB.Query(`
		SELECT item_id, name, price, quantity FROM order_items WHERE order_id = $1 ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.CartLine
	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(&line.ItemID, &line.Name, &line.Price, &line.Quantity); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *PostgresRepository) ListOrdersForUser(email string) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, user_email, total_amount, order_type, status, token_no, counter_no, expected_pickup, otp, created_at
		FROM orders WHERE user_email = $1 ORDER BY created_at DESC
	`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectOrders(rows, true)
}

// ListPendingOrders feeds the manager verification queue. OTPs stay out of
// the result; the customer presents theirs at the counter.
func (r *PostgresRepository) ListPendingOrders() ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, user_email, total_amount, order_type, status, token_no, counter_no, expected_pickup, '', created_at
		FROM orders WHERE status = 'Pending' ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectOrders(rows, false)
}

func (r *PostgresRepository) collectOrders(rows *sql.Rows, withOTP bool) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.UserEmail, &order.TotalAmount, &order.OrderType,
			&order.Status, &order.TokenNo, &order.CounterNo, &order.ExpectedPickup,
			&order.OTP, &order.CreatedAt); err != nil {
			return nil, err
		}
		if !withOTP {
			order.OTP = ""
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		lines, err := r.orderLines(orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Lines = lines
	}
	return orders, nil
}

// CompleteOrder flips a pending order to completed. The false return means
// the order was not pending anymore (or never existed).
func (r *PostgresRepository) CompleteOrder(orderID int) (bool, error) {
	res, err := r.DB.Exec(`
		UPDATE orders SET status = 'Completed' WHERE id = $1 AND status = 'Pending'
	`, orderID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresRepository) PendingOTPExists(otp string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM orders WHERE otp = $1 AND status = 'Pending')
	`, otp).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) ListTransactionsForUser(email string) ([]domain.Transaction, error) {
	rows, err := r.DB.Query(`
		SELECT id, order_id, user_email, amount, status, paid_at
		FROM transactions WHERE user_email = $1 ORDER BY paid_at DESC
	`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		if err := rows.Scan(&txn.ID, &txn.OrderID, &txn.UserEmail, &txn.Amount, &txn.Status, &txn.PaidAt); err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, rows.Err()
}

func (r *PostgresRepository) SavePickupPass(orderID int, png []byte) error {
	_, err := r.DB.Exec(`UPDATE orders SET pickup_pass = $2 WHERE id = $1`, orderID, png)
	return err
}

func (r *PostgresRepository) GetPickupPass(orderID int) ([]byte, error) {
	var png []byte
	err := r.DB.QueryRow(`SELECT pickup_pass FROM orders WHERE id = $1`, orderID).Scan(&png)
	if err == sql.ErrNoRows {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return png, nil
}

func (r *PostgresRepository) CreateItem(item *domain.Item) error {
	return r.DB.QueryRow(`
		INSERT INTO items (id, name, price, imgurl, available_qty)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING createdat, updatedat
	`, item.ID, item.Name, item.Price, item.ImageURL, item.AvailableQty).
		Scan(&item.CreatedAt, &item.UpdatedAt)
}

func (r *PostgresRepository) ListItems() ([]domain.Item, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, price, imgurl, available_qty, createdat, updatedat
		FROM items ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.ImageURL,
			&item.AvailableQty, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetItem(id string) (*domain.Item, error) {
	var item domain.Item
	err := r.DB.QueryRow(`
		SELECT id, name, price, imgurl, available_qty, createdat, updatedat
		FROM items WHERE id = $1
	`, id).Scan(&item.ID, &item.Name, &item.Price, &item.ImageURL,
		&item.AvailableQty, &item.CreatedAt, &item.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) SetQuantity(id string, qty int) (*domain.Item, error) {
	var item domain.Item
	err := r.DB.QueryRow(`
		UPDATE items SET available_qty = $2, updatedat = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING id, name, price, imgurl, available_qty, createdat, updatedat
	`, id, qty).Scan(&item.ID, &item.Name, &item.Price, &item.ImageURL,
		&item.AvailableQty, &item.CreatedAt, &item.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) CreateUser(user *domain.User) error {
	return r.DB.QueryRow(`
		INSERT INTO users (email, fullname, contactnumber, passwordhash)
		VALUES ($1, $2, $3, $4)
		RETURNING createdat
	`, user.Email, user.FullName, user.ContactNumber, user.PasswordHash).
		Scan(&user.CreatedAt)
}

func (r *PostgresRepository) GetUserByEmail(email string) (*domain.User, error) {
	var user domain.User
	var lastLogin sql.NullTime
	err := r.DB.QueryRow(`
		SELECT email, fullname, contactnumber, passwordhash, createdat, lastlogin
		FROM users WHERE email = $1
	`, email).Scan(&user.Email, &user.FullName, &user.ContactNumber,
		&user.PasswordHash, &user.CreatedAt, &lastLogin)
	if err == sql.ErrNoRows {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		user.LastLogin = &lastLogin.Time
	}
	return &user, nil
}

func (r *PostgresRepository) GetManagerByEmail(email string) (*domain.Manager, error) {
	var manager domain.Manager
	var lastLogin sql.NullTime
	err := r.DB.QueryRow(`
		SELECT email, fullname, contactnumber, passwordhash, createdat, lastlogin
		FROM managers WHERE email = $1
	`, email).Scan(&manager.Email, &manager.FullName, &manager.ContactNumber,
		&manager.PasswordHash, &manager.CreatedAt, &lastLogin)
	if err == sql.ErrNoRows {
		return nil, domain.ErrManagerNotFound
	}
	if err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		manager.LastLogin = &lastLogin.Time
	}
	return &manager, nil
}

func (r *PostgresRepository) TouchUserLogin(email string) error {
	_, err := r.DB.Exec(`UPDATE users SET lastlogin = CURRENT_TIMESTAMP WHERE email = $1`, email)
	return err
}

func (r *PostgresRepository) TouchManagerLogin(email string) error {
	_, err := r.DB.Exec(`UPDATE managers SET lastlogin = CURRENT_TIMESTAMP WHERE email = $1`, email)
	return err
}
