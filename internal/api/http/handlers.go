package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"campus-canteen/internal/domain"
	"campus-canteen/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Orders  service.OrderServiceInterface
	Catalog service.CatalogServiceInterface
	Auth    service.AuthServiceInterface
}

func NewHandler(orders service.OrderServiceInterface, catalog service.CatalogServiceInterface, auth service.AuthServiceInterface) *Handler {
	return &Handler{Orders: orders, Catalog: catalog, Auth: auth}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	auth := &AuthMiddleware{Auth: h.Auth}

	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/users", h.signup).Methods("POST")
	r.HandleFunc("/api/users/login", h.login).Methods("POST")
	r.HandleFunc("/api/managers/login", h.managerLogin).Methods("POST")

	r.HandleFunc("/api/items", h.listItems).Methods("GET")
	r.HandleFunc("/api/items", auth.RequireManager(h.createItem)).Methods("POST")
	r.HandleFunc("/api/items/{id}", h.getItem).Methods("GET")
	r.HandleFunc("/api/items/{id}", auth.RequireManager(h.setItemQuantity)).Methods("PUT")

	// Literal paths before the {id} routes so mux does not swallow them.
	r.HandleFunc("/api/orders/pending", auth.RequireManager(h.listPendingOrders)).Methods("GET")
	r.HandleFunc("/api/orders/verify", auth.RequireManager(h.verifyPickup)).Methods("POST")
	r.HandleFunc("/api/orders", auth.RequireUser(h.createOrder)).Methods("POST")
	r.HandleFunc("/api/orders", auth.RequireUser(h.listOrders)).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.getOrderStatus).Methods("GET")
	r.HandleFunc("/api/orders/{id}/pass", h.getPickupPass).Methods("GET")

	r.HandleFunc("/api/transactions", auth.RequireUser(h.listTransactions)).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "canteen",
	})
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName      string `json:"fullname"`
		ContactNumber string `json:"contactnumber"`
		Email         string `json:"email"`
		Password      string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.Auth.Signup(req.FullName, req.ContactNumber, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, domain.ErrUserExists):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Signup successful",
		"user":    user,
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, user, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

func (h *Handler) managerLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, manager, err := h.Auth.ManagerLogin(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"token":   token,
		"manager": manager,
	})
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Catalog.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Catalog.Get(mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var item domain.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Catalog.Create(&item); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields),
			errors.Is(err, service.ErrNegativePrice),
			errors.Is(err, service.ErrNegativeQuantity):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Item created",
		"item":    item,
	})
}

func (h *Handler) setItemQuantity(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		AvailableQty *int `json:"availableQty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.AvailableQty == nil {
		http.Error(w, "availableQty is required", http.StatusBadRequest)
		return
	}

	item, err := h.Catalog.SetQuantity(id, *req.AvailableQty)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNegativeQuantity):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, domain.ErrItemNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Item updated",
		"updatedItem": item,
	})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFrom(r.Context())
	if !ok {
		http.Error(w, "Access denied. No token provided", http.StatusUnauthorized)
		return
	}

	var req struct {
		Items     []domain.CartLine `json:"items"`
		OrderType string            `json:"order_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Checkout(r.Context(), identity.Email, req.Items, req.OrderType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart),
			errors.Is(err, service.ErrInvalidOrderType),
			errors.Is(err, domain.ErrInvalidQuantity):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, domain.ErrUserNotFound),
			errors.Is(err, domain.ErrItemNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, domain.ErrInsufficientStock):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Order placed",
		"order":   order,
	})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFrom(r.Context())
	if !ok {
		http.Error(w, "Access denied. No token provided", http.StatusUnauthorized)
		return
	}

	orders, err := h.Orders.ListOrdersForUser(identity.Email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) listPendingOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListPendingOrders()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	order, err := h.Orders.GetOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	status, err := h.Orders.OrderStatus(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"order_id": orderID,
		"status":   status,
	})
}

func (h *Handler) getPickupPass(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	png, err := h.Orders.PickupPass(orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(png) == 0 {
		http.Error(w, "Pickup pass not available", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) verifyPickup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID int    `json:"order_id"`
		OTP     string `json:"otp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.VerifyPickup(r.Context(), req.OrderID, req.OTP)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"verified": true,
			"message":  "Order verified",
			"order_id": order.ID,
			"token_no": order.TokenNo,
		})
	case errors.Is(err, domain.ErrOrderNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidOTP):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"verified": false,
			"message":  "Invalid OTP",
		})
	case errors.Is(err, service.ErrAlreadyCompleted):
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"verified": false,
			"message":  "Order already completed",
		})
	case errors.Is(err, service.ErrOrderCancelled):
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"verified": false,
			"message":  "Order was cancelled",
		})
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFrom(r.Context())
	if !ok {
		http.Error(w, "Access denied. No token provided", http.StatusUnauthorized)
		return
	}

	txns, err := h.Orders.ListTransactionsForUser(identity.Email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, txns)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
