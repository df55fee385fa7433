package services

import (
	"strings"
	"time"

	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	Cart     *CartService
	Location *LocationService
	Notify   *NotifyService
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	cart *CartService,
	location *LocationService,
	notify *NotifyService,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, Cart: cart, Location: location, Notify: notify}
}

// ----- DTOs from Controller -----

type CheckoutReq struct {
	FirstName     string   `json:"firstName" binding:"required"`
	LastName      string   `json:"lastName" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	Phone         string   `json:"phone" binding:"required"`
	Address       string   `json:"address" binding:"required"`
	City          string   `json:"city" binding:"required"`
	PostalCode    string   `json:"postalCode" binding:"required"`
	DeliveryNotes string   `json:"deliveryNotes"`
	PaymentMethod string   `json:"paymentMethod" binding:"required,oneof=cash card"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

// Checkout turns the session cart into an order. The delivery gate runs
// again here: a missing or out-of-area location rejects the checkout even
// if the storefront skipped the earlier check.
func (s *OrderService) Checkout(token string, req *CheckoutReq) (*entity.Order, error) {
	if req.Latitude == nil || req.Longitude == nil ||
		!s.Location.InDeliveryArea(*req.Latitude, *req.Longitude) {
		return nil, ErrOutsideDelivery
	}

	cart, quote, err := s.Cart.Get(token)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	eta := time.Now().Add(time.Duration(s.Location.DeliveryMinutes()) * time.Minute)

	order := &entity.Order{
		Code:              newOrderCode(),
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:             req.Phone,
		Address:           req.Address,
		City:              req.City,
		PostalCode:        req.PostalCode,
		DeliveryNotes:     req.DeliveryNotes,
		PaymentMethod:     req.PaymentMethod,
		Subtotal:          quote.Subtotal,
		Shipping:          quote.Shipping,
		Discount:          quote.Discount,
		Total:             quote.Total,
		CouponCode:        quote.CouponCode,
		EstimatedDelivery: eta,
		Status:            entity.OrderPending,
	}
	for _, it := range cart.Items {
		order.Items = append(order.Items, entity.OrderItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Qty:        it.Qty,
			UnitPrice:  it.UnitPrice,
			Total:      it.UnitPrice * int64(it.Qty),
		})
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, order); err != nil {
			return err
		}
		// the session cart is done once the order exists
		return s.CartRepo.ClearCart(tx, token)
	})
	if err != nil {
		return nil, err
	}

	s.Notify.OrderPlaced(order)
	return order, nil
}

func (s *OrderService) GetByCode(code string) (*entity.Order, error) {
	return s.Repo.FindByCode(code)
}

func (s *OrderService) List() ([]entity.Order, error) {
	return s.Repo.FindAll()
}

// ----- Admin transitions (guarded; money is involved) -----

func (s *OrderService) Complete(orderID uint) error {
	return s.transition(orderID, entity.OrderPending, entity.OrderCompleted)
}

func (s *OrderService) Cancel(orderID uint) error {
	return s.transition(orderID, entity.OrderPending, entity.OrderCancelled)
}

func (s *OrderService) transition(orderID uint, from, to string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, from, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
}

func newOrderCode() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ORD-" + id[:8]
}
