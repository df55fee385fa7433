package services

import (
	"strings"
	"testing"
	"time"

	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderFixture(t *testing.T) (*gorm.DB, *OrderService, *CartService) {
	db := newTestDB(t)

	cartRepo := repository.NewCartRepository(db)
	cartSvc := NewCartService(db, cartRepo,
		repository.NewMenuRepository(db),
		repository.NewPromotionRepository(db),
		Pricing{ShippingFee: 100, FreeShippingMin: 1000},
	)
	locSvc := NewLocationService(testArea(), 30, 60)
	orderSvc := NewOrderService(db,
		repository.NewOrderRepository(db),
		cartRepo, cartSvc, locSvc, newTestNotify(db),
	)

	require.NoError(t, db.Create(&entity.MenuItem{
		Name: "Espresso", Price: 250, Category: "hot drinks", Active: true,
	}).Error)
	require.NoError(t, db.Create(&entity.Promotion{
		PromoCode: "save10", PromoType: entity.PromoPercent, Value: 10, Active: true,
	}).Error)

	return db, orderSvc, cartSvc
}

func validCheckout(lat, lng float64) *CheckoutReq {
	return &CheckoutReq{
		FirstName:     "Jane",
		LastName:      "Smith",
		Email:         "Jane@Example.com",
		Phone:         "555-0101",
		Address:       "12 Lakeview Rd",
		City:          "Dhaka",
		PostalCode:    "1207",
		PaymentMethod: "cash",
		Latitude:      &lat,
		Longitude:     &lng,
	}
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	_, orderSvc, cartSvc := newOrderFixture(t)
	token := "guest-co"

	require.NoError(t, cartSvc.Add(token, &AddToCartIn{MenuItemID: 1, Qty: 4}))
	_, err := cartSvc.ApplyCoupon(token, "save10")
	require.NoError(t, err)

	order, err := orderSvc.Checkout(token, validCheckout(23.8, 90.4))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.Code, "ORD-"))
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, "jane@example.com", order.Email)
	assert.Equal(t, int64(1000), order.Subtotal)
	assert.Equal(t, int64(100), order.Shipping)
	assert.Equal(t, int64(100), order.Discount)
	assert.Equal(t, int64(1000), order.Total)
	assert.Equal(t, "save10", order.CouponCode)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 4, order.Items[0].Qty)

	eta := time.Until(order.EstimatedDelivery)
	assert.GreaterOrEqual(t, eta, 29*time.Minute)
	assert.Less(t, eta, 61*time.Minute)

	// the session cart is spent
	cart, quote, err := cartSvc.Get(token)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Empty(t, quote.CouponCode)
}

func TestCheckoutOutsideDeliveryArea(t *testing.T) {
	_, orderSvc, cartSvc := newOrderFixture(t)
	token := "guest-out"

	require.NoError(t, cartSvc.Add(token, &AddToCartIn{MenuItemID: 1, Qty: 1}))

	_, err := orderSvc.Checkout(token, validCheckout(40.7, -74.0))
	assert.ErrorIs(t, err, ErrOutsideDelivery)

	// no location at all is the same rejection
	req := validCheckout(0, 0)
	req.Latitude, req.Longitude = nil, nil
	_, err = orderSvc.Checkout(token, req)
	assert.ErrorIs(t, err, ErrOutsideDelivery)

	// and nothing was ordered
	orders, err := orderSvc.List()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckoutEmptyCart(t *testing.T) {
	_, orderSvc, _ := newOrderFixture(t)

	_, err := orderSvc.Checkout("guest-empty", validCheckout(23.8, 90.4))
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestOrderLookupByCode(t *testing.T) {
	_, orderSvc, cartSvc := newOrderFixture(t)
	token := "guest-look"

	require.NoError(t, cartSvc.Add(token, &AddToCartIn{MenuItemID: 1, Qty: 2}))
	order, err := orderSvc.Checkout(token, validCheckout(23.8, 90.4))
	require.NoError(t, err)

	got, err := orderSvc.GetByCode(order.Code)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
	require.Len(t, got.Items, 1)

	_, err = orderSvc.GetByCode("ORD-MISSING1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestOrderTransitionsAreGuarded(t *testing.T) {
	_, orderSvc, cartSvc := newOrderFixture(t)
	token := "guest-tr"

	require.NoError(t, cartSvc.Add(token, &AddToCartIn{MenuItemID: 1, Qty: 2}))
	order, err := orderSvc.Checkout(token, validCheckout(23.8, 90.4))
	require.NoError(t, err)

	require.NoError(t, orderSvc.Complete(order.ID))

	// a completed order cannot be completed again or cancelled
	assert.ErrorIs(t, orderSvc.Complete(order.ID), ErrInvalidTransition)
	assert.ErrorIs(t, orderSvc.Cancel(order.ID), ErrInvalidTransition)

	got, err := orderSvc.GetByCode(order.Code)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, got.Status)
}

func TestOrderCancelFromPending(t *testing.T) {
	_, orderSvc, cartSvc := newOrderFixture(t)
	token := "guest-cx"

	require.NoError(t, cartSvc.Add(token, &AddToCartIn{MenuItemID: 1, Qty: 1}))
	order, err := orderSvc.Checkout(token, validCheckout(23.8, 90.4))
	require.NoError(t, err)

	require.NoError(t, orderSvc.Cancel(order.ID))
	assert.ErrorIs(t, orderSvc.Complete(order.ID), ErrInvalidTransition)
}
