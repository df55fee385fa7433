package services

import (
	"time"

	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/repository"

	"gorm.io/gorm"
)

// Pricing holds the checkout constants; defaults come from config so the
// demo literals (fee 100, free shipping above 1000) stay tunable.
type Pricing struct {
	ShippingFee     int64
	FreeShippingMin int64
}

type CartService struct {
	DB        *gorm.DB
	CartRepo  *repository.CartRepository
	MenuRepo  *repository.MenuRepository
	PromoRepo *repository.PromotionRepository
	Pricing   Pricing
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository, pr *repository.PromotionRepository, pricing Pricing) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr, PromoRepo: pr, Pricing: pricing}
}

type AddToCartIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Qty        int  `json:"qty" binding:"min=1"`
}

// CartQuote is recomputed from the lines on every read; nothing derived is
// stored.
type CartQuote struct {
	Subtotal             int64  `json:"subtotal"`
	ItemCount            int    `json:"itemCount"`
	Shipping             int64  `json:"shipping"`
	Discount             int64  `json:"discount"`
	Total                int64  `json:"total"`
	CouponCode           string `json:"couponCode,omitempty"`
	FreeShippingProgress int    `json:"freeShippingProgress"` // 0..100
}

func (s *CartService) Get(token string) (*entity.Cart, *CartQuote, error) {
	c, err := s.CartRepo.GetCartWithItems(token)
	if err != nil {
		return nil, nil, err
	}
	quote, err := s.quoteFor(c)
	if err != nil {
		return nil, nil, err
	}
	return c, quote, nil
}

func (s *CartService) Add(token string, in *AddToCartIn) error {
	if in.Qty <= 0 {
		in.Qty = 1
	}

	c, err := s.CartRepo.GetOrCreateCart(token)
	if err != nil {
		return err
	}

	m, err := s.MenuRepo.FindByID(in.MenuItemID)
	if err != nil {
		return err
	}

	line := &entity.CartItem{
		MenuItemID: m.ID,
		Name:       m.Name,
		Picture:    m.Picture,
		Qty:        in.Qty,
		UnitPrice:  m.Price,
		Total:      m.Price * int64(in.Qty),
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
}

func (s *CartService) UpdateQty(token string, itemID uint, qty int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, token, itemID, qty)
	})
}

func (s *CartService) RemoveItem(token string, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, token, itemID)
	})
}

func (s *CartService) Clear(token string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, token)
	})
}

// ApplyCoupon checks the code against the promotion table and sticks it to
// the cart. Unknown or unusable codes are a rejected operation, not a
// silent no-op.
func (s *CartService) ApplyCoupon(token, code string) (*CartQuote, error) {
	c, err := s.CartRepo.GetCartWithItems(token)
	if err != nil {
		return nil, err
	}

	promo, err := s.PromoRepo.FindByCode(code)
	if err != nil || !promo.UsableAt(time.Now()) {
		return nil, ErrInvalidCoupon
	}
	if promo.MinOrder > 0 && subtotalOf(c.Items) < promo.MinOrder {
		return nil, ErrMinOrderNotMet
	}

	if err := s.CartRepo.SetCoupon(token, promo.PromoCode); err != nil {
		return nil, err
	}
	c.CouponCode = promo.PromoCode
	return s.quoteFor(c)
}

// RemoveCoupon resets the discount to zero.
func (s *CartService) RemoveCoupon(token string) (*CartQuote, error) {
	if err := s.CartRepo.SetCoupon(token, ""); err != nil {
		return nil, err
	}
	c, err := s.CartRepo.GetCartWithItems(token)
	if err != nil {
		return nil, err
	}
	return s.quoteFor(c)
}

func subtotalOf(items []entity.CartItem) int64 {
	var subtotal int64
	for _, it := range items {
		subtotal += it.UnitPrice * int64(it.Qty)
	}
	return subtotal
}

func itemCountOf(items []entity.CartItem) int {
	var n int
	for _, it := range items {
		n += it.Qty
	}
	return n
}

// quoteFor prices the cart: shipping is waived above the free-shipping
// threshold, then the applied promotion (if any still resolves) discounts
// either the subtotal or the shipping.
func (s *CartService) quoteFor(c *entity.Cart) (*CartQuote, error) {
	subtotal := subtotalOf(c.Items)

	var shipping int64
	if subtotal <= s.Pricing.FreeShippingMin {
		shipping = s.Pricing.ShippingFee
	}

	var discount int64
	coupon := ""
	if c.CouponCode != "" {
		promo, err := s.PromoRepo.FindByCode(c.CouponCode)
		if err == nil && promo.UsableAt(time.Now()) {
			coupon = promo.PromoCode
			switch promo.PromoType {
			case entity.PromoPercent:
				discount = subtotal * promo.Value / 100
			case entity.PromoFreeDelivery:
				discount = shipping
			case entity.PromoAmount:
				discount = promo.Value
				if discount > subtotal+shipping {
					discount = subtotal + shipping
				}
			}
		}
	}

	progress := 100
	if s.Pricing.FreeShippingMin > 0 && subtotal < s.Pricing.FreeShippingMin {
		progress = int(subtotal * 100 / s.Pricing.FreeShippingMin)
	}

	return &CartQuote{
		Subtotal:             subtotal,
		ItemCount:            itemCountOf(c.Items),
		Shipping:             shipping,
		Discount:             discount,
		Total:                subtotal + shipping - discount,
		CouponCode:           coupon,
		FreeShippingProgress: progress,
	}, nil
}
