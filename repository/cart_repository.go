package repository

import (
	"errors"

	"github.com/abira1/Cafe-Colombia01/entity"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the session's cart, or an empty unsaved cart so
// the storefront can still render.
func (r *CartRepository) GetCartWithItems(token string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("session_token = ?", token).
		Preload("Items").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{SessionToken: token}, nil
	}
	return &c, err
}

func (r *CartRepository) GetOrCreateCart(token string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("session_token = ?", token).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{SessionToken: token}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// UpsertItem merges lines for the same menu item: adding an item that is
// already in the cart increments its quantity.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND menu_item_id = ?", cartID, row.MenuItemID).
		First(&exist).Error
	if err == nil {
		exist.Qty += row.Qty
		exist.Total = int64(exist.Qty) * exist.UnitPrice
		return tx.Save(&exist).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

// UpdateQty sets the line quantity; anything below 1 removes the line.
func (r *CartRepository) UpdateQty(tx *gorm.DB, token string, itemID uint, qty int) error {
	if qty <= 0 {
		return r.RemoveItem(tx, token, itemID)
	}
	return tx.Exec(`
		UPDATE cart_items
		   SET qty = ?, total = unit_price * ?
		 WHERE id = ?
		   AND cart_id IN (SELECT id FROM carts WHERE session_token = ?)
	`, qty, qty, itemID, token).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, token string, itemID uint) error {
	return tx.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE session_token = ?)", itemID, token).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) SetCoupon(token string, code string) error {
	return r.DB.Model(&entity.Cart{}).
		Where("session_token = ?", token).
		Update("coupon_code", code).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, token string) error {
	var c entity.Cart
	if err := tx.Where("session_token = ?", token).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	// also drop the applied coupon so the next session starts clean
	return tx.Model(&entity.Cart{}).Where("id = ?", c.ID).Update("coupon_code", "").Error
}
