package services

import (
	"testing"

	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMenuFixture(t *testing.T) *MenuService {
	db := newTestDB(t)
	svc := NewMenuService(repository.NewMenuRepository(db))

	items := []entity.MenuItem{
		{Name: "Espresso", Price: 250, Category: "hot drinks", Active: true},
		{Name: "Iced Latte", Price: 350, Category: "cold drinks", Active: true},
		{Name: "Croissant", Price: 300, Category: "food", Active: true},
	}
	require.NoError(t, svc.Replace(items))
	return svc
}

func TestMenuListByCategory(t *testing.T) {
	svc := newMenuFixture(t)

	all, err := svc.List("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	hot, err := svc.List("hot drinks")
	require.NoError(t, err)
	require.Len(t, hot, 1)
	assert.Equal(t, "Espresso", hot[0].Name)
}

func TestMenuCreateValidation(t *testing.T) {
	svc := newMenuFixture(t)

	assert.Error(t, svc.Create(&entity.MenuItem{Price: 100}))
	assert.Error(t, svc.Create(&entity.MenuItem{Name: "Broken", Price: -1}))
	assert.NoError(t, svc.Create(&entity.MenuItem{Name: "Free Sample", Price: 0, Active: true}))
}

func TestMenuReplaceSwapsCollection(t *testing.T) {
	svc := newMenuFixture(t)

	err := svc.Replace([]entity.MenuItem{
		{Name: "Flat White", Price: 320, Category: "hot drinks", Active: true},
	})
	require.NoError(t, err)

	all, err := svc.List("")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Flat White", all[0].Name)
}

func TestMenuUpdateMissing(t *testing.T) {
	svc := newMenuFixture(t)

	_, err := svc.Update(999, &entity.MenuItem{Name: "Ghost"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPromotionCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromotionService(repository.NewPromotionRepository(db))

	assert.Error(t, svc.Create(&entity.Promotion{PromoType: entity.PromoPercent, Value: 10}))
	assert.Error(t, svc.Create(&entity.Promotion{PromoCode: "x", PromoType: "bogo"}))
	assert.Error(t, svc.Create(&entity.Promotion{PromoCode: "x", PromoType: entity.PromoPercent, Value: 101}))

	assert.NoError(t, svc.Create(&entity.Promotion{
		PromoCode: "save10", PromoType: entity.PromoPercent, Value: 10, Active: true,
	}))
	assert.NoError(t, svc.Create(&entity.Promotion{
		PromoCode: "freeship", PromoType: entity.PromoFreeDelivery, Active: true,
	}))
}
