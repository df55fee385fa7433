package services

import (
	"fmt"
	"testing"

	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/repository"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database per test. The named DSN
// keeps the schema alive across the pool's connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{},
		&entity.Event{}, &entity.Booking{},
		&entity.Reservation{},
		&entity.Review{},
		&entity.Offer{},
		&entity.GalleryItem{},
		&entity.Promotion{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Setting{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// newTestNotify builds a notify service with every outward channel inert:
// no websocket hub, no telegram bot.
func newTestNotify(db *gorm.DB) *NotifyService {
	return NewNotifyService(nil, &TelegramNotifier{}, repository.NewSettingsRepository(db))
}
