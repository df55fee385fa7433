package configs

import (
	"github.com/abira1/Cafe-Colombia01/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() error {
	return db.AutoMigrate(
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
}
