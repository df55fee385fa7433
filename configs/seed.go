package configs

import (
	"log"

	"github.com/abira1/Cafe-Colombia01/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the back-office account on first run.
func SeedAdmin(email, pass string) error {
	db := DB()
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedDefaults loads the sample storefront dataset the public site shows
// before any admin edits, plus the stock coupon promotions and the
// notification settings row. FirstOrCreate keeps reruns idempotent.
func SeedDefaults() error {
	db := DB()

	// Menu
	menu := []entity.MenuItem{
		{Name: "Colombian Black", Description: "Our signature black coffee from Huila region", Price: 350, Category: "hot drinks", Picture: "https://images.unsplash.com/photo-1447933601403-0c6688de566e", Active: true},
		{Name: "Iced Latte", Description: "Refreshing cold espresso with milk and ice", Price: 400, Category: "cold drinks", Picture: "https://images.unsplash.com/photo-1511920170033-f8396924c348", Active: true},
		{Name: "Chicken Sandwich", Description: "Grilled chicken breast with fresh vegetables and special sauce", Price: 450, Category: "food", Picture: "https://images.unsplash.com/photo-1528735602780-2552fd46c7af", Active: true},
		{Name: "Pasta Alfredo", Description: "Creamy pasta with parmesan cheese and garlic", Price: 550, Category: "food", Picture: "https://images.unsplash.com/photo-1473093226795-af9932fe5856", Active: true},
		{Name: "Espresso", Description: "Strong and rich Italian-style espresso", Price: 300, Category: "hot drinks", Picture: "https://images.unsplash.com/photo-1510590339092-1b1de537e58d", Active: true},
		{Name: "Fruit Smoothie", Description: "Blend of seasonal fruits with yogurt", Price: 450, Category: "cold drinks", Picture: "https://images.unsplash.com/photo-1502741224143-90386d7f8c82", Active: true},
	}
	for i := range menu {
		if err := db.Where(entity.MenuItem{Name: menu[i].Name}).FirstOrCreate(&menu[i]).Error; err != nil {
			return err
		}
	}

	// Events
	db.Where(entity.Event{Title: "Coffee Tasting Event"}).FirstOrCreate(&entity.Event{
		Title:       "Coffee Tasting Event",
		Description: "Join us for a special coffee tasting event",
		Date:        "2024-04-15",
		Time:        "18:00",
		Location:    "Main Hall",
		Picture:     "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085",
		Capacity:    30,
		Price:       500,
		Active:      true,
	})

	// Gallery
	db.Where(entity.GalleryItem{Title: "Our Cafe Interior"}).FirstOrCreate(&entity.GalleryItem{
		Title:       "Our Cafe Interior",
		Description: "The cozy atmosphere of our cafe",
		Picture:     "https://images.unsplash.com/photo-1554118811-1e0d58224f24",
	})

	// Offers
	db.Where(entity.Offer{Title: "Happy Hour"}).FirstOrCreate(&entity.Offer{
		Title:        "Happy Hour",
		Description:  "50% off on all drinks from 3 PM to 6 PM",
		Availability: "3 PM - 6 PM",
		Discount:     50,
		ValidUntil:   "2024-04-30",
		Picture:      "https://images.unsplash.com/photo-1514432324607-a09d9b4aefdd",
		Active:       true,
	})

	// Reviews
	db.Where(entity.Review{Name: "John Doe"}).FirstOrCreate(&entity.Review{
		Name:    "John Doe",
		Rating:  5,
		Content: "Best coffee in town!",
		Date:    "2024-03-15",
		Status:  entity.ReviewApproved,
		Active:  true,
	})

	// Coupon promotions
	db.Where(entity.Promotion{PromoCode: "save10"}).FirstOrCreate(&entity.Promotion{
		PromoCode:   "save10",
		PromoDetail: "10% off your subtotal",
		PromoType:   entity.PromoPercent,
		Value:       10,
		Active:      true,
	})
	db.Where(entity.Promotion{PromoCode: "freeship"}).FirstOrCreate(&entity.Promotion{
		PromoCode:   "freeship",
		PromoDetail: "Free shipping on your order",
		PromoType:   entity.PromoFreeDelivery,
		Active:      true,
	})

	// Notification settings singleton
	var settings entity.Setting
	if err := db.First(&settings).Error; err != nil {
		if err := db.Create(&entity.Setting{
			EmailNotifications:  true,
			PushNotifications:   true,
			OrderUpdates:        true,
			ReviewNotifications: true,
		}).Error; err != nil {
			return err
		}
	}

	log.Println("default data seeded")
	return nil
}
