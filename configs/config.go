package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	AdminEmail    string
	AdminPassword string

	// Delivery gate. Defaults describe the Dhaka service area.
	DeliveryCity  string
	DeliveryNorth float64
	DeliverySouth float64
	DeliveryEast  float64
	DeliveryWest  float64

	// Cart / checkout pricing.
	ShippingFee     int64
	FreeShippingMin int64 // subtotal above this ships free
	DeliveryMinMins int
	DeliveryMaxMins int

	PublicBaseURL string // used in QR payloads

	TelegramBotToken string
	TelegramChatID   int64
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:  getEnv("DB_SOURCE", "cafe.db"),
		Port:      getEnv("PORT", "8000"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    time.Duration(24) * time.Hour,

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@cafecolombia.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		DeliveryCity:  getEnv("DELIVERY_CITY", "Dhaka"),
		DeliveryNorth: getEnvFloat("DELIVERY_NORTH", 23.9),
		DeliverySouth: getEnvFloat("DELIVERY_SOUTH", 23.7),
		DeliveryEast:  getEnvFloat("DELIVERY_EAST", 90.5),
		DeliveryWest:  getEnvFloat("DELIVERY_WEST", 90.3),

		ShippingFee:     getEnvInt64("SHIPPING_FEE", 100),
		FreeShippingMin: getEnvInt64("FREE_SHIPPING_MIN", 1000),
		DeliveryMinMins: int(getEnvInt64("DELIVERY_MIN_MINUTES", 30)),
		DeliveryMaxMins: int(getEnvInt64("DELIVERY_MAX_MINUTES", 60)),

		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8000"),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   getEnvInt64("TELEGRAM_CHAT_ID", 0),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
		log.Printf("invalid %s=%q, using default", key, v)
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid %s=%q, using default", key, v)
	}
	return fallback
}
