package main

import (
	"fmt"
	"log"

	"github.com/abira1/Cafe-Colombia01/configs"
	"github.com/abira1/Cafe-Colombia01/routes"
	"github.com/abira1/Cafe-Colombia01/services"
	"github.com/abira1/Cafe-Colombia01/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedDefaults(); err != nil {
		log.Fatalf("seed defaults failed: %v", err)
	}

	// websocket hub for the admin dashboard
	hub := ws.NewNotifyHub()
	go hub.Run()

	// optional Telegram channel; an empty token disables it
	tg, err := services.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
	if err != nil {
		log.Printf("telegram disabled: %v", err)
	}

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, db, cfg, hub, tg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
