package main

import (
	"fmt"
	"log"

	"github.com/681102815-lab/CondoCare-backend/configs"
	"github.com/681102815-lab/CondoCare-backend/middlewares"
	"github.com/681102815-lab/CondoCare-backend/routes"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	// seed ก่อนเปิดรับ request เพื่อให้สถานะ DB นิ่งตั้งแต่แรก
	if err := configs.SeedUsers(db, cfg.SeedPassword); err != nil {
		log.Fatalf("seed users failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
