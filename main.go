package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/shravani101006/serene-write/auth"
	"github.com/shravani101006/serene-write/db"
	"github.com/shravani101006/serene-write/handlers"
	"github.com/shravani101006/serene-write/service"
	"github.com/shravani101006/serene-write/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or failed to load it:", err)
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI env not set")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET env not set")
	}
	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "serenewrite"
	}

	mongoClient, err := db.ConnectMongoDB(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Failed to disconnect MongoDB client: %v", err)
		}
	}()

	st := store.NewMongo(mongoClient.Database(dbName))
	tokens := auth.NewTokenService(secret, st)
	svc := service.New(st)
	h := handlers.New(svc, tokens)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	r.Static("/uploads", "./static/uploads")

	h.Routes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Printf("serene-write listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
