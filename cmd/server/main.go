package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lucaflorio/go-blog-api/internal/auth"
	"github.com/lucaflorio/go-blog-api/internal/blog"
	"github.com/lucaflorio/go-blog-api/internal/config"
	"github.com/lucaflorio/go-blog-api/internal/httpapi"
	"github.com/lucaflorio/go-blog-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	st := store.New(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := st.CreateTables(ctx); err != nil {
		cancel()
		log.Fatalf("db bootstrap: %v", err)
	}
	cancel()
	log.Println("database ready")

	tokens := auth.NewTokenService([]byte(cfg.SigningKey), cfg.TokenTTL, nil)
	resolver := auth.NewResolver(st.Users(), tokens)

	srv := httpapi.NewServer(
		cfg,
		tokens,
		resolver,
		blog.NewUsers(st.Users()),
		blog.NewPosts(st.Posts()),
		blog.NewComments(st.Comments()),
	)
	app := srv.App()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("server: %v", err)
		}
	}()
	log.Println("API listening on :" + cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
