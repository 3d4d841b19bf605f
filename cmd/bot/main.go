package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rezateymoori/esm-famil-bot/internal/bot"
	"github.com/Rezateymoori/esm-famil-bot/internal/config"
	"github.com/Rezateymoori/esm-famil-bot/internal/db"
	"github.com/Rezateymoori/esm-famil-bot/internal/dict"
	"github.com/Rezateymoori/esm-famil-bot/internal/game"

	"gorm.io/gorm"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()
	if cfg.BotToken == "" {
		log.Fatal("BOT_TOKEN is not set")
	}

	// The bot keeps playing without Postgres; persistence is an audit
	// trail, not the source of truth.
	conn, err := db.Open()
	if err != nil {
		log.Printf("running without database: %v", err)
		conn = nil
	} else {
		tunePool(conn, cfg)
	}

	words := dict.New(dict.NewFileStore(cfg.DataPath), game.DefaultCategories)
	total := 0
	for _, category := range game.DefaultCategories {
		total += words.Size(category)
	}
	log.Printf("dictionary loaded categories=%d words=%d", len(game.DefaultCategories), total)

	b, err := bot.New(cfg.BotToken)
	if err != nil {
		log.Fatalf("bot authentication failed: %v", err)
	}
	svc := game.New(conn, words, b.Transport(), cfg)
	b.Bind(svc)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	b.Run(ctx)
	log.Println("bot stopped")
}

// tunePool applies the connection pool settings to the underlying
// sql.DB. Failures here are logged, not fatal.
func tunePool(conn *gorm.DB, cfg config.Config) {
	sqlDB, err := conn.DB()
	if err != nil {
		log.Printf("failed to access sql.DB for pool tuning: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetimeSeconds) * time.Second)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.DBConnMaxIdleTimeSeconds) * time.Second)
}
