package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"MMECalc/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.BotToken == "" {
		log.Fatal("TOKEN_BOT missing")
	}

	bot := NewBot(cfg.BotToken, cfg.Precision)
	log.Println("bot started")
	bot.Run(ctx)
	log.Println("bot stopped")
}
