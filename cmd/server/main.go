// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"codesearch/internal/analyzer"
	"codesearch/internal/config"
	"codesearch/internal/llm"
	"codesearch/internal/mcpserver"
	"codesearch/internal/server"
)

func main() {
	// optional .env for local development
	_ = godotenv.Load()

	// stdout carries the MCP protocol stream, all logging goes to stderr
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	log.SetOutput(os.Stderr)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	})))

	llmProvider, err := llm.NewOpenAI(&cfg.OpenAI)
	if err != nil {
		log.Fatalf("failed to create LLM provider: %v", err)
	}

	analyzer := analyzer.New(llmProvider, cfg.OpenAI.Model)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Server.Addr != "" {
		httpSrv := server.New(cfg.Server, analyzer)
		go func() {
			if err := httpSrv.Run(ctx); err != nil {
				slog.Error("http server failed", "error", err)
			}
		}()
	}

	srv := mcpserver.New(analyzer)
	if err := srv.ServeStdio(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("mcp server failed: %v", err)
	}

	slog.Info("shutdown complete")
}
