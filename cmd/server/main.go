package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/navwar/seabattle/internal/config"
	"github.com/navwar/seabattle/internal/identity"
	"github.com/navwar/seabattle/internal/match"
	"github.com/navwar/seabattle/internal/storage/memory"
	"github.com/navwar/seabattle/internal/storage/sqlite"
)

func NewServer(cfg config.Config) (*server, error) {
	var store match.Store
	if cfg.DBPath != "" {
		s, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		store = s
		slog.Info("using sqlite store", "path", cfg.DBPath)
	} else {
		store = memory.NewStore()
		slog.Info("using in-memory store")
	}

	return &server{
		engine:  match.NewEngine(store),
		players: identity.NewRegistry(),
	}, nil
}

func main() {
	cfg, err := config.ParseEnv()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	router := gin.Default()

	s, err := NewServer(cfg)
	if err != nil {
		slog.Error("failed to start server", "error", err)
		os.Exit(1)
	}

	s.RegisterEndpoints(router)

	addr := cfg.Addr
	if len(os.Args) >= 2 {
		addr = os.Args[1]
	}

	fmt.Println(router.Run(addr))
}
