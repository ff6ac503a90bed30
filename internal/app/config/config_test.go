package config_test

import (
	"testing"
	"time"

	"teamchat/internal/app/config"
)

func TestLoad(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/chat")
	t.Setenv("CHAT_API_URL", "http://chat.local")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("EVENT_WORKERS", "")
	t.Setenv("CHAT_API_TIMEOUT", "3s")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" || cfg.EventWorkers != 4 || cfg.ChatTimeout != 3*time.Second {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoad_Required(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("CHAT_API_URL", "http://chat.local")
	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error without DATABASE_URL")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/chat")
	t.Setenv("CHAT_API_URL", "")
	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error without CHAT_API_URL")
	}
}

func TestLoad_InvalidWorkers(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/chat")
	t.Setenv("CHAT_API_URL", "http://chat.local")
	t.Setenv("EVENT_WORKERS", "zero")
	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid EVENT_WORKERS")
	}
}
