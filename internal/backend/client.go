// Package backend holds the single shared handle to the external managed
// backend: its Postgres database and its auth service.
package backend

import (
	"context"
	"fmt"

	"late-rooms/internal/config"

	"gorm.io/gorm"
)

// Client is created once at startup and injected into every component that
// reads or writes backend state. DB is nil in memory mode.
type Client struct {
	Auth Authenticator
	DB   *gorm.DB
}

// New builds the client for the configured backend mode
func New(ctx context.Context, cfg config.BackendConfig) (*Client, error) {
	switch cfg.Mode {
	case config.ModeMemory:
		return &Client{Auth: NewMemoryAuth()}, nil
	case config.ModePostgres:
		db, err := OpenDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return &Client{
			Auth: NewAuthClient(cfg.URL, cfg.AnonKey, cfg.Timeout.Duration),
			DB:   db,
		}, nil
	default:
		return nil, fmt.Errorf("backend: unknown mode %q", cfg.Mode)
	}
}

// Close releases the database pool
func (c *Client) Close() {
	CloseDB(c.DB)
}
