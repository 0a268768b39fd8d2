package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/hyperdoc"
	"github.com/aretw0/hyperdoc/pkg/adapters/file"
	"github.com/aretw0/hyperdoc/pkg/adapters/redis"
	"github.com/aretw0/hyperdoc/pkg/ports"
)

// HistoryKey is the store key holding the most recently fetched document.
const HistoryKey = "history:last"

// NewClient builds the client the CLI commands share.
func NewClient(cfg *Config, logger *slog.Logger) *hyperdoc.Client {
	return hyperdoc.New(
		hyperdoc.WithHeaders(cfg.Headers),
		hyperdoc.WithLogger(logger),
	)
}

// NewStore builds the document store selected by the configuration.
func NewStore(cfg *Config, configDir string) (ports.DocumentStore, error) {
	switch cfg.Store.Backend {
	case "file", "":
		dir := cfg.Store.Dir
		if dir == "" {
			dir = filepath.Join(configDir, "documents")
		}
		return file.NewStore(dir)
	case "redis":
		opts := []redis.Option{}
		if cfg.Store.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Store.Redis.Prefix))
		}
		return redis.New(cfg.Store.Redis.Address, cfg.Store.Redis.Password, cfg.Store.Redis.DB, opts...), nil
	}
	return nil, fmt.Errorf("unknown store backend %q (expected file or redis)", cfg.Store.Backend)
}
