// Package ledger persists which characters have been defeated across sessions.
package ledger

import (
	"context"
	"log/slog"
)

// Store is the durable defeat ledger, keyed by exact character name.
type Store interface {
	// Load returns every recorded name and whether it is defeated.
	Load(ctx context.Context) (map[string]bool, error)
	// SaveDefeated records name as defeated.
	SaveDefeated(ctx context.Context, name string) error
}

// LoadOrEmpty reads the ledger, treating any failure as "nothing defeated".
func LoadOrEmpty(ctx context.Context, s Store, logger *slog.Logger) map[string]bool {
	if s == nil {
		return map[string]bool{}
	}
	defeated, err := s.Load(ctx)
	if err != nil {
		if logger != nil {
			logger.Warn("defeat ledger unreadable, starting fresh", "error", err)
		}
		return map[string]bool{}
	}
	if defeated == nil {
		return map[string]bool{}
	}
	return defeated
}
