package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/cardhall/internal/config"
	"github.com/samdwyer/cardhall/internal/ledger"
)

func TestOpenLedgerOrMemoryFallsBack(t *testing.T) {
	dir := t.TempDir()

	garbage := filepath.Join(dir, "ledger.db")
	require.NoError(t, os.WriteFile(garbage, bytes.Repeat([]byte("not a database "), 512), 0o644))

	notADir := filepath.Join(dir, "plain-file")
	require.NoError(t, os.WriteFile(notADir, []byte("x"), 0o644))

	tests := []struct {
		name string
		lc   config.LedgerConfig
	}{
		{"corrupt sqlite file", config.LedgerConfig{Backend: config.LedgerSQLite, Path: garbage}},
		{"uncreatable file dir", config.LedgerConfig{Backend: config.LedgerFile, Path: filepath.Join(notADir, "ledger.json")}},
		{"unknown backend", config.LedgerConfig{Backend: "carrier-pigeon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, nil))
			ctx := context.Background()

			store, closeStore := openLedgerOrMemory(ctx, tt.lc, logger)
			defer closeStore()

			require.IsType(t, &ledger.MemoryStore{}, store)
			assert.Contains(t, logs.String(), "defeat ledger unavailable")

			// The session can still record defeats
			require.NoError(t, store.SaveDefeated(ctx, "Luna"))
			defeated, err := store.Load(ctx)
			require.NoError(t, err)
			assert.True(t, defeated["Luna"])
		})
	}
}

func TestOpenLedgerOrMemoryUsesConfiguredBackend(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	path := filepath.Join(t.TempDir(), "ledger.json")

	store, closeStore := openLedgerOrMemory(context.Background(),
		config.LedgerConfig{Backend: config.LedgerFile, Path: path}, logger)
	defer closeStore()

	assert.IsType(t, &ledger.FileStore{}, store)
	assert.Empty(t, logs.String())
}
