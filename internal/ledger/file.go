package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps the ledger as a JSON object ({"Luna": true}) in a single file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by path. The parent directory is
// created if needed; the file itself is created on the first save.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create ledger dir: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Load reads the ledger file. A missing file is an empty ledger.
func (f *FileStore) Load(_ context.Context) (map[string]bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.readLocked()
}

// SaveDefeated records name as defeated and rewrites the file.
func (f *FileStore) SaveDefeated(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	defeated, err := f.readLocked()
	if err != nil {
		// An unreadable file is replaced rather than blocking new victories
		defeated = map[string]bool{}
	}
	defeated[name] = true
	return f.writeLocked(defeated)
}

func (f *FileStore) readLocked() (map[string]bool, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]bool{}, nil
		}
		return nil, fmt.Errorf("read ledger: %w", err)
	}

	defeated := map[string]bool{}
	if err := json.Unmarshal(b, &defeated); err != nil {
		return nil, fmt.Errorf("parse ledger %s: %w", f.path, err)
	}
	return defeated, nil
}

func (f *FileStore) writeLocked(defeated map[string]bool) error {
	b, err := json.MarshalIndent(defeated, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace ledger: %w", err)
	}
	return nil
}
