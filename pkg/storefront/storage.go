package storefront

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/mohammadsaqib2064/onyx-aura/pkg/logger"
)

// Storage keys shared with earlier sessions. Changing them orphans
// persisted carts and logins.
const (
	cartStorageKey    = "onyxAuraCart"
	sessionStorageKey = "onyxAuraAdminAuth"
)

// Storage persists whole values across sessions. Writes are whole-value
// overwrites; a crash mid-write may lose the most recent mutation but must
// never leave a detectable half-write (rehydration treats any unreadable
// value as absent).
type Storage interface {
	// Load returns the stored value for key, or ok=false when absent.
	Load(key string) (value []byte, ok bool)
	// Save overwrites the value for key.
	Save(key string, value []byte) error
	// Delete removes the value for key. Best effort.
	Delete(key string)
}

// FileStorage stores each key as a JSON file under a directory.
type FileStorage struct {
	dir string
}

// NewFileStorage creates the directory if needed and returns a file-backed
// store. Pass "" to use a per-user default under the OS config dir.
func NewFileStorage(dir string) (*FileStorage, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "onyx-aura")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStorage) Load(key string) ([]byte, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Save writes to a temp file and renames it over the target, so readers
// never observe a torn write.
func (s *FileStorage) Save(key string, value []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path(key))
}

func (s *FileStorage) Delete(key string) {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		logger.Warn("Failed to delete stored value", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// MemoryStorage is an in-process Storage, used in tests and as a fallback
// when no durable directory is available.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string][]byte)}
}

func (s *MemoryStorage) Load(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStorage) Save(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStorage) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}
