// Package prefs implements the client's local preference storage: a small
// key-value store persisted as a JSON file, plus a typed façade over it for
// session state, the first-launch flag, the saved delivery address and
// per-address notes.
package prefs

import (
	"encoding/json"
	"os"
	"strconv"
	"sync"
)

// Store is the capability handed to every component that needs local
// persistence. The second return value of each getter reports presence,
// so an unset key is never conflated with a stored zero value.
type Store interface {
	GetString(key string) (string, bool)
	SetString(key, value string)
	GetBool(key string) (bool, bool)
	SetBool(key string, value bool)
	GetInt64(key string) (int64, bool)
	SetInt64(key string, value int64)
	Remove(key string)
}

// FileStore persists preferences as a single JSON file. Every mutation is
// written through immediately; a missing file on Load means an empty store.
type FileStore struct {
	path   string
	mu     sync.Mutex
	values map[string]string
}

// NewFileStore creates a FileStore backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, values: make(map[string]string)}
}

// Load reads the preference file from disk. A missing file is not an error.
func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.values = make(map[string]string)
			return nil
		}
		return err
	}
	defer f.Close()

	values := make(map[string]string)
	if err := json.NewDecoder(f).Decode(&values); err != nil {
		return err
	}
	s.values = values
	return nil
}

// save writes the current values to disk. Callers must hold s.mu.
func (s *FileStore) save() error {
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(s.values)
}

func (s *FileStore) GetString(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *FileStore) SetString(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	_ = s.save()
}

func (s *FileStore) GetBool(key string) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}

func (s *FileStore) SetBool(key string, value bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = strconv.FormatBool(value)
	_ = s.save()
}

func (s *FileStore) GetInt64(key string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (s *FileStore) SetInt64(key string, value int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = strconv.FormatInt(value, 10)
	_ = s.save()
}

func (s *FileStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	_ = s.save()
}

// MemStore is an in-memory Store used in tests and as a stand-in when no
// durable storage is wanted.
type MemStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

func (s *MemStore) GetString(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemStore) SetString(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *MemStore) GetBool(key string) (bool, bool) {
	v, ok := s.GetString(key)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}

func (s *MemStore) SetBool(key string, value bool) {
	s.SetString(key, strconv.FormatBool(value))
}

func (s *MemStore) GetInt64(key string) (int64, bool) {
	v, ok := s.GetString(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (s *MemStore) SetInt64(key string, value int64) {
	s.SetString(key, strconv.FormatInt(value, 10))
}

func (s *MemStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}
