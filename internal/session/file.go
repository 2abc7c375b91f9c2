package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const defaultFilePath = "./data/quiz-session.json"

// FileKV persists all entries as one JSON object on disk, rewritten on every change.
type FileKV struct {
	mu      sync.Mutex
	path    string
	entries map[string]string
}

var _ KV = (*FileKV)(nil)

func OpenFileKV(path string) (*FileKV, error) {
	if path == "" {
		path = defaultFilePath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	kv := &FileKV{path: path, entries: map[string]string{}}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return kv, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &kv.entries); err != nil {
			return nil, fmt.Errorf("decode session file %s: %w", path, err)
		}
	}
	return kv, nil
}

func (f *FileKV) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.entries[key]
	return v, ok, nil
}

func (f *FileKV) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	prev, had := f.entries[key]
	f.entries[key] = value
	if err := f.flush(); err != nil {
		if had {
			f.entries[key] = prev
		} else {
			delete(f.entries, key)
		}
		return err
	}
	return nil
}

func (f *FileKV) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	prev, had := f.entries[key]
	if !had {
		return nil
	}
	delete(f.entries, key)
	if err := f.flush(); err != nil {
		f.entries[key] = prev
		return err
	}
	return nil
}

func (f *FileKV) Close() error { return nil }

func (f *FileKV) flush() error {
	data, err := json.MarshalIndent(f.entries, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
