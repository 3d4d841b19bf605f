package dict

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Store persists the accepted-word set of a category. A missing backing
// entry yields an empty set, never an error.
type Store interface {
	Load(category string) (map[string]struct{}, error)
	Save(category string, words map[string]struct{}) error
}

// FileStore keeps one flat JSON list per category: a sorted, deduplicated
// UTF-8 array rewritten in full on every save.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (fs *FileStore) path(category string) string {
	return filepath.Join(fs.dir, category+".json")
}

func (fs *FileStore) Load(category string) (map[string]struct{}, error) {
	raw, err := os.ReadFile(fs.path(category))
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]struct{}), nil
		}
		return nil, fmt.Errorf("read word list %q: %w", category, err)
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("parse word list %q: %w", category, err)
	}
	words := make(map[string]struct{}, len(list))
	for _, word := range list {
		if normalized := Normalize(word); normalized != "" {
			words[normalized] = struct{}{}
		}
	}
	return words, nil
}

func (fs *FileStore) Save(category string, words map[string]struct{}) error {
	list := make([]string, 0, len(words))
	for word := range words {
		list = append(list, word)
	}
	sort.Strings(list)
	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("encode word list %q: %w", category, err)
	}
	if err := os.MkdirAll(fs.dir, 0o755); err != nil {
		return fmt.Errorf("create word list dir: %w", err)
	}
	if err := os.WriteFile(fs.path(category), raw, 0o644); err != nil {
		return fmt.Errorf("write word list %q: %w", category, err)
	}
	return nil
}
