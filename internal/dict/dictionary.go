package dict

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
)

// Normalize trims surrounding whitespace and collapses internal runs of
// whitespace to a single space.
func Normalize(word string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(word)), " ")
}

// Dictionary holds the accepted words of every category in memory and
// writes approved additions through to its Store.
type Dictionary struct {
	mu    sync.Mutex
	store Store
	words map[string]map[string]struct{}
}

// New loads every category from the store. A category whose backing list
// is missing or unreadable starts empty; every answer for it then needs
// the referee.
func New(store Store, categories []string) *Dictionary {
	d := &Dictionary{
		store: store,
		words: make(map[string]map[string]struct{}, len(categories)),
	}
	for _, category := range categories {
		words, err := store.Load(category)
		if err != nil {
			log.Printf("word list load failed category=%s error=%v", category, err)
			words = make(map[string]struct{})
		}
		d.words[category] = words
	}
	return d
}

func (d *Dictionary) Contains(category, word string) bool {
	normalized := Normalize(word)
	if normalized == "" {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.words[category][normalized]
	return ok
}

// Add inserts word into the category set and rewrites the backing list.
// Adding a word that is already present is a no-op.
func (d *Dictionary) Add(category, word string) error {
	normalized := Normalize(word)
	if normalized == "" {
		return fmt.Errorf("empty word for category %q", category)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	set, ok := d.words[category]
	if !ok {
		set = make(map[string]struct{})
		d.words[category] = set
	}
	if _, exists := set[normalized]; exists {
		return nil
	}
	set[normalized] = struct{}{}
	if err := d.store.Save(category, set); err != nil {
		return fmt.Errorf("persist word list %q: %w", category, err)
	}
	return nil
}

// Words returns the accepted words of a category in sorted order.
func (d *Dictionary) Words(category string) []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	set := d.words[category]
	list := make([]string, 0, len(set))
	for word := range set {
		list = append(list, word)
	}
	sort.Strings(list)
	return list
}

func (d *Dictionary) Size(category string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.words[category])
}
