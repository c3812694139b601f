package save

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Records holds the persisted best score per deck name.
type Records struct {
	Best map[string]int `yaml:"best"`
}

const (
	recordsObject   = "records"
	recordsProperty = "best"
)

// Store keeps best scores in gdata-backed storage. A nil manager degrades to
// in-memory records that vanish on exit; that is never an error.
type Store struct {
	manager *gdata.Manager
	records Records
}

// Open creates a store under the given app name. Storage failures are logged
// and degrade to the in-memory mode.
func Open(appName string) *Store {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("save: storage unavailable, records will not persist: %v", err)
		manager = nil
	}
	return NewStore(manager)
}

// NewStore wraps an existing manager and loads any saved records.
func NewStore(manager *gdata.Manager) *Store {
	s := &Store{
		manager: manager,
		records: Records{Best: make(map[string]int)},
	}
	if err := s.load(); err != nil {
		log.Printf("save: failed to load records: %v (starting empty)", err)
	}
	return s
}

// Best returns the best recorded score for a deck, zero when none.
func (s *Store) Best(deck string) int {
	if s == nil {
		return 0
	}
	return s.records.Best[deck]
}

// RecordScore stores the score if it beats the deck's best. It reports
// whether the record improved.
func (s *Store) RecordScore(deck string, score int) (bool, error) {
	if s == nil || deck == "" {
		return false, nil
	}
	if best, ok := s.records.Best[deck]; ok && score <= best {
		return false, nil
	}
	s.records.Best[deck] = score
	if err := s.save(); err != nil {
		return true, err
	}
	return true, nil
}

func (s *Store) load() error {
	if s.manager == nil {
		return nil
	}
	if !s.manager.ObjectPropExists(recordsObject, recordsProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(recordsObject, recordsProperty)
	if err != nil {
		return fmt.Errorf("save: load records: %w", err)
	}

	var loaded Records
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("save: unmarshal records: %w", err)
	}
	if loaded.Best == nil {
		loaded.Best = make(map[string]int)
	}
	s.records = loaded
	return nil
}

func (s *Store) save() error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(&s.records)
	if err != nil {
		return fmt.Errorf("save: marshal records: %w", err)
	}
	if err := s.manager.SaveObjectProp(recordsObject, recordsProperty, data); err != nil {
		return fmt.Errorf("save: write records: %w", err)
	}
	return nil
}
