package seedstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/todo/internal/model"
)

// Seed lists and action scripts live in small human-edited files.
// .yaml/.yml is read as YAML, anything else as JSON.

var (
	ErrDuplicateID = errors.New("seedstore: duplicate item id")
	ErrInvalidID   = errors.New("seedstore: item id must be positive")
	ErrInvalidStep = errors.New("seedstore: step must set exactly one of create, toggle, remove")
)

func decode(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, v); err != nil {
			return fmt.Errorf("yaml unmarshal: %w", err)
		}
	default:
		if err := json.Unmarshal(b, v); err != nil {
			return fmt.Errorf("json unmarshal: %w", err)
		}
	}
	return nil
}

// LoadItems reads a seed list. Ids must be positive and unique.
func LoadItems(path string) (model.List, error) {
	var items model.List
	if err := decode(path, &items); err != nil {
		return nil, err
	}
	seen := make(map[int]bool, len(items))
	for _, it := range items {
		if it.ID <= 0 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidID, it.ID)
		}
		if seen[it.ID] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, it.ID)
		}
		seen[it.ID] = true
	}
	if items == nil {
		items = model.List{}
	}
	return items, nil
}

// LoadSteps reads an action script.
func LoadSteps(path string) ([]Step, error) {
	var steps []Step
	if err := decode(path, &steps); err != nil {
		return nil, err
	}
	for i, s := range steps {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return steps, nil
}
