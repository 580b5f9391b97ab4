package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/idilsaglam/todoloop/internal/model"
)

// JSON-backed storage. Single file, human-readable, portable.
// No locking; fine for a local single-user CLI.

// DefaultFileName is used when no path is configured.
const DefaultFileName = "todo.json"

// itemsSchema is the on-disk contract. Both fields are required, extra
// fields are tolerated.
const itemsSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["name", "completed"],
    "properties": {
      "name": {"type": "string"},
      "completed": {"type": "boolean"}
    }
  }
}`

var schema = jsonschema.MustCompileString("todo.schema.json", itemsSchema)

// Store reads and writes the todo list file.
type Store struct {
	path   string
	logger *log.Logger
}

// New returns a store backed by path. A nil logger discards output.
func New(path string, logger *log.Logger) *Store {
	if path == "" {
		path = DefaultFileName
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{path: path, logger: logger}
}

// Path is the file the store reads and writes.
func (s *Store) Path() string { return s.path }

// Load returns the persisted items. A missing, unreadable or malformed file
// loads as an empty list; the reason is only logged.
func (s *Store) Load() []model.Item {
	items, err := s.read()
	if err != nil {
		s.logger.Debug("starting from empty list", "path", s.path, "err", err)
		return []model.Item{}
	}
	return items
}

func (s *Store) read() ([]model.Item, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Item{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return items, nil
}

// Save replaces the file with items. The data is written to a temporary file
// next to the target and renamed over it.
func (s *Store) Save(items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	s.logger.Debug("saved", "path", s.path, "items", len(items))
	return nil
}
