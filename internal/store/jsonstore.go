package store

import (
	"errors"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONStore writes derived pipeline outputs under a root directory and reads
// them back, e.g. Root = "data/derived".
type JSONStore struct {
	Root string
}

func NewJSONStore(root string) *JSONStore {
	return &JSONStore{Root: root}
}

func (s *JSONStore) Path(rel string) string {
	return filepath.Join(s.Root, rel)
}

func (s *JSONStore) Exists(rel string) bool {
	_, err := os.Stat(s.Path(rel))
	return err == nil
}

// WriteDerived marshals v to rel, creating parent directories as needed.
func (s *JSONStore) WriteDerived(rel string, v any, pretty bool) error {
	path := s.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var (
		body []byte
		err  error
	)
	if pretty {
		body, err = json.MarshalIndent(v, "", "  ")
	} else {
		body, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	body = append(body, '\n')
	return os.WriteFile(path, body, 0o644)
}

func (s *JSONStore) ReadRaw(rel string) ([]byte, error) {
	path := s.Path(rel)
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return b, err
}
