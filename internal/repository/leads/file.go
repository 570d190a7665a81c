// Package leads persists venue enquiries.
package leads

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/ishaan-jha021/ecomatch/internal/domain"
)

// FileStore appends leads to a JSON file. Writes are serialized with a
// mutex; the whole file is rewritten on every append, which is fine for the
// enquiry volumes of a directory site.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file-backed lead store.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Append adds a lead to the file.
func (s *FileStore) Append(ctx context.Context, lead domain.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.readAll()
	if err != nil {
		return err
	}
	all = append(all, lead)

	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal leads: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write leads %s: %w", s.path, err)
	}
	return nil
}

// List returns all stored leads.
func (s *FileStore) List(ctx context.Context) ([]domain.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll()
}

func (s *FileStore) readAll() ([]domain.Lead, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read leads %s: %w", s.path, err)
	}
	var all []domain.Lead
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("parse leads %s: %w", s.path, err)
	}
	return all, nil
}
