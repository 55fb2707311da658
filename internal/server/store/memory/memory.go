// Package memory is a mutex-guarded in-memory store backend. It backs unit
// tests and local development runs where no database DSN is configured.
package memory

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/filecatalog/internal/common"
	"github.com/dmitrijs2005/filecatalog/internal/server/models"
	"github.com/dmitrijs2005/filecatalog/internal/server/store"
	"github.com/google/uuid"
)

type Manager struct {
	dirs  *DirectoryStore
	files *FileStore
}

func NewManager() *Manager {
	return &Manager{
		dirs:  &DirectoryStore{items: map[string]*models.Directory{}},
		files: &FileStore{items: map[string]*models.File{}},
	}
}

func (m *Manager) Directories() store.DirectoryStore { return m.dirs }
func (m *Manager) Files() store.FileStore            { return m.files }
func (m *Manager) Close(ctx context.Context) error   { return nil }

type DirectoryStore struct {
	mu    sync.RWMutex
	items map[string]*models.Directory
}

func (s *DirectoryStore) Insert(ctx context.Context, d *models.Directory) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *d
	cp.ID = uuid.NewString()
	s.items[cp.ID] = &cp
	return cp.ID, nil
}

func (s *DirectoryStore) FindByID(ctx context.Context, id string) (*models.Directory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *d
	cp.Normalize()
	return &cp, nil
}

func (s *DirectoryStore) Update(ctx context.Context, id string, upd models.DirectoryUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.items[id]
	if !ok {
		return common.ErrNotFound
	}
	if upd.Name != nil {
		d.Name = *upd.Name
	}
	if upd.ParentID != nil {
		d.ParentID = *upd.ParentID
	}
	if upd.IsPublic != nil {
		d.IsPublic = *upd.IsPublic
	}
	if upd.AllowedReaders != nil {
		d.AllowedReaders = append([]int64{}, (*upd.AllowedReaders)...)
	}
	if upd.AllowedWriters != nil {
		d.AllowedWriters = append([]int64{}, (*upd.AllowedWriters)...)
	}
	return nil
}

func (s *DirectoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return common.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *DirectoryStore) ListByParent(ctx context.Context, parentID string) ([]*models.Directory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []*models.Directory{}
	for _, d := range s.items {
		if d.ParentID == parentID {
			cp := *d
			cp.Normalize()
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (s *DirectoryStore) CountByParent(ctx context.Context, parentID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, d := range s.items {
		if d.ParentID == parentID {
			n++
		}
	}
	return n, nil
}

type FileStore struct {
	mu    sync.RWMutex
	items map[string]*models.File
}

func (s *FileStore) Insert(ctx context.Context, f *models.File) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *f
	cp.ID = uuid.NewString()
	s.items[cp.ID] = &cp
	return cp.ID, nil
}

func (s *FileStore) FindByID(ctx context.Context, id string) (*models.File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *f
	cp.Normalize()
	return &cp, nil
}

func (s *FileStore) Update(ctx context.Context, id string, upd models.FileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.items[id]
	if !ok {
		return common.ErrNotFound
	}
	if upd.Name != nil {
		f.Name = *upd.Name
	}
	if upd.IsPublic != nil {
		f.IsPublic = *upd.IsPublic
	}
	if upd.AllowedReaders != nil {
		f.AllowedReaders = append([]int64{}, (*upd.AllowedReaders)...)
	}
	if upd.AllowedWriters != nil {
		f.AllowedWriters = append([]int64{}, (*upd.AllowedWriters)...)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return common.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *FileStore) ListByParent(ctx context.Context, parentID string) ([]*models.File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []*models.File{}
	for _, f := range s.items {
		if f.ParentID == parentID {
			cp := *f
			cp.Normalize()
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (s *FileStore) CountByParent(ctx context.Context, parentID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, f := range s.items {
		if f.ParentID == parentID {
			n++
		}
	}
	return n, nil
}

func (s *FileStore) DeleteByParent(ctx context.Context, parentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, f := range s.items {
		if f.ParentID == parentID {
			delete(s.items, id)
		}
	}
	return nil
}
