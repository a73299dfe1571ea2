package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"digital-zoo/internal/domain/zoo"
)

// animalRepo guarda los registros en orden de admisión; byID es solo índice.
type animalRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]zoo.Record
}

func NewAnimalRepo() zoo.Repository {
	return &animalRepo{
		byID: make(map[string]zoo.Record),
	}
}

func (r *animalRepo) Create(ctx context.Context, rec zoo.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.byID[rec.ID]; exists {
		return errors.New("animal already exists")
	}
	r.byID[rec.ID] = rec
	r.order = append(r.order, rec.ID)
	return nil
}

func (r *animalRepo) GetByID(ctx context.Context, id string) (zoo.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return zoo.Record{}, zoo.ErrNotFound
	}
	return rec, nil
}

func (r *animalRepo) List(ctx context.Context) ([]zoo.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]zoo.Record, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *animalRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return zoo.ErrNotFound
	}
	delete(r.byID, id)

	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
