package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-adoption/internal/domain/pets"
)

type petRepo struct {
	mu   sync.RWMutex
	byID map[string]pets.Pet
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[string]pets.Pet),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pet already exists")
	}
	r.byID[p.ID] = clonePet(p)
	return nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; !exists {
		return pets.ErrNotFound
	}
	r.byID[p.ID] = clonePet(p)
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return clonePet(p), nil
}

func (r *petRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(filter.Query))

	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.Species != "" && p.Species != filter.Species {
			continue
		}
		if filter.OwnerUserID != "" && p.OwnerUserID != filter.OwnerUserID {
			continue
		}
		if q != "" {
			hay := strings.ToLower(p.Name + " " + p.Breed + " " + p.Description)
			if !strings.Contains(hay, q) {
				continue
			}
		}
		out = append(out, clonePet(p))
	}

	// Más nuevas primero; desempate por id para que el orden sea estable.
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return []pets.Pet{}, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}

	return out, nil
}

func (r *petRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}

// clonePet evita compartir el puntero de edad entre el repo y los callers.
func clonePet(p pets.Pet) pets.Pet {
	if p.AgeMonths != nil {
		age := *p.AgeMonths
		p.AgeMonths = &age
	}
	return p
}
