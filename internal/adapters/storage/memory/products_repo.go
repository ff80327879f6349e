package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-adoption/internal/domain/products"
)

type productRepo struct {
	mu   sync.RWMutex
	byID map[string]products.Product
}

func NewProductRepo() products.Repository {
	return &productRepo{
		byID: make(map[string]products.Product),
	}
}

func (r *productRepo) Create(ctx context.Context, p products.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("product id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("product already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, id string) (products.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return products.Product{}, products.ErrNotFound
	}
	return p, nil
}

func (r *productRepo) List(ctx context.Context, filter products.ListFilter) ([]products.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(filter.Query))

	out := make([]products.Product, 0)
	for _, p := range r.byID {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.ExcludeID != "" && p.ID == filter.ExcludeID {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Name+" "+p.Description), q) {
			continue
		}
		out = append(out, p)
	}

	// Orden de catálogo: nombre, luego id.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return []products.Product{}, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *productRepo) Categories(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := map[string]bool{}
	out := make([]string, 0)
	for _, p := range r.byID {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out, nil
}

func (r *productRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}
