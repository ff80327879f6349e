package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-adoption/internal/domain/donations"
)

type donationRepo struct {
	mu    sync.RWMutex
	items []donations.Donation
}

func NewDonationRepo() donations.Repository {
	return &donationRepo{}
}

func (r *donationRepo) Create(ctx context.Context, d donations.Donation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(d.ID) == "" {
		return errors.New("donation id required")
	}
	r.items = append(r.items, d)
	return nil
}

func (r *donationRepo) ListRecent(ctx context.Context, publicOnly bool, limit int) ([]donations.Donation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Recorrido inverso: a igual fecha, la última insertada primero.
	out := make([]donations.Donation, 0)
	for i := len(r.items) - 1; i >= 0; i-- {
		d := r.items[i]
		if publicOnly && d.IsAnonymous {
			continue
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
