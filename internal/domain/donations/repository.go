package donations

import "context"

type Repository interface {
	Create(ctx context.Context, d Donation) error
	// ListRecent devuelve las más nuevas primero; publicOnly excluye las anónimas.
	ListRecent(ctx context.Context, publicOnly bool, limit int) ([]Donation, error)
}
