package products

import "context"

type Repository interface {
	Create(ctx context.Context, p Product) error
	GetByID(ctx context.Context, id string) (Product, error)
	List(ctx context.Context, filter ListFilter) ([]Product, error)
	// Categories devuelve las categorías distintas, ordenadas.
	Categories(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
}

// ListFilter: campos vacíos no filtran. Limit <= 0 = sin límite.
type ListFilter struct {
	Category  string
	Query     string // name / description, case-insensitive
	ExcludeID string
	Limit     int
	Offset    int
}
