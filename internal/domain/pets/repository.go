package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	List(ctx context.Context, filter ListFilter) ([]Pet, error)
	Count(ctx context.Context) (int, error)
}

// ListFilter: campos vacíos no filtran. Limit <= 0 = sin límite.
type ListFilter struct {
	Status      Status
	Species     Species
	OwnerUserID string
	Query       string // name / breed / description, case-insensitive
	Limit       int
	Offset      int
}
