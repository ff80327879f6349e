package products

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("product not found")
)

const (
	PageSize     = 12
	RelatedLimit = 4
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name          string
	Category      string
	PriceCents    int64
	Description   string
	Stock         int
	ImageFilename string
}

// Create lo usa el seed; la API pública es solo lectura.
func (s *Service) Create(ctx context.Context, in CreateInput) (Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.PriceCents < 0 || in.Stock < 0 {
		return Product{}, ErrInvalidInput
	}

	p := Product{
		ID:            uuid.NewString(),
		Name:          name,
		Category:      normalize(in.Category),
		PriceCents:    in.PriceCents,
		Description:   strings.TrimSpace(in.Description),
		Stock:         in.Stock,
		ImageFilename: strings.TrimSpace(in.ImageFilename),
		CreatedAt:     s.now(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Product{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// ListPage: page empieza en 1.
func (s *Service) ListPage(ctx context.Context, category, query string, page int) ([]Product, error) {
	if page < 1 {
		page = 1
	}
	return s.repo.List(ctx, ListFilter{
		Category: normalize(category),
		Query:    strings.TrimSpace(query),
		Limit:    PageSize,
		Offset:   (page - 1) * PageSize,
	})
}

// Related devuelve hasta RelatedLimit productos de la misma categoría, sin p.
func (s *Service) Related(ctx context.Context, p Product) ([]Product, error) {
	if p.Category == "" {
		return []Product{}, nil
	}
	return s.repo.List(ctx, ListFilter{
		Category:  p.Category,
		ExcludeID: p.ID,
		Limit:     RelatedLimit,
	})
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
