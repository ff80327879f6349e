package donations

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

const (
	MinAmountCents   = 100 // 1.00
	MaxMessageLength = 500
	RecentLimit      = 5
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

type DonateInput struct {
	AmountCents int64
	Message     string
	IsAnonymous bool
}

// Donate registra una donación; userID puede venir vacío.
func (s *Service) Donate(ctx context.Context, userID string, in DonateInput) (Donation, error) {
	if in.AmountCents < MinAmountCents {
		return Donation{}, ErrInvalidInput
	}
	msg := strings.TrimSpace(in.Message)
	if utf8.RuneCountInString(msg) > MaxMessageLength {
		return Donation{}, ErrInvalidInput
	}

	d := Donation{
		ID:          uuid.NewString(),
		UserID:      strings.TrimSpace(userID),
		AmountCents: in.AmountCents,
		Message:     msg,
		IsAnonymous: in.IsAnonymous,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return Donation{}, err
	}
	return d, nil
}

// Recent devuelve las últimas donaciones públicas.
func (s *Service) Recent(ctx context.Context) ([]Donation, error) {
	return s.repo.ListRecent(ctx, true, RecentLimit)
}
