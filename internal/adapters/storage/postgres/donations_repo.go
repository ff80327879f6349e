package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pet-adoption/internal/domain/donations"
)

type DonationsRepo struct {
	db *sql.DB
}

func NewDonationsRepo(db *sql.DB) *DonationsRepo {
	return &DonationsRepo{db: db}
}

func (r *DonationsRepo) Create(ctx context.Context, d donations.Donation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO donations (id, user_id, amount_cents, message, is_anonymous, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		d.ID,
		d.UserID,
		d.AmountCents,
		d.Message,
		d.IsAnonymous,
		d.CreatedAt,
	)
	return err
}

func (r *DonationsRepo) ListRecent(ctx context.Context, publicOnly bool, limit int) ([]donations.Donation, error) {
	query := `
		SELECT id, user_id, amount_cents, message, is_anonymous, created_at
		FROM donations
	`
	args := []any{}
	if publicOnly {
		query += " WHERE is_anonymous = FALSE"
	}
	query += " ORDER BY created_at DESC, id DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]donations.Donation, 0)
	for rows.Next() {
		var d donations.Donation
		if err := rows.Scan(&d.ID, &d.UserID, &d.AmountCents, &d.Message, &d.IsAnonymous, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
