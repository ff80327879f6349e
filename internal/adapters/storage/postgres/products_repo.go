package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pet-adoption/internal/domain/products"
)

const productColumns = `
			id, name, category, price_cents, description, stock, image_filename, created_at`

type ProductsRepo struct {
	db *sql.DB
}

func NewProductsRepo(db *sql.DB) *ProductsRepo {
	return &ProductsRepo{db: db}
}

func (r *ProductsRepo) Create(ctx context.Context, p products.Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (`+productColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		p.ID,
		p.Name,
		p.Category,
		p.PriceCents,
		p.Description,
		p.Stock,
		p.ImageFilename,
		p.CreatedAt,
	)
	return err
}

func (r *ProductsRepo) GetByID(ctx context.Context, id string) (products.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return products.Product{}, products.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT`+productColumns+`
		FROM products
		WHERE id = $1
	`, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return products.Product{}, products.ErrNotFound
		}
		return products.Product{}, err
	}
	return p, nil
}

func (r *ProductsRepo) List(ctx context.Context, filter products.ListFilter) ([]products.Product, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT` + productColumns + `
		FROM products
		WHERE 1=1
	`)

	args := []any{}
	argN := 1

	if filter.Category != "" {
		sb.WriteString(fmt.Sprintf(" AND category = $%d", argN))
		args = append(args, filter.Category)
		argN++
	}
	if filter.ExcludeID != "" {
		sb.WriteString(fmt.Sprintf(" AND id <> $%d", argN))
		args = append(args, filter.ExcludeID)
		argN++
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		sb.WriteString(fmt.Sprintf(" AND (name ILIKE $%[1]d ESCAPE '\\' OR description ILIKE $%[1]d ESCAPE '\\')", argN))
		args = append(args, containsPattern(q))
		argN++
	}

	sb.WriteString(" ORDER BY name ASC, id ASC")

	if filter.Limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
		args = append(args, filter.Limit)
		argN++
	}
	if filter.Offset > 0 {
		sb.WriteString(fmt.Sprintf(" OFFSET $%d", argN))
		args = append(args, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]products.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductsRepo) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT category
		FROM products
		WHERE category <> ''
		ORDER BY category
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ProductsRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanProduct(row rowScanner) (products.Product, error) {
	var p products.Product
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Category,
		&p.PriceCents,
		&p.Description,
		&p.Stock,
		&p.ImageFilename,
		&p.CreatedAt,
	); err != nil {
		return products.Product{}, err
	}
	return p, nil
}
