package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pet-adoption/internal/domain/pets"
)

const petColumns = `
			id, owner_user_id,
			name, species, breed, age_months, gender,
			description, health_info, behavior_info,
			adoption_status, image_filename,
			size, energy_level, good_with_children, good_with_other_pets,
			special_needs, training_level,
			created_at, updated_at`

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
	`,
		p.ID,
		p.OwnerUserID,
		p.Name,
		string(p.Species),
		p.Breed,
		toNullInt(p.AgeMonths),
		string(p.Gender),
		p.Description,
		p.HealthInfo,
		p.BehaviorInfo,
		string(p.Status),
		p.ImageFilename,
		string(p.Size),
		string(p.EnergyLevel),
		p.GoodWithChildren,
		p.GoodWithOtherPets,
		p.SpecialNeeds,
		string(p.TrainingLevel),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			species = $3,
			breed = $4,
			age_months = $5,
			gender = $6,
			description = $7,
			health_info = $8,
			behavior_info = $9,
			adoption_status = $10,
			image_filename = $11,
			size = $12,
			energy_level = $13,
			good_with_children = $14,
			good_with_other_pets = $15,
			special_needs = $16,
			training_level = $17,
			updated_at = $18
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		string(p.Species),
		p.Breed,
		toNullInt(p.AgeMonths),
		string(p.Gender),
		p.Description,
		p.HealthInfo,
		p.BehaviorInfo,
		string(p.Status),
		p.ImageFilename,
		string(p.Size),
		string(p.EnergyLevel),
		p.GoodWithChildren,
		p.GoodWithOtherPets,
		p.SpecialNeeds,
		string(p.TrainingLevel),
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT`+petColumns+`
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT` + petColumns + `
		FROM pets
		WHERE 1=1
	`)

	args := []any{}
	argN := 1

	if filter.Status != "" {
		sb.WriteString(fmt.Sprintf(" AND adoption_status = $%d", argN))
		args = append(args, string(filter.Status))
		argN++
	}
	if filter.Species != "" {
		sb.WriteString(fmt.Sprintf(" AND species = $%d", argN))
		args = append(args, string(filter.Species))
		argN++
	}
	if filter.OwnerUserID != "" {
		sb.WriteString(fmt.Sprintf(" AND owner_user_id = $%d", argN))
		args = append(args, filter.OwnerUserID)
		argN++
	}

	// q: búsqueda simple en name + breed + description
	if q := strings.TrimSpace(filter.Query); q != "" {
		sb.WriteString(fmt.Sprintf(" AND (name ILIKE $%[1]d ESCAPE '\\' OR breed ILIKE $%[1]d ESCAPE '\\' OR description ILIKE $%[1]d ESCAPE '\\')", argN))
		args = append(args, containsPattern(q))
		argN++
	}

	sb.WriteString(" ORDER BY created_at DESC, id ASC")

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

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PetsRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pets`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var species, gender, status, size, energy, training string
	var age sql.NullInt64

	if err := row.Scan(
		&p.ID,
		&p.OwnerUserID,
		&p.Name,
		&species,
		&p.Breed,
		&age,
		&gender,
		&p.Description,
		&p.HealthInfo,
		&p.BehaviorInfo,
		&status,
		&p.ImageFilename,
		&size,
		&energy,
		&p.GoodWithChildren,
		&p.GoodWithOtherPets,
		&p.SpecialNeeds,
		&training,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	p.Species = pets.Species(species)
	p.Gender = pets.Gender(gender)
	p.Status = pets.Status(status)
	p.Size = pets.Size(size)
	p.EnergyLevel = pets.EnergyLevel(energy)
	p.TrainingLevel = pets.TrainingLevel(training)

	if age.Valid {
		a := int(age.Int64)
		p.AgeMonths = &a
	}

	return p, nil
}

// age_months es nullable; nil => NULL
func toNullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
