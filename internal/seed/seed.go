// Package seed carga los catálogos iniciales (mascotas, tienda) y completa atributos de matching faltantes.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"pet-adoption/internal/domain/matching"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/platform/logger"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_pets.toml
var samplePets []byte

// PetStore es lo que seed necesita del módulo pets; *pets.Service lo cumple.
type PetStore interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, ownerUserID string, in pets.CreateInput) (pets.Pet, error)
	ListAll(ctx context.Context) ([]pets.Pet, error)
	SaveAttributes(ctx context.Context, p pets.Pet) (pets.Pet, error)
}

type catalogue struct {
	Owner string       `toml:"owner"`
	Pets  []samplePet `toml:"pets"`
}

type samplePet struct {
	Name          string `toml:"name"`
	Species       string `toml:"species"`
	Breed         string `toml:"breed"`
	Age           *int   `toml:"age"`
	Gender        string `toml:"gender"`
	Description   string `toml:"description"`
	HealthInfo    string `toml:"health_info"`
	BehaviorInfo  string `toml:"behavior_info"`
	ImageFilename string `toml:"image_filename"`
}

func loadCatalogue(data []byte) (catalogue, error) {
	var c catalogue
	if err := toml.Unmarshal(data, &c); err != nil {
		return catalogue{}, fmt.Errorf("parse sample pets: %w", err)
	}
	return c, nil
}

// Run crea las mascotas de ejemplo solo si el catálogo está vacío.
// Devuelve cuántas creó.
func Run(ctx context.Context, store PetStore, log logger.Logger) (int, error) {
	n, err := store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count pets: %w", err)
	}
	if n > 0 {
		log.Debug("seed skipped, catalogue not empty", map[string]any{"pets": n})
		return 0, nil
	}

	c, err := loadCatalogue(samplePets)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, sp := range c.Pets {
		p := matching.Infer(pets.Pet{
			Species:   pets.Species(sp.Species),
			Breed:     sp.Breed,
			AgeMonths: sp.Age,
		})

		_, err := store.Create(ctx, c.Owner, pets.CreateInput{
			Name:              sp.Name,
			Species:           sp.Species,
			Breed:             sp.Breed,
			AgeMonths:         sp.Age,
			Gender:            sp.Gender,
			Description:       sp.Description,
			HealthInfo:        sp.HealthInfo,
			BehaviorInfo:      sp.BehaviorInfo,
			ImageFilename:     sp.ImageFilename,
			Size:              string(p.Size),
			EnergyLevel:       string(p.EnergyLevel),
			GoodWithChildren:  p.GoodWithChildren,
			GoodWithOtherPets: p.GoodWithOtherPets,
			SpecialNeeds:      p.SpecialNeeds,
			TrainingLevel:     string(p.TrainingLevel),
		})
		if err != nil {
			return created, fmt.Errorf("create sample pet %q: %w", sp.Name, err)
		}
		created++
	}

	log.Info("sample pets created", map[string]any{"count": created, "owner": c.Owner})
	return created, nil
}

// Backfill completa tamaño, nivel de energía y entrenamiento cuando están vacíos.
// Los flags de sociabilidad y necesidades especiales son del dueño y no se tocan.
// Solo guarda cuando algo cambia; devuelve cuántas actualizó.
func Backfill(ctx context.Context, store PetStore, log logger.Logger) (int, error) {
	all, err := store.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list pets: %w", err)
	}

	updated := 0
	for _, p := range all {
		if err := ctx.Err(); err != nil {
			return updated, err
		}
		if !p.NeedsBackfill() {
			continue
		}

		filled := fillMissing(p, matching.Infer(p))
		if sameAttributes(p, filled) {
			continue
		}

		if _, err := store.SaveAttributes(ctx, filled); err != nil {
			return updated, fmt.Errorf("save attributes for %s: %w", p.ID, err)
		}
		updated++

		log.Debug("pet attributes inferred", map[string]any{
			"pet_id":       p.ID,
			"size":         string(filled.Size),
			"energy_level": string(filled.EnergyLevel),
		})
	}

	if updated > 0 {
		log.Info("backfill completed", map[string]any{"updated": updated, "scanned": len(all)})
	}
	return updated, nil
}

// fillMissing toma de inferred solo los atributos vacíos en p.
func fillMissing(p, inferred pets.Pet) pets.Pet {
	if p.Size == "" {
		p.Size = inferred.Size
	}
	if p.EnergyLevel == "" {
		p.EnergyLevel = inferred.EnergyLevel
	}
	if p.TrainingLevel == "" {
		p.TrainingLevel = inferred.TrainingLevel
	}
	return p
}

func sameAttributes(a, b pets.Pet) bool {
	return a.Size == b.Size &&
		a.EnergyLevel == b.EnergyLevel &&
		a.TrainingLevel == b.TrainingLevel
}
