package seed

import (
	"context"
	_ "embed"
	"fmt"

	"pet-adoption/internal/domain/products"
	"pet-adoption/internal/platform/logger"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_products.toml
var sampleProducts []byte

// ProductStore es lo que seed necesita del módulo products; *products.Service lo cumple.
type ProductStore interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, in products.CreateInput) (products.Product, error)
}

type productCatalogue struct {
	Products []struct {
		Name          string `toml:"name"`
		Category      string `toml:"category"`
		PriceCents    int64  `toml:"price_cents"`
		Description   string `toml:"description"`
		Stock         int    `toml:"stock"`
		ImageFilename string `toml:"image_filename"`
	} `toml:"products"`
}

// Products carga la tienda de ejemplo solo si está vacía.
func Products(ctx context.Context, store ProductStore, log logger.Logger) (int, error) {
	n, err := store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	var c productCatalogue
	if err := toml.Unmarshal(sampleProducts, &c); err != nil {
		return 0, fmt.Errorf("parse sample products: %w", err)
	}

	created := 0
	for _, sp := range c.Products {
		if _, err := store.Create(ctx, products.CreateInput{
			Name:          sp.Name,
			Category:      sp.Category,
			PriceCents:    sp.PriceCents,
			Description:   sp.Description,
			Stock:         sp.Stock,
			ImageFilename: sp.ImageFilename,
		}); err != nil {
			return created, fmt.Errorf("create sample product %q: %w", sp.Name, err)
		}
		created++
	}

	log.Info("sample products created", map[string]any{"count": created})
	return created, nil
}
