package products

import "time"

// Product es un artículo del catálogo de la tienda (comida, juguetes, accesorios...).
type Product struct {
	ID            string
	Name          string
	Category      string // vacío = sin categoría
	PriceCents    int64
	Description   string
	Stock         int
	ImageFilename string
	CreatedAt     time.Time
}

// InStock indica si hay unidades disponibles.
func (p Product) InStock() bool {
	return p.Stock > 0
}
