package products

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/products", func(pr chi.Router) {
		pr.Get("/", listProductsHandler(svc))
		pr.Get("/{productID}", getProductHandler(svc))
	})
}

// productResponse representa un artículo de la tienda.
type productResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category,omitempty"`
	Price         float64   `json:"price"`
	Description   string    `json:"description"`
	Stock         int       `json:"stock"`
	InStock       bool      `json:"in_stock"`
	ImageFilename string    `json:"image_filename,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type productListResponse struct {
	Products       []productResponse `json:"products"`
	Categories     []string          `json:"categories"`
	ActiveCategory string            `json:"active_category"`
	Page           int               `json:"page"`
}

type productDetailResponse struct {
	productResponse
	RelatedProducts []productResponse `json:"related_products"`
}

// listProductsHandler godoc
// @Summary Listar productos
// @Description Catálogo de la tienda, 12 por página, con filtro por categoría y búsqueda libre.
// @Tags products
// @Produce json
// @Param category query string false "Categoría (food, toys, accessories...)"
// @Param q query string false "Texto libre en nombre/descripción"
// @Param page query int false "Página (desde 1)"
// @Success 200 {object} productListResponse
// @Failure 500 {string} string "internal error"
// @Router /products [get]
func listProductsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		page := 1
		if v := q.Get("page"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				page = n
			}
		}

		items, err := svc.ListPage(r.Context(), q.Get("category"), q.Get("q"), page)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		categories, err := svc.Categories(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := productListResponse{
			Products:       toProductResponses(items),
			Categories:     categories,
			ActiveCategory: strings.ToLower(strings.TrimSpace(q.Get("category"))),
			Page:           page,
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// getProductHandler godoc
// @Summary Detalle de producto
// @Description Incluye hasta 4 productos de la misma categoría en related_products.
// @Tags products
// @Produce json
// @Param productID path string true "ID del producto"
// @Success 200 {object} productDetailResponse
// @Failure 404 {string} string "product not found"
// @Router /products/{productID} [get]
func getProductHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "productID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "product not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		related, err := svc.Related(r.Context(), p)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, productDetailResponse{
			productResponse: toProductResponse(p),
			RelatedProducts: toProductResponses(related),
		})
	}
}

func toProductResponse(p Product) productResponse {
	return productResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Price:         float64(p.PriceCents) / 100,
		Description:   p.Description,
		Stock:         p.Stock,
		InStock:       p.InStock(),
		ImageFilename: p.ImageFilename,
		CreatedAt:     p.CreatedAt,
	}
}

func toProductResponses(items []Product) []productResponse {
	out := make([]productResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toProductResponse(p))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
