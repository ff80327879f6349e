package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-adoption/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))

		// Cambio de estado de adopción (solo dueño)
		pr.Patch("/{petID}/status", updateStatusHandler(svc))
	})
}

// createPetRequest es el cuerpo para publicar una mascota en adopción.
type createPetRequest struct {
	Name          string `json:"name"`
	Species       string `json:"species" enums:"dog,cat,bird,rabbit,fish,other"`
	Breed         string `json:"breed"`
	Age           *int   `json:"age"` // meses
	Gender        string `json:"gender" enums:"male,female,unknown"`
	Description   string `json:"description"`
	HealthInfo    string `json:"health_info"`
	BehaviorInfo  string `json:"behavior_info"`
	ImageFilename string `json:"image_filename"`

	Size              string `json:"size" enums:"small,medium,large"`
	EnergyLevel       string `json:"energy_level" enums:"low,medium,high"`
	GoodWithChildren  bool   `json:"good_with_children"`
	GoodWithOtherPets bool   `json:"good_with_other_pets"`
	SpecialNeeds      bool   `json:"special_needs"`
	TrainingLevel     string `json:"training_level" enums:"untrained,basic,well_trained"`
}

// petResponse representa un anuncio de adopción devuelto por la API.
type petResponse struct {
	ID                string        `json:"id"`
	OwnerUserID       string        `json:"owner_user_id,omitempty"`
	Name              string        `json:"name"`
	Species           Species       `json:"species"`
	Breed             string        `json:"breed"`
	Age               *int          `json:"age"`
	Gender            Gender        `json:"gender"`
	Description       string        `json:"description"`
	HealthInfo        string        `json:"health_info"`
	BehaviorInfo      string        `json:"behavior_info"`
	Status            Status        `json:"adoption_status"`
	ImageFilename     string        `json:"image_filename,omitempty"`
	Size              Size          `json:"size,omitempty"`
	EnergyLevel       EnergyLevel   `json:"energy_level,omitempty"`
	GoodWithChildren  bool          `json:"good_with_children"`
	GoodWithOtherPets bool          `json:"good_with_other_pets"`
	SpecialNeeds      bool          `json:"special_needs"`
	TrainingLevel     TrainingLevel `json:"training_level,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// petDetailResponse agrega otras mascotas disponibles del mismo dueño.
type petDetailResponse struct {
	petResponse
	OtherPets []petResponse `json:"other_pets"`
}

type updateStatusRequest struct {
	Status Status `json:"status" enums:"available,pending,adopted"`
}

// createPetHandler godoc
// @Summary Publicar mascota en adopción
// @Description Crea un anuncio de adopción. Los atributos de matching son opcionales y no se infieren. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>`.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param payload body createPetRequest true "Datos de la mascota; age en meses"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:              req.Name,
			Species:           req.Species,
			Breed:             req.Breed,
			AgeMonths:         req.Age,
			Gender:            req.Gender,
			Description:       req.Description,
			HealthInfo:        req.HealthInfo,
			BehaviorInfo:      req.BehaviorInfo,
			ImageFilename:     req.ImageFilename,
			Size:              req.Size,
			EnergyLevel:       req.EnergyLevel,
			GoodWithChildren:  req.GoodWithChildren,
			GoodWithOtherPets: req.GoodWithOtherPets,
			SpecialNeeds:      req.SpecialNeeds,
			TrainingLevel:     req.TrainingLevel,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas disponibles
// @Description Lista pública de mascotas en estado available, más nuevas primero, 12 por página.
// @Tags pets
// @Produce json
// @Param species query string false "Filtrar por especie"
// @Param q query string false "Texto libre en nombre/raza/descripción"
// @Param page query int false "Página (desde 1)"
// @Success 200 {array} petResponse
// @Failure 500 {string} string "internal error"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		page := 1
		if v := q.Get("page"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				page = n
			}
		}

		items, err := svc.ListPage(r.Context(), q.Get("species"), q.Get("q"), page)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Detalle de mascota
// @Description Incluye hasta 4 mascotas disponibles del mismo dueño en other_pets.
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petDetailResponse
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		others, err := svc.OtherFromOwner(r.Context(), p)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := petDetailResponse{
			petResponse: toPetResponse(p),
			OtherPets:   make([]petResponse, 0, len(others)),
		}
		for _, o := range others {
			resp.OtherPets = append(resp.OtherPets, toPetResponse(o))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// updateStatusHandler godoc
// @Summary Cambiar estado de adopción
// @Description Solo el dueño del anuncio puede moverlo entre available, pending y adopted.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param petID path string true "ID de la mascota"
// @Param payload body updateStatusRequest true "Nuevo estado"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/status [patch]
func updateStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "petID"), claims.UserID, req.Status)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrForbidden):
				http.Error(w, "forbidden", http.StatusForbidden)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "pet not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(updated))
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:                p.ID,
		OwnerUserID:       p.OwnerUserID,
		Name:              p.Name,
		Species:           p.Species,
		Breed:             p.Breed,
		Age:               p.AgeMonths,
		Gender:            p.Gender,
		Description:       p.Description,
		HealthInfo:        p.HealthInfo,
		BehaviorInfo:      p.BehaviorInfo,
		Status:            p.Status,
		ImageFilename:     p.ImageFilename,
		Size:              p.Size,
		EnergyLevel:       p.EnergyLevel,
		GoodWithChildren:  p.GoodWithChildren,
		GoodWithOtherPets: p.GoodWithOtherPets,
		SpecialNeeds:      p.SpecialNeeds,
		TrainingLevel:     p.TrainingLevel,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// writeJSON está duplicado a propósito en cada módulo (pets/matching).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
