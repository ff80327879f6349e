package donations

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"pet-adoption/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/donations", func(dr chi.Router) {
		dr.Post("/", donateHandler(svc))
		dr.Get("/", recentDonationsHandler(svc))
	})
}

// donateRequest: amount en la moneda del refugio, mínimo 1.
type donateRequest struct {
	Amount      float64 `json:"amount"`
	Message     string  `json:"message"`
	IsAnonymous bool    `json:"is_anonymous"`
}

type donationResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id,omitempty"`
	Amount      float64   `json:"amount"`
	Message     string    `json:"message,omitempty"`
	IsAnonymous bool      `json:"is_anonymous"`
	CreatedAt   time.Time `json:"created_at"`
}

// donateHandler godoc
// @Summary Registrar donación
// @Description No requiere identidad; si hay usuario se asocia a la donación.
// @Tags donations
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param payload body donateRequest true "Monto (>= 1), mensaje opcional (<= 500)"
// @Success 201 {object} donationResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Router /donations [post]
func donateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req donateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		userID := ""
		if claims, ok := middleware.GetClaims(r.Context()); ok {
			userID = claims.UserID
		}

		d, err := svc.Donate(r.Context(), userID, DonateInput{
			AmountCents: toCents(req.Amount),
			Message:     req.Message,
			IsAnonymous: req.IsAnonymous,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toDonationResponse(d))
	}
}

// recentDonationsHandler godoc
// @Summary Últimas donaciones
// @Description Las 5 donaciones no anónimas más recientes.
// @Tags donations
// @Produce json
// @Success 200 {array} donationResponse
// @Failure 500 {string} string "internal error"
// @Router /donations [get]
func recentDonationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Recent(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]donationResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDonationResponse(d))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// toCents redondea al centavo; NaN/Inf quedan en 0 y fallan la validación.
func toCents(amount float64) int64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount > math.MaxInt64/100 {
		return 0
	}
	return int64(math.Round(amount * 100))
}

func toDonationResponse(d Donation) donationResponse {
	return donationResponse{
		ID:          d.ID,
		UserID:      d.UserID,
		Amount:      float64(d.AmountCents) / 100,
		Message:     d.Message,
		IsAnonymous: d.IsAnonymous,
		CreatedAt:   d.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
