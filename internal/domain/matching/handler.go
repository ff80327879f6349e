package matching

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"pet-adoption/internal/domain/pets"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, uploadsBaseURL string) {
	h := &handler{svc: svc, uploadsBaseURL: strings.TrimRight(uploadsBaseURL, "/")}

	// API sin estado (JSON in, JSON out)
	r.Route("/api/pet-match", func(ar chi.Router) {
		ar.Post("/", h.apiMatch)
		ar.Get("/{petID}/breakdown", h.breakdown)
	})

	// Flujo con sesión: formulario -> resultados
	r.Route("/pet-match", func(pr chi.Router) {
		pr.Post("/", h.startSession)
		pr.Get("/{sessionID}/results", h.sessionResults)
	})
}

type handler struct {
	svc            *Service
	uploadsBaseURL string
}

// flexBool acepta true/false y también los valores del formulario ("yes"/"no").
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*b = false
		return nil
	}

	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = flexBool(v)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.New("expected boolean or yes/no")
	}
	*b = flexBool(parseYesNo(s))
	return nil
}

func parseYesNo(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on", "y":
		return true
	default:
		return false
	}
}

// matchRequest son las preferencias del adoptante. Enums ausentes o desconocidos => "any".
type matchRequest struct {
	Species            string   `json:"species" example:"dog"`
	AgePreference      string   `json:"age_preference" enums:"baby,adult,senior,any"`
	GenderPreference   string   `json:"gender_preference" enums:"male,female,any"`
	SizePreference     string   `json:"size_preference" enums:"small,medium,large,any"`
	EnergyLevel        string   `json:"energy_level" enums:"low,medium,high,any"`
	EnergyPreference   string   `json:"energy_preference,omitempty"` // alias de energy_level
	GoodWithChildren   flexBool `json:"good_with_children" swaggertype:"boolean"`
	GoodWithOtherPets  flexBool `json:"good_with_other_pets" swaggertype:"boolean"`
	SpecialNeeds       flexBool `json:"special_needs" swaggertype:"boolean"`
	LivingEnvironment  string   `json:"living_environment"`
	TimeAvailability   string   `json:"time_availability"`
	TrainingPreference string   `json:"training_preference"`
}

func (req matchRequest) toPreference() Preference {
	energy := req.EnergyLevel
	if strings.TrimSpace(energy) == "" {
		energy = req.EnergyPreference
	}
	return Preference{
		Species:            pets.Species(req.Species),
		Age:                AgePreference(req.AgePreference),
		Gender:             GenderPreference(req.GenderPreference),
		Size:               SizePreference(req.SizePreference),
		Energy:             EnergyPreference(energy),
		GoodWithChildren:   bool(req.GoodWithChildren),
		GoodWithOtherPets:  bool(req.GoodWithOtherPets),
		SpecialNeeds:       bool(req.SpecialNeeds),
		LivingEnvironment:  req.LivingEnvironment,
		TimeAvailability:   req.TimeAvailability,
		TrainingPreference: req.TrainingPreference,
	}.Normalize()
}

type preferenceResponse struct {
	Species            pets.Species     `json:"species"`
	AgePreference      AgePreference    `json:"age_preference"`
	GenderPreference   GenderPreference `json:"gender_preference"`
	SizePreference     SizePreference   `json:"size_preference"`
	EnergyLevel        EnergyPreference `json:"energy_level"`
	GoodWithChildren   bool             `json:"good_with_children"`
	GoodWithOtherPets  bool             `json:"good_with_other_pets"`
	SpecialNeeds       bool             `json:"special_needs"`
	LivingEnvironment  string           `json:"living_environment"`
	TimeAvailability   string           `json:"time_availability"`
	TrainingPreference string           `json:"training_preference"`
}

type matchResponse struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Species    pets.Species `json:"species"`
	Breed      string       `json:"breed"`
	Age        *int         `json:"age"`
	Gender     pets.Gender  `json:"gender"`
	ImageURL   string       `json:"image_url,omitempty"`
	MatchScore int          `json:"match_score"`
}

type matchListResponse struct {
	Matches []matchResponse `json:"matches"`
	Count   int             `json:"count"`
}

type sessionResponse struct {
	SessionID  string `json:"session_id"`
	ResultsURL string `json:"results_url"`
}

type sessionResultsResponse struct {
	Preferences preferenceResponse `json:"preferences"`
	Matches     []matchResponse    `json:"matches"`
	Count       int                `json:"count"`
}

type breakdownResponse struct {
	PetID   string `json:"pet_id"`
	PetName string `json:"pet_name"`
	Result
}

// apiMatch godoc
// @Summary Buscar mascotas compatibles
// @Description Puntúa las mascotas disponibles contra las preferencias y devuelve las que alcanzan al menos 50, de mayor a menor.
// @Tags matching
// @Accept json
// @Produce json
// @Param payload body matchRequest true "Preferencias; species es obligatorio"
// @Success 200 {object} matchListResponse
// @Failure 400 {string} string "no data provided / species is required"
// @Router /api/pet-match [post]
func (h *handler) apiMatch(w http.ResponseWriter, r *http.Request) {
	pref, ok := decodePreference(w, r)
	if !ok {
		return
	}

	matches, err := h.svc.FindMatches(r.Context(), pref)
	if err != nil {
		h.writeMatchError(w, err)
		return
	}

	items := h.toMatchResponses(matches)
	writeJSON(w, http.StatusOK, matchListResponse{Matches: items, Count: len(items)})
}

// startSession godoc
// @Summary Enviar formulario de matching
// @Description Guarda las preferencias en una sesión temporal y devuelve la URL de resultados.
// @Tags matching
// @Accept json
// @Produce json
// @Param payload body matchRequest true "Preferencias; species es obligatorio"
// @Success 201 {object} sessionResponse
// @Failure 400 {string} string "no data provided / species is required"
// @Router /pet-match [post]
func (h *handler) startSession(w http.ResponseWriter, r *http.Request) {
	pref, ok := decodePreference(w, r)
	if !ok {
		return
	}

	id, err := h.svc.StartSession(r.Context(), pref)
	if err != nil {
		h.writeMatchError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{
		SessionID:  id,
		ResultsURL: "/pet-match/" + id + "/results",
	})
}

// sessionResults godoc
// @Summary Resultados de matching de una sesión
// @Tags matching
// @Produce json
// @Param sessionID path string true "ID de sesión devuelto por POST /pet-match"
// @Success 200 {object} sessionResultsResponse
// @Failure 404 {string} string "please fill out the pet matching form first"
// @Router /pet-match/{sessionID}/results [get]
func (h *handler) sessionResults(w http.ResponseWriter, r *http.Request) {
	pref, matches, err := h.svc.SessionMatches(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.writeMatchError(w, err)
		return
	}

	items := h.toMatchResponses(matches)
	writeJSON(w, http.StatusOK, sessionResultsResponse{
		Preferences: toPreferenceResponse(pref),
		Matches:     items,
		Count:       len(items),
	})
}

// breakdown godoc
// @Summary Desglose del score de una mascota
// @Description Las preferencias van en query string con los mismos nombres que el body de /api/pet-match.
// @Tags matching
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param species query string true "Especie buscada"
// @Param age_preference query string false "baby, adult, senior, any"
// @Param gender_preference query string false "male, female, any"
// @Param size_preference query string false "small, medium, large, any"
// @Param energy_level query string false "low, medium, high, any"
// @Param good_with_children query string false "yes/no"
// @Param good_with_other_pets query string false "yes/no"
// @Param special_needs query string false "yes/no"
// @Success 200 {object} breakdownResponse
// @Failure 400 {string} string "species is required"
// @Failure 404 {string} string "pet not found"
// @Router /api/pet-match/{petID}/breakdown [get]
func (h *handler) breakdown(w http.ResponseWriter, r *http.Request) {
	pref := preferenceFromQuery(r.URL.Query())

	p, res, err := h.svc.Explain(r.Context(), chi.URLParam(r, "petID"), pref)
	if err != nil {
		h.writeMatchError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, breakdownResponse{
		PetID:   p.ID,
		PetName: p.Name,
		Result:  res,
	})
}

func decodePreference(w http.ResponseWriter, r *http.Request) (Preference, bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		http.Error(w, "no data provided", http.StatusBadRequest)
		return Preference{}, false
	}

	var req matchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return Preference{}, false
	}

	pref := req.toPreference()
	if pref.Species == "" {
		http.Error(w, "species is required", http.StatusBadRequest)
		return Preference{}, false
	}
	return pref, true
}

func preferenceFromQuery(q url.Values) Preference {
	return matchRequest{
		Species:            q.Get("species"),
		AgePreference:      q.Get("age_preference"),
		GenderPreference:   q.Get("gender_preference"),
		SizePreference:     q.Get("size_preference"),
		EnergyLevel:        q.Get("energy_level"),
		EnergyPreference:   q.Get("energy_preference"),
		GoodWithChildren:   flexBool(parseYesNo(q.Get("good_with_children"))),
		GoodWithOtherPets:  flexBool(parseYesNo(q.Get("good_with_other_pets"))),
		SpecialNeeds:       flexBool(parseYesNo(q.Get("special_needs"))),
		LivingEnvironment:  q.Get("living_environment"),
		TimeAvailability:   q.Get("time_availability"),
		TrainingPreference: q.Get("training_preference"),
	}.toPreference()
}

func (h *handler) writeMatchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidPreference):
		http.Error(w, "species is required", http.StatusBadRequest)
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "please fill out the pet matching form first", http.StatusNotFound)
	case errors.Is(err, pets.ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *handler) toMatchResponses(matches []Match) []matchResponse {
	out := make([]matchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, matchResponse{
			ID:         m.Pet.ID,
			Name:       m.Pet.Name,
			Species:    m.Pet.Species,
			Breed:      m.Pet.Breed,
			Age:        m.Pet.AgeMonths,
			Gender:     m.Pet.Gender,
			ImageURL:   h.imageURL(m.Pet.ImageFilename),
			MatchScore: m.Score,
		})
	}
	return out
}

func (h *handler) imageURL(filename string) string {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return ""
	}
	return h.uploadsBaseURL + "/" + url.PathEscape(filename)
}

func toPreferenceResponse(p Preference) preferenceResponse {
	return preferenceResponse{
		Species:            p.Species,
		AgePreference:      p.Age,
		GenderPreference:   p.Gender,
		SizePreference:     p.Size,
		EnergyLevel:        p.Energy,
		GoodWithChildren:   p.GoodWithChildren,
		GoodWithOtherPets:  p.GoodWithOtherPets,
		SpecialNeeds:       p.SpecialNeeds,
		LivingEnvironment:  p.LivingEnvironment,
		TimeAvailability:   p.TimeAvailability,
		TrainingPreference: p.TrainingPreference,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
