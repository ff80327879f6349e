package matching

import (
	"context"
	"errors"
	"runtime"
	"sort"
	"strings"
	"time"

	"pet-adoption/internal/domain/pets"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidPreference = errors.New("invalid preference")

// CandidateSource entrega las mascotas disponibles para adopción.
type CandidateSource interface {
	ListAvailable(ctx context.Context) ([]pets.Pet, error)
	GetByID(ctx context.Context, id string) (pets.Pet, error)
}

// Match es un candidato con su puntaje.
type Match struct {
	Pet    pets.Pet
	Score  int
	Result Result
}

type Service struct {
	source CandidateSource
	store  PreferenceStore
	ttl    time.Duration
	limit  int
}

func NewService(source CandidateSource, store PreferenceStore, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Service{
		source: source,
		store:  store,
		ttl:    ttl,
		limit:  runtime.GOMAXPROCS(0),
	}
}

// FindMatches puntúa todas las mascotas disponibles y devuelve las que superan el corte,
// de mayor a menor.
func (s *Service) FindMatches(ctx context.Context, pref Preference) ([]Match, error) {
	pref = pref.Normalize()
	if pref.Species == "" {
		return nil, ErrInvalidPreference
	}

	candidates, err := s.source.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)
	for i := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = Evaluate(candidates[i], pref)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rankResults(candidates, results), nil
}

// Rank es la versión secuencial de FindMatches sobre una lista ya cargada.
func Rank(candidates []pets.Pet, pref Preference) []Match {
	pref = pref.Normalize()
	results := make([]Result, len(candidates))
	for i, c := range candidates {
		results[i] = Evaluate(c, pref)
	}
	return rankResults(candidates, results)
}

// rankResults ordena de mayor a menor (empates conservan el orden de entrada)
// y descarta lo que queda por debajo de MinMatchScore.
func rankResults(candidates []pets.Pet, results []Result) []Match {
	out := make([]Match, 0, len(candidates))
	for i, c := range candidates {
		out = append(out, Match{Pet: c, Score: results[i].Score, Result: results[i]})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	n := 0
	for ; n < len(out); n++ {
		if out[n].Score < MinMatchScore {
			break
		}
	}
	return out[:n]
}

// Explain devuelve el desglose del score de una mascota concreta.
func (s *Service) Explain(ctx context.Context, petID string, pref Preference) (pets.Pet, Result, error) {
	pref = pref.Normalize()
	if pref.Species == "" {
		return pets.Pet{}, Result{}, ErrInvalidPreference
	}

	p, err := s.source.GetByID(ctx, strings.TrimSpace(petID))
	if err != nil {
		return pets.Pet{}, Result{}, err
	}
	return p, Evaluate(p, pref), nil
}

// StartSession guarda la preferencia y devuelve el id de sesión para consultar resultados.
func (s *Service) StartSession(ctx context.Context, pref Preference) (string, error) {
	pref = pref.Normalize()
	if pref.Species == "" {
		return "", ErrInvalidPreference
	}

	id := uuid.NewString()
	if err := s.store.Save(ctx, id, pref, s.ttl); err != nil {
		return "", err
	}
	return id, nil
}

// SessionMatches recupera la preferencia guardada y recalcula los matches.
func (s *Service) SessionMatches(ctx context.Context, sessionID string) (Preference, []Match, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return Preference{}, nil, ErrSessionNotFound
	}

	pref, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return Preference{}, nil, err
	}

	matches, err := s.FindMatches(ctx, pref)
	if err != nil {
		return Preference{}, nil, err
	}
	return pref, matches, nil
}
