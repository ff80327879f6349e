package matching

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pet-adoption/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Fakes
// -------------------------

type fakeSource struct {
	items []pets.Pet
	err   error
}

func (f *fakeSource) ListAvailable(ctx context.Context) ([]pets.Pet, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]pets.Pet, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeSource) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	for _, p := range f.items {
		if p.ID == id {
			return p, nil
		}
	}
	return pets.Pet{}, pets.ErrNotFound
}

type fakeStore struct {
	mu   sync.Mutex
	data map[string]Preference
	ttls map[string]time.Duration
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]Preference{}, ttls: map[string]time.Duration{}}
}

func (s *fakeStore) Save(ctx context.Context, id string, pref Preference, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = pref
	s.ttls[id] = ttl
	return nil
}

func (s *fakeStore) Get(ctx context.Context, id string) (Preference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.data[id]
	if !ok {
		return Preference{}, ErrSessionNotFound
	}
	return p, nil
}

func catalogue() []pets.Pet {
	return []pets.Pet{
		Infer(pets.Pet{ID: "buddy", Name: "Buddy", Species: pets.SpeciesDog, Breed: "Golden Retriever", AgeMonths: intPtr(36), Gender: pets.GenderMale}),
		Infer(pets.Pet{ID: "whiskers", Name: "Whiskers", Species: pets.SpeciesCat, Breed: "Maine Coon", AgeMonths: intPtr(24), Gender: pets.GenderFemale}),
		Infer(pets.Pet{ID: "max", Name: "Max", Species: pets.SpeciesDog, Breed: "Beagle", AgeMonths: intPtr(48), Gender: pets.GenderMale}),
		Infer(pets.Pet{ID: "rocky", Name: "Rocky", Species: pets.SpeciesDog, Breed: "Boxer", AgeMonths: intPtr(30), Gender: pets.GenderMale}),
		Infer(pets.Pet{ID: "puppy", Name: "Pip", Species: pets.SpeciesDog, Breed: "Chihuahua", AgeMonths: intPtr(4), Gender: pets.GenderFemale}),
	}
}

func matchIDs(ms []Match) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Pet.ID)
	}
	return out
}

// -------------------------
// Tests
// -------------------------

func TestFindMatches_FiltersAndOrders(t *testing.T) {
	svc := NewService(&fakeSource{items: catalogue()}, newFakeStore(), time.Minute)

	got, err := svc.FindMatches(context.Background(), Preference{
		Species:           pets.SpeciesDog,
		Age:               AgeAdult,
		Size:              SizeLarge,
		GoodWithChildren:  true,
		GoodWithOtherPets: true,
	})
	require.NoError(t, err)

	// buddy 65/65, max 55/65 (tamaño medio), rocky 45/65; puppy 31 y el gato quedan fuera
	require.Equal(t, []string{"buddy", "max", "rocky"}, matchIDs(got))
	assert.Equal(t, 100, got[0].Score)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
	}
	for _, m := range got {
		assert.GreaterOrEqual(t, m.Score, MinMatchScore)
		assert.Equal(t, m.Score, m.Result.Score)
	}
}

func TestFindMatches_TiesKeepInputOrder(t *testing.T) {
	items := []pets.Pet{
		{ID: "c", Species: pets.SpeciesBird},
		{ID: "a", Species: pets.SpeciesBird},
		{ID: "b", Species: pets.SpeciesBird},
	}
	svc := NewService(&fakeSource{items: items}, newFakeStore(), time.Minute)

	got, err := svc.FindMatches(context.Background(), Preference{Species: pets.SpeciesBird})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, matchIDs(got))
}

func TestFindMatches_RequiresSpecies(t *testing.T) {
	svc := NewService(&fakeSource{items: catalogue()}, newFakeStore(), time.Minute)

	_, err := svc.FindMatches(context.Background(), Preference{Species: "  "})
	assert.ErrorIs(t, err, ErrInvalidPreference)
}

func TestFindMatches_SourceError(t *testing.T) {
	boom := errors.New("db down")
	svc := NewService(&fakeSource{err: boom}, newFakeStore(), time.Minute)

	_, err := svc.FindMatches(context.Background(), Preference{Species: pets.SpeciesDog})
	assert.ErrorIs(t, err, boom)
}

func TestFindMatches_CanceledContext(t *testing.T) {
	svc := NewService(&fakeSource{items: catalogue()}, newFakeStore(), time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.FindMatches(ctx, Preference{Species: pets.SpeciesDog})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRank_MatchesParallelPath(t *testing.T) {
	pref := Preference{Species: pets.SpeciesDog, Energy: EnergyHigh, GoodWithChildren: true}
	svc := NewService(&fakeSource{items: catalogue()}, newFakeStore(), time.Minute)

	parallel, err := svc.FindMatches(context.Background(), pref)
	require.NoError(t, err)

	assert.Equal(t, Rank(catalogue(), pref), parallel)
}

func TestRank_EmptyCatalogue(t *testing.T) {
	assert.Empty(t, Rank(nil, Preference{Species: pets.SpeciesDog}))
}

func TestSession_RoundTrip(t *testing.T) {
	store := newFakeStore()
	svc := NewService(&fakeSource{items: catalogue()}, store, 10*time.Minute)
	ctx := context.Background()

	id, err := svc.StartSession(ctx, Preference{Species: "DOG", Age: "adult", LivingEnvironment: "apartment"})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, 10*time.Minute, store.ttls[id])

	pref, matches, err := svc.SessionMatches(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, pets.SpeciesDog, pref.Species)
	assert.Equal(t, AgeAdult, pref.Age)
	assert.Equal(t, GenderAny, pref.Gender)
	assert.Equal(t, "apartment", pref.LivingEnvironment)
	assert.Equal(t, Any, pref.TimeAvailability)
	assert.NotEmpty(t, matches)

	_, _, err = svc.SessionMatches(ctx, "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, _, err = svc.SessionMatches(ctx, "")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStartSession_RequiresSpecies(t *testing.T) {
	svc := NewService(&fakeSource{}, newFakeStore(), time.Minute)
	_, err := svc.StartSession(context.Background(), Preference{})
	assert.ErrorIs(t, err, ErrInvalidPreference)
}

func TestExplain(t *testing.T) {
	svc := NewService(&fakeSource{items: catalogue()}, newFakeStore(), time.Minute)

	p, res, err := svc.Explain(context.Background(), "buddy", Preference{Species: pets.SpeciesDog, Energy: EnergyHigh})
	require.NoError(t, err)
	assert.Equal(t, "Buddy", p.Name)
	assert.Equal(t, 78, res.Score)

	_, _, err = svc.Explain(context.Background(), "missing", Preference{Species: pets.SpeciesDog})
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestPreferenceNormalize_Defaults(t *testing.T) {
	p := Preference{
		Species: " Cat ",
		Age:     "puppy",
		Gender:  "",
		Size:    "HUGE",
		Energy:  "Medium",
	}.Normalize()

	assert.Equal(t, pets.SpeciesCat, p.Species)
	assert.Equal(t, AgeAny, p.Age)
	assert.Equal(t, GenderAny, p.Gender)
	assert.Equal(t, SizeAny, p.Size)
	assert.Equal(t, EnergyMedium, p.Energy)
	assert.Equal(t, Any, p.LivingEnvironment)
	assert.Equal(t, Any, p.TrainingPreference)
}
