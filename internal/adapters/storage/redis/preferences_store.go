package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/domain/matching"
	"pet-adoption/internal/domain/pets"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "petmatch:prefs:"

// Open parsea REDIS_URL y verifica la conexión.
func Open(ctx context.Context, redisURL string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// PreferenceStore guarda cada sesión como JSON con expiración nativa de Redis.
type PreferenceStore struct {
	rdb *goredis.Client
}

func NewPreferenceStore(rdb *goredis.Client) *PreferenceStore {
	return &PreferenceStore{rdb: rdb}
}

type storedPreference struct {
	Species            string `json:"species"`
	AgePreference      string `json:"age_preference"`
	GenderPreference   string `json:"gender_preference"`
	SizePreference     string `json:"size_preference"`
	EnergyLevel        string `json:"energy_level"`
	GoodWithChildren   bool   `json:"good_with_children"`
	GoodWithOtherPets  bool   `json:"good_with_other_pets"`
	SpecialNeeds       bool   `json:"special_needs"`
	LivingEnvironment  string `json:"living_environment"`
	TimeAvailability   string `json:"time_availability"`
	TrainingPreference string `json:"training_preference"`
}

func (s *PreferenceStore) Save(ctx context.Context, sessionID string, pref matching.Preference, ttl time.Duration) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return matching.ErrSessionNotFound
	}

	b, err := json.Marshal(storedPreference{
		Species:            string(pref.Species),
		AgePreference:      string(pref.Age),
		GenderPreference:   string(pref.Gender),
		SizePreference:     string(pref.Size),
		EnergyLevel:        string(pref.Energy),
		GoodWithChildren:   pref.GoodWithChildren,
		GoodWithOtherPets:  pref.GoodWithOtherPets,
		SpecialNeeds:       pref.SpecialNeeds,
		LivingEnvironment:  pref.LivingEnvironment,
		TimeAvailability:   pref.TimeAvailability,
		TrainingPreference: pref.TrainingPreference,
	})
	if err != nil {
		return err
	}

	if err := s.rdb.Set(ctx, keyPrefix+sessionID, b, ttl).Err(); err != nil {
		return fmt.Errorf("redis set preference: %w", err)
	}
	return nil
}

func (s *PreferenceStore) Get(ctx context.Context, sessionID string) (matching.Preference, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return matching.Preference{}, matching.ErrSessionNotFound
	}

	b, err := s.rdb.Get(ctx, keyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return matching.Preference{}, matching.ErrSessionNotFound
		}
		return matching.Preference{}, fmt.Errorf("redis get preference: %w", err)
	}

	var sp storedPreference
	if err := json.Unmarshal(b, &sp); err != nil {
		return matching.Preference{}, fmt.Errorf("decode preference: %w", err)
	}

	return matching.Preference{
		Species:            pets.Species(sp.Species),
		Age:                matching.AgePreference(sp.AgePreference),
		Gender:             matching.GenderPreference(sp.GenderPreference),
		Size:               matching.SizePreference(sp.SizePreference),
		Energy:             matching.EnergyPreference(sp.EnergyLevel),
		GoodWithChildren:   sp.GoodWithChildren,
		GoodWithOtherPets:  sp.GoodWithOtherPets,
		SpecialNeeds:       sp.SpecialNeeds,
		LivingEnvironment:  sp.LivingEnvironment,
		TimeAvailability:   sp.TimeAvailability,
		TrainingPreference: sp.TrainingPreference,
	}.Normalize(), nil
}
