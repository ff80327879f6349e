package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
	ErrForbidden    = errors.New("forbidden")
)

// PageSize es el tamaño de página del listado público.
const PageSize = 12

// OtherPetsLimit acota las "otras mascotas del mismo dueño" en el detalle.
const OtherPetsLimit = 4

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// CreateInput: los atributos de matching son opcionales y no se infieren aquí.
type CreateInput struct {
	Name          string
	Species       string
	Breed         string
	AgeMonths     *int
	Gender        string
	Description   string
	HealthInfo    string
	BehaviorInfo  string
	ImageFilename string

	Size              string
	EnergyLevel       string
	GoodWithChildren  bool
	GoodWithOtherPets bool
	SpecialNeeds      bool
	TrainingLevel     string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Pet{}, ErrInvalidInput
	}

	species := Species(normalize(in.Species))
	if !IsValidSpecies(species) {
		return Pet{}, ErrInvalidInput
	}

	if in.AgeMonths != nil && *in.AgeMonths < 0 {
		return Pet{}, ErrInvalidInput
	}

	gender := Gender(normalize(in.Gender))
	if gender == "" {
		gender = GenderUnknown
	}
	if !IsValidGender(gender) {
		return Pet{}, ErrInvalidInput
	}

	size := Size(normalize(in.Size))
	if size != "" && !IsValidSize(size) {
		return Pet{}, ErrInvalidInput
	}
	energy := EnergyLevel(normalize(in.EnergyLevel))
	if energy != "" && !IsValidEnergyLevel(energy) {
		return Pet{}, ErrInvalidInput
	}
	training := TrainingLevel(normalize(in.TrainingLevel))
	if training != "" && !IsValidTrainingLevel(training) {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:                uuid.NewString(),
		OwnerUserID:       strings.TrimSpace(ownerUserID),
		Name:              name,
		Species:           species,
		Breed:             strings.TrimSpace(in.Breed),
		AgeMonths:         in.AgeMonths,
		Gender:            gender,
		Description:       strings.TrimSpace(in.Description),
		HealthInfo:        strings.TrimSpace(in.HealthInfo),
		BehaviorInfo:      strings.TrimSpace(in.BehaviorInfo),
		Status:            StatusAvailable,
		ImageFilename:     strings.TrimSpace(in.ImageFilename),
		Size:              size,
		EnergyLevel:       energy,
		GoodWithChildren:  in.GoodWithChildren,
		GoodWithOtherPets: in.GoodWithOtherPets,
		SpecialNeeds:      in.SpecialNeeds,
		TrainingLevel:     training,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// ListPage devuelve los anuncios disponibles, más nuevos primero. page empieza en 1.
func (s *Service) ListPage(ctx context.Context, species, query string, page int) ([]Pet, error) {
	if page < 1 {
		page = 1
	}
	return s.repo.List(ctx, ListFilter{
		Status:  StatusAvailable,
		Species: Species(normalize(species)),
		Query:   strings.TrimSpace(query),
		Limit:   PageSize,
		Offset:  (page - 1) * PageSize,
	})
}

// ListAvailable devuelve todos los candidatos para matching.
func (s *Service) ListAvailable(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx, ListFilter{Status: StatusAvailable})
}

func (s *Service) ListAll(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx, ListFilter{})
}

// OtherFromOwner devuelve hasta OtherPetsLimit mascotas disponibles del mismo dueño, sin p.
func (s *Service) OtherFromOwner(ctx context.Context, p Pet) ([]Pet, error) {
	if strings.TrimSpace(p.OwnerUserID) == "" {
		return []Pet{}, nil
	}

	items, err := s.repo.List(ctx, ListFilter{
		Status:      StatusAvailable,
		OwnerUserID: p.OwnerUserID,
		Limit:       OtherPetsLimit + 1,
	})
	if err != nil {
		return nil, err
	}

	out := make([]Pet, 0, OtherPetsLimit)
	for _, o := range items {
		if o.ID == p.ID {
			continue
		}
		if len(out) == OtherPetsLimit {
			break
		}
		out = append(out, o)
	}
	return out, nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// UpdateStatus: solo el dueño del anuncio puede cambiar el estado.
func (s *Service) UpdateStatus(ctx context.Context, petID, userID string, status Status) (Pet, error) {
	status = Status(normalize(string(status)))
	if !IsValidStatus(status) || strings.TrimSpace(userID) == "" {
		return Pet{}, ErrInvalidInput
	}

	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}
	if p.OwnerUserID != strings.TrimSpace(userID) {
		return Pet{}, ErrForbidden
	}

	if p.Status == status {
		return p, nil
	}
	p.Status = status
	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// SaveAttributes persiste los atributos de matching (usado por backfill).
func (s *Service) SaveAttributes(ctx context.Context, p Pet) (Pet, error) {
	current, err := s.GetByID(ctx, p.ID)
	if err != nil {
		return Pet{}, err
	}

	current.Size = p.Size
	current.EnergyLevel = p.EnergyLevel
	current.GoodWithChildren = p.GoodWithChildren
	current.GoodWithOtherPets = p.GoodWithOtherPets
	current.SpecialNeeds = p.SpecialNeeds
	current.TrainingLevel = p.TrainingLevel
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Pet{}, err
	}
	return current, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
