package pets

import "time"

// Species define las especies admitidas en el catálogo de adopción.
// @Enum dog, cat, bird, rabbit, fish, other
type Species string

const (
	SpeciesDog    Species = "dog"
	SpeciesCat    Species = "cat"
	SpeciesBird   Species = "bird"
	SpeciesRabbit Species = "rabbit"
	SpeciesFish   Species = "fish"
	SpeciesOther  Species = "other"
)

// Gender define el sexo de la mascota.
// @Enum male, female, unknown
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// Status es el estado de adopción del anuncio.
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusAdopted   Status = "adopted"
)

// Size vacío = sin dato (la dimensión no puntúa).
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// EnergyLevel vacío = sin dato.
type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

type TrainingLevel string

const (
	TrainingUntrained   TrainingLevel = "untrained"
	TrainingBasic       TrainingLevel = "basic"
	TrainingWellTrained TrainingLevel = "well_trained"
)

// Pet es un anuncio de adopción. Es también el "candidato" que evalúa el matching.
type Pet struct {
	ID          string
	OwnerUserID string // vacío para mascotas del refugio

	Name      string
	Species   Species
	Breed     string
	AgeMonths *int // nil = edad desconocida
	Gender    Gender

	Description  string
	HealthInfo   string
	BehaviorInfo string

	Status        Status
	ImageFilename string

	// Atributos de matching
	Size              Size
	EnergyLevel       EnergyLevel
	GoodWithChildren  bool
	GoodWithOtherPets bool
	SpecialNeeds      bool
	TrainingLevel     TrainingLevel

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NeedsBackfill indica si faltan atributos de matching inferibles.
func (p Pet) NeedsBackfill() bool {
	return p.Size == "" || p.EnergyLevel == ""
}

func IsValidSpecies(s Species) bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesBird, SpeciesRabbit, SpeciesFish, SpeciesOther:
		return true
	}
	return false
}

func IsValidGender(g Gender) bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnknown:
		return true
	}
	return false
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusAvailable, StatusPending, StatusAdopted:
		return true
	}
	return false
}

func IsValidSize(s Size) bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

func IsValidEnergyLevel(e EnergyLevel) bool {
	switch e {
	case EnergyLow, EnergyMedium, EnergyHigh:
		return true
	}
	return false
}

func IsValidTrainingLevel(t TrainingLevel) bool {
	switch t {
	case TrainingUntrained, TrainingBasic, TrainingWellTrained:
		return true
	}
	return false
}
