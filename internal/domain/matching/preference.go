package matching

import (
	"strings"

	"pet-adoption/internal/domain/pets"
)

// Any desactiva la dimensión correspondiente del matching.
const Any = "any"

// AgePreference: baby <= 12 meses, adult 13..84, senior > 84.
// @Enum baby, adult, senior, any
type AgePreference string

const (
	AgeAny    AgePreference = Any
	AgeBaby   AgePreference = "baby"
	AgeAdult  AgePreference = "adult"
	AgeSenior AgePreference = "senior"
)

// @Enum male, female, any
type GenderPreference string

const (
	GenderAny    GenderPreference = Any
	GenderMale   GenderPreference = "male"
	GenderFemale GenderPreference = "female"
)

// @Enum small, medium, large, any
type SizePreference string

const (
	SizeAny    SizePreference = Any
	SizeSmall  SizePreference = "small"
	SizeMedium SizePreference = "medium"
	SizeLarge  SizePreference = "large"
)

// @Enum low, medium, high, any
type EnergyPreference string

const (
	EnergyAny    EnergyPreference = Any
	EnergyLow    EnergyPreference = "low"
	EnergyMedium EnergyPreference = "medium"
	EnergyHigh   EnergyPreference = "high"
)

// Preference es lo que el adoptante declara buscar. No se persiste fuera de la sesión.
type Preference struct {
	Species pets.Species

	Age    AgePreference
	Gender GenderPreference
	Size   SizePreference
	Energy EnergyPreference

	GoodWithChildren  bool
	GoodWithOtherPets bool
	SpecialNeeds      bool // true = acepta mascotas con necesidades especiales

	// Se recogen y se devuelven, pero no puntúan.
	LivingEnvironment  string
	TimeAvailability   string
	TrainingPreference string
}

// Normalize pasa todo a minúsculas y lleva cualquier valor vacío o desconocido a "any".
func (p Preference) Normalize() Preference {
	p.Species = pets.Species(lower(string(p.Species)))

	switch a := AgePreference(lower(string(p.Age))); a {
	case AgeBaby, AgeAdult, AgeSenior:
		p.Age = a
	default:
		p.Age = AgeAny
	}

	switch g := GenderPreference(lower(string(p.Gender))); g {
	case GenderMale, GenderFemale:
		p.Gender = g
	default:
		p.Gender = GenderAny
	}

	switch s := SizePreference(lower(string(p.Size))); s {
	case SizeSmall, SizeMedium, SizeLarge:
		p.Size = s
	default:
		p.Size = SizeAny
	}

	switch e := EnergyPreference(lower(string(p.Energy))); e {
	case EnergyLow, EnergyMedium, EnergyHigh:
		p.Energy = e
	default:
		p.Energy = EnergyAny
	}

	p.LivingEnvironment = orAny(p.LivingEnvironment)
	p.TimeAvailability = orAny(p.TimeAvailability)
	p.TrainingPreference = orAny(p.TrainingPreference)

	return p
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func orAny(s string) string {
	s = lower(s)
	if s == "" {
		return Any
	}
	return s
}
