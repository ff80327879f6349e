package matching

import "pet-adoption/internal/domain/pets"

// MinMatchScore es el corte fijo: por debajo no se muestra la mascota.
const MinMatchScore = 50

const (
	speciesWeight  = 20
	ageWeight      = 15
	genderWeight   = 10
	sizeWeight     = 10
	energyWeight   = 15
	energyPartial  = 7
	childrenWeight = 10
	petsWeight     = 10

	specialNeedsPenaltyWeight = 10
	specialNeedsBonus         = 5

	// Con menos de lowInfoThreshold puntos posibles no hay datos suficientes
	// y se devuelve un 50% neutro.
	lowInfoThreshold = 30
	lowInfoScore     = 50

	babyMaxMonths  = 12
	adultMaxMonths = 84
)

// RuleResult es el aporte de una regla. Inactiva => Weight 0 y Points 0.
type RuleResult struct {
	Rule   string `json:"rule"`
	Active bool   `json:"active"`
	Weight int    `json:"weight"`
	Points int    `json:"points"`
}

// Result es el desglose completo de una evaluación.
type Result struct {
	Score        int          `json:"score"`
	SpeciesMatch bool         `json:"species_match"`
	Earned       int          `json:"earned"`
	Possible     int          `json:"possible"`
	Normalized   bool         `json:"normalized"` // true si se aplicó el 50% por falta de datos
	Rules        []RuleResult `json:"rules"`
}

// ruleFunc devuelve (peso si la dimensión está activa, puntos obtenidos).
type ruleFunc func(c pets.Pet, pref Preference) (weight, points int)

type rule struct {
	name string
	eval ruleFunc
}

// El orden sólo afecta al desglose; la suma es conmutativa.
var rules = []rule{
	{name: "age", eval: ageRule},
	{name: "gender", eval: genderRule},
	{name: "size", eval: sizeRule},
	{name: "energy_level", eval: energyRule},
	{name: "good_with_children", eval: childrenRule},
	{name: "good_with_other_pets", eval: otherPetsRule},
	{name: "special_needs", eval: specialNeedsRule},
}

// Score devuelve la compatibilidad 0..100 entre candidato y preferencia.
func Score(c pets.Pet, pref Preference) int {
	return Evaluate(c, pref).Score
}

// Evaluate calcula el score y su desglose. La especie es condición previa:
// si no coincide el resultado es 0 y no se evalúa ninguna regla.
func Evaluate(c pets.Pet, pref Preference) Result {
	pref = pref.Normalize()

	if c.Species != pref.Species {
		return Result{Rules: []RuleResult{}}
	}

	res := Result{
		SpeciesMatch: true,
		Earned:       speciesWeight,
		Possible:     speciesWeight,
		Rules:        make([]RuleResult, 0, len(rules)),
	}

	for _, r := range rules {
		w, pts := r.eval(c, pref)
		res.Rules = append(res.Rules, RuleResult{
			Rule:   r.name,
			Active: w > 0,
			Weight: w,
			Points: pts,
		})
		res.Possible += w
		res.Earned += pts
	}

	if res.Possible < lowInfoThreshold {
		res.Normalized = true
		res.Score = lowInfoScore
		return res
	}

	res.Score = percentCeil(res.Earned, res.Possible)
	return res
}

// percentCeil = min(100, ceil(earned*100/possible)) en aritmética entera.
func percentCeil(earned, possible int) int {
	if possible <= 0 {
		return 0
	}
	pct := (earned*100 + possible - 1) / possible
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

func ageRule(c pets.Pet, pref Preference) (int, int) {
	if pref.Age == AgeAny {
		return 0, 0
	}
	// Sin edad la dimensión cuenta igual, pero no suma.
	if c.AgeMonths == nil {
		return ageWeight, 0
	}

	age := *c.AgeMonths
	var ok bool
	switch pref.Age {
	case AgeBaby:
		ok = age <= babyMaxMonths
	case AgeAdult:
		ok = age > babyMaxMonths && age <= adultMaxMonths
	case AgeSenior:
		ok = age > adultMaxMonths
	}
	if ok {
		return ageWeight, ageWeight
	}
	return ageWeight, 0
}

func genderRule(c pets.Pet, pref Preference) (int, int) {
	if pref.Gender == GenderAny {
		return 0, 0
	}
	if string(c.Gender) == string(pref.Gender) {
		return genderWeight, genderWeight
	}
	return genderWeight, 0
}

func sizeRule(c pets.Pet, pref Preference) (int, int) {
	if pref.Size == SizeAny || c.Size == "" {
		return 0, 0
	}
	if string(c.Size) == string(pref.Size) {
		return sizeWeight, sizeWeight
	}
	return sizeWeight, 0
}

func energyRule(c pets.Pet, pref Preference) (int, int) {
	if pref.Energy == EnergyAny || c.EnergyLevel == "" {
		return 0, 0
	}

	have := c.EnergyLevel
	want := pets.EnergyLevel(pref.Energy)

	switch {
	case have == want:
		return energyWeight, energyWeight
	case have == pets.EnergyMedium && (want == pets.EnergyLow || want == pets.EnergyHigh),
		want == pets.EnergyMedium && (have == pets.EnergyLow || have == pets.EnergyHigh):
		return energyWeight, energyPartial
	default:
		return energyWeight, 0
	}
}

func childrenRule(c pets.Pet, pref Preference) (int, int) {
	if !pref.GoodWithChildren {
		return 0, 0
	}
	if c.GoodWithChildren {
		return childrenWeight, childrenWeight
	}
	return childrenWeight, 0
}

func otherPetsRule(c pets.Pet, pref Preference) (int, int) {
	if !pref.GoodWithOtherPets {
		return 0, 0
	}
	if c.GoodWithOtherPets {
		return petsWeight, petsWeight
	}
	return petsWeight, 0
}

// Quien no acepta necesidades especiales pierde 10 posibles si la mascota las tiene;
// quien las acepta suma 5/5 siempre, tenga o no la mascota necesidades especiales.
func specialNeedsRule(c pets.Pet, pref Preference) (int, int) {
	switch {
	case !pref.SpecialNeeds && c.SpecialNeeds:
		return specialNeedsPenaltyWeight, 0
	case pref.SpecialNeeds:
		return specialNeedsBonus, specialNeedsBonus
	default:
		return 0, 0
	}
}
