package matching

import (
	"strings"

	"pet-adoption/internal/domain/pets"
)

// Listas de razas (minúsculas, búsqueda por substring). small se revisa antes que large.
var (
	smallDogBreeds = []string{"chihuahua", "pomeranian", "maltese", "yorkshire terrier", "shih tzu"}
	largeDogBreeds = []string{"german shepherd", "labrador", "golden retriever", "boxer", "rottweiler"}

	dogChildFriendly    = []string{"golden retriever", "labrador", "beagle"}
	dogOtherPetFriendly = []string{"golden retriever", "beagle"}
)

const (
	dogYoungMonths  = 24
	dogSeniorMonths = 84
	catYoungMonths  = 12
	catSeniorMonths = 120
)

// Infer completa los atributos de matching a partir de especie, raza y edad.
// Especie, edad, sexo y raza no se tocan. Es idempotente.
func Infer(p pets.Pet) pets.Pet {
	breed := strings.ToLower(p.Breed)

	switch p.Species {
	case pets.SpeciesDog:
		switch {
		case containsAny(breed, smallDogBreeds):
			p.Size = pets.SizeSmall
		case containsAny(breed, largeDogBreeds):
			p.Size = pets.SizeLarge
		default:
			p.Size = pets.SizeMedium
		}
		p.EnergyLevel = energyByAge(p.AgeMonths, dogYoungMonths, dogSeniorMonths)
		p.GoodWithChildren = containsAny(breed, dogChildFriendly)
		p.GoodWithOtherPets = containsAny(breed, dogOtherPetFriendly)
		p.TrainingLevel = pets.TrainingBasic

	case pets.SpeciesCat:
		p.Size = pets.SizeSmall
		if strings.Contains(breed, "maine coon") {
			p.Size = pets.SizeMedium
		}
		p.EnergyLevel = energyByAge(p.AgeMonths, catYoungMonths, catSeniorMonths)
		p.GoodWithChildren = true
		p.GoodWithOtherPets = true
		p.TrainingLevel = pets.TrainingBasic
	}

	p.SpecialNeeds = false
	return p
}

// Edad desconocida o 0 => medium.
func energyByAge(age *int, young, senior int) pets.EnergyLevel {
	if age == nil || *age <= 0 {
		return pets.EnergyMedium
	}
	switch {
	case *age < young:
		return pets.EnergyHigh
	case *age > senior:
		return pets.EnergyLow
	default:
		return pets.EnergyMedium
	}
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
