package matching

import (
	"testing"

	"pet-adoption/internal/domain/pets"

	"github.com/stretchr/testify/assert"
)

func TestInfer_Dogs(t *testing.T) {
	tests := []struct {
		name     string
		breed    string
		age      *int
		size     pets.Size
		energy   pets.EnergyLevel
		children bool
		others   bool
	}{
		{"golden retriever adult", "Golden Retriever", intPtr(36), pets.SizeLarge, pets.EnergyMedium, true, true},
		{"young chihuahua", "Chihuahua", intPtr(12), pets.SizeSmall, pets.EnergyHigh, false, false},
		{"yorkie mix substring", "Yorkshire Terrier Mix", intPtr(24), pets.SizeSmall, pets.EnergyMedium, false, false},
		{"small list wins over large", "Maltese Labrador", intPtr(60), pets.SizeSmall, pets.EnergyMedium, true, false},
		{"senior labrador", "labrador", intPtr(100), pets.SizeLarge, pets.EnergyLow, true, false},
		{"beagle", "Beagle", intPtr(48), pets.SizeMedium, pets.EnergyMedium, true, true},
		{"boxer", "Boxer", intPtr(30), pets.SizeLarge, pets.EnergyMedium, false, false},
		{"no breed no age", "", nil, pets.SizeMedium, pets.EnergyMedium, false, false},
		{"age zero takes medium", "Mutt", intPtr(0), pets.SizeMedium, pets.EnergyMedium, false, false},
		{"boundary 24 is medium", "Mutt", intPtr(24), pets.SizeMedium, pets.EnergyMedium, false, false},
		{"boundary 84 is medium", "Mutt", intPtr(84), pets.SizeMedium, pets.EnergyMedium, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Infer(pets.Pet{Species: pets.SpeciesDog, Breed: tt.breed, AgeMonths: tt.age, SpecialNeeds: true})

			assert.Equal(t, tt.size, got.Size)
			assert.Equal(t, tt.energy, got.EnergyLevel)
			assert.Equal(t, tt.children, got.GoodWithChildren)
			assert.Equal(t, tt.others, got.GoodWithOtherPets)
			assert.Equal(t, pets.TrainingBasic, got.TrainingLevel)
			assert.False(t, got.SpecialNeeds)
		})
	}
}

func TestInfer_Cats(t *testing.T) {
	tests := []struct {
		name   string
		breed  string
		age    *int
		size   pets.Size
		energy pets.EnergyLevel
	}{
		{"kitten", "Siamese", intPtr(6), pets.SizeSmall, pets.EnergyHigh},
		{"maine coon", "Maine Coon", intPtr(24), pets.SizeMedium, pets.EnergyMedium},
		{"boundary 12", "Tabby", intPtr(12), pets.SizeSmall, pets.EnergyMedium},
		{"boundary 120", "Tabby", intPtr(120), pets.SizeSmall, pets.EnergyMedium},
		{"senior", "Tabby", intPtr(121), pets.SizeSmall, pets.EnergyLow},
		{"unknown age", "", nil, pets.SizeSmall, pets.EnergyMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Infer(pets.Pet{Species: pets.SpeciesCat, Breed: tt.breed, AgeMonths: tt.age})

			assert.Equal(t, tt.size, got.Size)
			assert.Equal(t, tt.energy, got.EnergyLevel)
			assert.True(t, got.GoodWithChildren)
			assert.True(t, got.GoodWithOtherPets)
			assert.Equal(t, pets.TrainingBasic, got.TrainingLevel)
			assert.False(t, got.SpecialNeeds)
		})
	}
}

func TestInfer_OtherSpeciesOnlyClearsSpecialNeeds(t *testing.T) {
	in := pets.Pet{
		Species:          pets.SpeciesRabbit,
		Size:             pets.SizeSmall,
		GoodWithChildren: true,
		SpecialNeeds:     true,
	}

	got := Infer(in)

	assert.Equal(t, pets.SizeSmall, got.Size)
	assert.Equal(t, pets.EnergyLevel(""), got.EnergyLevel)
	assert.True(t, got.GoodWithChildren)
	assert.Equal(t, pets.TrainingLevel(""), got.TrainingLevel)
	assert.False(t, got.SpecialNeeds)
}

func TestInfer_KeepsIdentityFields(t *testing.T) {
	in := pets.Pet{
		ID:        "pet-1",
		Name:      "Buddy",
		Species:   pets.SpeciesDog,
		Breed:     "Golden Retriever",
		AgeMonths: intPtr(36),
		Gender:    pets.GenderMale,
	}

	got := Infer(in)

	assert.Equal(t, in.ID, got.ID)
	assert.Equal(t, in.Species, got.Species)
	assert.Equal(t, in.Breed, got.Breed)
	assert.Equal(t, in.Gender, got.Gender)
	assert.Same(t, in.AgeMonths, got.AgeMonths)
}

func TestInfer_Idempotent(t *testing.T) {
	for _, p := range []pets.Pet{
		{Species: pets.SpeciesDog, Breed: "Golden Retriever", AgeMonths: intPtr(36)},
		{Species: pets.SpeciesDog, Breed: "Pomeranian", AgeMonths: intPtr(3)},
		{Species: pets.SpeciesCat, Breed: "Maine Coon", AgeMonths: intPtr(130)},
		{Species: pets.SpeciesFish},
	} {
		once := Infer(p)
		twice := Infer(once)
		assert.Equal(t, once, twice)
	}
}

func TestInfer_GoldenRetrieverScoresHighForFamilies(t *testing.T) {
	buddy := Infer(pets.Pet{
		Species:   pets.SpeciesDog,
		Breed:     "Golden Retriever",
		AgeMonths: intPtr(36),
		Gender:    pets.GenderMale,
	})

	score := Score(buddy, Preference{
		Species:           pets.SpeciesDog,
		Age:               AgeAdult,
		Size:              SizeLarge,
		GoodWithChildren:  true,
		GoodWithOtherPets: true,
	})
	assert.Equal(t, 100, score)
}
