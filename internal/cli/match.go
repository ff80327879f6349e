package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	mem "pet-adoption/internal/adapters/storage/memory"
	"pet-adoption/internal/domain/matching"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/export"
	"pet-adoption/internal/seed"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score available pets against a preference",
	Long: `Score every available pet against the given preference and print the
ones that reach 50 or more, best first.

Examples:
  petmatch match --species dog --age adult --size large --children
  petmatch match --species cat --energy high -o json
  petmatch match --species dog --xlsx matches.xlsx`,
	RunE: runMatch,
}

var (
	matchPref     matching.Preference
	matchSpecies  string
	matchAge      string
	matchGender   string
	matchSize     string
	matchEnergy   string
	matchXLSXPath string
)

func init() {
	rootCmd.AddCommand(matchCmd)

	f := matchCmd.Flags()
	f.StringVar(&matchSpecies, "species", "", "species to look for (required)")
	f.StringVar(&matchAge, "age", matching.Any, "baby, adult, senior or any")
	f.StringVar(&matchGender, "gender", matching.Any, "male, female or any")
	f.StringVar(&matchSize, "size", matching.Any, "small, medium, large or any")
	f.StringVar(&matchEnergy, "energy", matching.Any, "low, medium, high or any")
	f.BoolVar(&matchPref.GoodWithChildren, "children", false, "must be good with children")
	f.BoolVar(&matchPref.GoodWithOtherPets, "other-pets", false, "must be good with other pets")
	f.BoolVar(&matchPref.SpecialNeeds, "special-needs", false, "willing to care for special needs")
	f.StringVar(&matchXLSXPath, "xlsx", "", "also write the results to this .xlsx file")

	_ = matchCmd.MarkFlagRequired("species")
}

func runMatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rt, err := loadRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	petsSvc := pets.NewService(rt.pets)

	// En memoria no hay nada que puntuar sin el catálogo de ejemplo.
	if rt.db == nil {
		if _, err := seed.Run(ctx, petsSvc, rt.log); err != nil {
			return err
		}
	}

	pref := matchPref
	pref.Species = pets.Species(matchSpecies)
	pref.Age = matching.AgePreference(matchAge)
	pref.Gender = matching.GenderPreference(matchGender)
	pref.Size = matching.SizePreference(matchSize)
	pref.Energy = matching.EnergyPreference(matchEnergy)

	svc := matching.NewService(petsSvc, mem.NewPreferenceStore(), rt.cfg.PreferenceTTL)
	matches, err := svc.FindMatches(ctx, pref)
	if err != nil {
		return err
	}

	if matchXLSXPath != "" {
		if err := writeXLSX(matchXLSXPath, matches); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	switch outputFmt {
	case "json":
		return writeMatchesJSON(out, matches)
	case "table", "":
		return writeMatchesTable(out, matches)
	default:
		return fmt.Errorf("unknown output format: %s", outputFmt)
	}
}

func writeXLSX(path string, matches []matching.Match) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := export.WriteMatchesXLSX(f, matches); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

type matchRow struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Species    string `json:"species"`
	Breed      string `json:"breed"`
	Age        *int   `json:"age"`
	Gender     string `json:"gender"`
	MatchScore int    `json:"match_score"`
}

func writeMatchesJSON(w io.Writer, matches []matching.Match) error {
	rows := make([]matchRow, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, matchRow{
			ID:         m.Pet.ID,
			Name:       m.Pet.Name,
			Species:    string(m.Pet.Species),
			Breed:      m.Pet.Breed,
			Age:        m.Pet.AgeMonths,
			Gender:     string(m.Pet.Gender),
			MatchScore: m.Score,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{"matches": rows, "count": len(rows)})
}

func writeMatchesTable(w io.Writer, matches []matching.Match) error {
	if len(matches) == 0 {
		fmt.Fprintln(w, "No matching pets found.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("#", "Score", "Name", "Breed", "Age", "Gender", "Size", "Energy")
	for i, m := range matches {
		age := "-"
		if m.Pet.AgeMonths != nil {
			age = strconv.Itoa(*m.Pet.AgeMonths) + "m"
		}
		if err := table.Append([]string{
			strconv.Itoa(i + 1),
			strconv.Itoa(m.Score),
			m.Pet.Name,
			m.Pet.Breed,
			age,
			string(m.Pet.Gender),
			string(m.Pet.Size),
			string(m.Pet.EnergyLevel),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}
