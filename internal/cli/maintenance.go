package cli

import (
	"fmt"

	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/products"
	"pet-adoption/internal/seed"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample pets and shop products into empty tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		n, err := seed.Run(cmd.Context(), pets.NewService(rt.pets), rt.log)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d pet(s)\n", n)

		n, err = seed.Products(cmd.Context(), products.NewService(rt.products), rt.log)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d product(s)\n", n)
		return nil
	},
}

var backfillCmd = &cobra.Command{
	Use:   "backfill",
	Short: "Infer size, energy level and sociability for incomplete records",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		n, err := seed.Backfill(cmd.Context(), pets.NewService(rt.pets), rt.log)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "updated %d pet(s)\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(backfillCmd)
}
