package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	mem "pet-adoption/internal/adapters/storage/memory"
	pg "pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/config"
	"pet-adoption/internal/domain/donations"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/products"
	"pet-adoption/internal/platform/logger"

	"github.com/spf13/cobra"
)

var (
	// Se setean desde main con -ldflags
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"

	// Flags globales
	envFile   string
	outputFmt string
)

func SetVersionInfo(v, c, b string) {
	version = v
	commit = c
	buildTime = b
}

var rootCmd = &cobra.Command{
	Use:   "petmatch",
	Short: "Pet adoption listings and preference-based matching",
	Long: `petmatch serves the pet adoption API and ships a few maintenance commands.

Commands:
  serve      run the HTTP API
  seed       load the sample catalogue into an empty database
  backfill   infer missing matching attributes
  match      score available pets against a preference from the terminal`,
	SilenceUsage: true,
}

// ExecuteContext corre el comando raíz; ctx se cancela con SIGINT/SIGTERM desde main.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load (default: .env if present)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "table", "output format (table, json)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "petmatch %s\n", version)
		fmt.Fprintf(out, "  commit: %s\n", commit)
		fmt.Fprintf(out, "  built:  %s\n", buildTime)
	},
}

// runtime agrupa lo que comparten los subcomandos.
type runtime struct {
	cfg       config.Config
	log       logger.Logger
	pets      pets.Repository
	products  products.Repository
	donations donations.Repository
	db        *sql.DB
}

func (rt *runtime) Close() {
	if rt.db != nil {
		_ = rt.db.Close()
	}
}

func loadRuntime(ctx context.Context) (*runtime, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}

	cfg, err := config.Load(files...)
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		App:    cfg.AppName,
		Output: os.Stderr,
	})

	rt := &runtime{cfg: cfg, log: log}

	if cfg.DatabaseDSN == "" {
		log.Warn("DB_DSN not set, using in-memory storage", nil)
		rt.pets = mem.NewPetRepo()
		rt.products = mem.NewProductRepo()
		rt.donations = mem.NewDonationRepo()
		return rt, nil
	}

	db, err := pg.Open(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := pg.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	rt.db = db
	rt.pets = pg.NewPetsRepo(db)
	rt.products = pg.NewProductsRepo(db)
	rt.donations = pg.NewDonationsRepo(db)
	return rt, nil
}
