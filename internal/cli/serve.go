package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"pet-adoption/internal/adapters/auth/identity"
	rdstore "pet-adoption/internal/adapters/storage/redis"
	"pet-adoption/internal/domain/matching"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/products"
	"pet-adoption/internal/ports/auth"
	"pet-adoption/internal/router"
	"pet-adoption/internal/scheduler"
	"pet-adoption/internal/seed"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rt, err := loadRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	var prefs matching.PreferenceStore
	if rt.cfg.RedisURL != "" {
		rdb, err := rdstore.Open(ctx, rt.cfg.RedisURL)
		if err != nil {
			return err
		}
		defer rdb.Close()
		prefs = rdstore.NewPreferenceStore(rdb)
	}

	var verifier auth.AuthVerifier
	if rt.cfg.AuthURL != "" {
		v, err := identity.NewVerifier(identity.Config{BaseURL: rt.cfg.AuthURL, APIKey: rt.cfg.AuthAPIKey})
		if err != nil {
			return fmt.Errorf("auth verifier: %w", err)
		}
		verifier = v
	} else {
		rt.log.Warn("AUTH_URL not set, accepting X-Debug-User-ID", nil)
	}

	petsSvc := pets.NewService(rt.pets)

	if rt.cfg.SeedOnStart {
		if _, err := seed.Run(ctx, petsSvc, rt.log); err != nil {
			return err
		}
		if _, err := seed.Products(ctx, products.NewService(rt.products), rt.log); err != nil {
			return err
		}
	}

	sched, err := scheduler.New(rt.cfg.BackfillSchedule, func(ctx context.Context) (int, error) {
		return seed.Backfill(ctx, petsSvc, rt.log)
	}, rt.log)
	if err != nil {
		return err
	}
	if sched != nil {
		if err := sched.Start(ctx); err != nil {
			return err
		}
		defer sched.Stop()
	}

	srv := &http.Server{
		Addr: rt.cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			AuthVerifier:   verifier,
			Pets:           rt.pets,
			Preferences:    prefs,
			Products:       rt.products,
			Donations:      rt.donations,
			Logger:         rt.log,
			UploadsBaseURL: rt.cfg.UploadsBaseURL,
			PreferenceTTL:  rt.cfg.PreferenceTTL,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		rt.log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	rt.log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
