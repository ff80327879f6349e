package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"pet-adoption/internal/platform/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	AppName string

	LogLevel  logger.Level
	LogFormat logger.Format

	// Vacío => repositorio in-memory
	DatabaseDSN string
	// Vacío => sesiones de preferencias in-memory
	RedisURL string

	// Vacío => modo dev, identidad por X-Debug-User-ID
	AuthURL    string
	AuthAPIKey string

	SeedOnStart      bool
	BackfillSchedule string // expresión cron; vacío deshabilita
	PreferenceTTL    time.Duration
	UploadsBaseURL   string
}

func Default() Config {
	return Config{
		Port:             "8080",
		AppName:          "petmatch",
		LogLevel:         logger.Info,
		LogFormat:        logger.FormatText,
		SeedOnStart:      true,
		BackfillSchedule: "@every 6h",
		PreferenceTTL:    30 * time.Minute,
		UploadsBaseURL:   "/static/uploads",
	}
}

// Load lee .env (si existe) y luego las variables de entorno.
// Los archivos pasados explícitamente tienen que existir.
// Un valor inválido corta el arranque con error.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if len(envFiles) > 0 || !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file: %w", err)
		}
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Default()

	if v, ok := lookup("PORT"); ok {
		if n, err := strconv.Atoi(v); err != nil || n <= 0 || n > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Port = v
	}
	if v, ok := lookup("APP_NAME"); ok {
		cfg.AppName = v
	}

	if v, ok := lookup("LOG_LEVEL"); ok {
		lvl, valid := logger.ParseLevel(v)
		if !valid {
			return Config{}, fmt.Errorf("invalid LOG_LEVEL %q", v)
		}
		cfg.LogLevel = lvl
	}
	if v, ok := lookup("LOG_FORMAT"); ok {
		f, valid := logger.ParseFormat(v)
		if !valid {
			return Config{}, fmt.Errorf("invalid LOG_FORMAT %q", v)
		}
		cfg.LogFormat = f
	}

	cfg.DatabaseDSN = strings.TrimSpace(os.Getenv("DB_DSN"))
	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	cfg.AuthURL = strings.TrimSpace(os.Getenv("AUTH_URL"))
	cfg.AuthAPIKey = strings.TrimSpace(os.Getenv("AUTH_API_KEY"))

	if v, ok := lookup("SEED_ON_START"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SEED_ON_START %q", v)
		}
		cfg.SeedOnStart = b
	}

	// BACKFILL_SCHEDULE="" deshabilita el cron, por eso se usa LookupEnv directo.
	if v, ok := os.LookupEnv("BACKFILL_SCHEDULE"); ok {
		cfg.BackfillSchedule = strings.TrimSpace(v)
	}

	if v, ok := lookup("PREFERENCE_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid PREFERENCE_TTL %q", v)
		}
		cfg.PreferenceTTL = d
	}
	if v, ok := lookup("UPLOADS_BASE_URL"); ok {
		cfg.UploadsBaseURL = v
	}

	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}

// lookup ignora variables definidas pero vacías.
func lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}
