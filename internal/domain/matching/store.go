package matching

import (
	"context"
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("match session not found")

// PreferenceStore guarda preferencias entre el envío del formulario y la página de resultados.
// Las implementaciones expiran las entradas pasado el ttl.
type PreferenceStore interface {
	Save(ctx context.Context, sessionID string, pref Preference, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (Preference, error)
}
