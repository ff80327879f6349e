package middleware

import (
	"context"
	"net/http"
	"strings"

	"pet-adoption/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// DebugUserHeader identifica al usuario cuando no hay verifier (modo dev).
const DebugUserHeader = "X-Debug-User-ID"

// AuthContext resuelve la identidad del request sin cortarlo nunca:
// con verifier usa el Bearer token, sin verifier acepta X-Debug-User-ID.
// Cada handler decide si exige usuario.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := resolveClaims(r, verifier)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func resolveClaims(r *http.Request, verifier auth.AuthVerifier) (auth.Claims, bool) {
	if verifier == nil {
		uid := strings.TrimSpace(r.Header.Get(DebugUserHeader))
		return auth.Claims{UserID: uid}, uid != ""
	}

	token := bearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return auth.Claims{}, false
	}

	claims, err := verifier.Verify(r.Context(), token)
	if err != nil || strings.TrimSpace(claims.UserID) == "" {
		return auth.Claims{}, false
	}
	return claims, true
}

func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(auth.Claims)
	return c, ok
}

// UserID devuelve "" si el request es anónimo.
func UserID(ctx context.Context) string {
	c, ok := GetClaims(ctx)
	if !ok {
		return ""
	}
	return strings.TrimSpace(c.UserID)
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
