package auth

import "context"

// Claims es la identidad del usuario que hace el request.
// Solo UserID es obligatorio; el resto depende del proveedor.
type Claims struct {
	UserID   string
	Email    string
	TenantID string
}

// AuthVerifier valida un Bearer token. En modo dev el router corre sin verifier
// y la identidad llega por X-Debug-User-ID.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
