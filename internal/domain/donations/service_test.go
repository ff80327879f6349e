package donations

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	items []Donation
}

func (r *fakeRepo) Create(ctx context.Context, d Donation) error {
	r.items = append(r.items, d)
	return nil
}

func (r *fakeRepo) ListRecent(ctx context.Context, publicOnly bool, limit int) ([]Donation, error) {
	out := make([]Donation, 0)
	for i := len(r.items) - 1; i >= 0; i-- {
		d := r.items[i]
		if publicOnly && d.IsAnonymous {
			continue
		}
		out = append(out, d)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func newTestService() (*Service, *fakeRepo) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	fixed := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	return svc, repo
}

func TestDonate(t *testing.T) {
	svc, repo := newTestService()

	d, err := svc.Donate(context.Background(), " user-1 ", DonateInput{AmountCents: 2500, Message: "  for the cats "})
	require.NoError(t, err)
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, "user-1", d.UserID)
	assert.Equal(t, "for the cats", d.Message)
	assert.True(t, d.CreatedAt.Equal(svc.now()))
	require.Len(t, repo.items, 1)

	guest, err := svc.Donate(context.Background(), "", DonateInput{AmountCents: MinAmountCents})
	require.NoError(t, err)
	assert.Empty(t, guest.UserID)
}

func TestDonate_InvalidInput(t *testing.T) {
	svc, repo := newTestService()

	cases := map[string]DonateInput{
		"zero":         {},
		"below min":    {AmountCents: MinAmountCents - 1},
		"long message": {AmountCents: 500, Message: strings.Repeat("ñ", MaxMessageLength+1)},
	}
	for name, in := range cases {
		_, err := svc.Donate(context.Background(), "u", in)
		assert.ErrorIs(t, err, ErrInvalidInput, name)
	}
	assert.Empty(t, repo.items)

	// el límite cuenta runas, no bytes
	_, err := svc.Donate(context.Background(), "u", DonateInput{AmountCents: 500, Message: strings.Repeat("ñ", MaxMessageLength)})
	assert.NoError(t, err)
}

func TestRecent_PublicOnly(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := svc.Donate(ctx, "u", DonateInput{AmountCents: int64(100 * (i + 1)), IsAnonymous: i%2 == 1})
		require.NoError(t, err)
	}

	got, err := svc.Recent(ctx)
	require.NoError(t, err)
	require.Len(t, got, 4)
	for _, d := range got {
		assert.False(t, d.IsAnonymous)
	}
	assert.Equal(t, int64(700), got[0].AmountCents)
}

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(1999), toCents(19.99))
	assert.Equal(t, int64(100), toCents(1))
	assert.Equal(t, int64(0), toCents(math.NaN()))
	assert.Equal(t, int64(0), toCents(math.Inf(1)))
	assert.Equal(t, int64(0), toCents(1e300))
}

func newTestServer(t *testing.T, withUser string) *httptest.Server {
	t.Helper()

	svc, _ := newTestService()
	r := chi.NewRouter()
	if withUser != "" {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				ctx := middleware.WithClaims(req.Context(), auth.Claims{UserID: withUser})
				next.ServeHTTP(w, req.WithContext(ctx))
			})
		})
	}
	RegisterRoutes(r, svc)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, body string) (int, donationResponse) {
	t.Helper()

	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out donationResponse
	if resp.StatusCode == http.StatusCreated {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp.StatusCode, out
}

func TestAPIDonate(t *testing.T) {
	ts := newTestServer(t, "user-9")

	st, d := post(t, ts.URL+"/donations", `{"amount": 12.5, "message": "Good luck"}`)
	require.Equal(t, http.StatusCreated, st)
	assert.Equal(t, "user-9", d.UserID)
	assert.InDelta(t, 12.5, d.Amount, 0.001)

	st, _ = post(t, ts.URL+"/donations", `{"amount": 10, "is_anonymous": true}`)
	require.Equal(t, http.StatusCreated, st)

	st, _ = post(t, ts.URL+"/donations", `{"amount": 0.5}`)
	assert.Equal(t, http.StatusBadRequest, st)
	st, _ = post(t, ts.URL+"/donations", `{"amount":`)
	assert.Equal(t, http.StatusBadRequest, st)

	resp, err := http.Get(ts.URL + "/donations")
	require.NoError(t, err)
	defer resp.Body.Close()

	var recent []donationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&recent))
	require.Len(t, recent, 1)
	assert.Equal(t, "Good luck", recent[0].Message)
}

func TestAPIDonate_Guest(t *testing.T) {
	ts := newTestServer(t, "")

	st, d := post(t, ts.URL+"/donations", `{"amount": 3}`)
	require.Equal(t, http.StatusCreated, st)
	assert.Empty(t, d.UserID)
}
