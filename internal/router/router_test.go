package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mem "pet-adoption/internal/adapters/storage/memory"
	"pet-adoption/internal/domain/products"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/router"
	"pet-adoption/internal/seed"
)

func TestHTTP_EndToEnd_ListingAndMatching(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{UploadsBaseURL: "http://cdn.test/uploads"}))
	defer ts.Close()

	ownerID := "shelter-1"
	otherID := "someone-else"

	// 1) Sin identidad no se puede publicar
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets", "", map[string]any{"name": "Nope", "species": "dog"})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 create pet without user, got %d", st)
		}
	}

	// 2) Owner publica tres mascotas (atributos explícitos, no se infieren)
	buddyID := createPet(t, ts.URL, ownerID, map[string]any{
		"name":                 "Buddy",
		"species":              "dog",
		"breed":                "Golden Retriever",
		"age":                  36,
		"gender":               "male",
		"image_filename":       "buddy_golden.jpg",
		"size":                 "large",
		"energy_level":         "medium",
		"good_with_children":   true,
		"good_with_other_pets": true,
	})
	pipID := createPet(t, ts.URL, ownerID, map[string]any{
		"name":         "Pip",
		"species":      "dog",
		"breed":        "Chihuahua",
		"age":          4,
		"gender":       "female",
		"size":         "small",
		"energy_level": "high",
	})
	_ = createPet(t, ts.URL, ownerID, map[string]any{
		"name":    "Whiskers",
		"species": "cat",
		"age":     24,
		"gender":  "female",
	})

	// 3) Validación de entrada
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets", ownerID, map[string]any{"name": "Bad", "species": "dragon"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown species, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", "/pets", ownerID, map[string]any{"name": "Bad", "species": "dog", "age": -1})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for negative age, got %d", st)
		}
	}

	// 4) Listado público con filtros
	{
		st, body := doReq(t, ts.URL, "GET", "/pets?species=dog", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list pets, got %d body=%s", st, string(body))
		}
		var items []struct {
			Name string `json:"name"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 2 {
			t.Fatalf("expected 2 dogs, got %d body=%s", len(items), string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/pets?q=retriever", "", nil)
		if st != http.StatusOK || !strings.Contains(string(body), "Buddy") || strings.Contains(string(body), "Pip") {
			t.Fatalf("expected only Buddy for q=retriever, got %d body=%s", st, string(body))
		}
	}

	// 5) Matching sin estado
	{
		st, body := doReq(t, ts.URL, "POST", "/api/pet-match", "", map[string]any{
			"species":            "dog",
			"age_preference":     "adult",
			"size_preference":    "large",
			"good_with_children": "yes",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 pet match, got %d body=%s", st, string(body))
		}

		var resp struct {
			Matches []struct {
				ID         string `json:"id"`
				ImageURL   string `json:"image_url"`
				MatchScore int    `json:"match_score"`
			} `json:"matches"`
			Count int `json:"count"`
		}
		_ = json.Unmarshal(body, &resp)

		// Buddy 55/55 => 100; Pip 20/55 => 37 queda fuera
		if resp.Count != 1 || len(resp.Matches) != 1 {
			t.Fatalf("expected exactly 1 match, got body=%s", string(body))
		}
		if resp.Matches[0].ID != buddyID || resp.Matches[0].MatchScore != 100 {
			t.Fatalf("expected Buddy at 100, got %+v", resp.Matches[0])
		}
		if resp.Matches[0].ImageURL != "http://cdn.test/uploads/buddy_golden.jpg" {
			t.Fatalf("unexpected image url %q", resp.Matches[0].ImageURL)
		}
	}

	// 6) Falta species => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/pet-match", "", map[string]any{"age_preference": "adult"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 without species, got %d", st)
		}
	}

	// 7) Solo el dueño cambia el estado
	{
		st, _ := doReq(t, ts.URL, "PATCH", "/pets/"+buddyID+"/status", otherID, map[string]any{"status": "pending"})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 status change by non-owner, got %d", st)
		}
		st, body := doReq(t, ts.URL, "PATCH", "/pets/"+buddyID+"/status", ownerID, map[string]any{"status": "adopted"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 status change by owner, got %d body=%s", st, string(body))
		}
	}

	// 8) Adoptado => sale del listado y del matching
	{
		st, body := doReq(t, ts.URL, "POST", "/api/pet-match", "", map[string]any{
			"species":      "dog",
			"energy_level": "high",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 pet match, got %d", st)
		}
		if strings.Contains(string(body), buddyID) || !strings.Contains(string(body), pipID) {
			t.Fatalf("expected only Pip after adoption, body=%s", string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/pets/"+buddyID, "", nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"adoption_status":"adopted"`) {
			t.Fatalf("expected adopted pet detail, got %d body=%s", st, string(body))
		}
	}
}

func TestHTTP_MatchSessionFlow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	_ = createPet(t, ts.URL, "owner-1", map[string]any{
		"name":         "Luna",
		"species":      "cat",
		"gender":       "female",
		"energy_level": "medium",
	})

	// 1) Formulario => sesión
	st, body := doReq(t, ts.URL, "POST", "/pet-match", "", map[string]any{
		"species":              "cat",
		"gender_preference":    "female",
		"special_needs":        "yes",
		"time_availability":    "moderate",
		"good_with_other_pets": "no",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 start session, got %d body=%s", st, string(body))
	}
	var sess struct {
		ResultsURL string `json:"results_url"`
	}
	_ = json.Unmarshal(body, &sess)
	if sess.ResultsURL == "" {
		t.Fatalf("missing results_url body=%s", string(body))
	}

	// 2) Resultados: 35/35 => 100
	st, body = doReq(t, ts.URL, "GET", sess.ResultsURL, "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 results, got %d body=%s", st, string(body))
	}
	var res struct {
		Preferences map[string]any `json:"preferences"`
		Matches     []struct {
			Name       string `json:"name"`
			MatchScore int    `json:"match_score"`
		} `json:"matches"`
	}
	_ = json.Unmarshal(body, &res)
	if len(res.Matches) != 1 || res.Matches[0].MatchScore != 100 {
		t.Fatalf("unexpected results body=%s", string(body))
	}
	if res.Preferences["time_availability"] != "moderate" || res.Preferences["age_preference"] != "any" {
		t.Fatalf("preferences not echoed back: %v", res.Preferences)
	}

	// 3) Sesión desconocida
	st, _ = doReq(t, ts.URL, "GET", "/pet-match/unknown/results", "", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown session, got %d", st)
	}
}

func TestHTTP_PetDetailOtherPets(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	aID := createPet(t, ts.URL, "shelter-1", map[string]any{"name": "Ana", "species": "dog"})
	bID := createPet(t, ts.URL, "shelter-1", map[string]any{"name": "Bo", "species": "cat"})
	cID := createPet(t, ts.URL, "shelter-1", map[string]any{"name": "Cy", "species": "rabbit"})
	dID := createPet(t, ts.URL, "shelter-2", map[string]any{"name": "Di", "species": "dog"})

	otherIDs := func() map[string]bool {
		t.Helper()
		st, body := doReq(t, ts.URL, "GET", "/pets/"+aID, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 pet detail, got %d body=%s", st, string(body))
		}
		var resp struct {
			ID        string `json:"id"`
			OtherPets []struct {
				ID string `json:"id"`
			} `json:"other_pets"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.ID != aID {
			t.Fatalf("expected detail of %s, got body=%s", aID, string(body))
		}
		out := map[string]bool{}
		for _, o := range resp.OtherPets {
			out[o.ID] = true
		}
		return out
	}

	// 1) Mismo dueño, sin la propia mascota ni las de otros dueños
	got := otherIDs()
	if len(got) != 2 || !got[bID] || !got[cID] || got[aID] || got[dID] {
		t.Fatalf("unexpected other_pets %v", got)
	}

	// 2) Las adoptadas salen
	st, _ := doReq(t, ts.URL, "PATCH", "/pets/"+bID+"/status", "shelter-1", map[string]any{"status": "adopted"})
	if st != http.StatusOK {
		t.Fatalf("expected 200 status change, got %d", st)
	}
	got = otherIDs()
	if len(got) != 1 || !got[cID] {
		t.Fatalf("expected only %s after adoption, got %v", cID, got)
	}
}

func TestHTTP_ShopAndDonations(t *testing.T) {
	productRepo := mem.NewProductRepo()
	if _, err := seed.Products(context.Background(), products.NewService(productRepo), logger.Nop()); err != nil {
		t.Fatalf("seed products: %v", err)
	}

	ts := httptest.NewServer(router.NewRouter(router.Options{Products: productRepo}))
	defer ts.Close()

	type product struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Category string `json:"category"`
	}

	// 1) Filtro por categoría
	st, body := doReq(t, ts.URL, "GET", "/products?category=toys", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 products, got %d", st)
	}
	var list struct {
		Products   []product `json:"products"`
		Categories []string  `json:"categories"`
	}
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("decode products: %v", err)
	}
	if len(list.Products) != 2 || len(list.Categories) != 3 {
		t.Fatalf("expected 2 toys and 3 categories, got %+v", list)
	}
	for _, p := range list.Products {
		if p.Category != "toys" {
			t.Fatalf("unexpected product in toys: %+v", p)
		}
	}

	// 2) Detalle con relacionados de la misma categoría
	st, body = doReq(t, ts.URL, "GET", "/products/"+list.Products[0].ID, "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 product detail, got %d", st)
	}
	var detail struct {
		product
		Related []product `json:"related_products"`
	}
	if err := json.Unmarshal(body, &detail); err != nil {
		t.Fatalf("decode detail: %v", err)
	}
	if len(detail.Related) != 1 || detail.Related[0].ID != list.Products[1].ID {
		t.Fatalf("unexpected related products: %+v", detail.Related)
	}

	if st, _ := doReq(t, ts.URL, "GET", "/products/missing", "", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 missing product, got %d", st)
	}

	// 3) Donaciones: con usuario, anónima e inválida
	st, body = doReq(t, ts.URL, "POST", "/donations", "donor-1", map[string]any{"amount": 20, "message": "Thanks!"})
	if st != http.StatusCreated || !strings.Contains(string(body), `"user_id":"donor-1"`) {
		t.Fatalf("expected 201 donation with user, got %d body=%s", st, string(body))
	}
	if st, _ := doReq(t, ts.URL, "POST", "/donations", "", map[string]any{"amount": 5, "is_anonymous": true}); st != http.StatusCreated {
		t.Fatalf("expected 201 anonymous donation, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "POST", "/donations", "", map[string]any{"amount": 0.99}); st != http.StatusBadRequest {
		t.Fatalf("expected 400 for amount below minimum, got %d", st)
	}

	st, body = doReq(t, ts.URL, "GET", "/donations", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 donations, got %d", st)
	}
	var recent []struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &recent); err != nil {
		t.Fatalf("decode donations: %v", err)
	}
	if len(recent) != 1 || recent[0].Message != "Thanks!" {
		t.Fatalf("anonymous donations must stay out of the public list, got %+v", recent)
	}
}

func TestHTTP_HealthAndDocs(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "/api/pet-match") {
		t.Fatalf("expected swagger doc, got %d", st)
	}
}

func createPet(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
