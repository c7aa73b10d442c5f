package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/nestfinder/browse-api/internal/catalog"
	"github.com/nestfinder/browse-api/internal/prefstore"
)

func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()
	cat, err := catalog.LoadEmbedded()
	if err != nil {
		t.Fatal(err)
	}
	provider := catalog.NewProvider(cat)
	profiles := NewProfiles(prefstore.NewMemory())

	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	RegisterListings(r, ListingsDeps{Catalog: provider})
	RegisterAgents(r, AgentsDeps{Catalog: provider})
	RegisterFavorites(r, FavoritesDeps{Catalog: provider, Profiles: profiles})
	RegisterCompare(r, CompareDeps{Catalog: provider, Profiles: profiles})
	RegisterAuth(r, AuthDeps{Profiles: profiles})
	RegisterContact(r, ContactDeps{})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return srv, &http.Client{Jar: jar}
}

func getJSON(t *testing.T, c *http.Client, url string, wantStatus int) map[string]any {
	t.Helper()
	resp, err := c.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s: status %d, want %d", url, resp.StatusCode, wantStatus)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	return body
}

func postJSON(t *testing.T, c *http.Client, url string, payload any, wantStatus int) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&buf).Encode(payload); err != nil {
			t.Fatal(err)
		}
	} else {
		buf.WriteString("{}")
	}
	resp, err := c.Post(url, "application/json", &buf)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("POST %s: status %d, want %d", url, resp.StatusCode, wantStatus)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	return body
}

func TestListingsQueryEndpoint(t *testing.T) {
	srv, c := newTestServer(t)

	body := getJSON(t, c, srv.URL+"/listings?city=Mumbai", http.StatusOK)
	if body["total"].(float64) != 3 {
		t.Fatalf("expected 3 Mumbai listings, got %v", body["total"])
	}

	body = getJSON(t, c, srv.URL+"/listings?minPrice=5000000&maxPrice=10000000&sortBy=price-low", http.StatusOK)
	listings := body["listings"].([]any)
	last := 0
	for _, raw := range listings {
		l := raw.(map[string]any)
		p := int(l["price"].(float64))
		if p < 5000000 || p > 10000000 {
			t.Fatalf("price %d outside window", p)
		}
		if p < last {
			t.Fatal("price-low must be non-decreasing")
		}
		last = p
	}

	// malformed numeric falls back to defaults instead of erroring
	body = getJSON(t, c, srv.URL+"/listings?minPrice=abc", http.StatusOK)
	if body["ok"] != true {
		t.Fatalf("bad numeric param must not fail: %v", body)
	}

	// out-of-range page is an empty result, not an error
	body = getJSON(t, c, srv.URL+"/listings?page=99", http.StatusOK)
	if body["count"].(float64) != 0 {
		t.Fatalf("expected empty page, got %v", body["count"])
	}
}

func TestListingDetailNotFound(t *testing.T) {
	srv, c := newTestServer(t)
	body := getJSON(t, c, srv.URL+"/listings/L9999", http.StatusNotFound)
	if body["error"] != "not_found" {
		t.Fatalf("expected not_found envelope, got %v", body)
	}
	body = getJSON(t, c, srv.URL+"/listings/L1001", http.StatusOK)
	if body["listing"].(map[string]any)["id"] != "L1001" {
		t.Fatalf("detail lookup failed: %v", body)
	}
	if _, ok := body["agent"]; !ok {
		t.Fatal("detail should include the resolved agent")
	}
}

func TestFavoritesFlow(t *testing.T) {
	srv, c := newTestServer(t)

	body := postJSON(t, c, srv.URL+"/me/favorites/L1001/toggle", nil, http.StatusOK)
	if body["favorite"] != true {
		t.Fatalf("toggle on: %v", body)
	}

	body = getJSON(t, c, srv.URL+"/me/favorites", http.StatusOK)
	if body["count"].(float64) != 1 {
		t.Fatalf("favorites count: %v", body)
	}
	if body["listings"].([]any)[0].(map[string]any)["id"] != "L1001" {
		t.Fatalf("favorites must resolve to listings: %v", body)
	}

	body = postJSON(t, c, srv.URL+"/me/favorites/L1001/toggle", nil, http.StatusOK)
	if body["favorite"] != false || body["count"].(float64) != 0 {
		t.Fatalf("toggle off: %v", body)
	}
}

func TestCompareFlowSignals(t *testing.T) {
	srv, c := newTestServer(t)

	for _, id := range []string{"L1001", "L1002", "L1003"} {
		body := postJSON(t, c, srv.URL+"/me/compare/"+id, nil, http.StatusOK)
		if body["result"] != "added" {
			t.Fatalf("add %s: %v", id, body)
		}
	}
	if body := postJSON(t, c, srv.URL+"/me/compare/L1004", nil, http.StatusOK); body["result"] != "limit_reached" {
		t.Fatalf("fourth add: %v", body)
	}
	if body := postJSON(t, c, srv.URL+"/me/compare/L1002", nil, http.StatusOK); body["result"] != "already_in_list" {
		t.Fatalf("duplicate add: %v", body)
	}

	body := getJSON(t, c, srv.URL+"/me/compare/table", http.StatusOK)
	table := body["table"].(map[string]any)
	if len(table["columns"].([]any)) != 3 {
		t.Fatalf("table columns: %v", table)
	}
	if len(table["features"].([]any)) == 0 {
		t.Fatal("feature union empty")
	}
}

func TestCompareProfileIsolation(t *testing.T) {
	srv, c1 := newTestServer(t)
	postJSON(t, c1, srv.URL+"/me/compare/L1001", nil, http.StatusOK)

	jar, _ := cookiejar.New(nil)
	c2 := &http.Client{Jar: jar}
	body := getJSON(t, c2, srv.URL+"/me/compare", http.StatusOK)
	if body["count"].(float64) != 0 {
		t.Fatalf("profiles must not share compare lists: %v", body)
	}
}

func TestAuthFlow(t *testing.T) {
	srv, c := newTestServer(t)

	body := getJSON(t, c, srv.URL+"/auth/me", http.StatusOK)
	if body["authenticated"] != false {
		t.Fatalf("fresh profile authenticated: %v", body)
	}

	payload := map[string]string{"name": "Asha", "email": "asha@example.com"}
	body = postJSON(t, c, srv.URL+"/auth/login", payload, http.StatusOK)
	if body["user"].(map[string]any)["name"] != "Asha" {
		t.Fatalf("login: %v", body)
	}

	body = getJSON(t, c, srv.URL+"/auth/me", http.StatusOK)
	if body["authenticated"] != true {
		t.Fatalf("expected authenticated: %v", body)
	}

	postJSON(t, c, srv.URL+"/auth/logout", nil, http.StatusOK)
	body = getJSON(t, c, srv.URL+"/auth/me", http.StatusOK)
	if body["authenticated"] != false {
		t.Fatalf("logout did not clear session: %v", body)
	}

	if body := postJSON(t, c, srv.URL+"/auth/login", map[string]string{"name": "Asha"}, http.StatusBadRequest); body["error"] != "name_and_email_required" {
		t.Fatalf("missing email: %v", body)
	}
}

func TestContactValidation(t *testing.T) {
	srv, c := newTestServer(t)

	bad := map[string]string{"name": "Asha", "email": "asha@example.com"}
	if body := postJSON(t, c, srv.URL+"/contact", bad, http.StatusBadRequest); body["error"] != "required_fields" {
		t.Fatalf("missing message: %v", body)
	}

	good := map[string]string{"name": "Asha", "email": "asha@example.com", "message": "Is L1001 still available?"}
	if body := postJSON(t, c, srv.URL+"/contact", good, http.StatusOK); body["ok"] != true {
		t.Fatalf("valid submission: %v", body)
	}
}

func TestAgentsEndpoints(t *testing.T) {
	srv, c := newTestServer(t)

	body := getJSON(t, c, srv.URL+"/agents/top", http.StatusOK)
	agents := body["agents"].([]any)
	if len(agents) != 4 {
		t.Fatalf("default top agents: %d", len(agents))
	}
	if agents[0].(map[string]any)["id"] != "A201" {
		t.Fatalf("rating order with stable ties: %v", agents[0])
	}

	getJSON(t, c, srv.URL+"/agents/A999", http.StatusNotFound)

	body = getJSON(t, c, srv.URL+"/agents/A201/listings", http.StatusOK)
	if body["count"].(float64) != 3 {
		t.Fatalf("A201 listings: %v", body["count"])
	}
}

func TestPaginationWindow(t *testing.T) {
	srv, c := newTestServer(t)
	// the seed has 12 listings; unfiltered pages split 9/3
	p1 := getJSON(t, c, fmt.Sprintf("%s/listings?page=%d", srv.URL, 1), http.StatusOK)
	p2 := getJSON(t, c, fmt.Sprintf("%s/listings?page=%d", srv.URL, 2), http.StatusOK)
	if p1["count"].(float64) != 9 || p2["count"].(float64) != 3 {
		t.Fatalf("pages split %v/%v", p1["count"], p2["count"])
	}
	if p1["totalPages"].(float64) != 2 {
		t.Fatalf("totalPages %v", p1["totalPages"])
	}
}
