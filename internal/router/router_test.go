package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"petcareplus/internal/config"
	"petcareplus/internal/platform/logger"
	weatherport "petcareplus/internal/ports/weather"
	"petcareplus/internal/router"
)

type stubWeather struct {
	obs weatherport.Observation
	err error
}

func (p stubWeather) Current(ctx context.Context, lat, lon float64) (weatherport.Observation, error) {
	return p.obs, p.err
}

func newTestServer(t *testing.T, provider weatherport.Provider) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		SessionSecret: "test-secret",
		CORSOrigins:   []string{"http://localhost:5173"},
		StaticDir:     "no-static-dir",
		AdminEmail:    "admin@petcareplus.local",
		AdminPassword: "admin123",
	}
	h := router.NewRouter(router.Options{
		Config:  cfg,
		Log:     logger.New(logger.Options{Level: logger.Error}),
		Weather: provider,
	})
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

// newClient arma un cliente con cookie jar propio, una "sesión de
// browser" independiente por rol.
func newClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	return &http.Client{Jar: jar}
}

func login(t *testing.T, c *http.Client, baseURL, email, password string) string {
	t.Helper()

	st, body := doReq(t, c, baseURL, "POST", "/api/login", map[string]any{
		"email":    email,
		"password": password,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 login for %s, got %d body=%s", email, st, string(body))
	}

	var resp struct {
		Role string `json:"role"`
	}
	_ = json.Unmarshal(body, &resp)
	return resp.Role
}

func doReq(t *testing.T, c *http.Client, baseURL, method, path string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, out
}

func errorMessage(t *testing.T, body []byte) string {
	t.Helper()

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("error body is not JSON: %s", string(body))
	}
	return resp.Error
}

func TestHTTP_EndToEnd_AuthAndRoles(t *testing.T) {
	ts := newTestServer(t, stubWeather{obs: weatherport.Observation{TemperatureC: 12, Windspeed: 8}})

	// 1) Sin sesión no hay acceso a recursos
	{
		c := newClient(t)
		st, body := doReq(t, c, ts.URL, "GET", "/api/owners", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without session, got %d body=%s", st, string(body))
		}
		if msg := errorMessage(t, body); msg != "Authentication required" {
			t.Fatalf("unexpected message %q", msg)
		}
	}

	// 2) Password incorrecto => 401 con mensaje fijo
	{
		c := newClient(t)
		st, body := doReq(t, c, ts.URL, "POST", "/api/login", map[string]any{
			"email":    "admin@petcareplus.local",
			"password": "wrong",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 bad password, got %d body=%s", st, string(body))
		}
		if msg := errorMessage(t, body); msg != "Invalid email or password" {
			t.Fatalf("unexpected message %q", msg)
		}
	}

	// 3) Usuario con rol user puede leer pero no escribir
	userClient := newClient(t)
	if role := login(t, userClient, ts.URL, "vet@petcareplus.local", "vet123"); role != "user" {
		t.Fatalf("vet role = %q, want user", role)
	}
	{
		st, body := doReq(t, userClient, ts.URL, "GET", "/api/owners", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list owners as user, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, userClient, ts.URL, "POST", "/api/owners", ownerPayload(1))
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 create owner as user, got %d body=%s", st, string(body))
		}
		if msg := errorMessage(t, body); msg != "Forbidden: insufficient role" {
			t.Fatalf("unexpected message %q", msg)
		}
	}

	// 4) Admin hace el CRUD completo
	adminClient := newClient(t)
	if role := login(t, adminClient, ts.URL, "admin@petcareplus.local", "admin123"); role != "admin" {
		t.Fatalf("admin role = %q, want admin", role)
	}
	{
		st, body := doReq(t, adminClient, ts.URL, "POST", "/api/owners", ownerPayload(1))
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create owner, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, adminClient, ts.URL, "GET", "/api/owners/1", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get owner, got %d body=%s", st, string(body))
		}
		var got struct {
			FirstName string `json:"first_name"`
		}
		_ = json.Unmarshal(body, &got)
		if got.FirstName != "Ana" {
			t.Fatalf("owner body=%s", string(body))
		}
	}
	{
		p := ownerPayload(1)
		p["first_name"] = "Anabel"
		st, body := doReq(t, adminClient, ts.URL, "PUT", "/api/owners/1", p)
		if st != http.StatusOK {
			t.Fatalf("expected 200 update owner, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, adminClient, ts.URL, "DELETE", "/api/owners/1", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete owner, got %d body=%s", st, string(body))
		}
	}

	// 5) Segundo delete del mismo owner => 404
	{
		st, body := doReq(t, adminClient, ts.URL, "DELETE", "/api/owners/1", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 delete missing owner, got %d body=%s", st, string(body))
		}
		if msg := errorMessage(t, body); msg != "Owner not found" {
			t.Fatalf("unexpected message %q", msg)
		}
	}

	// 6) Logout invalida la sesión del lado del server
	{
		st, body := doReq(t, adminClient, ts.URL, "POST", "/api/logout", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 logout, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, adminClient, ts.URL, "GET", "/api/owners", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 after logout, got %d body=%s", st, string(body))
		}
	}
}

func TestHTTP_OwnerIDCoercion(t *testing.T) {
	ts := newTestServer(t, stubWeather{})

	c := newClient(t)
	login(t, c, ts.URL, "admin@petcareplus.local", "admin123")

	// owner_id como string numérico se acepta
	{
		p := ownerPayload(0)
		p["owner_id"] = "12"
		st, body := doReq(t, c, ts.URL, "POST", "/api/owners", p)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 with string id, got %d body=%s", st, string(body))
		}
		var resp struct {
			OwnerID int64 `json:"owner_id"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.OwnerID != 12 {
			t.Fatalf("owner_id = %d, want 12", resp.OwnerID)
		}
	}

	// owner_id con decimales se rechaza
	{
		p := ownerPayload(0)
		p["owner_id"] = 3.5
		st, body := doReq(t, c, ts.URL, "POST", "/api/owners", p)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 with float id, got %d body=%s", st, string(body))
		}
		if msg := errorMessage(t, body); msg != "owner_id must be an integer" {
			t.Fatalf("unexpected message %q", msg)
		}
	}
}

func TestHTTP_ExportOwnersCSV(t *testing.T) {
	ts := newTestServer(t, stubWeather{})

	admin := newClient(t)
	login(t, admin, ts.URL, "admin@petcareplus.local", "admin123")

	// 1) Sin filas: solo el header, con newline final
	{
		st, body := doReq(t, admin, ts.URL, "GET", "/api/export/owners.csv", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 export, got %d body=%s", st, string(body))
		}
		want := "owner_id,first_name,last_name,phone,email,address\n"
		if string(body) != want {
			t.Fatalf("empty export = %q, want %q", string(body), want)
		}
	}

	// 2) Con filas: valores con coma van quoteados, sin newline final
	{
		p := ownerPayload(1)
		p["address"] = "123 Maple St, Apt 4"
		if st, body := doReq(t, admin, ts.URL, "POST", "/api/owners", p); st != http.StatusCreated {
			t.Fatalf("seed owner 1: %d body=%s", st, string(body))
		}
		p2 := ownerPayload(2)
		p2["first_name"] = "Bruno"
		p2["email"] = "bruno@example.com"
		if st, body := doReq(t, admin, ts.URL, "POST", "/api/owners", p2); st != http.StatusCreated {
			t.Fatalf("seed owner 2: %d body=%s", st, string(body))
		}

		st, body := doReq(t, admin, ts.URL, "GET", "/api/export/owners.csv", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 export, got %d body=%s", st, string(body))
		}
		want := "owner_id,first_name,last_name,phone,email,address\n" +
			`1,Ana,Reyes,555-0100,ana@example.com,"123 Maple St, Apt 4"` + "\n" +
			"2,Bruno,Reyes,555-0100,bruno@example.com,123 Maple St"
		if string(body) != want {
			t.Fatalf("export = %q, want %q", string(body), want)
		}
	}

	// 3) Headers de descarga
	{
		resp, err := admin.Get(ts.URL + "/api/export/owners.csv")
		if err != nil {
			t.Fatalf("get export: %v", err)
		}
		defer resp.Body.Close()
		if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
			t.Fatalf("Content-Type = %q", ct)
		}
		if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, `owners.csv`) {
			t.Fatalf("Content-Disposition = %q", cd)
		}
	}

	// 4) El export es solo-admin
	{
		user := newClient(t)
		login(t, user, ts.URL, "vet@petcareplus.local", "vet123")
		st, body := doReq(t, user, ts.URL, "GET", "/api/export/owners.csv", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 export as user, got %d body=%s", st, string(body))
		}
	}
}

func TestHTTP_Weather(t *testing.T) {
	ts := newTestServer(t, stubWeather{obs: weatherport.Observation{TemperatureC: -1.5, Windspeed: 30}})

	c := newClient(t)
	login(t, c, ts.URL, "vet@petcareplus.local", "vet123")

	// 1) Ciudad fuera de la tabla fija => 400 con mensaje fijo
	{
		st, body := doReq(t, c, ts.URL, "POST", "/api/weather/fetch", map[string]any{"city": "Paris"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 unsupported city, got %d body=%s", st, string(body))
		}
		if msg := errorMessage(t, body); msg != "Unsupported city for this demo" {
			t.Fatalf("unexpected message %q", msg)
		}
	}

	// 2) Sin body aplica la ciudad default
	{
		st, body := doReq(t, c, ts.URL, "POST", "/api/weather/fetch", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 fetch default city, got %d body=%s", st, string(body))
		}
		var resp struct {
			Data struct {
				City         string  `json:"city"`
				TemperatureC float64 `json:"temperature_c"`
			} `json:"data"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Data.City != "Toronto" || resp.Data.TemperatureC != -1.5 {
			t.Fatalf("fetch body=%s", string(body))
		}
	}

	// 3) Los logs quedan consultables, el más nuevo primero
	{
		if st, body := doReq(t, c, ts.URL, "POST", "/api/weather/fetch", map[string]any{"city": "montreal"}); st != http.StatusOK {
			t.Fatalf("fetch montreal: %d body=%s", st, string(body))
		}

		st, body := doReq(t, c, ts.URL, "GET", "/api/weather/logs", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 logs, got %d body=%s", st, string(body))
		}
		var logs []struct {
			City string `json:"city"`
		}
		if err := json.Unmarshal(body, &logs); err != nil {
			t.Fatalf("logs body=%s", string(body))
		}
		if len(logs) != 2 || logs[0].City != "Montreal" || logs[1].City != "Toronto" {
			t.Fatalf("logs = %+v", logs)
		}
	}

	// 4) Clima requiere sesión
	{
		anon := newClient(t)
		st, _ := doReq(t, anon, ts.URL, "POST", "/api/weather/fetch", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 fetch without session, got %d", st)
		}
	}
}

func TestHTTP_WeatherProviderWithoutData(t *testing.T) {
	ts := newTestServer(t, stubWeather{err: weatherport.ErrNoCurrentWeather})

	c := newClient(t)
	login(t, c, ts.URL, "vet@petcareplus.local", "vet123")

	st, body := doReq(t, c, ts.URL, "POST", "/api/weather/fetch", map[string]any{"city": "Calgary"})
	if st != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d body=%s", st, string(body))
	}
	if msg := errorMessage(t, body); msg != "Weather provider returned no data" {
		t.Fatalf("unexpected message %q", msg)
	}

	// El provider caído no debe dejar filas en el log
	st, body = doReq(t, c, ts.URL, "GET", "/api/weather/logs", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 logs, got %d body=%s", st, string(body))
	}
	var logs []json.RawMessage
	if err := json.Unmarshal(body, &logs); err != nil || len(logs) != 0 {
		t.Fatalf("logs = %s (err=%v)", string(body), err)
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := newTestServer(t, stubWeather{})

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("get health: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Fatalf("health = %d %q", resp.StatusCode, string(body))
	}
}

func ownerPayload(id int64) map[string]any {
	p := map[string]any{
		"first_name": "Ana",
		"last_name":  "Reyes",
		"phone":      "555-0100",
		"email":      "ana@example.com",
		"address":    "123 Maple St",
	}
	if id != 0 {
		p["owner_id"] = id
	}
	return p
}
