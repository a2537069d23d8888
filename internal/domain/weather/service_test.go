package weather

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	weatherport "petcareplus/internal/ports/weather"
)

// -------------------------
// Stubs
// -------------------------

type stubProvider struct {
	obs     weatherport.Observation
	err     error
	calls   int
	lastLat float64
	lastLon float64
}

func (p *stubProvider) Current(ctx context.Context, lat, lon float64) (weatherport.Observation, error) {
	p.calls++
	p.lastLat, p.lastLon = lat, lon
	return p.obs, p.err
}

type testRepo struct {
	logs      []Log
	insertErr error
}

func (r *testRepo) Insert(ctx context.Context, l Log) (Log, error) {
	if r.insertErr != nil {
		return Log{}, r.insertErr
	}
	l.ID = int64(len(r.logs) + 1)
	l.LoggedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(len(r.logs)) * time.Minute)
	r.logs = append(r.logs, l)
	return l, nil
}

func (r *testRepo) Recent(ctx context.Context, limit int) ([]Log, error) {
	out := make([]Log, 0, limit)
	for i := len(r.logs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.logs[i])
	}
	return out, nil
}

// -------------------------
// Tests
// -------------------------

func TestFetchAndLog_UnsupportedCity(t *testing.T) {
	provider := &stubProvider{}
	svc := NewService(provider, &testRepo{})

	_, err := svc.FetchAndLog(context.Background(), "Paris")
	if !errors.Is(err, ErrUnsupportedCity) {
		t.Fatalf("err = %v, want ErrUnsupportedCity", err)
	}
	if provider.calls != 0 {
		t.Fatal("provider should not be called for unsupported city")
	}
}

func TestFetchAndLog_DefaultCity(t *testing.T) {
	provider := &stubProvider{obs: weatherport.Observation{TemperatureC: -3.5, Windspeed: 22}}
	repo := &testRepo{}
	svc := NewService(provider, repo)

	l, err := svc.FetchAndLog(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.City != "Toronto" {
		t.Fatalf("city = %q, want Toronto (default)", l.City)
	}
	if l.TemperatureC != -3.5 || l.Windspeed != 22 {
		t.Fatalf("log = %+v", l)
	}
	if l.ID == 0 || l.LoggedAt.IsZero() {
		t.Fatal("store-generated fields missing")
	}
	if len(repo.logs) != 1 {
		t.Fatalf("persisted %d rows, want 1", len(repo.logs))
	}
}

func TestFetchAndLog_CaseInsensitiveCanonicalName(t *testing.T) {
	provider := &stubProvider{obs: weatherport.Observation{TemperatureC: 10, Windspeed: 5}}
	repo := &testRepo{}
	svc := NewService(provider, repo)

	l, err := svc.FetchAndLog(context.Background(), "  vAnCoUvEr ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.City != "Vancouver" {
		t.Fatalf("city = %q, want canonical Vancouver", l.City)
	}
	if provider.lastLat != 49.28 || provider.lastLon != -123.12 {
		t.Fatalf("coords = (%v, %v)", provider.lastLat, provider.lastLon)
	}
}

func TestFetchAndLog_NoCurrentWeather(t *testing.T) {
	provider := &stubProvider{err: weatherport.ErrNoCurrentWeather}
	repo := &testRepo{}
	svc := NewService(provider, repo)

	_, err := svc.FetchAndLog(context.Background(), "Toronto")
	if !errors.Is(err, weatherport.ErrNoCurrentWeather) {
		t.Fatalf("err = %v, want ErrNoCurrentWeather", err)
	}
	if len(repo.logs) != 0 {
		t.Fatal("nothing should be persisted on upstream failure")
	}
}

func TestFetchAndLog_StoreFailure(t *testing.T) {
	provider := &stubProvider{obs: weatherport.Observation{TemperatureC: 1, Windspeed: 2}}
	repo := &testRepo{insertErr: errors.New("disk full")}
	svc := NewService(provider, repo)

	_, err := svc.FetchAndLog(context.Background(), "Calgary")
	if !errors.Is(err, ErrStore) {
		t.Fatalf("err = %v, want ErrStore", err)
	}
}

func TestRecent_NewestFirstCapped(t *testing.T) {
	provider := &stubProvider{obs: weatherport.Observation{}}
	repo := &testRepo{}
	svc := NewService(provider, repo)

	for i := 0; i < recentLimit+10; i++ {
		city := []string{"Toronto", "Montreal", "Vancouver", "Calgary"}[i%4]
		if _, err := svc.FetchAndLog(context.Background(), city); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	logs, err := svc.Recent(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != recentLimit {
		t.Fatalf("len = %d, want %d", len(logs), recentLimit)
	}
	for i := 1; i < len(logs); i++ {
		if logs[i-1].ID < logs[i].ID {
			t.Fatalf("logs out of order at %d: %s", i, fmt.Sprint(logs[i-1].ID, logs[i].ID))
		}
	}
}
