package heaviest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"launchdeck/internal/models"
)

type fakeCatalog struct {
	launches []models.Launch
	err      error
}

func (c *fakeCatalog) LaunchesInRange(ctx context.Context, r models.DateRange) ([]models.Launch, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.launches, nil
}

// fakeResolver sums masses from a fixed per-payload table.
type fakeResolver struct {
	masses map[string]float64
	err    error

	mu    sync.Mutex
	calls int
}

func (r *fakeResolver) TotalMass(ctx context.Context, payloadIDs []string) (float64, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()

	if r.err != nil {
		return 0, r.err
	}

	seen := make(map[string]struct{})
	var total float64
	for _, id := range payloadIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		total += r.masses[id]
	}
	return total, nil
}

func launch(id string, unix int64, payloads ...string) models.Launch {
	return models.Launch{
		ID:         id,
		LaunchTime: time.Unix(unix, 0).UTC(),
		PayloadIDs: payloads,
	}
}

func TestHeaviestLaunch(t *testing.T) {
	cat := &fakeCatalog{launches: []models.Launch{
		launch("L1", 100, "P1"),
		launch("L2", 200),
		launch("L3", 300, "P2", "P3"),
	}}
	res := &fakeResolver{masses: map[string]float64{
		"P1": 1200,
		"P2": 3000,
		"P3": 1500,
	}}

	got, err := New(cat, res, DefaultConfig()).HeaviestLaunch(context.Background(), models.AllTime())
	if err != nil {
		t.Fatalf("HeaviestLaunch failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected a result")
	}
	if got.ID != "L3" {
		t.Errorf("heaviest = %s, want L3", got.ID)
	}
	if got.TotalPayloadMassKg != 4500 {
		t.Errorf("mass = %v, want 4500", got.TotalPayloadMassKg)
	}
}

func TestHeaviestLaunch_EmptyRange(t *testing.T) {
	got, err := New(&fakeCatalog{}, &fakeResolver{}, DefaultConfig()).
		HeaviestLaunch(context.Background(), models.AllTime())
	if err != nil {
		t.Fatalf("HeaviestLaunch failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for an empty range, got %v", got)
	}
}

func TestHeaviestLaunch_FirstListedWinsTies(t *testing.T) {
	cat := &fakeCatalog{launches: []models.Launch{
		launch("L1", 100, "P1"),
		launch("L2", 200, "P2"),
	}}
	res := &fakeResolver{masses: map[string]float64{
		"P1": 500,
		"P2": 500,
	}}

	got, err := New(cat, res, DefaultConfig()).HeaviestLaunch(context.Background(), models.AllTime())
	if err != nil {
		t.Fatalf("HeaviestLaunch failed: %v", err)
	}
	if got.ID != "L1" {
		t.Errorf("tie should go to the first listed launch, got %s", got.ID)
	}
}

func TestHeaviestLaunch_ZeroMassStillCounts(t *testing.T) {
	// A lone launch with no known payload mass is still the heaviest.
	cat := &fakeCatalog{launches: []models.Launch{launch("L1", 100, "P-unknown")}}
	res := &fakeResolver{masses: map[string]float64{}}

	got, err := New(cat, res, DefaultConfig()).HeaviestLaunch(context.Background(), models.AllTime())
	if err != nil {
		t.Fatalf("HeaviestLaunch failed: %v", err)
	}
	if got == nil || got.ID != "L1" || got.TotalPayloadMassKg != 0 {
		t.Errorf("got %v, want L1 with mass 0", got)
	}
}

func TestHeaviestLaunch_DuplicatePayloadCountsOnce(t *testing.T) {
	cat := &fakeCatalog{launches: []models.Launch{launch("L1", 100, "P1", "P1")}}
	res := &fakeResolver{masses: map[string]float64{"P1": 100}}

	got, err := New(cat, res, DefaultConfig()).HeaviestLaunch(context.Background(), models.AllTime())
	if err != nil {
		t.Fatalf("HeaviestLaunch failed: %v", err)
	}
	if got.TotalPayloadMassKg != 100 {
		t.Errorf("mass = %v, want 100", got.TotalPayloadMassKg)
	}
}

func TestHeaviestLaunch_CatalogError(t *testing.T) {
	wantErr := errors.New("remote broke")
	_, err := New(&fakeCatalog{err: wantErr}, &fakeResolver{}, DefaultConfig()).
		HeaviestLaunch(context.Background(), models.AllTime())
	if !errors.Is(err, wantErr) {
		t.Errorf("expected catalog error, got %v", err)
	}
}

func TestHeaviestLaunch_ResolverError(t *testing.T) {
	wantErr := errors.New("mass lookup broke")
	cat := &fakeCatalog{launches: []models.Launch{launch("L1", 100, "P1")}}

	_, err := New(cat, &fakeResolver{err: wantErr}, DefaultConfig()).
		HeaviestLaunch(context.Background(), models.AllTime())
	if !errors.Is(err, wantErr) {
		t.Errorf("expected resolver error, got %v", err)
	}
}

func TestWeighAll_PreservesOrder(t *testing.T) {
	launches := make([]models.Launch, 20)
	masses := map[string]float64{}
	for i := range launches {
		id := string(rune('A' + i))
		launches[i] = launch("L"+id, int64(i), "P"+id)
		masses["P"+id] = float64(i * 10)
	}
	res := &fakeResolver{masses: masses}

	weighed, err := New(&fakeCatalog{}, res, Config{MaxConcurrent: 3}).
		WeighAll(context.Background(), launches)
	if err != nil {
		t.Fatalf("WeighAll failed: %v", err)
	}

	if len(weighed) != len(launches) {
		t.Fatalf("weighed %d launches, want %d", len(weighed), len(launches))
	}
	for i := range weighed {
		if weighed[i].ID != launches[i].ID {
			t.Fatalf("order broken at %d: %s", i, weighed[i].ID)
		}
		if weighed[i].TotalPayloadMassKg != float64(i*10) {
			t.Errorf("mass[%d] = %v", i, weighed[i].TotalPayloadMassKg)
		}
	}
	if res.calls != len(launches) {
		t.Errorf("resolver calls = %d, want %d", res.calls, len(launches))
	}
}
