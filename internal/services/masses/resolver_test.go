package masses

import (
	"context"
	"errors"
	"testing"
)

type fakeSource struct {
	masses  map[string]float64
	err     error
	lastIDs []string
	calls   int
}

func (s *fakeSource) FetchPayloadMasses(ctx context.Context, ids []string) (map[string]float64, error) {
	s.calls++
	s.lastIDs = ids
	if s.err != nil {
		return nil, s.err
	}
	return s.masses, nil
}

func TestTotalMass(t *testing.T) {
	src := &fakeSource{masses: map[string]float64{
		"P1": 1200,
		"P2": 350.5,
	}}

	total, err := New(src).TotalMass(context.Background(), []string{"P1", "P2"})
	if err != nil {
		t.Fatalf("TotalMass failed: %v", err)
	}
	if total != 1550.5 {
		t.Errorf("total = %v, want 1550.5", total)
	}
}

func TestTotalMass_DuplicatesCountOnce(t *testing.T) {
	src := &fakeSource{masses: map[string]float64{"P1": 100}}

	total, err := New(src).TotalMass(context.Background(), []string{"P1", "P1", "P1"})
	if err != nil {
		t.Fatalf("TotalMass failed: %v", err)
	}
	if total != 100 {
		t.Errorf("total = %v, want 100", total)
	}
	if len(src.lastIDs) != 1 {
		t.Errorf("fetched ids = %v, want a deduplicated set", src.lastIDs)
	}
}

func TestTotalMass_UnknownContributesZero(t *testing.T) {
	src := &fakeSource{masses: map[string]float64{"P1": 400}}

	total, err := New(src).TotalMass(context.Background(), []string{"P1", "P-missing"})
	if err != nil {
		t.Fatalf("TotalMass failed: %v", err)
	}
	if total != 400 {
		t.Errorf("total = %v, want 400", total)
	}
}

func TestTotalMass_EmptySkipsRemoteCall(t *testing.T) {
	src := &fakeSource{}

	total, err := New(src).TotalMass(context.Background(), nil)
	if err != nil {
		t.Fatalf("TotalMass failed: %v", err)
	}
	if total != 0 {
		t.Errorf("total = %v, want 0", total)
	}
	if src.calls != 0 {
		t.Errorf("expected no remote calls, got %d", src.calls)
	}
}

func TestTotalMass_SourceError(t *testing.T) {
	wantErr := errors.New("remote broke")
	src := &fakeSource{err: wantErr}

	_, err := New(src).TotalMass(context.Background(), []string{"P1"})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected source error, got %v", err)
	}
}
