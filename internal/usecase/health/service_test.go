package health

import (
	"context"
	"errors"
	"testing"
)

type mockChecker struct {
	err error
}

func (m *mockChecker) HealthCheck(_ context.Context) error { return m.err }

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockChecker{}, &mockChecker{})

	report := svc.Check(context.Background())
	if report.Status != Healthy {
		t.Errorf("Status = %q, want %q", report.Status, Healthy)
	}
	if report.Checks["catalog"] != CheckOK || report.Checks["llm_parser"] != CheckOK {
		t.Errorf("Checks = %v, want all ok", report.Checks)
	}
}

func TestCheck_ParserFailureDegrades(t *testing.T) {
	svc := New(&mockChecker{}, &mockChecker{err: errors.New("api down")})

	report := svc.Check(context.Background())
	if report.Status != Degraded {
		t.Errorf("Status = %q, want %q", report.Status, Degraded)
	}
	if report.Checks["catalog"] != CheckOK {
		t.Errorf("catalog = %q, want ok", report.Checks["catalog"])
	}
	if report.Checks["llm_parser"] != CheckError {
		t.Errorf("llm_parser = %q, want error", report.Checks["llm_parser"])
	}
}

func TestCheck_CatalogFailureDegrades(t *testing.T) {
	svc := New(&mockChecker{err: errors.New("store unreachable")}, nil)

	report := svc.Check(context.Background())
	if report.Status != Degraded {
		t.Errorf("Status = %q, want %q", report.Status, Degraded)
	}
}

func TestCheck_NoParserConfigured(t *testing.T) {
	svc := New(&mockChecker{}, nil)

	report := svc.Check(context.Background())
	if report.Status != Healthy {
		t.Errorf("Status = %q, want %q", report.Status, Healthy)
	}
	if _, ok := report.Checks["llm_parser"]; ok {
		t.Error("llm_parser check reported without a configured parser")
	}
}
