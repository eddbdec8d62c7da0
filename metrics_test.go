package dockwm

import "testing"

func TestLoadMetrics(t *testing.T) {
	defer SetMetrics(&defaultMetrics)

	if err := LoadMetrics("Compact"); err != nil {
		t.Fatalf("load: %v", err)
	}
	if currentMetrics.ChromeHeight != 18 {
		t.Fatalf("compact table not applied: %+v", currentMetrics)
	}
	// Fields missing from a table keep their defaults.
	if currentMetrics.RootDockRatio != 0.25 {
		t.Fatalf("default not preserved: %v", currentMetrics.RootDockRatio)
	}

	if err := LoadMetrics("NoSuchTheme"); err == nil {
		t.Fatalf("expected error for missing table")
	}
}

func TestSetMetricsNilIgnored(t *testing.T) {
	before := currentMetrics
	SetMetrics(nil)
	if currentMetrics != before {
		t.Fatalf("nil table replaced metrics")
	}
}
