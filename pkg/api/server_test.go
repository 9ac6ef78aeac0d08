package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pombredanne/anitya/pkg/checker"
	"github.com/pombredanne/anitya/pkg/config"
	"github.com/pombredanne/anitya/pkg/defaults"
	"github.com/pombredanne/anitya/pkg/server"
)

// TestConstants verifies package constants are properly defined
func TestConstants(t *testing.T) {
	if name != "anityad" {
		t.Errorf("name = %q, want %q", name, "anityad")
	}

	if versionDefault != "dev" {
		t.Errorf("versionDefault = %q, want %q", versionDefault, "dev")
	}

	// Verify buildtime variables exist (they may have default values)
	if version == "" {
		t.Error("version should not be empty")
	}
	if commit == "" {
		t.Error("commit should not be empty")
	}
	if date == "" {
		t.Error("date should not be empty")
	}
}

func TestCheckIntervalFromEnv(t *testing.T) {
	t.Setenv("CHECK_INTERVAL_SECONDS", "90")
	if got := checkInterval(); got != 90*time.Second {
		t.Errorf("checkInterval() = %v, want %v", got, 90*time.Second)
	}

	t.Setenv("CHECK_INTERVAL_SECONDS", "not-a-number")
	if got := checkInterval(); got != defaults.CheckInterval {
		t.Errorf("checkInterval() = %v, want default %v", got, defaults.CheckInterval)
	}

	t.Setenv("CHECK_INTERVAL_SECONDS", "")
	if got := checkInterval(); got != defaults.CheckInterval {
		t.Errorf("checkInterval() = %v, want default %v", got, defaults.CheckInterval)
	}
}

func TestRunOncePublishesReport(t *testing.T) {
	dir := t.TempDir()
	versions := filepath.Join(dir, "versions.txt")
	if err := os.WriteFile(versions, []byte("1.0\n2.0\n"), 0o644); err != nil {
		t.Fatalf("failed to write versions: %v", err)
	}

	cfg := &config.Config{
		Projects: []config.Project{
			{Name: "demo", Scheme: "generic", Source: versions},
		},
	}

	srv := server.New(server.NewConfig())
	runOnce(context.Background(), &checker.Checker{}, cfg, srv)

	// The published report should be visible through the server.
	req := httptest.NewRequest(http.MethodGet, "/v1/report", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected published report, got status %d", rec.Code)
	}
}
