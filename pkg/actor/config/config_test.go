package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Subaru-PFS/tron-actorcore/pkg/actor"
)

func envFrom(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestLoadDefaults(t *testing.T) {
	config, err := Load(envFrom(nil))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if config.LogsRoot != "/data/logs/actors" {
		t.Fatalf("unexpected logs root %q", config.LogsRoot)
	}
	if config.ProductsRoot != "/software/mhs/products" {
		t.Fatalf("unexpected products root %q", config.ProductsRoot)
	}
	if config.Python != "python" {
		t.Fatalf("unexpected interpreter %q", config.Python)
	}
	if config.Attempts != 20 || config.Interval != 250*time.Millisecond {
		t.Fatalf("unexpected poll settings: %d x %v", config.Attempts, config.Interval)
	}
}

func TestLoadEnvironment(t *testing.T) {
	config, err := Load(envFrom(map[string]string{
		"ICS_MHS_LOGS_ROOT": "/scratch/logs",
		"ICS_MHS_ROOT":      "/scratch/mhs",
	}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if config.LogsRoot != "/scratch/logs" {
		t.Fatalf("expected env logs root, got %q", config.LogsRoot)
	}
	if config.ProductsRoot != "/scratch/mhs/products" {
		t.Fatalf("expected env products root, got %q", config.ProductsRoot)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stageManager.yaml")
	body := "logs_root: /var/log/ics\npython: python3\nattempts: 5\ninterval: 100ms\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	config, err := Load(envFrom(map[string]string{
		"STAGEMANAGER_CONFIG": path,
		"ICS_MHS_LOGS_ROOT":   "/scratch/logs",
	}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	// The file wins over the environment.
	if config.LogsRoot != "/var/log/ics" {
		t.Fatalf("expected file logs root, got %q", config.LogsRoot)
	}
	if config.Python != "python3" {
		t.Fatalf("expected file interpreter, got %q", config.Python)
	}
	if config.Attempts != 5 || config.Interval != 100*time.Millisecond {
		t.Fatalf("unexpected poll settings: %d x %v", config.Attempts, config.Interval)
	}
}

func TestLoadRejectsBadInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stageManager.yaml")
	if err := os.WriteFile(path, []byte("interval: soon\n"), 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	if _, err := Load(envFrom(map[string]string{"STAGEMANAGER_CONFIG": path})); err == nil {
		t.Fatalf("expected an interval parse error")
	}
}

func TestSpecFor(t *testing.T) {
	config, err := Load(envFrom(map[string]string{
		"ICS_MCSACTOR_DIR": "/checkouts/mcsActor",
	}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	spec := config.SpecFor("mcs", []actor.Arg{{Key: "cam", Value: "b1"}})
	if spec.Product != "mcsActor" {
		t.Fatalf("unexpected product %q", spec.Product)
	}
	if spec.ProductDir != "/checkouts/mcsActor" {
		t.Fatalf("expected the per-product override, got %q", spec.ProductDir)
	}
	if spec.LogDir != "/data/logs/actors/mcs" {
		t.Fatalf("unexpected log dir %q", spec.LogDir)
	}
	if spec.Dir != spec.LogDir {
		t.Fatalf("actor should run in its log dir, got %q", spec.Dir)
	}
	if len(spec.Args) != 1 || spec.Args[0].Key != "cam" || spec.Args[0].Value != "b1" {
		t.Fatalf("unexpected args %v", spec.Args)
	}

	// Without an override the product lives under the products root.
	other := config.SpecFor("sps", nil)
	if other.ProductDir != "/software/mhs/products/spsActor" {
		t.Fatalf("unexpected product dir %q", other.ProductDir)
	}
}
