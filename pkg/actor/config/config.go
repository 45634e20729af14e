// Package config resolves stageManager settings into one immutable
// value handed to every component. The environment is read here, at
// invocation start, and nowhere else.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Subaru-PFS/tron-actorcore/pkg/actor"
)

const (
	defaultLogsRoot     = "/data/logs/actors"
	defaultProductsRoot = "/software/mhs/products"
	defaultPython       = "python"
	defaultAttempts     = 20
	defaultInterval     = 250 * time.Millisecond
)

// Config carries every knob used during one invocation. Precedence,
// lowest first: built-in defaults, environment, yaml file named by
// STAGEMANAGER_CONFIG, command-line flags (applied by the caller).
type Config struct {
	LogsRoot     string
	ProductsRoot string
	Python       string
	Attempts     int
	Interval     time.Duration
	Verbose      bool

	getenv func(string) string
}

// fileConfig is the yaml form; Interval uses time.ParseDuration syntax.
type fileConfig struct {
	LogsRoot     string `yaml:"logs_root"`
	ProductsRoot string `yaml:"products_root"`
	Python       string `yaml:"python"`
	Attempts     int    `yaml:"attempts"`
	Interval     string `yaml:"interval"`
}

// Load builds a Config. getenv is usually os.Getenv; tests inject maps.
func Load(getenv func(string) string) (*Config, error) {
	config := &Config{
		LogsRoot:     defaultLogsRoot,
		ProductsRoot: defaultProductsRoot,
		Python:       defaultPython,
		Attempts:     defaultAttempts,
		Interval:     defaultInterval,
		getenv:       getenv,
	}
	if root := getenv("ICS_MHS_LOGS_ROOT"); root != "" {
		config.LogsRoot = root
	}
	if root := getenv("ICS_MHS_ROOT"); root != "" {
		config.ProductsRoot = filepath.Join(root, "products")
	}

	path := getenv("STAGEMANAGER_CONFIG")
	if path == "" {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if file.LogsRoot != "" {
		config.LogsRoot = file.LogsRoot
	}
	if file.ProductsRoot != "" {
		config.ProductsRoot = file.ProductsRoot
	}
	if file.Python != "" {
		config.Python = file.Python
	}
	if file.Attempts > 0 {
		config.Attempts = file.Attempts
	}
	if file.Interval != "" {
		interval, err := time.ParseDuration(file.Interval)
		if err != nil {
			return nil, fmt.Errorf("config %s: interval: %w", path, err)
		}
		config.Interval = interval
	}

	return config, nil
}

// SpecFor derives the launch spec for one actor. A per-product
// ICS_<PRODUCT>_DIR override wins over the products root, mirroring the
// eups setup the actors themselves rely on. The actor runs in its own
// log directory so auxiliary outputs land next to the logs.
func (config *Config) SpecFor(name string, args []actor.Arg) actor.Spec {
	product := actor.ProductName(name)
	productDir := config.getenv("ICS_" + strings.ToUpper(product) + "_DIR")
	if productDir == "" {
		productDir = filepath.Join(config.ProductsRoot, product)
	}
	logDir := filepath.Join(config.LogsRoot, name)

	return actor.Spec{
		Name:       name,
		Product:    product,
		ProductDir: productDir,
		Python:     config.Python,
		Dir:        logDir,
		LogDir:     logDir,
		Args:       args,
	}
}
