// Package config resolves the agent's configuration from defaults, an
// optional YAML file, and environment variables, in that order (env wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is everything one run needs. All fields have working defaults;
// the agent is meant to run unconfigured on the host it observes.
type Config struct {
	ServiceUnit    string        // systemd unit of the observed service
	Port           string        // TCP port the service listens on
	DependencyBin  string        // model runtime binary
	PythonBin      string        // interpreter for the compile check
	SourceDir      string        // companion source tree to compile-check
	DataDir        string        // root for logs and evidence
	CommandTimeout time.Duration // default per-command timeout
	EvidenceKeep   int           // bundles to retain; <= 0 keeps all
}

// EventLogPath is where run events are appended.
func (c Config) EventLogPath() string {
	return filepath.Join(c.DataDir, "logs", "events.jsonl")
}

// EvidenceRoot is where failure bundles live.
func (c Config) EvidenceRoot() string {
	return filepath.Join(c.DataDir, "logs", "evidence")
}

// Default returns the built-in configuration. Binaries are resolved from
// PATH with fixed fallbacks for scheduler environments with a minimal PATH.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		ServiceUnit:    "ollama.service",
		Port:           "11434",
		DependencyBin:  lookPath("ollama", "/usr/local/bin/ollama"),
		PythonBin:      lookPath("python3", "/usr/bin/python3"),
		SourceDir:      filepath.Join(home, "system-brain"),
		DataDir:        filepath.Join(home, ".vigil"),
		CommandTimeout: 30 * time.Second,
		EvidenceKeep:   50,
	}
}

func lookPath(name, fallback string) string {
	if p, err := exec.LookPath(name); err == nil {
		return p
	}
	return fallback
}

// fileConfig mirrors Config for YAML, with pointers so absent keys do not
// clobber defaults.
type fileConfig struct {
	ServiceUnit       *string `yaml:"service_unit"`
	Port              *string `yaml:"port"`
	DependencyBin     *string `yaml:"dependency_bin"`
	PythonBin         *string `yaml:"python_bin"`
	SourceDir         *string `yaml:"source_dir"`
	DataDir           *string `yaml:"data_dir"`
	CommandTimeoutSec *int    `yaml:"command_timeout_seconds"`
	EvidenceKeep      *int    `yaml:"evidence_keep"`
}

// Load resolves the effective configuration: defaults, then the config
// file (VIGIL_CONFIG or <data dir>/config.yaml) if present, then VIGIL_*
// environment variables. An absent file is fine; a malformed file or
// non-numeric env value is an error.
func Load() (Config, error) {
	cfg := Default()

	path := os.Getenv("VIGIL_CONFIG")
	if path == "" {
		path = filepath.Join(cfg.DataDir, "config.yaml")
	}
	if err := applyFile(&cfg, path); err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.ServiceUnit, fc.ServiceUnit)
	setString(&cfg.Port, fc.Port)
	setString(&cfg.DependencyBin, fc.DependencyBin)
	setString(&cfg.PythonBin, fc.PythonBin)
	setString(&cfg.SourceDir, fc.SourceDir)
	setString(&cfg.DataDir, fc.DataDir)
	if fc.CommandTimeoutSec != nil {
		cfg.CommandTimeout = time.Duration(*fc.CommandTimeoutSec) * time.Second
	}
	if fc.EvidenceKeep != nil {
		cfg.EvidenceKeep = *fc.EvidenceKeep
	}
	return nil
}

func setString(dst *string, src *string) {
	if src != nil && *src != "" {
		*dst = *src
	}
}

func applyEnv(cfg *Config) error {
	envString(&cfg.ServiceUnit, "VIGIL_SERVICE")
	envString(&cfg.Port, "VIGIL_PORT")
	envString(&cfg.DependencyBin, "VIGIL_OLLAMA_BIN")
	envString(&cfg.PythonBin, "VIGIL_PYTHON_BIN")
	envString(&cfg.SourceDir, "VIGIL_SOURCE_DIR")
	envString(&cfg.DataDir, "VIGIL_DATA_DIR")

	if v := os.Getenv("VIGIL_CMD_TIMEOUT"); v != "" {
		sec, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("VIGIL_CMD_TIMEOUT: %w", err)
		}
		cfg.CommandTimeout = time.Duration(sec) * time.Second
	}
	if v := os.Getenv("VIGIL_EVIDENCE_KEEP"); v != "" {
		keep, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("VIGIL_EVIDENCE_KEEP: %w", err)
		}
		cfg.EvidenceKeep = keep
	}
	return nil
}

func envString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
