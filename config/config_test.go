package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `mqtt:
  enabled: true
  broker: "tcp://localhost:1883"
  client_id: "loadshed-test"
  schedule_topic: "loadshed/schedule/+"
  qos: 1
feed:
  dir: "./feeds"
api:
  enabled: true
  addr: ":8085"
metrics:
  prometheus_enabled: true
logging:
  level: "debug"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"mqtt.broker", cfg.MQTT.Broker, "tcp://localhost:1883"},
		{"mqtt.client_id", cfg.MQTT.ClientID, "loadshed-test"},
		{"mqtt.schedule_topic", cfg.MQTT.ScheduleTopic, "loadshed/schedule/+"},
		{"mqtt.qos", cfg.MQTT.QoS, byte(1)},
		{"feed.dir", cfg.Feed.Dir, "./feeds"},
		{"api.addr", cfg.API.Addr, ":8085"},
		{"metrics.prometheus_enabled", cfg.Metrics.PrometheusEnabled, true},
		{"metrics.prometheus_addr", cfg.Metrics.PrometheusAddr, ":9090"},
		{"logging.level", cfg.Logging.Level, "debug"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("api:\n  enabled: true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.API.Addr != ":8080" {
		t.Errorf("api addr not defaulted: %q", cfg.API.Addr)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("log level not defaulted: %q", cfg.Logging.Level)
	}
	if !strings.HasPrefix(cfg.MQTT.ClientID, "loadshed-") {
		t.Errorf("mqtt client id not defaulted: %q", cfg.MQTT.ClientID)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("LS_LOGGING__LEVEL", "warn")
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: \"info\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("env override not applied: %q", cfg.Logging.Level)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Errorf("unsupported extension should fail")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("missing file should fail")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: \"loud\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("invalid log level should fail")
	}
	path2 := filepath.Join(dir, "mqtt.yaml")
	if err := os.WriteFile(path2, []byte("mqtt:\n  enabled: true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path2); err == nil {
		t.Errorf("enabled mqtt without broker should fail")
	}
}
