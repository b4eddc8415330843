package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := unmarshal(v)
	if err != nil {
		t.Fatalf("unmarshal returned error: %s", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("server.addr = %q", cfg.Server.Addr)
	}
	if cfg.Upstream.BaseURL != DefaultBaseURL || cfg.Upstream.Timeout != 15*time.Second || cfg.Upstream.MaxResults != 5000 {
		t.Errorf("unexpected upstream defaults: %+v", cfg.Upstream)
	}
	if cfg.Database.Type != "none" || cfg.Database.Firestore.CollectionID != "lookups" {
		t.Errorf("unexpected database defaults: %+v", cfg.Database)
	}
	if cfg.Calendar.Timezone != DefaultTimezone {
		t.Errorf("calendar.timezone = %q", cfg.Calendar.Timezone)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_TYPE", "sqlite")
	t.Setenv("DATABASE_SQLITE_CONNECTION_STRING", "/tmp/lookups.db")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("UPSTREAM_MAX_RESULTS", "100")

	v := viper.New()
	setDefaults(v)

	cfg, err := unmarshal(v)
	if err != nil {
		t.Fatalf("unmarshal returned error: %s", err)
	}

	if cfg.Database.Type != "sqlite" || cfg.Database.SQLite.ConnectionString != "/tmp/lookups.db" {
		t.Errorf("database = %+v", cfg.Database)
	}
	if cfg.Upstream.Timeout != 3*time.Second || cfg.Upstream.MaxResults != 100 {
		t.Errorf("upstream = %+v", cfg.Upstream)
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := []byte(`
server:
  addr: ":9090"
  cors_origins: ["https://example.edu"]
upstream:
  requests_per_second: 2.5
log:
  level: debug
  pretty: true
`)
	if err := os.WriteFile(path, yaml, 0o600); err != nil {
		t.Fatalf("failed to write config: %s", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("failed to read config: %s", err)
	}

	cfg, err := unmarshal(v)
	if err != nil {
		t.Fatalf("unmarshal returned error: %s", err)
	}

	if cfg.Server.Addr != ":9090" || !reflect.DeepEqual(cfg.Server.CORSOrigins, []string{"https://example.edu"}) {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Upstream.RequestsPerSecond != 2.5 || cfg.Upstream.Burst != 5 {
		t.Errorf("upstream = %+v", cfg.Upstream)
	}
	if cfg.Log.Level != "debug" || !cfg.Log.Pretty {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestInvalidUpstreamLimits(t *testing.T) {
	tests := map[string]string{
		"UPSTREAM_MAX_RESULTS":         "0",
		"UPSTREAM_BURST":               "0",
		"UPSTREAM_REQUESTS_PER_SECOND": "0",
	}

	for env, value := range tests {
		t.Run(env, func(t *testing.T) {
			t.Setenv(env, value)

			v := viper.New()
			setDefaults(v)
			if _, err := unmarshal(v); err == nil {
				t.Errorf("expected an error for %s=%s", env, value)
			}
		})
	}

	t.Run("negative rate", func(t *testing.T) {
		t.Setenv("UPSTREAM_REQUESTS_PER_SECOND", "-1.5")

		v := viper.New()
		setDefaults(v)
		if _, err := unmarshal(v); err == nil {
			t.Errorf("expected an error for a negative request rate")
		}
	})
}
