package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseJson_OverlaysValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")

	body := `{
		"endpoint_addr": ":9090",
		"database_dsn": "postgres://u:p@localhost:5432/tt",
		"secret_key": "json-secret",
		"access_token_validity_duration": "12h",
		"cors_allowed_origin": "https://tasks.example.com"
	}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"server", "-c", path}

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	if c.EndpointAddr != ":9090" {
		t.Fatalf("addr not overlaid: %q", c.EndpointAddr)
	}
	if c.SecretKey != "json-secret" {
		t.Fatalf("secret not overlaid: %q", c.SecretKey)
	}
	if c.AccessTokenValidityDuration != 12*time.Hour {
		t.Fatalf("duration not overlaid: %v", c.AccessTokenValidityDuration)
	}
	if c.CORSAllowedOrigin != "https://tasks.example.com" {
		t.Fatalf("origin not overlaid: %q", c.CORSAllowedOrigin)
	}
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"server"}

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	if c.EndpointAddr != ":8080" {
		t.Fatalf("defaults should be untouched, got %q", c.EndpointAddr)
	}
}
