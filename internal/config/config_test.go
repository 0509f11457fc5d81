package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
app:
  name: courtdesk
  environment: test
  port: 8080
mongo:
  uri: mongodb://localhost:27017
  database: courtdesk_test
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Session.CookieName != "courtdesk_session" {
		t.Fatalf("cookie name default: %s", cfg.Session.CookieName)
	}
	if cfg.Session.ExpiryDays != 7 {
		t.Fatalf("expiry days default: %d", cfg.Session.ExpiryDays)
	}
	if cfg.EmailEnabled() {
		t.Fatal("email must be disabled without SES config")
	}
}

func TestLoadRejectsIncompleteConfig(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing port", "app:\n  name: courtdesk\nmongo:\n  uri: mongodb://x\n  database: d\n"},
		{"missing mongo uri", "app:\n  name: courtdesk\n  port: 8080\nmongo:\n  database: d\n"},
		{"missing mongo database", "app:\n  name: courtdesk\n  port: 8080\nmongo:\n  uri: mongodb://x\n"},
		{"sender without region", "app:\n  name: courtdesk\n  port: 8080\nmongo:\n  uri: mongodb://x\n  database: d\nses:\n  sender: a@b.c\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.content)); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
