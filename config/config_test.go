package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Environment != "development" {
		t.Errorf("environment = %q, want development", cfg.Environment)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 30 {
		t.Errorf("shutdown timeout = %d, want 30", cfg.Server.ShutdownTimeout)
	}
	if cfg.RuleSet != "" {
		t.Errorf("rule set = %q, want empty", cfg.RuleSet)
	}
	if len(cfg.Web.AllowedOrigins) != 2 {
		t.Errorf("allowed origins = %v, want two defaults", cfg.Web.AllowedOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("WEB_STATIC_DIR", "/srv/form")
	t.Setenv("RULE_SET", `{"target_minutes": 420}`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Web.StaticDir != "/srv/form" {
		t.Errorf("static dir = %q", cfg.Web.StaticDir)
	}
	if cfg.RuleSet == "" {
		t.Error("rule set override not picked up")
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "not-a-number")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric timeout")
	}
}
