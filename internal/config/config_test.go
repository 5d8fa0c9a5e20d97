package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_NAME", "ENVIRONMENT", "PORT", "DEBUG", "LOG_LEVEL", "LOG_FORMAT",
		"STORE_BACKEND", "CORS_ALLOWED_ORIGINS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "METRICS_ENABLED", "METRICS_PATH", "STAGE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.AppName != "helloworld" {
		t.Errorf("AppName = %q, want helloworld", cfg.AppName)
	}
	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Port)
	}
	if cfg.Store.Backend != "memory" {
		t.Errorf("Store.Backend = %q, want memory", cfg.Store.Backend)
	}
	if got := strings.Join(cfg.CORS.AllowedOrigins, ","); got != "http://allowed1.example.com,http://allowed2.example.com" {
		t.Errorf("CORS.AllowedOrigins = %q", got)
	}
	if !cfg.Debug {
		t.Error("Debug should default to true")
	}
	if cfg.Stage != "api" {
		t.Errorf("Stage = %q, want api", cfg.Stage)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_BACKEND", "SQLite")
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://a.example.com , ,http://b.example.com/ ")
	t.Setenv("RATE_LIMIT_RPS", "5")
	t.Setenv("RATE_LIMIT_BURST", "10")
	t.Setenv("DEBUG", "false")
	t.Setenv("STAGE", "prod")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.Store.Backend != "sqlite" {
		t.Errorf("Store.Backend = %q, want sqlite", cfg.Store.Backend)
	}
	want := []string{"http://a.example.com", "http://b.example.com/"}
	if strings.Join(cfg.CORS.AllowedOrigins, "|") != strings.Join(want, "|") {
		t.Errorf("CORS.AllowedOrigins = %v, want %v", cfg.CORS.AllowedOrigins, want)
	}
	if cfg.RateLimit.RequestsPerSecond != 5 || cfg.RateLimit.Burst != 10 {
		t.Errorf("RateLimit = %+v", cfg.RateLimit)
	}
	if cfg.Debug {
		t.Error("Debug should be false")
	}
	if cfg.Stage != "prod" {
		t.Errorf("Stage = %q, want prod", cfg.Stage)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "unknown backend", mutate: func(c *Config) { c.Store.Backend = "redis" }, wantErr: true},
		{name: "non numeric port", mutate: func(c *Config) { c.Port = "http" }, wantErr: true},
		{name: "bad environment", mutate: func(c *Config) { c.Environment = "qa" }, wantErr: true},
		{name: "bad log format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: true},
		{name: "rate without burst", mutate: func(c *Config) { c.RateLimit.RequestsPerSecond = 1 }, wantErr: true},
		{name: "negative rate", mutate: func(c *Config) { c.RateLimit.RequestsPerSecond = -1 }, wantErr: true},
		{name: "metrics path", mutate: func(c *Config) { c.Metrics.Path = "metrics" }, wantErr: true},
		{name: "empty allow-list", mutate: func(c *Config) { c.CORS.AllowedOrigins = []string{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAdaptConfigForServerless(t *testing.T) {
	cfg := Default()
	AdaptConfigForServerless(cfg, &ServerlessConfig{IsLambda: false})
	if cfg.Log.Format != "text" || !cfg.Metrics.Enabled {
		t.Errorf("server mode config changed: %+v", cfg)
	}

	AdaptConfigForServerless(cfg, &ServerlessConfig{IsLambda: true, FunctionName: "helloworld-dev"})
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
	}
	if cfg.Metrics.Enabled {
		t.Error("metrics should be disabled on Lambda")
	}
	if cfg.Store.Backend != "memory" {
		t.Errorf("Store.Backend = %q, want memory", cfg.Store.Backend)
	}
}

