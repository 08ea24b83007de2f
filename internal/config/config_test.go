package config

import "testing"

// mapBackend is a test double for the config file backend.
type mapBackend map[string]any

func (m mapBackend) GetString(key string) (string, bool, error) {
	v, ok := m[key]
	if !ok {
		return "", false, nil
	}
	return v.(string), true, nil
}

func (m mapBackend) GetInt(key string) (int, bool, error) {
	v, ok := m[key]
	if !ok {
		return 0, false, nil
	}
	return v.(int), true, nil
}

func (m mapBackend) GetBool(key string) (bool, bool, error) {
	v, ok := m[key]
	if !ok {
		return false, false, nil
	}
	return v.(bool), true, nil
}

// TestDefaults verifies the default values are applied when nothing is
// configured.
func TestDefaults(t *testing.T) {
	cfg, err := loadWith(mapBackend{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 4600 {
		t.Errorf("Server.Port = %d, want 4600", cfg.Server.Port)
	}
	if cfg.Storage.Backend != "memory" {
		t.Errorf("Storage.Backend = %q, want %q", cfg.Storage.Backend, "memory")
	}
	if !cfg.Browser.Headless {
		t.Error("Browser.Headless = false, want true")
	}
	if cfg.Browser.NavTimeoutSeconds != 60 {
		t.Errorf("Browser.NavTimeoutSeconds = %d, want 60", cfg.Browser.NavTimeoutSeconds)
	}
	if cfg.Capture.MaxDurationSeconds != 60 {
		t.Errorf("Capture.MaxDurationSeconds = %d, want 60", cfg.Capture.MaxDurationSeconds)
	}
	if cfg.Capture.PollIntervalSeconds != 5 {
		t.Errorf("Capture.PollIntervalSeconds = %d, want 5", cfg.Capture.PollIntervalSeconds)
	}
	if cfg.Session.MaxConcurrentRuns != 4 {
		t.Errorf("Session.MaxConcurrentRuns = %d, want 4", cfg.Session.MaxConcurrentRuns)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Notes.AnthropicAPIKey != "" || cfg.Notes.GroqAPIKey != "" {
		t.Error("credentials should default to empty")
	}
}

// TestBackendValues verifies config file values replace defaults.
func TestBackendValues(t *testing.T) {
	cfg, err := loadWith(mapBackend{
		"server.port":                  9000,
		"storage.backend":              "redis",
		"storage.redis_addr":           "localhost:6379",
		"browser.headless":             false,
		"capture.max_duration_seconds": 300,
		"notes.anthropic_api_key":      "file-key",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Storage.Backend != "redis" || cfg.Storage.RedisAddr != "localhost:6379" {
		t.Errorf("storage config not applied: %+v", cfg.Storage)
	}
	if cfg.Browser.Headless {
		t.Error("Browser.Headless = true, want false")
	}
	if cfg.Capture.MaxDurationSeconds != 300 {
		t.Errorf("Capture.MaxDurationSeconds = %d, want 300", cfg.Capture.MaxDurationSeconds)
	}
	if cfg.Notes.AnthropicAPIKey != "file-key" {
		t.Errorf("Notes.AnthropicAPIKey = %q", cfg.Notes.AnthropicAPIKey)
	}
}

// TestEnvOverride verifies environment variables override config file values.
func TestEnvOverride(t *testing.T) {
	t.Setenv("MEETSCRIBE_SERVER_PORT", "4700")
	t.Setenv("MEETSCRIBE_STORAGE_BACKEND", "sqlite")
	t.Setenv("MEETSCRIBE_ANTHROPIC_API_KEY", "env-key")
	t.Setenv("MEETSCRIBE_BROWSER_HEADLESS", "false")

	cfg, err := loadWith(mapBackend{
		"server.port":             4600,
		"notes.anthropic_api_key": "file-key",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 4700 {
		t.Errorf("Server.Port = %d, want 4700", cfg.Server.Port)
	}
	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("Storage.Backend = %q, want %q", cfg.Storage.Backend, "sqlite")
	}
	if cfg.Notes.AnthropicAPIKey != "env-key" {
		t.Errorf("Notes.AnthropicAPIKey = %q, want %q", cfg.Notes.AnthropicAPIKey, "env-key")
	}
	if cfg.Browser.Headless {
		t.Error("Browser.Headless = true, want false from env")
	}
}

// TestEnvOverrideBadValues verifies unparseable env values are ignored.
func TestEnvOverrideBadValues(t *testing.T) {
	t.Setenv("MEETSCRIBE_SERVER_PORT", "not-a-number")
	t.Setenv("MEETSCRIBE_BROWSER_HEADLESS", "not-a-bool")

	cfg, err := loadWith(mapBackend{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 4600 {
		t.Errorf("Server.Port = %d, want default 4600", cfg.Server.Port)
	}
	if !cfg.Browser.Headless {
		t.Error("Browser.Headless = false, want default true")
	}
}
