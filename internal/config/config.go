// Package config loads server configuration from a JSON config file and
// MEETSCRIBE_* environment variables, env taking precedence. Text-generation
// credentials are optional: without them the notes pipeline falls back to
// the offline generator.
package config

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Browser BrowserConfig
	Capture CaptureConfig
	Notes   NotesConfig
	Session SessionConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port int
}

type StorageConfig struct {
	// Backend selects the Job Record store: "memory", "redis", or "sqlite".
	Backend       string
	DataDir       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type BrowserConfig struct {
	// ExecPath overrides the Chrome binary location; empty uses the
	// default lookup.
	ExecPath string
	Headless bool
	// NavTimeoutSeconds bounds navigation to the meeting page.
	NavTimeoutSeconds int
}

type CaptureConfig struct {
	// MaxDurationSeconds bounds the capture window per run.
	MaxDurationSeconds int
	// PollIntervalSeconds is the sleep between caption-buffer drains.
	PollIntervalSeconds int
}

type NotesConfig struct {
	AnthropicAPIKey string
	GroqAPIKey      string
}

type SessionConfig struct {
	MaxConcurrentRuns int
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port: 4600,
		},
		Storage: StorageConfig{
			Backend: "memory",
			DataDir: defaultDataDir(),
		},
		Browser: BrowserConfig{
			Headless:          true,
			NavTimeoutSeconds: 60,
		},
		Capture: CaptureConfig{
			MaxDurationSeconds:  60,
			PollIntervalSeconds: 5,
		},
		Session: SessionConfig{
			MaxConcurrentRuns: 4,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the JSON config file at
// $XDG_CONFIG_HOME/meetscribe/config.json, then applies MEETSCRIBE_*
// environment overrides.
func Load() (Config, error) {
	return loadWith(newFileBackend())
}

func loadWith(b Backend) (Config, error) {
	cfg := defaults()
	if err := applyBackend(&cfg, b); err != nil {
		return Config{}, err
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}
