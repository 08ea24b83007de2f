package config

import (
	"fmt"
	"os"
	"strconv"
)

type keyType int

const (
	kString keyType = iota
	kInt
	kBool
)

type keySpec struct {
	key   string
	typ   keyType
	env   string
	apply func(cfg *Config, v any)
}

var specs = []keySpec{
	{
		key: "server.port", typ: kInt, env: "MEETSCRIBE_SERVER_PORT",
		apply: func(cfg *Config, v any) { cfg.Server.Port = v.(int) },
	},
	{
		key: "storage.backend", typ: kString, env: "MEETSCRIBE_STORAGE_BACKEND",
		apply: func(cfg *Config, v any) { cfg.Storage.Backend = v.(string) },
	},
	{
		key: "storage.data_dir", typ: kString, env: "MEETSCRIBE_STORAGE_DATA_DIR",
		apply: func(cfg *Config, v any) { cfg.Storage.DataDir = v.(string) },
	},
	{
		key: "storage.redis_addr", typ: kString, env: "MEETSCRIBE_REDIS_ADDR",
		apply: func(cfg *Config, v any) { cfg.Storage.RedisAddr = v.(string) },
	},
	{
		key: "storage.redis_password", typ: kString, env: "MEETSCRIBE_REDIS_PASSWORD",
		apply: func(cfg *Config, v any) { cfg.Storage.RedisPassword = v.(string) },
	},
	{
		key: "storage.redis_db", typ: kInt, env: "MEETSCRIBE_REDIS_DB",
		apply: func(cfg *Config, v any) { cfg.Storage.RedisDB = v.(int) },
	},
	{
		key: "browser.exec_path", typ: kString, env: "MEETSCRIBE_BROWSER_EXEC_PATH",
		apply: func(cfg *Config, v any) { cfg.Browser.ExecPath = v.(string) },
	},
	{
		key: "browser.headless", typ: kBool, env: "MEETSCRIBE_BROWSER_HEADLESS",
		apply: func(cfg *Config, v any) { cfg.Browser.Headless = v.(bool) },
	},
	{
		key: "browser.nav_timeout_seconds", typ: kInt, env: "MEETSCRIBE_BROWSER_NAV_TIMEOUT_SECONDS",
		apply: func(cfg *Config, v any) { cfg.Browser.NavTimeoutSeconds = v.(int) },
	},
	{
		key: "capture.max_duration_seconds", typ: kInt, env: "MEETSCRIBE_CAPTURE_MAX_DURATION_SECONDS",
		apply: func(cfg *Config, v any) { cfg.Capture.MaxDurationSeconds = v.(int) },
	},
	{
		key: "capture.poll_interval_seconds", typ: kInt, env: "MEETSCRIBE_CAPTURE_POLL_INTERVAL_SECONDS",
		apply: func(cfg *Config, v any) { cfg.Capture.PollIntervalSeconds = v.(int) },
	},
	{
		key: "notes.anthropic_api_key", typ: kString, env: "MEETSCRIBE_ANTHROPIC_API_KEY",
		apply: func(cfg *Config, v any) { cfg.Notes.AnthropicAPIKey = v.(string) },
	},
	{
		key: "notes.groq_api_key", typ: kString, env: "MEETSCRIBE_GROQ_API_KEY",
		apply: func(cfg *Config, v any) { cfg.Notes.GroqAPIKey = v.(string) },
	},
	{
		key: "session.max_concurrent_runs", typ: kInt, env: "MEETSCRIBE_SESSION_MAX_CONCURRENT_RUNS",
		apply: func(cfg *Config, v any) { cfg.Session.MaxConcurrentRuns = v.(int) },
	},
	{
		key: "log.level", typ: kString, env: "MEETSCRIBE_LOG_LEVEL",
		apply: func(cfg *Config, v any) { cfg.Log.Level = v.(string) },
	},
}

func applyBackend(cfg *Config, b Backend) error {
	for _, s := range specs {
		switch s.typ {
		case kString:
			v, ok, err := b.GetString(s.key)
			if err != nil {
				return fmt.Errorf("reading %s: %w", s.key, err)
			}
			if ok {
				s.apply(cfg, v)
			}
		case kInt:
			v, ok, err := b.GetInt(s.key)
			if err != nil {
				return fmt.Errorf("reading %s: %w", s.key, err)
			}
			if ok {
				s.apply(cfg, v)
			}
		case kBool:
			v, ok, err := b.GetBool(s.key)
			if err != nil {
				return fmt.Errorf("reading %s: %w", s.key, err)
			}
			if ok {
				s.apply(cfg, v)
			}
		}
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	for _, s := range specs {
		if s.env == "" {
			continue
		}
		raw := os.Getenv(s.env)
		if raw == "" {
			continue
		}
		switch s.typ {
		case kString:
			s.apply(cfg, raw)
		case kInt:
			if i, err := strconv.Atoi(raw); err == nil {
				s.apply(cfg, i)
			} else {
				fmt.Fprintf(os.Stderr, "[WARN] could not parse integer from env var %s=%q: %v. Using default value.\n", s.env, raw, err)
			}
		case kBool:
			if b, err := strconv.ParseBool(raw); err == nil {
				s.apply(cfg, b)
			} else {
				fmt.Fprintf(os.Stderr, "[WARN] could not parse bool from env var %s=%q: %v. Using default value.\n", s.env, raw, err)
			}
		}
	}
}
