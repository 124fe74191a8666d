package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation task being performed.
type TaskType string

const (
	TaskFieldGenerate TaskType = "field_generate"
	TaskRefine        TaskType = "refine"
	TaskCritique      TaskType = "critique"
	TaskSuggest       TaskType = "suggest"
	TaskFullPlan      TaskType = "full_plan"
	TaskAnalysis      TaskType = "analysis"
)

// Config holds all configuration for the generation gateway.
type Config struct {
	Endpoint  string
	TimeoutMs int
	LogCalls  bool
	// SystemPreamble is prepended to every prompt since the provider has
	// no separate system-instruction field.
	SystemPreamble string
}

const defaultSystemPreamble = "You are an assistant specialized in education, focused on " +
	"creating Individualized Educational Plans. Your answers must be professional, " +
	"well structured, and aimed at supporting educators."

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Endpoint:       "https://apifreellm.com/api/chat",
		TimeoutMs:      60000,
		LogCalls:       false,
		SystemPreamble: defaultSystemPreamble,
	}
}

// LoadConfig reads gateway configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("IEPDESK_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("IEPDESK_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("IEPDESK_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("IEPDESK_LLM_SYSTEM_PREAMBLE"); v != "" {
		cfg.SystemPreamble = v
	}

	return cfg
}
