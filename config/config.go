// Package config provides configuration management for the eval-demo service.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/kashyap-bhatt15/eval-demo/logger"
)

// Config holds immutable configuration for the eval-demo service.
type Config struct {
	Provider  string
	Model     string
	APIKey    string
	Host      string
	Port      int
	LLMURL    string
	OllamaURL string
	Debug     bool

	// Logger
	Logger logger.Logger
}

// FromEnv loads configuration from environment variables with defaults.
//
// Supported environment variables:
//   - EVALDEMO_PROVIDER: language model provider: openai, anthropic, gemini, ollama or mock (default: "openai")
//   - EVALDEMO_MODEL: provider model name (default: provider-specific)
//   - EVALDEMO_API_KEY: provider API key; falls back to the provider's native
//     variable (OPENAI_API_KEY, ANTHROPIC_API_KEY, GOOGLE_API_KEY)
//   - EVALDEMO_HOST: hostname to listen on (default: "localhost")
//   - EVALDEMO_PORT: port to listen on (default: 8000)
//   - EVALDEMO_LLM_URL: base URL the evaluation harness targets (default: the local server)
//   - EVALDEMO_OLLAMA_URL: ollama server URL (default: "http://localhost:11434")
//   - EVALDEMO_DEBUG: enable debug logging (default: false)
func FromEnv() *Config {
	provider := strings.ToLower(getEnvString("EVALDEMO_PROVIDER", "openai"))
	host := getEnvString("EVALDEMO_HOST", "localhost")
	port := getEnvInt("EVALDEMO_PORT", 8000)

	defaultLLMURL := fmt.Sprintf("http://%s", net.JoinHostPort(host, strconv.Itoa(port)))

	return &Config{
		Provider:  provider,
		Model:     getEnvString("EVALDEMO_MODEL", ""),
		APIKey:    getEnvString("EVALDEMO_API_KEY", nativeAPIKey(provider)),
		Host:      host,
		Port:      port,
		LLMURL:    getEnvString("EVALDEMO_LLM_URL", defaultLLMURL),
		OllamaURL: getEnvString("EVALDEMO_OLLAMA_URL", "http://localhost:11434"),
		Debug:     getEnvBool("EVALDEMO_DEBUG", false),
	}
}

// Validate performs the fail-fast startup checks. It must be called once at
// process start, before any request is served.
func (c *Config) Validate() error {
	switch c.Provider {
	case "openai", "anthropic", "gemini":
		if c.APIKey == "" {
			return fmt.Errorf("config: provider %q requires an API key (set EVALDEMO_API_KEY)", c.Provider)
		}
	case "ollama", "mock":
		// no credentials required
	default:
		return fmt.Errorf("config: unknown provider %q", c.Provider)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", c.Port)
	}
	return nil
}

// Addr returns the host:port address the server listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// nativeAPIKey returns the provider's conventional API key variable, so the
// service works in environments already configured for that provider.
func nativeAPIKey(provider string) string {
	switch provider {
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	case "anthropic":
		return os.Getenv("ANTHROPIC_API_KEY")
	case "gemini":
		return os.Getenv("GOOGLE_API_KEY")
	default:
		return ""
	}
}

// getEnvString returns the trimmed environment variable value or the default
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

// getEnvBool returns the environment variable as a bool or the default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(strings.TrimSpace(value)) == "true"
	}
	return defaultValue
}

// getEnvInt returns the environment variable as an int or the default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return n
		}
	}
	return defaultValue
}
