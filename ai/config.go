// Copyright 2026 Caresuite
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ai

import (
	"errors"
	"strings"
)

// Config holds configuration for the answer service.
type Config struct {
	// Host is the base URL of the OpenAI-compatible chat API.
	// Example: "http://localhost:11434/v1" for a local server,
	// "https://api.openai.com/v1" for the hosted API.
	Host string

	// APIKey authenticates requests to the chat API. Leave empty for
	// local services that do not require authentication.
	APIKey string

	// Model is the chat model identifier.
	// Example: "qwen2.5:7b", "gpt-4o-mini"
	Model string

	// Temperature controls sampling randomness for generation.
	// Default: 0.7
	Temperature float64

	// MaxTokens caps the length of a single model response.
	// Default: 2000
	MaxTokens int

	// MaxAnswerGrowth caps the optimized reply length relative to the
	// original, measured in runes. 1.5 means the optimized reply may be
	// at most 150% of the original's length.
	// Default: 1.5
	MaxAnswerGrowth float64
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithHost sets the chat API base URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithAPIKey sets the chat API key.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithModel sets the chat model identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) ConfigOption {
	return func(c *Config) {
		c.Temperature = t
	}
}

// WithMaxTokens sets the response token limit.
func WithMaxTokens(n int) ConfigOption {
	return func(c *Config) {
		c.MaxTokens = n
	}
}

// WithMaxAnswerGrowth sets the optimized-reply length cap as a multiple
// of the original reply's rune count.
func WithMaxAnswerGrowth(factor float64) ConfigOption {
	return func(c *Config) {
		c.MaxAnswerGrowth = factor
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services.
func DefaultConfig() *Config {
	return &Config{
		Host:            "http://localhost:11434/v1",
		Model:           "qwen2.5:7b",
		Temperature:     0.7,
		MaxTokens:       2000,
		MaxAnswerGrowth: 1.5,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
//
// Example:
//   cfg := NewConfig(
//       WithHost("https://api.openai.com/v1"),
//       WithAPIKey(key),
//       WithModel("gpt-4o-mini"),
//   )
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It adds the /v1 suffix to the host if missing, which is required by
// most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.Host != "" && !strings.HasSuffix(c.Host, "/v1") {
		c.Host = strings.TrimSuffix(c.Host, "/")
		c.Host = c.Host + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.Host == "" {
		return errors.New("ai config: Host is required")
	}
	if c.Model == "" {
		return errors.New("ai config: Model is required")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return errors.New("ai config: Temperature must be between 0 and 2")
	}
	if c.MaxTokens < 1 {
		return errors.New("ai config: MaxTokens must be positive")
	}
	if c.MaxAnswerGrowth < 1 {
		return errors.New("ai config: MaxAnswerGrowth must be at least 1")
	}
	return nil
}
