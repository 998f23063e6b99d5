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

// Package config loads application configuration from YAML files and
// environment variables. Files are searched in the working directory and
// ~/.config/answerkit; environment variables use the ANSWERKIT_ prefix
// with underscores for nesting (ANSWERKIT_AI_MODEL overrides ai.model).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/caresuite/answerkit/ai"
	"github.com/caresuite/answerkit/store/feishu"
)

// Config is the top-level application configuration.
type Config struct {
	Feishu FeishuConfig `mapstructure:"feishu"`
	AI     AIConfig     `mapstructure:"ai"`
	Cache  CacheConfig  `mapstructure:"cache"`
}

// FeishuConfig holds Bitable credentials and table addressing. BaseLink
// may be a full share link or a bare app token; AppToken and TableID are
// derived from it when not set explicitly.
type FeishuConfig struct {
	AppID     string `mapstructure:"app_id"`
	AppSecret string `mapstructure:"app_secret"`
	BaseLink  string `mapstructure:"base_link"`
	AppToken  string `mapstructure:"app_token"`
	TableID   string `mapstructure:"table_id"`
}

// AIConfig holds the chat-model settings.
type AIConfig struct {
	Host            string  `mapstructure:"host"`
	APIKey          string  `mapstructure:"api_key"`
	Model           string  `mapstructure:"model"`
	Temperature     float64 `mapstructure:"temperature"`
	MaxTokens       int     `mapstructure:"max_tokens"`
	MaxAnswerGrowth float64 `mapstructure:"max_answer_growth"`
}

// CacheConfig holds local entry-cache settings.
type CacheConfig struct {
	Dir      string `mapstructure:"dir"`
	InMemory bool   `mapstructure:"in_memory"`
}

// Load reads configuration from the given file, or from the default
// search paths when path is empty. A missing default file is not an
// error; defaults and environment variables still apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("answerkit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "answerkit"))
		}
	}

	v.SetEnvPrefix("ANSWERKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Derive table addressing from the share link when not given directly.
	if cfg.Feishu.BaseLink != "" {
		appToken, tableID := feishu.ParseBaseLink(cfg.Feishu.BaseLink)
		if cfg.Feishu.AppToken == "" {
			cfg.Feishu.AppToken = appToken
		}
		if cfg.Feishu.TableID == "" {
			cfg.Feishu.TableID = tableID
		}
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := ai.DefaultConfig()
	v.SetDefault("ai.host", defaults.Host)
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.model", defaults.Model)
	v.SetDefault("ai.temperature", defaults.Temperature)
	v.SetDefault("ai.max_tokens", defaults.MaxTokens)
	v.SetDefault("ai.max_answer_growth", defaults.MaxAnswerGrowth)

	cacheDir := "answerkit-cache"
	if home, err := os.UserHomeDir(); err == nil {
		cacheDir = filepath.Join(home, ".cache", "answerkit")
	}
	v.SetDefault("cache.dir", cacheDir)
	v.SetDefault("cache.in_memory", false)

	v.SetDefault("feishu.app_id", "")
	v.SetDefault("feishu.app_secret", "")
	v.SetDefault("feishu.base_link", "")
	v.SetDefault("feishu.app_token", "")
	v.SetDefault("feishu.table_id", "")
}

// ValidateFeishu checks that everything needed to reach the remote table
// is present. Called by commands that talk to the Bitable API; offline
// commands skip it.
func (c *Config) ValidateFeishu() error {
	if c.Feishu.AppID == "" || c.Feishu.AppSecret == "" {
		return errors.New("config: feishu.app_id and feishu.app_secret are required")
	}
	if c.Feishu.AppToken == "" {
		return errors.New("config: feishu.app_token or feishu.base_link is required")
	}
	if c.Feishu.TableID == "" {
		return errors.New("config: feishu.table_id is required (set it or use a base_link with a table parameter)")
	}
	return nil
}

// AIServiceConfig converts the loaded settings into an ai.Config.
func (c *Config) AIServiceConfig() *ai.Config {
	return ai.NewConfig(
		ai.WithHost(c.AI.Host),
		ai.WithAPIKey(c.AI.APIKey),
		ai.WithModel(c.AI.Model),
		ai.WithTemperature(c.AI.Temperature),
		ai.WithMaxTokens(c.AI.MaxTokens),
		ai.WithMaxAnswerGrowth(c.AI.MaxAnswerGrowth),
	)
}
