package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	SpaceID string        `yaml:"spaceId"`
	APIKey  string        `yaml:"apiKey"`
	OAuth   *OAuthConfig  `yaml:"oauth"`
	Output  *OutputConfig `yaml:"output"`
}

// OAuthConfig holds credentials for bearer auth against the space, as an
// alternative to the API key.
type OAuthConfig struct {
	ClientID     string `yaml:"clientId"`
	ClientSecret string `yaml:"clientSecret"`
	RefreshToken string `yaml:"refreshToken"`
}

type OutputConfig struct {
	Dir      string `yaml:"dir"`
	Encoding string `yaml:"encoding"`
}

func Load(path string) (*Config, error) {
	var useDefaultConf bool
	useDefaultConf = (path == "")

	if useDefaultConf {
		path = ".backlog-summary.yaml"
	}

	conf := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && useDefaultConf {
			// No config was found, but no config path was specified either
			conf.applyEnv()
			return &conf, nil
		}
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	err = yaml.Unmarshal(data, &conf)
	if err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	conf.applyEnv()
	return &conf, nil
}

// applyEnv lets BACKLOG_SPACE_ID and BACKLOG_API_KEY override the file, so
// the API key can stay out of checked-in configs.
func (c *Config) applyEnv() {
	if spaceID := os.Getenv("BACKLOG_SPACE_ID"); spaceID != "" {
		c.SpaceID = spaceID
	}
	if apiKey := os.Getenv("BACKLOG_API_KEY"); apiKey != "" {
		c.APIKey = apiKey
	}
}

// Validate reports the first missing required setting.
func (c *Config) Validate() error {
	if c.SpaceID == "" {
		return fmt.Errorf("Backlog space ID is not set (config spaceId or BACKLOG_SPACE_ID)")
	}
	if c.APIKey == "" && c.OAuth == nil {
		return fmt.Errorf("no Backlog credentials (config apiKey, BACKLOG_API_KEY, or oauth section)")
	}
	return nil
}
