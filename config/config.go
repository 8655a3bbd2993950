package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	SportsDB SportsDB        `json:"sportsdb" yaml:"sportsdb" mapstructure:"sportsdb"`
	Library  Library         `json:"library" yaml:"library" mapstructure:"library"`
	Storage  Storage         `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server   Server          `json:"server" yaml:"server" mapstructure:"server"`
	Leagues  []LeagueMapping `json:"leagues" yaml:"leagues" mapstructure:"leagues" validate:"dive"`
}

type SportsDB struct {
	Scheme      string        `json:"scheme" yaml:"scheme" mapstructure:"scheme" validate:"omitempty,oneof=http https"`
	Host        string        `json:"host" yaml:"host" mapstructure:"host"`
	APIKey      string        `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries" validate:"gte=0"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port" validate:"gte=0,lte=65535"`
}

type Library struct {
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string   `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
	Schemas  []string `json:"schemas" yaml:"schemas" mapstructure:"schemas"`
}

// LeagueMapping pins a series folder name to a league id, overriding every
// other resolution source.
type LeagueMapping struct {
	Name string `json:"name" yaml:"name" mapstructure:"name" validate:"required"`
	ID   string `json:"id" yaml:"id" mapstructure:"id" validate:"required"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	if err := cu.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, c.Validate()
}

// Validate checks the configuration against its field constraints.
func (c Config) Validate() error {
	return validator.New().Struct(c)
}

// LeagueMappings flattens the configured mappings for the resolver.
func (c Config) LeagueMappings() map[string]string {
	if len(c.Leagues) == 0 {
		return nil
	}

	m := make(map[string]string, len(c.Leagues))
	for _, l := range c.Leagues {
		m[l.Name] = l.ID
	}
	return m
}
