package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Plex   Plex   `json:"plex" yaml:"plex" mapstructure:"plex"`
	Sonarr Sonarr `json:"sonarr" yaml:"sonarr" mapstructure:"sonarr"`
	Sync   Sync   `json:"sync" yaml:"sync" mapstructure:"sync"`
	HTTP   HTTP   `json:"http" yaml:"http" mapstructure:"http"`
	Lock   Lock   `json:"lock" yaml:"lock" mapstructure:"lock"`
	Log    Log    `json:"log" yaml:"log" mapstructure:"log"`
}

type Plex struct {
	URI   string `json:"uri" yaml:"uri" mapstructure:"uri" validate:"required,url"`
	Token string `json:"token" yaml:"token" mapstructure:"token" validate:"required"`
}

type Sonarr struct {
	URI    string `json:"uri" yaml:"uri" mapstructure:"uri" validate:"required,url"`
	APIKey string `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey" validate:"required"`
}

// Sync controls what happens once the currently playing episode is known.
// WatchedPercent is accepted for compatibility but no decision consults it.
type Sync struct {
	WatchedPercent int           `json:"watchedPercent" yaml:"watchedPercent" mapstructure:"watchedPercent" validate:"min=0,max=100"`
	AlreadyWatched WatchedAction `json:"alreadyWatched" yaml:"alreadyWatched" mapstructure:"alreadyWatched"`
	GetOption      GetOption     `json:"getOption" yaml:"getOption" mapstructure:"getOption"`
	ActionOption   ActionOption  `json:"actionOption" yaml:"actionOption" mapstructure:"actionOption"`
}

type HTTP struct {
	// Timeout of zero leaves requests unbounded
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"min=0"`
}

// Lock configures the file lock that keeps two sync runs from racing on the PVR.
// An empty path disables locking.
type Lock struct {
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

type Log struct {
	Level string `json:"level" yaml:"level" mapstructure:"level"`
	JSON  bool   `json:"json" yaml:"json" mapstructure:"json"`
}

// GetOption selects between acting on the next episode or the rest of the season
type GetOption string

const (
	GetEpisode GetOption = "episode"
	GetSeason  GetOption = "season"
)

// ActionOption selects what is requested for the next episode
type ActionOption string

const (
	ActionSearch  ActionOption = "search"
	ActionMonitor ActionOption = "monitor"
)

// WatchedAction decides what happens to files of episodes already watched
type WatchedAction string

const (
	WatchedKeep   WatchedAction = "keep"
	WatchedDelete WatchedAction = "delete"
)

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

	err := cu.Unmarshal(&c)
	return c, err
}

// Validate checks that both upstreams are reachable in principle: endpoints and credentials are present.
// Sync modes are left to the manager, which reports unknown values when it runs.
func (c Config) Validate() error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(c)
}
