package config

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/kasuboski/nextup/config/mocks"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	t.Run("fail to read in config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cu := mocks.NewMockConfigUnmarshaler(ctrl)

		wantErr := errors.New("expected testing error")
		cu.EXPECT().ConfigFileUsed().Times(1).Return("fake-config.yaml")
		cu.EXPECT().ReadInConfig().Times(1).Return(wantErr)
		c, err := New(cu)
		if err == nil {
			t.Errorf("TestNew() err = %v, want %v", err, wantErr)
		}

		wantConfig := Config{}
		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %v, want %v", c, wantConfig)
		}
	})

	t.Run("success with file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("./testing/config.yaml")
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			Plex: Plex{
				URI:   "http://plex.local:32400",
				Token: "my-plex-token",
			},
			Sonarr: Sonarr{
				URI:    "http://sonarr.local:8989",
				APIKey: "my-sonarr-api-key",
			},
			Sync: Sync{
				WatchedPercent: 85,
				AlreadyWatched: WatchedDelete,
				GetOption:      GetSeason,
				ActionOption:   ActionMonitor,
			},
			HTTP: HTTP{
				Timeout: time.Second * 30,
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})

	t.Run("success without file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("")
		cu.SetDefault("sync.getOption", "episode")
		cu.SetDefault("sync.alreadyWatched", "keep")
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			Sync: Sync{
				GetOption:      GetEpisode,
				AlreadyWatched: WatchedKeep,
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Plex:   Plex{URI: "http://plex.local:32400", Token: "token"},
		Sonarr: Sonarr{URI: "http://sonarr.local:8989", APIKey: "key"},
		Sync:   Sync{WatchedPercent: 90},
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing plex token",
			mutate:  func(c *Config) { c.Plex.Token = "" },
			wantErr: true,
		},
		{
			name:    "sonarr uri is not a url",
			mutate:  func(c *Config) { c.Sonarr.URI = "not a url" },
			wantErr: true,
		},
		{
			name:    "watched percent out of range",
			mutate:  func(c *Config) { c.Sync.WatchedPercent = 120 },
			wantErr: true,
		},
		{
			name:   "unknown get option is left to the manager",
			mutate: func(c *Config) { c.Sync.GetOption = "weekly" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
