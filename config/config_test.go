package config

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sportarr/sportarr/config/mocks"
	"github.com/spf13/viper"
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
			SportsDB: SportsDB{
				Scheme: "https",
				Host:   "my-host",
				APIKey: "my-api-key",
			},
			Leagues: []LeagueMapping{
				{Name: "NHL Rips", ID: "4380"},
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})

	t.Run("success without file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("")
		cu.SetDefault("sportsdb.scheme", "https")
		cu.SetDefault("server.port", 8080)
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			SportsDB: SportsDB{
				Scheme: "https",
			},
			Server: Server{
				Port: 8080,
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})

	t.Run("invalid mapping fails validation", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("")
		cu.SetDefault("leagues", []map[string]string{{"name": "NHL"}})
		if _, err := New(cu); err == nil {
			t.Error("TestNew() expected a validation error for a mapping without an id")
		}
	})
}

func TestLeagueMappings(t *testing.T) {
	c := Config{
		Leagues: []LeagueMapping{
			{Name: "NHL Rips", ID: "4380"},
			{Name: "Footy", ID: "4328"},
		},
	}

	got := c.LeagueMappings()
	want := map[string]string{"NHL Rips": "4380", "Footy": "4328"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LeagueMappings() = %v, want %v", got, want)
	}

	if (Config{}).LeagueMappings() != nil {
		t.Error("LeagueMappings() on an empty config should be nil")
	}
}
