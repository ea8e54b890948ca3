package cmd

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read into Config.
const EnvPrefix = "TRACKER"

const (
	StoreDriverMemory = "memory"
	StoreDriverSQLite = "sqlite"
)

type Config struct {
	HTTPPort  string `envconfig:"HTTP_PORT" default:"8080" validate:"required,numeric"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json" validate:"oneof=json console"`

	StoreDriver string `envconfig:"STORE_DRIVER" default:"memory" validate:"oneof=memory sqlite"`
	Seed        bool   `envconfig:"SEED" default:"true"`
	SeedFile    string `envconfig:"SEED_FILE"`

	MapCenterLat float64 `envconfig:"MAP_CENTER_LAT" default:"31.2304" validate:"gte=-90,lte=90"`
	MapCenterLng float64 `envconfig:"MAP_CENTER_LNG" default:"121.4737" validate:"gte=-180,lte=180"`
	MapZoom      int     `envconfig:"MAP_ZOOM" default:"5" validate:"gte=0,lte=22"`
	FocusZoom    int     `envconfig:"FOCUS_ZOOM" default:"11" validate:"gte=1,lte=22"`

	TileURL         string `envconfig:"TILE_URL" default:"https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png" validate:"required"`
	TileAttribution string `envconfig:"TILE_ATTRIBUTION" default:"&copy; OpenStreetMap contributors"`
	TileMaxZoom     int    `envconfig:"TILE_MAX_ZOOM" default:"18" validate:"gte=1,lte=22"`
}

// LoadConfig reads Config from the environment and validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
