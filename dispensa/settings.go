package main

import (
	_ "embed"

	"github.com/taldoflemis/rustic-roots/pacchetto"
)

//go:embed base.yaml
var baseConfig []byte

type CatalogSettings struct {
	TopSellingLimit       int64  `mapstructure:"top-selling-limit" validate:"required,min=1"`
	EnrichmentConcurrency int    `mapstructure:"enrichment-concurrency" validate:"required,min=1"`
	DefaultFoodImage      string `mapstructure:"default-food-image" validate:"required"`
}

type Settings struct {
	App           pacchetto.AppSettings           `mapstructure:"app" validate:"required"`
	HTTP          pacchetto.HTTPSettings          `mapstructure:"http" validate:"required"`
	Mongo         pacchetto.MongoSettings         `mapstructure:"mongo" validate:"required"`
	Nats          pacchetto.NatsSettings          `mapstructure:"nats"`
	Catalog       CatalogSettings                 `mapstructure:"catalog" validate:"required"`
	OpenTelemetry pacchetto.OpenTelemetrySettings `mapstructure:"opentelemetry" validate:"required"`
}

func LoadConfig() (*Settings, error) {
	return pacchetto.LoadConfig[Settings]("DISPENSA", baseConfig)
}
