package pacchetto

import (
	"bytes"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type CORSSettings struct {
	Origins []string `mapstructure:"origins" validate:"min=1,dive,url"`
	Methods []string `mapstructure:"methods" validate:"min=1,dive,oneof=GET POST PUT DELETE OPTIONS PATCH HEAD"`
	Headers []string `mapstructure:"headers" validate:"min=1,dive,baseheader"`
}

type HTTPSettings struct {
	Port   string       `mapstructure:"port" validate:"required,numeric"`
	Prefix string       `mapstructure:"prefix" validate:"omitempty,startswith=/"`
	IP     string       `mapstructure:"ip" validate:"required,ip"`
	CORS   CORSSettings `mapstructure:"cors" validate:"required"`
}

type MongoCollectionSettings struct {
	Foods  string `mapstructure:"foods" validate:"required"`
	Orders string `mapstructure:"orders" validate:"required"`
}

type MongoSettings struct {
	URI      string `mapstructure:"uri" validate:"required,uri"`
	Database string `mapstructure:"database" validate:"required"`
	// Optional, the URI may already carry credentials
	Username                string                  `mapstructure:"username"`
	Password                string                  `mapstructure:"password" validate:"required_with=Username"`
	Collections             MongoCollectionSettings `mapstructure:"collections" validate:"required"`
	ConnectTimeoutInSeconds int                     `mapstructure:"connect-timeout-in-seconds" validate:"required,min=1"`
	MaxPoolSize             uint64                  `mapstructure:"max-pool-size" validate:"required,min=1"`
}

func (m MongoSettings) ConnectTimeout() time.Duration {
	return time.Duration(m.ConnectTimeoutInSeconds) * time.Second
}

type NatsSettings struct {
	Enabled        bool `mapstructure:"enabled"`
	UseCredentials bool `mapstructure:"usecredentials"`
	// Only used if UseCredentials is true
	Username string `mapstructure:"username" validate:"required_if=UseCredentials true"`
	Password string `mapstructure:"password" validate:"required_if=UseCredentials true"`
	Host     string `mapstructure:"host" validate:"required_if=Enabled true"`
	Port     int    `mapstructure:"port" validate:"required_if=Enabled true,min=0"`
	Subject  string `mapstructure:"subject" validate:"required_if=Enabled true"`
}

type AppSettings struct {
	Name    string `mapstructure:"name" validate:"required"`
	Version string `mapstructure:"version" validate:"required"`
	Env     string `mapstructure:"env" validate:"required,oneof=local dev staging prod"`
}

type OpenTelemetryLogSettings struct {
	TimeoutInSec  int64 `mapstructure:"timeout"`
	IntervalInSec int64 `mapstructure:"interval"`
	MaxQueueSize  int   `mapstructure:"maxqueuesize"`
	BatchSize     int   `mapstructure:"batchsize"`
}

type OpenTelemetryTraceSettings struct {
	TimeoutInSec int64   `mapstructure:"timeout"`
	MaxQueueSize int     `mapstructure:"maxqueuesize"`
	BatchSize    int     `mapstructure:"batchsize"`
	SampleRate   float64 `mapstructure:"samplerate" validate:"gte=0,lte=1"`
}

type OpenTelemetryMetricSettings struct {
	IntervalInSec int64 `mapstructure:"interval"`
	TimeoutInSec  int64 `mapstructure:"timeout"`
}

type OpenTelemetrySettings struct {
	Enabled  bool                        `mapstructure:"enabled"`
	Endpoint string                      `mapstructure:"endpoint" validate:"required_if=Enabled true"`
	Metrics  OpenTelemetryMetricSettings `mapstructure:"metrics"`
	Traces   OpenTelemetryTraceSettings  `mapstructure:"traces"`
	Logs     OpenTelemetryLogSettings    `mapstructure:"logs"`
}

var allowedHeaders = map[string]struct{}{
	"Accept": {}, "Authorization": {}, "Content-Type": {}, "X-CSRF-Token": {},
}

// NewSettingsValidator returns a validator that knows the custom rules used
// by the settings structs in this package.
func NewSettingsValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("baseheader", func(fl validator.FieldLevel) bool {
		header := fl.Field().String()
		_, ok := allowedHeaders[header]
		return ok
	})
	return validate
}

// LoadConfig reads the embedded yaml, overlays environment variables named
// PREFIX_SECTION_KEY and validates the result.
func LoadConfig[T any](envPrefix string, baseConfig []byte) (*T, error) {
	var cfg *T

	v := viper.New()
	v.SetConfigType("yaml")
	err := v.ReadConfig(bytes.NewReader(baseConfig))
	if err != nil {
		return nil, err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	v.AutomaticEnv()

	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	if err := NewSettingsValidator().Struct(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
