package pacchetto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORSSettingsValidation(t *testing.T) {
	// Arrange
	validate := NewSettingsValidator()

	tests := []struct {
		name    string
		cors    CORSSettings
		wantErr bool
	}{
		{
			name: "valid cors",
			cors: CORSSettings{
				Origins: []string{"https://example.com"},
				Methods: []string{"GET", "POST", "PATCH"},
				Headers: []string{"Accept", "Content-Type"},
			},
			wantErr: false,
		},
		{
			name: "invalid method",
			cors: CORSSettings{
				Origins: []string{"https://example.com"},
				Methods: []string{"FOO"},
				Headers: []string{"Accept"},
			},
			wantErr: true,
		},
		{
			name: "invalid header",
			cors: CORSSettings{
				Origins: []string{"https://example.com"},
				Methods: []string{"GET"},
				Headers: []string{"X-INVALID"},
			},
			wantErr: true,
		},
		{
			name: "invalid origin",
			cors: CORSSettings{
				Origins: []string{"*"},
				Methods: []string{"GET"},
				Headers: []string{"Accept"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		// Act
		err := validate.Struct(tt.cors)

		// Assert
		if tt.wantErr {
			assert.Error(t, err, tt.name)
		} else {
			assert.NoError(t, err, tt.name)
		}
	}
}

func TestMongoSettingsValidation(t *testing.T) {
	validate := NewSettingsValidator()

	valid := func() MongoSettings {
		return MongoSettings{
			URI:      "mongodb://localhost:27017",
			Database: "foodDB",
			Collections: MongoCollectionSettings{
				Foods:  "foods",
				Orders: "food_order",
			},
			ConnectTimeoutInSeconds: 10,
			MaxPoolSize:             20,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*MongoSettings)
		wantErr bool
	}{
		{
			name:   "valid settings",
			mutate: func(*MongoSettings) {},
		},
		{
			name:    "missing uri",
			mutate:  func(m *MongoSettings) { m.URI = "" },
			wantErr: true,
		},
		{
			name:    "username without password",
			mutate:  func(m *MongoSettings) { m.Username = "rustic" },
			wantErr: true,
		},
		{
			name: "username with password",
			mutate: func(m *MongoSettings) {
				m.Username = "rustic"
				m.Password = "roots"
			},
		},
		{
			name:    "missing orders collection",
			mutate:  func(m *MongoSettings) { m.Collections.Orders = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := validate.Struct(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

type testSettings struct {
	App   AppSettings   `mapstructure:"app" validate:"required"`
	Nats  NatsSettings  `mapstructure:"nats"`
	Mongo MongoSettings `mapstructure:"mongo" validate:"required"`
}

var testConfig = []byte(`
app:
  name: dispensa
  version: 1.0.0
  env: local
nats:
  enabled: false
mongo:
  uri: mongodb://localhost:27017
  database: foodDB
  collections:
    foods: foods
    orders: food_order
  connect-timeout-in-seconds: 10
  max-pool-size: 20
`)

func TestLoadConfigOverlaysEnvironment(t *testing.T) {
	t.Setenv("TESTSVC_MONGO_DATABASE", "otherDB")
	t.Setenv("TESTSVC_MONGO_CONNECTTIMEOUTINSECONDS", "3")

	cfg, err := LoadConfig[testSettings]("TESTSVC", testConfig)
	require.NoError(t, err)

	assert.Equal(t, "dispensa", cfg.App.Name)
	assert.Equal(t, "otherDB", cfg.Mongo.Database)
	assert.Equal(t, 3, cfg.Mongo.ConnectTimeoutInSeconds)
	assert.Equal(t, "food_order", cfg.Mongo.Collections.Orders)
	assert.False(t, cfg.Nats.Enabled)
}

func TestLoadConfigRejectsInvalidSettings(t *testing.T) {
	t.Setenv("TESTSVC_APP_ENV", "moon")

	_, err := LoadConfig[testSettings]("TESTSVC", testConfig)
	assert.Error(t, err)
}
