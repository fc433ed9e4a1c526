// Package config loads the service configuration from the environment.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds every tunable the service reads at startup
type Config struct {
	Port          string `envconfig:"PORT" default:"8000"`
	MongoURI      string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	DatabaseName  string `envconfig:"DATABASE_NAME" default:"burgerbuilder"`
	JWTSecret     string `envconfig:"JWT_SECRET" required:"true"`
	PostmarkToken string `envconfig:"POSTMARK_API_TOKEN" default:""`
	EmailSender   string `envconfig:"EMAIL_SENDER" default:""`
	DialPrefix    string `envconfig:"PHONE_DIAL_PREFIX" default:"+"`
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
