package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// Mongo
	MongoURI string `envconfig:"MONGODB_URI" required:"true"`
	DBName   string `envconfig:"DB_NAME" default:"quizApp"`
	// Network
	Port string `envconfig:"PORT" default:"5000"`
	// Logging
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
