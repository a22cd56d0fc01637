package environment

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
)

// Production defines the prod environment
const Production = "prod"

// Staging defines the staging environment
const Staging = "staging"

// Dev defines the dev environment
const Dev = "dev"

// Environment holds the process configuration
type Environment struct {
	Environment       string `mapstructure:"APP_ENV"`
	Port              string `mapstructure:"PORT"`
	Secret            string `mapstructure:"SECRET"`
	Database          string `mapstructure:"DATABASE"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	MongoTransactions string `mapstructure:"MONGO_TRANSACTIONS"`
	Redis             string `mapstructure:"REDIS"`
	RedisPassword     string `mapstructure:"REDIS_PASSWORD"`
	TimeZone          string `mapstructure:"TIME_ZONE"`
	GCPProjectID      string `mapstructure:"GCP_PROJECT_ID"`
}

var keys = []string{
	"APP_ENV", "PORT", "SECRET", "DATABASE", "DATABASE_URL", "MONGO_TRANSACTIONS",
	"REDIS", "REDIS_PASSWORD", "TIME_ZONE", "GCP_PROJECT_ID",
}

var defaults = map[string]string{
	"APP_ENV":            Dev,
	"PORT":               "8080",
	"DATABASE":           "vetcare",
	"DATABASE_URL":       "mongodb://localhost:27017",
	"MONGO_TRANSACTIONS": "true",
	"TIME_ZONE":          "Local",
}

// ErrMissingSecret is returned when no JWT secret is configured outside of dev
var ErrMissingSecret = errors.New("SECRET must be set outside of the dev environment")

// Load reads the optional dotenv file at path, overlays the process environment and applies defaults
func Load(path string) (*Environment, error) {
	data := map[string]string{}

	if path != "" {
		fileData, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		for k, v := range fileData {
			data[k] = v
		}
	}

	for _, key := range keys {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			data[key] = v
		}
	}

	for key, v := range defaults {
		if data[key] == "" {
			data[key] = v
		}
	}

	env := Environment{}
	err := mapstructure.Decode(data, &env)
	if err != nil {
		return nil, err
	}

	if env.Secret == "" {
		if env.Environment != Dev {
			return nil, ErrMissingSecret
		}
		env.Secret = "local"
	}

	return &env, nil
}

// IsProduction reports whether the environment is prod
func (e *Environment) IsProduction() bool {
	return e.Environment == Production
}

// TransactionsEnabled reports whether multi-document transactions should be used
func (e *Environment) TransactionsEnabled() bool {
	return e.MongoTransactions != "false"
}
