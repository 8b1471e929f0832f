package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds environment-driven configuration. Every key can be set as
// PERGOLA_<KEY>; DATABASE_URL and JWT_SECRET are also read unprefixed.
type Config struct {
	Addr            string
	DatabaseURL     string
	CatalogFile     string
	JWTSecret       string
	AllowResetPlans bool
	LogLevel        string
	LogFormat       string
	ViewAllURL      string
	Disclaimer      string
	SessionMaxIdle  time.Duration
}

const (
	KeyAddr            = "addr"
	KeyDatabaseURL     = "database_url"
	KeyCatalogFile     = "catalog_file"
	KeyJWTSecret       = "jwt_secret"
	KeyAllowResetPlans = "allow_reset_plans"
	KeyLogLevel        = "log_level"
	KeyLogFormat       = "log_format"
	KeyViewAllURL      = "view_all_url"
	KeyDisclaimer      = "disclaimer"
	KeySessionMaxIdle  = "session_max_idle"
)

// NewViper returns a viper instance with defaults and env bindings set.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("PERGOLA")
	v.AutomaticEnv()

	v.SetDefault(KeyAddr, ":8080")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "json")
	v.SetDefault(KeyAllowResetPlans, false)
	v.SetDefault(KeySessionMaxIdle, 2*time.Hour)

	_ = v.BindEnv(KeyDatabaseURL, "PERGOLA_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv(KeyJWTSecret, "PERGOLA_JWT_SECRET", "JWT_SECRET")
	return v
}

// LoadDotEnv copies a .env file in the working directory, when present, into
// the environment. Variables already set win.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// Load reads .env (when present) and the environment.
func Load() Config {
	LoadDotEnv()
	return FromViper(NewViper())
}

func FromViper(v *viper.Viper) Config {
	return Config{
		Addr:            v.GetString(KeyAddr),
		DatabaseURL:     v.GetString(KeyDatabaseURL),
		CatalogFile:     v.GetString(KeyCatalogFile),
		JWTSecret:       v.GetString(KeyJWTSecret),
		AllowResetPlans: v.GetBool(KeyAllowResetPlans),
		LogLevel:        v.GetString(KeyLogLevel),
		LogFormat:       v.GetString(KeyLogFormat),
		ViewAllURL:      v.GetString(KeyViewAllURL),
		Disclaimer:      v.GetString(KeyDisclaimer),
		SessionMaxIdle:  v.GetDuration(KeySessionMaxIdle),
	}
}
