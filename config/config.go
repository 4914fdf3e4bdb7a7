package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Env      string
	Server   Server
	Database Database
	Log      Log
	Scoring  Scoring
	CORS     CORS
}

type Server struct {
	Port    string
	GinMode string
}

type Database struct {
	Driver       string
	Host         string
	Port         string
	User         string
	Password     string `json:"-"`
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	AutoMigrate  bool
}

type Log struct {
	Level  string
	Pretty bool
}

type Scoring struct {
	// BackfillWorkers bounds how many (type, name) pairs are recomputed at once.
	BackfillWorkers int
}

type CORS struct {
	AllowOrigins []string
}

func NewConfig() (*Config, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	// .env.<env> is optional and only seeds the process environment.
	if err := godotenv.Load(".env." + env); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("env", env).Msg("Error loading env file")
	}

	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config
	config.Env = env

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.GinMode = v.GetString("GIN_MODE")

	config.Database.Driver = strings.ToLower(v.GetString("DATABASE_DRIVER"))
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.SSLMode = v.GetString("DATABASE_SSLMODE")
	config.Database.MaxOpenConns = v.GetInt("DATABASE_MAX_OPEN_CONNS")
	config.Database.MaxIdleConns = v.GetInt("DATABASE_MAX_IDLE_CONNS")
	config.Database.AutoMigrate = v.GetBool("DATABASE_AUTO_MIGRATE")

	config.Log.Level = v.GetString("LOG_LEVEL")
	config.Log.Pretty = v.GetBool("LOG_PRETTY")

	config.Scoring.BackfillWorkers = v.GetInt("SCORING_BACKFILL_WORKERS")
	if config.Scoring.BackfillWorkers < 1 {
		config.Scoring.BackfillWorkers = 1
	}

	config.CORS.AllowOrigins = splitList(v.GetString("CORS_ALLOW_ORIGINS"))

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("DATABASE_DRIVER", DriverPostgres)
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_SSLMODE", "require")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 10)
	v.SetDefault("DATABASE_AUTO_MIGRATE", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
	v.SetDefault("SCORING_BACKFILL_WORKERS", 4)
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
