package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppConfig struct {
	Env  string
	Port int
}

func (a AppConfig) PortString() string { return fmt.Sprintf("%d", a.Port) }

type MongoConfig struct {
	URI                   string
	Database              string
	Collection            string
	ConnectTimeoutSeconds int
}

type WSConfig struct {
	PingIntervalSeconds  int
	WriteDeadlineSeconds int
	SendBufferSize       int
}

type Config struct {
	App   AppConfig
	Mongo MongoConfig
	WS    WSConfig

	// derived
	PingInterval   time.Duration
	WriteDeadline  time.Duration
	ConnectTimeout time.Duration
}

// Load reads configuration from an optional YAML file and the environment.
// Environment variables take precedence over the file; a missing file is not
// an error, defaults cover everything.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("app.env", "production")
	v.SetDefault("app.port", 5000)
	v.SetDefault("mongo.uri", "mongodb://127.0.0.1:27017/nodetask")
	v.SetDefault("mongo.database", "nodetask")
	v.SetDefault("mongo.collection", "users")
	v.SetDefault("mongo.connect_timeout_seconds", 10)
	v.SetDefault("ws.ping_interval_seconds", 25)
	v.SetDefault("ws.write_deadline_seconds", 10)
	v.SetDefault("ws.send_buffer_size", 256)

	_ = v.BindEnv("app.env", "APP_ENV")
	_ = v.BindEnv("app.port", "PORT")
	_ = v.BindEnv("mongo.uri", "MONGODB_URI")
	_ = v.BindEnv("mongo.database", "MONGO_DB")
	_ = v.BindEnv("mongo.collection", "MONGO_COLLECTION")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{
		App: AppConfig{
			Env:  v.GetString("app.env"),
			Port: v.GetInt("app.port"),
		},
		Mongo: MongoConfig{
			URI:                   v.GetString("mongo.uri"),
			Database:              v.GetString("mongo.database"),
			Collection:            v.GetString("mongo.collection"),
			ConnectTimeoutSeconds: v.GetInt("mongo.connect_timeout_seconds"),
		},
		WS: WSConfig{
			PingIntervalSeconds:  v.GetInt("ws.ping_interval_seconds"),
			WriteDeadlineSeconds: v.GetInt("ws.write_deadline_seconds"),
			SendBufferSize:       v.GetInt("ws.send_buffer_size"),
		},
	}

	cfg.PingInterval = time.Duration(cfg.WS.PingIntervalSeconds) * time.Second
	cfg.WriteDeadline = time.Duration(cfg.WS.WriteDeadlineSeconds) * time.Second
	cfg.ConnectTimeout = time.Duration(cfg.Mongo.ConnectTimeoutSeconds) * time.Second

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		return errors.New("app.port missing or invalid")
	}
	if cfg.Mongo.URI == "" {
		return errors.New("mongo.uri missing")
	}
	if cfg.Mongo.Database == "" {
		return errors.New("mongo.database missing")
	}
	if cfg.Mongo.Collection == "" {
		return errors.New("mongo.collection missing")
	}
	return nil
}
