package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ServerConfig HTTP/WebSocket listener settings.
type ServerConfig struct {
	Host string
	Port int
}

func (s ServerConfig) Addr() string {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// MongoConfig document store settings.
type MongoConfig struct {
	URI      string
	Database string
}

// JWTConfig token signing settings.
type JWTConfig struct {
	Secret string
}

// UploadConfig local file storage settings.
type UploadConfig struct {
	Dir string
}

type Config struct {
	Server    ServerConfig
	Mongo     MongoConfig
	JWT       JWTConfig
	Upload    UploadConfig
	ClientURL string
	LogLevel  string
}

// Load reads configuration from the environment with sane defaults so the
// server runs locally without any setup.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", 5000)
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DATABASE", "techlearn")
	v.SetDefault("JWT_SECRET", "fallback-secret-key")
	v.SetDefault("UPLOAD_DIR", "./uploads")
	v.SetDefault("CLIENT_URL", "http://localhost:5173")
	v.SetDefault("LOG_LEVEL", "info")

	return &Config{
		Server: ServerConfig{
			Host: v.GetString("HOST"),
			Port: v.GetInt("PORT"),
		},
		Mongo: MongoConfig{
			URI:      v.GetString("MONGODB_URI"),
			Database: v.GetString("MONGODB_DATABASE"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
		},
		Upload: UploadConfig{
			Dir: v.GetString("UPLOAD_DIR"),
		},
		ClientURL: v.GetString("CLIENT_URL"),
		LogLevel:  v.GetString("LOG_LEVEL"),
	}
}
