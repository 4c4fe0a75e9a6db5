package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Addr           string
	DatabaseURL    string
	UploadDir      string
	MaxUploadBytes int64
	BcryptCost     int
}

// Load reads configuration from an optional .env file, the environment and
// an optional config.yaml, in that order of precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	v := viper.New()
	v.SetDefault("ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("MAX_UPLOAD_BYTES", int64(10<<20))
	v.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		Addr:           v.GetString("ADDR"),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		UploadDir:      v.GetString("UPLOAD_DIR"),
		MaxUploadBytes: v.GetInt64("MAX_UPLOAD_BYTES"),
		BcryptCost:     v.GetInt("BCRYPT_COST"),
	}, nil
}
