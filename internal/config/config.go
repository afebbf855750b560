package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseDriver string `mapstructure:"DATABASE_DRIVER"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	JWTSecret      string `mapstructure:"JWT_SECRET"`
	ServerAddr     string `mapstructure:"SERVER_ADDR"`

	GoogleMapsAPIKey string        `mapstructure:"GOOGLE_MAPS_API_KEY"`
	GeocodeTimeout   time.Duration `mapstructure:"GEOCODE_TIMEOUT"`

	// The bootstrap admin is skipped when AdminPassword is empty.
	AdminUsername string `mapstructure:"ADMIN_USERNAME"`
	AdminEmail    string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`
}

var AppConfig *Config

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	setDefaults(viper.GetViper())

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	cfg, err := decode(viper.GetViper())
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
	AppConfig = cfg
}

func setDefaults(v *viper.Viper) {
	// AutomaticEnv only reaches keys viper already knows about, so every key
	// gets a default, even an empty one.
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("SERVER_ADDR", ":8080")
	v.SetDefault("GOOGLE_MAPS_API_KEY", "")
	v.SetDefault("GEOCODE_TIMEOUT", 5*time.Second)
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_EMAIL", "admin@placebook.local")
	v.SetDefault("ADMIN_PASSWORD", "")
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
