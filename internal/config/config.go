package config

import "github.com/spf13/viper"

type Config struct {
	DBUrl                string `mapstructure:"DB_URL"`
	RedisURL             string `mapstructure:"REDIS_URL"`
	ServerPort           string `mapstructure:"SERVER_PORT"`
	Env                  string `mapstructure:"ENV"`
	JWTSecret            string `mapstructure:"JWT_SECRET"`
	GoogleAPIKey         string `mapstructure:"GOOGLE_API_KEY"`
	GeocodeCacheTTLHours int    `mapstructure:"GEOCODE_CACHE_TTL_HOURS"`
}

func Load() (Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("REDIS_URL", "localhost:6379")
	viper.SetDefault("GEOCODE_CACHE_TTL_HOURS", 24)

	if err := viper.ReadInConfig(); err != nil {
	}

	var cfg Config
	err := viper.Unmarshal(&cfg)
	return cfg, err
}
