package config

import "github.com/spf13/viper"

type Config struct {
	ServerPort    string `mapstructure:"SERVER_PORT"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	DataDir       string `mapstructure:"DATA_DIR"`
	AdminUsername string `mapstructure:"ADMIN_USERNAME"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`
	SessionSecret string `mapstructure:"SESSION_SECRET"`
	PaymentSeed   int64  `mapstructure:"PAYMENT_SEED"`
}

func Load() Config {
	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", ":8080")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("ADMIN_USERNAME", "akvin")
	viper.SetDefault("ADMIN_PASSWORD", "242005")
	viper.SetDefault("SESSION_SECRET", "dev-secret-change-me")
	viper.SetDefault("PAYMENT_SEED", 0)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
