package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port       string `mapstructure:"port"`
	APIBaseURL string `mapstructure:"api_base_url"`
	DBDSN      string `mapstructure:"db_dsn"`
	LogFile    string `mapstructure:"log_file"`
	AdminEmail string `mapstructure:"admin_email"`
}

// Load reads defaults, then an optional config.yaml in the working
// directory, then environment overrides (PORT, API_BASE_URL, DB_DSN,
// LOG_FILE, ADMIN_EMAIL).
func Load() Config {
	v := viper.New()
	v.SetDefault("port", "8081")
	v.SetDefault("api_base_url", "http://localhost:8000/api/")
	v.SetDefault("db_dsn", "seastore.db") // sqlite file in project root
	v.SetDefault("log_file", "./seastore.log")
	v.SetDefault("admin_email", "maxanmax@gmail.com")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("[config] could not read config file: %v", err)
		}
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("[config] unmarshal: %v", err)
	}
	log.Printf("[config] PORT=%s API_BASE_URL=%s DB_DSN=%s LOG_FILE=%s", cfg.Port, cfg.APIBaseURL, cfg.DBDSN, cfg.LogFile)
	return cfg
}
