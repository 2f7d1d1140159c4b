package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

type Config struct {
	DiscordToken string        `env:"DISCORD_TOKEN,required,notEmpty"`
	GatewayURL   string        `env:"GATEWAY_URL" envDefault:"wss://gateway.discord.gg/?v=9&encoding=json"`
	HTTPTimeout  time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
}

// Parse reads the configuration from the environment.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// New is Parse for callers that cannot run without configuration.
func New() *Config {
	cfg, err := Parse()
	if err != nil {
		log.Fatalf("[ERR] Config: %v", err)
	}
	return cfg
}
