package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config is the process environment, loaded once at startup.
type Config struct {
	DSN            string   `env:"DB_DSN"`
	ListenAddr     string   `env:"LISTEN_ADDR" envDefault:":8080"`
	JWTSecret      string   `env:"JWT_SECRET" envDefault:"change_me_in_production"`
	GeminiAPIKey   string   `env:"GEMINI_API_KEY"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:5173"`
	Dev            bool     `env:"DEV_MODE"`
}

// Load reads .env (optional) and the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file found")
	}
	return env.ParseAs[Config]()
}
