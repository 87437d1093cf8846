package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config agrupa la configuración de la aplicación, leída del entorno.
type Config struct {
	ServerPort string `env:"PORT,       default=8080"`
	LogLevel   string `env:"LOG_LEVEL,  default=info"`
	LogPretty  bool   `env:"LOG_PRETTY, default=false"`
	JWTSecret  string `env:"JWT_SECRET"`

	DBHost     string `env:"DB_HOST,     default=localhost"`
	DBName     string `env:"DB_NAME,     default=hotel"`
	DBUser     string `env:"DB_USER,     default=postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBPort     int    `env:"DB_PORT,     default=5432"`
	DBSSLMode  string `env:"DB_SSLMODE,  default=require"`

	SMTPHost      string `env:"SMTP_HOST"`
	SMTPPort      string `env:"SMTP_PORT, default=587"`
	SMTPUser      string `env:"SMTP_USER"`
	SMTPPassword  string `env:"SMTP_PASSWORD"`
	SMTPFromName  string `env:"SMTP_FROM_NAME, default=Hotel Amigues"`
	SMTPFromEmail string `env:"SMTP_FROM_EMAIL"`
}

// LoadConfig lee la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("error al cargar configuración: %w", err)
	}
	return &cfg, nil
}

// GetDBConnString arma la cadena de conexión a PostgreSQL.
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf(
		"host=%s dbname=%s user=%s password=%s port=%d sslmode=%s",
		c.DBHost, c.DBName, c.DBUser, c.DBPassword, c.DBPort, c.DBSSLMode,
	)
}

// EmailHabilitado indica si hay configuración SMTP suficiente para enviar
// notificaciones.
func (c *Config) EmailHabilitado() bool {
	return c.SMTPHost != "" && c.SMTPFromEmail != ""
}
