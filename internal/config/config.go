package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config agrupa toda la configuración del servicio (env + .env opcional).
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// DB_DSN vacío => repos in-memory (modo dev).
	DBDSN          string `env:"DB_DSN"`
	DBMaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBMaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"customers-service"`

	// Opcional: si viene, enriquecemos PetDetails con las visitas del visits-service.
	VisitsServiceURL string        `env:"VISITS_SERVICE_URL"`
	VisitsTimeout    time.Duration `env:"VISITS_TIMEOUT" envDefault:"2s"`

	MetricsEnabled   bool   `env:"METRICS_ENABLED" envDefault:"true"`
	MetricsNamespace string `env:"METRICS_NAMESPACE" envDefault:"petclinic"`

	// Solo aplica a los repos in-memory.
	SeedData bool `env:"SEED_DATA" envDefault:"true"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// Load lee un .env (si existe) y luego parsea las variables de entorno.
// Las variables ya definidas en el entorno tienen prioridad sobre el .env.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.Port = strings.TrimPrefix(strings.TrimSpace(cfg.Port), ":")
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg, nil
}

// Addr devuelve la dirección de escucha del servidor HTTP.
func (c Config) Addr() string {
	return ":" + c.Port
}

// UsesPostgres indica si hay que abrir Postgres en vez de los repos in-memory.
func (c Config) UsesPostgres() bool {
	return strings.TrimSpace(c.DBDSN) != ""
}
