package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config es la configuración completa del verificador.
type Config struct {
	Verifier VerifierConfig `yaml:"verifier"`
	API      APIConfig      `yaml:"api"`
	Storage  StorageConfig  `yaml:"storage"`
	Log      LogConfig      `yaml:"log"`
}

// VerifierConfig controla el comportamiento del verificador.
type VerifierConfig struct {
	Workers int `yaml:"workers"` // goroutines para verificar legs (0 = auto)
}

// APIConfig contiene el acceso a API-Football.
type APIConfig struct {
	FootballBase string `yaml:"football_base"`
	FootballKey  string `yaml:"football_key"` // normalmente via API_FOOTBALL_KEY en .env
}

// StorageConfig controla dónde se persisten los tickets.
type StorageConfig struct {
	DSN string `yaml:"dsn"` // ruta al archivo SQLite, o ":memory:"
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env si existe.
// Los valores del .env sobreescriben los del YAML para las keys que correspondan.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	if cfg.API.FootballKey == "" {
		return nil, fmt.Errorf("config.Load: falta la API key de API-Football (API_FOOTBALL_KEY)")
	}

	return &cfg, nil
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están presentes.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("API_FOOTBALL_KEY"); v != "" {
		cfg.API.FootballKey = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
func setDefaults(cfg *Config) {
	if cfg.API.FootballBase == "" {
		cfg.API.FootballBase = "https://v3.football.api-sports.io"
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = "betcheck.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
