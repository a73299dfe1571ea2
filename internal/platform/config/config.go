// Package config carga la configuración con koanf: defaults, archivo YAML
// opcional y variables de entorno ZOO_*.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	EnvPrefix = "ZOO_"

	DefaultPort = 8080
)

type Config struct {
	App    AppConfig    `koanf:"app"    validate:"required"`
	Server ServerConfig `koanf:"server" validate:"required"`
	Log    LogConfig    `koanf:"log"    validate:"required"`
	DB     DBConfig     `koanf:"db"`
	Client ClientConfig `koanf:"client" validate:"required"`
}

type AppConfig struct {
	Name string `koanf:"name" validate:"required"`
}

type ServerConfig struct {
	Port         int           `koanf:"port"          validate:"required,min=1,max=65535"`
	ReadTimeout  time.Duration `koanf:"read_timeout"  validate:"required,min=1s"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required,min=1s"`
}

type LogConfig struct {
	Level  string `koanf:"level"  validate:"required,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"required,oneof=text json logfmt"`
}

// DBConfig: si DSN está vacío se usa el repositorio in-memory.
type DBConfig struct {
	DSN string `koanf:"dsn"`
}

type ClientConfig struct {
	BaseURL string        `koanf:"base_url" validate:"required,url"`
	Timeout time.Duration `koanf:"timeout"  validate:"required,min=100ms"`
}

// Addr devuelve la dirección de escucha del server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func defaults() map[string]any {
	return map[string]any{
		"app.name": "digital-zoo",

		"server.port":          DefaultPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",

		"log.level":  "info",
		"log.format": "text",

		"db.dsn": "",

		"client.base_url": "http://localhost:8080",
		"client.timeout":  "10s",
	}
}

// Load aplica, de menor a mayor prioridad:
//  1. defaults
//  2. archivo YAML en path (si path != "" y existe)
//  3. variables ZOO_* (ZOO_SERVER_PORT -> server.port)
//
// PORT y DB_DSN sin prefijo se respetan por compatibilidad con despliegues previos.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if strings.TrimSpace(path) != "" {
		if err := loadFileIfExists(k, path); err != nil {
			return nil, fmt.Errorf("loading config file %q: %w", path, err)
		}
	}

	legacy := map[string]any{}
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		legacy["server.port"] = v
	}
	if v := strings.TrimSpace(os.Getenv("DB_DSN")); v != "" {
		legacy["db.dsn"] = v
	}
	if len(legacy) > 0 {
		if err := k.Load(confmap.Provider(legacy, "."), nil); err != nil {
			return nil, fmt.Errorf("loading legacy env: %w", err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envKey: ZOO_SERVER_READ_TIMEOUT -> server.read_timeout.
// Solo el primer "_" separa sección de campo.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return k.Load(file.Provider(path), yaml.Parser())
}
