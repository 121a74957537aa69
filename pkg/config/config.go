package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variables before they are mapped
// onto config keys: BLOG_DATABASE_MAX_SIZE -> database.max_size.
const EnvPrefix = "BLOG_"

// Config holds all settings for the blog server.
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	Log      LogConfig      `koanf:"log"`
}

// DatabaseConfig describes the connection pool.
type DatabaseConfig struct {
	Driver     string `koanf:"driver"     validate:"oneof=mysql postgres sqlite"`
	Host       string `koanf:"host"`
	Port       int    `koanf:"port"       validate:"gt=0,lte=65535"`
	User       string `koanf:"user"`
	Password   string `koanf:"password"`
	Name       string `koanf:"name"       validate:"required"`
	Charset    string `koanf:"charset"`
	Autocommit bool   `koanf:"autocommit"`
	MinSize    int    `koanf:"min_size"   validate:"gte=0"`
	MaxSize    int    `koanf:"max_size"   validate:"gt=0,gtefield=MinSize"`
}

type ServerConfig struct {
	Address string `koanf:"address" validate:"required"`
}

type LogConfig struct {
	Level string `koanf:"level"`
	JSON  bool   `koanf:"json"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:     "mysql",
			Host:       "localhost",
			Port:       3306,
			Name:       "awesome",
			Charset:    "utf8",
			Autocommit: true,
			MinSize:    1,
			MaxSize:    10,
		},
		Server: ServerConfig{
			Address: "127.0.0.1:9000",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads an optional dotenv file, then layers defaults and BLOG_*
// environment variables, and validates the result.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: transformEnvKey,
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
		},
	}); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks struct-tag constraints.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("configuration cannot be nil")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// transformEnvKey maps BLOG_DATABASE_MAX_SIZE to database.max_size.
// Variables that only carry the prefix map to nothing and are skipped.
func transformEnvKey(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	parts := strings.FieldsFunc(key, func(r rune) bool { return r == '_' })
	if len(parts) < 2 {
		return "", nil
	}
	return parts[0] + "." + strings.Join(parts[1:], "_"), value
}

// String masks the password.
func (c *Config) String() string {
	return fmt.Sprintf("Config{DB: %s://%s@%s:%d/%s, Server: %s}",
		c.Database.Driver, c.Database.User, c.Database.Host, c.Database.Port, c.Database.Name, c.Server.Address)
}
