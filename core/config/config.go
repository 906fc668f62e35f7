package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"

	"lincloud/core/logger"
	"lincloud/core/server"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvFile is the dotenv file read from the config directory.
const EnvFile = ".env"

// Config holds the ambient settings of linc. It never influences which
// interfaces, port or directory are served.
type Config struct {
	Server server.Config `mapstructure:"server"`
	Log    logger.Config `mapstructure:"log"`
}

// LoadConfig reads dir/.env into the process environment, then resolves
// every setting from the environment over its `default` tag. A missing
// .env is not an error.
func LoadConfig(dir string) (*Config, error) {
	envFile := filepath.Join(dir, EnvFile)
	if err := godotenv.Overload(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v, reflect.TypeOf(Config{}), "")
	// SERVER_BROWSE -> server.browse
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// setDefaults registers a default for every leaf field of t keyed by its
// dotted mapstructure path. AutomaticEnv only sees registered keys, so
// leaves without a `default` tag are registered empty.
func setDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	for _, field := range reflect.VisibleFields(t) {
		name, ok := field.Tag.Lookup("mapstructure")
		if !ok || name == "" {
			continue
		}
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}
		if field.Type.Kind() == reflect.Struct {
			setDefaults(v, field.Type, key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
