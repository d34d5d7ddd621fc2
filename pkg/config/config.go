package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "BOOKSHELF"

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

type Config struct {
	Addr        string `mapstructure:"addr"`
	Store       string `mapstructure:"store"`
	SQLiteDSN   string `mapstructure:"sqlite_dsn"`
	IDGenerator string `mapstructure:"id_generator"`
	SeedFile    string `mapstructure:"seed_file"`
	GinMode     string `mapstructure:"gin_mode"`
}

// New returns a viper instance with defaults and BOOKSHELF_* environment
// lookup. Values from a .env file in the working directory are exported to
// the environment first; a missing file is not an error.
func New() *viper.Viper {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("addr", ":9000")
	v.SetDefault("store", StoreMemory)
	v.SetDefault("sqlite_dsn", "file:bookshelf?mode=memory&cache=shared")
	v.SetDefault("id_generator", "nanoid")
	v.SetDefault("seed_file", "")
	v.SetDefault("gin_mode", "release")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file and decodes v into a Config.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("config: addr must not be empty")
	}
	switch c.Store {
	case StoreMemory, StoreSQLite:
	default:
		return fmt.Errorf("config: store must be %q or %q, got %q", StoreMemory, StoreSQLite, c.Store)
	}
	switch c.IDGenerator {
	case "nanoid", "uuid":
	default:
		return fmt.Errorf("config: id_generator must be \"nanoid\" or \"uuid\", got %q", c.IDGenerator)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: gin_mode must be debug, release or test, got %q", c.GinMode)
	}
	return nil
}
