package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
	Search   Search `yaml:"search"`
	Redis    Redis  `yaml:"redis"`
}

type Game struct {
	ComputerMark string `yaml:"computer-mark" env:"COMPUTER_MARK" env-default:"O"`
	PlayerMark   string `yaml:"player-mark" env:"PLAYER_MARK" env-default:"X"`
	// computer opens the first game, then the first move alternates
	ComputerFirst bool `yaml:"computer-first" env:"COMPUTER_FIRST" env-default:"false"`
	Color         bool `yaml:"color" env:"COLOR" env-default:"true"`
}

type Search struct {
	Pruning bool `yaml:"pruning" env:"SEARCH_PRUNING" env-default:"true"`
	Depth   int  `yaml:"depth" env:"SEARCH_DEPTH" env-default:"0"`
}

type Redis struct {
	Enabled    bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host       string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port       string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Expiration time.Duration `yaml:"expiration" env:"REDIS_EXPIRATION" env-default:"24h"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// MustLoadEnv - configuration from environment variables and defaults only.
func MustLoadEnv() *Config {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to load config from environment: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
