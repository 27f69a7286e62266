package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full server configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Database DatabaseConfig `mapstructure:"database"`
	Game     GameConfig     `mapstructure:"game"`
}

// ServerConfig holds the network surface.
type ServerConfig struct {
	WebSocket WebSocketConfig `mapstructure:"websocket"`
}

// WebSocketConfig configures the websocket gateway.
type WebSocketConfig struct {
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LoggingConfig selects the zap level and encoder.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DatabaseConfig points at the sqlite match-history file.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// GameConfig tunes match rules and the scripted opponent.
type GameConfig struct {
	SeedDistractionRounds int      `mapstructure:"seed_distraction_rounds"`
	ItemDistractionRounds int      `mapstructure:"item_distraction_rounds"`
	TableItems            []string `mapstructure:"table_items"`
	Strategy              string   `mapstructure:"strategy"`

	// Optional deck files in card-code notation; empty selects the
	// standard deal.
	PlayerDeckFile   string `mapstructure:"player_deck_file"`
	OpponentDeckFile string `mapstructure:"opponent_deck_file"`
}

// Load reads configuration from the given file (optional), overlaid with
// WIZWAR_* environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.websocket.address", ":8089")
	v.SetDefault("server.websocket.allowed_origins", []string{"*"})
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("database.path", "wizardswar.db")
	v.SetDefault("game.seed_distraction_rounds", 1)
	v.SetDefault("game.item_distraction_rounds", 2)
	v.SetDefault("game.table_items", []string{"ashtray", "candle", "hourglass"})
	v.SetDefault("game.strategy", "cunning")

	v.SetEnvPrefix("WIZWAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, missing := err.(viper.ConfigFileNotFoundError); !missing && !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
