// Package config loads the arena server configuration from YAML
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// Server holds everything the server command needs to wire the arena
type Server struct {
	GRPCPort int `yaml:"grpc_port"`
	// HTTPPort zero disables the HTTP listener
	HTTPPort int `yaml:"http_port"`

	// ShutdownTimeout bounds the graceful stop before a hard stop
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	Redis  RedisConfig  `yaml:"redis"`
	Battle BattleConfig `yaml:"battle"`

	// CatalogPath is a YAML catalog; empty uses the built-in tables
	CatalogPath string `yaml:"catalog_path"`
}

// RedisConfig points at the record store. An empty address keeps records in memory.
type RedisConfig struct {
	Address  string        `yaml:"address"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	UseTLS   bool          `yaml:"use_tls"`
	TTL      time.Duration `yaml:"record_ttl"`
}

// BattleConfig tunes the rules engine
type BattleConfig struct {
	StaminaRegen float64 `yaml:"stamina_regen"`
	// SkillChance is the enemy's percent chance to spend its skill on a hit
	SkillChance int `yaml:"skill_chance"`
	// Seed makes enemy decisions reproducible when set
	Seed *uint64 `yaml:"seed"`
	// SessionTTL is how long a battle stays in memory after its last turn
	SessionTTL time.Duration `yaml:"session_ttl"`
}

// DefaultServer returns the configuration used when no file is present
func DefaultServer() Server {
	return Server{
		GRPCPort:        50051,
		HTTPPort:        8080,
		ShutdownTimeout: 30 * time.Second,
		Redis: RedisConfig{
			TTL: 24 * time.Hour,
		},
		Battle: BattleConfig{
			SkillChance: 10,
			SessionTTL:  30 * time.Minute,
		},
	}
}

// LoadServer reads the server config from path on top of the defaults.
// A missing file is not an error.
func LoadServer(path string) (Server, error) {
	cfg := DefaultServer()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- operator supplied path
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, errors.Wrapf(err, "failed to read config %s", path)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config "+path)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks ports and tunables
func (c *Server) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		vb.Field("grpc_port", "must be between 1 and 65535")
	}
	if c.HTTPPort < 0 || c.HTTPPort > 65535 {
		vb.Field("http_port", "must be between 0 and 65535")
	}
	if c.HTTPPort != 0 && c.HTTPPort == c.GRPCPort {
		vb.Field("http_port", "must differ from grpc_port")
	}
	if c.ShutdownTimeout < 0 {
		vb.Field("shutdown_timeout", "must not be negative")
	}
	if c.Redis.TTL < 0 {
		vb.Field("redis.record_ttl", "must not be negative")
	}
	errors.ValidateNonNegative("battle.stamina_regen", c.Battle.StaminaRegen, vb)
	if c.Battle.SkillChance < 0 || c.Battle.SkillChance > 100 {
		vb.Field("battle.skill_chance", "must be between 0 and 100")
	}
	if c.Battle.SessionTTL < 0 {
		vb.Field("battle.session_ttl", "must not be negative")
	}

	return vb.Build()
}
