// Package config loads settings for the fib command.
//
// Every setting has a dotted key (see keys.go) and can come from a flag bound
// to that key, from the environment (FIB_ + key, dots as underscores) or from
// the defaults registered by SetDefaults.
package config

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	MemoStoreMap       = "map"
	MemoStoreTable     = "table"
	MemoStoreRistretto = "ristretto"
	MemoStoreMemDB     = "memdb"
)

type Config struct {
	X, Y *big.Int

	LogLevel  zapcore.Level
	LogFormat string // "json" or "console"

	BufferSize int
	NumWorkers int

	MemoStore string
	MemoSize  int

	MetricsEnabled bool
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(delimiter, "_"))
	v.AutomaticEnv()
	return v
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(ConfigSequenceX, "0")
	v.SetDefault(ConfigSequenceY, "1")
	v.SetDefault(ConfigLogLevel, "info")
	v.SetDefault(ConfigLogFormat, "console")
	v.SetDefault(ConfigEffectCalcHandlerBufferSize, 16)
	v.SetDefault(ConfigEffectCalcHandlerNumWorkers, 4)
	v.SetDefault(ConfigMemoStore, MemoStoreMap)
	v.SetDefault(ConfigMemoSize, 4096)
	v.SetDefault(ConfigMetricsEnabled, false)
}

// Load reads and validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	var err error

	if cfg.X, err = parseBig(v, ConfigSequenceX); err != nil {
		return Config{}, err
	}
	if cfg.Y, err = parseBig(v, ConfigSequenceY); err != nil {
		return Config{}, err
	}

	if cfg.LogLevel, err = zapcore.ParseLevel(v.GetString(ConfigLogLevel)); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, ConfigLogLevel, err)
	}
	switch cfg.LogFormat = v.GetString(ConfigLogFormat); cfg.LogFormat {
	case "json", "console":
	default:
		return Config{}, fmt.Errorf("%w: %s: unknown format %q", ErrInvalidConfig, ConfigLogFormat, cfg.LogFormat)
	}

	cfg.BufferSize = v.GetInt(ConfigEffectCalcHandlerBufferSize)
	cfg.NumWorkers = v.GetInt(ConfigEffectCalcHandlerNumWorkers)
	if cfg.BufferSize <= 0 || cfg.NumWorkers <= 0 {
		return Config{}, fmt.Errorf("%w: %s and %s must be positive", ErrInvalidConfig,
			ConfigEffectCalcHandlerBufferSize, ConfigEffectCalcHandlerNumWorkers)
	}

	switch cfg.MemoStore = v.GetString(ConfigMemoStore); cfg.MemoStore {
	case MemoStoreMap, MemoStoreTable, MemoStoreRistretto, MemoStoreMemDB:
	default:
		return Config{}, fmt.Errorf("%w: %s: unknown store %q", ErrInvalidConfig, ConfigMemoStore, cfg.MemoStore)
	}
	if cfg.MemoSize = v.GetInt(ConfigMemoSize); cfg.MemoSize <= 0 {
		return Config{}, fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, ConfigMemoSize)
	}

	cfg.MetricsEnabled = v.GetBool(ConfigMetricsEnabled)
	return cfg, nil
}

// Logger builds the zap logger described by cfg.
func (cfg Config) Logger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.LogFormat == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	return zc.Build()
}

func parseBig(v *viper.Viper, key string) (*big.Int, error) {
	raw := strings.TrimSpace(v.GetString(key))
	n, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %s: %q is not an integer", ErrInvalidConfig, key, raw)
	}
	return n, nil
}
