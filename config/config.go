package config

import (
	"fmt"
	"os"
	"time"

	"github.com/sgostarter/liblightfit/reading"
	"github.com/sgostarter/liblightfit/session"
	"gopkg.in/yaml.v3"
)

const (
	PolicyStrict = "strict"
	PolicyHertz  = "hertz"
	PolicyRaw    = "raw"
	PolicyCustom = "custom"
)

const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageRedis  = "redis"
)

type StorageConfig struct {
	Type string `yaml:"type" json:"type"`

	Root         string `yaml:"root" json:"root"`
	FileName     string `yaml:"fileName" json:"fileName"`
	PrettySerial bool   `yaml:"prettySerial" json:"prettySerial"`

	RedisDSN     string        `yaml:"redisDSN" json:"redisDSN"`
	RedisKeyPre  string        `yaml:"redisKeyPre" json:"redisKeyPre"`
	RedisTimeout time.Duration `yaml:"redisTimeout" json:"redisTimeout"`
}

type Config struct {
	// PolicyPreset picks one of the named policies; PolicyCustom uses Policy as given.
	PolicyPreset string         `yaml:"policyPreset" json:"policyPreset"`
	Policy       reading.Policy `yaml:"policy" json:"policy"`

	Storage StorageConfig  `yaml:"storage" json:"storage"`
	Session session.Config `yaml:"session" json:"session"`
}

func Default() *Config {
	cfg := &Config{}
	_ = cfg.Normalize()

	return cfg
}

func Load(file string) (*Config, error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var cfg Config

	if err = yaml.Unmarshal(d, &cfg); err != nil {
		return nil, err
	}

	if err = cfg.Normalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *Config) Normalize() error {
	switch cfg.PolicyPreset {
	case "", PolicyStrict:
		cfg.PolicyPreset = PolicyStrict
		cfg.Policy = reading.StrictPolicy()
	case PolicyHertz:
		cfg.Policy = reading.HertzPolicy()
	case PolicyRaw:
		cfg.Policy = reading.RawPolicy()
	case PolicyCustom:
	default:
		return fmt.Errorf("unknown policy preset %q", cfg.PolicyPreset)
	}

	switch cfg.Storage.Type {
	case "":
		cfg.Storage.Type = StorageMemory
	case StorageMemory, StorageFile:
	case StorageRedis:
		if cfg.Storage.RedisDSN == "" {
			return fmt.Errorf("redis storage needs redisDSN")
		}
	default:
		return fmt.Errorf("unknown storage type %q", cfg.Storage.Type)
	}

	if cfg.Storage.Type == StorageFile && cfg.Storage.Root == "" {
		cfg.Storage.Root = "."
	}

	cfg.Session.Normalize()

	return nil
}
