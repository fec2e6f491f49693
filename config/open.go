package config

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/liblightfit/fit"
	"github.com/sgostarter/liblightfit/reading"
	"github.com/sgostarter/liblightfit/reading/impls/fmstorage"
	"github.com/sgostarter/liblightfit/reading/impls/redisimpls"
	"github.com/sgostarter/liblightfit/session"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
)

func initRedis(dsn string, timeout time.Duration) (cli *redis.Client, err error) {
	options, err := redis.ParseURL(dsn)
	if err != nil {
		return
	}

	cli = redis.NewClient(options)

	ctx, cf := context.WithTimeout(context.Background(), timeout)
	defer cf()

	err = cli.Ping(ctx).Err()
	if err != nil {
		_ = cli.Close()
		cli = nil
	}

	return
}

// NewStorage builds the storage backend described by cfg. closer must be called once the storage is done with.
func NewStorage(cfg StorageConfig, logger l.Wrapper) (storage reading.Storage, closer func(), err error) {
	closer = func() {}

	switch cfg.Type {
	case StorageFile:
		if err = pathutils.MustDirExists(cfg.Root); err != nil {
			return
		}

		storage = fmstorage.NewFMStorageEx("", rawfs.NewFSStorage(cfg.Root), cfg.FileName, cfg.PrettySerial)
	case StorageRedis:
		timeout := cfg.RedisTimeout
		if timeout <= 0 {
			timeout = time.Second * 3
		}

		var cli *redis.Client

		cli, err = initRedis(cfg.RedisDSN, timeout)
		if err != nil {
			return
		}

		storage = redisimpls.NewRedisStorageEx(cfg.RedisKeyPre, cli, timeout, logger)
		closer = func() {
			_ = cli.Close()
		}
	default:
		storage = reading.NewMemStorage()
	}

	return
}

// Open wires storage, store, engine and session together.
func Open(cfg *Config, logger l.Wrapper) (s *session.Session, closer func(), err error) {
	if cfg == nil {
		cfg = Default()
	}

	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	storage, closer, err := NewStorage(cfg.Storage, logger)
	if err != nil {
		return
	}

	store := reading.NewStore(storage, logger, reading.PolicyOption(cfg.Policy))

	s = session.NewSession(store, fit.NewEngine(logger), &cfg.Session, logger)

	return
}
