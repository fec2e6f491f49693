package redisimpls

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/liblightfit/reading"
)

const defaultTimeout = time.Second * 3

func NewRedisStorage(preKey string, redisCli *redis.Client, logger l.Wrapper) reading.Storage {
	return NewRedisStorageEx(preKey, redisCli, defaultTimeout, logger)
}

func NewRedisStorageEx(preKey string, redisCli *redis.Client, timeout time.Duration, logger l.Wrapper) reading.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "redisStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &redisStorage{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
		timeout:  timeout,
	}
}

type redisStorage struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
	timeout  time.Duration
}

func (impl *redisStorage) readingsKey() string {
	if impl.preKey == "" {
		return "readings"
	}

	return impl.preKey + ":readings"
}

func (impl *redisStorage) Append(r reading.Reading) error {
	d, err := json.Marshal(r)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), impl.timeout)
	defer cancel()

	return impl.redisCli.RPush(ctx, impl.readingsKey(), d).Err()
}

func (impl *redisStorage) Load() (rs []reading.Reading, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), impl.timeout)
	defer cancel()

	items, err := impl.redisCli.LRange(ctx, impl.readingsKey(), 0, -1).Result()
	if err != nil {
		return
	}

	rs = make([]reading.Reading, 0, len(items))

	for idx, item := range items {
		var r reading.Reading

		if err = json.Unmarshal([]byte(item), &r); err != nil {
			impl.logger.WithFields(l.ErrorField(err), l.IntField("index", idx)).Error("bad reading item")

			return nil, err
		}

		rs = append(rs, r)
	}

	return
}

func (impl *redisStorage) Count() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), impl.timeout)
	defer cancel()

	n, err := impl.redisCli.LLen(ctx, impl.readingsKey()).Result()
	if err != nil {
		return 0, err
	}

	return int(n), nil
}
