package config

import (
	"time"

	redisdb "goforum/pkg/db/redis"
)

// RedisConfig представляет конфигурацию для Redis.
type RedisConfig struct {
	Host     string        `yaml:"host" env:"FORUM_REDIS_HOST" env-default:"localhost"`
	Port     int           `yaml:"port" env:"FORUM_REDIS_PORT" env-default:"6379"`
	Password string        `yaml:"password" env:"FORUM_REDIS_PASSWORD" env-default:""`
	DB       int           `yaml:"db" env:"FORUM_REDIS_DB" env-default:"0"`
	PoolSize int           `yaml:"pool_size" env:"FORUM_REDIS_POOL_SIZE" env-default:"10"`
	Timeout  time.Duration `yaml:"timeout" env:"FORUM_REDIS_TIMEOUT" env-default:"5s"`
}

// ToClientConfig преобразует настройки в конфигурацию клиента Redis.
func (c *RedisConfig) ToClientConfig() *redisdb.Config {
	return &redisdb.Config{
		Host:     c.Host,
		Port:     c.Port,
		Password: c.Password,
		DB:       c.DB,
		PoolSize: c.PoolSize,
		Timeout:  c.Timeout,
	}
}
