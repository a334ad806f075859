package redis

import (
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Config — параметры подключения к Redis.
type Config struct {
	Addr        string
	Username    string
	Password    string
	DB          int
	PoolSize    int
	DialTimeout time.Duration
	// Prefix — пространство имён ключей; позволяет делить один Redis между окружениями.
	Prefix string
}

// Validate — обязательные поля и неотрицательные лимиты.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return errors.New("redis: addr is required")
	case c.DB < 0:
		return errors.New("redis: db must be >= 0")
	case c.PoolSize < 0:
		return errors.New("redis: pool size must be >= 0")
	case c.DialTimeout < 0:
		return errors.New("redis: dial timeout must be >= 0")
	}
	return nil
}

// MergeDefaults — копия конфига с заполненными значениями по умолчанию.
func (c Config) MergeDefaults() Config {
	if c.PoolSize == 0 {
		c.PoolSize = 10
	}
	if c.DialTimeout == 0 {
		c.DialTimeout = 5 * time.Second
	}
	if c.Prefix == "" {
		c.Prefix = "wizard:"
	}
	return c
}

// Options — конфиг в формате go-redis.
func (c *Config) Options() *goredis.Options {
	return &goredis.Options{
		Addr:        c.Addr,
		Username:    c.Username,
		Password:    c.Password,
		DB:          c.DB,
		PoolSize:    c.PoolSize,
		DialTimeout: c.DialTimeout,
	}
}
