package main

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Settings 是合并 flag、环境变量、配置文件之后的应用配置。
type Settings struct {
	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=json console"`

	Catalog        string
	Pipeline       string
	MaxPerCategory int `validate:"gte=1"`
	DefaultCount   int `validate:"gte=1,lte=12"`
	Filters        []string

	RedisAddr    string
	RedisDB      int `validate:"gte=0"`
	CatalogKey   string
	BlacklistKey string
}

func (a *app) settings() (*Settings, error) {
	s := &Settings{
		LogLevel:       a.v.GetString("log-level"),
		LogFormat:      a.v.GetString("log-format"),
		Catalog:        a.v.GetString("catalog"),
		Pipeline:       a.v.GetString("pipeline"),
		MaxPerCategory: a.v.GetInt("max-per-category"),
		DefaultCount:   a.v.GetInt("default-count"),
		Filters:        a.v.GetStringSlice("filter"),
		RedisAddr:      a.v.GetString("redis-addr"),
		RedisDB:        a.v.GetInt("redis-db"),
		CatalogKey:     a.v.GetString("catalog-key"),
		BlacklistKey:   a.v.GetString("blacklist-key"),
	}
	if err := validate.Struct(s); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}
