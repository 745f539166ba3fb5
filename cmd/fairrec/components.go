package main

import (
	"path/filepath"
	"strings"

	"github.com/rushteam/fairrec/catalog"
	_ "github.com/rushteam/fairrec/config/builders"
	"github.com/rushteam/fairrec/core"
	"github.com/rushteam/fairrec/pipeline"
	"github.com/rushteam/fairrec/pkg/logging"
	"github.com/rushteam/fairrec/recommend"
	"github.com/rushteam/fairrec/store"
)

// loadCatalog 读取 --catalog 指定的文件，未指定时使用内置目录。
func loadCatalog(s *Settings) (*core.Catalog, error) {
	if s.Catalog == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.LoadFile(s.Catalog)
	if err != nil {
		return nil, err
	}
	logging.Info().Str("catalog", s.Catalog).Int("products", c.Len()).Msg("catalog loaded")
	return c, nil
}

// openStore 在配置了 redis 时连接 redis，否则返回 nil。
func openStore(s *Settings) (core.Store, error) {
	if s.RedisAddr == "" {
		return nil, nil
	}
	rs, err := store.NewRedisStore(s.RedisAddr, s.RedisDB)
	if err != nil {
		return nil, err
	}
	logging.Info().Str("addr", s.RedisAddr).Int("db", s.RedisDB).Msg("redis connected")
	return rs, nil
}

func loadPipelineConfig(path string) (*pipeline.Config, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return pipeline.LoadFromJSON(path)
	}
	return pipeline.LoadFromYAML(path)
}

// buildEngine 按配置组装 Engine；返回的 closer 释放 store 连接。
func buildEngine(s *Settings) (*recommend.Engine, func(), error) {
	c, err := loadCatalog(s)
	if err != nil {
		return nil, nil, err
	}
	st, err := openStore(s)
	if err != nil {
		return nil, nil, err
	}
	closer := func() {
		if st != nil {
			_ = st.Close()
		}
	}

	opts := []recommend.Option{
		recommend.WithCatalog(c),
		recommend.WithMaxPerCategory(s.MaxPerCategory),
	}
	for _, expr := range s.Filters {
		opts = append(opts, recommend.WithExpr(expr))
	}
	if st != nil {
		if s.CatalogKey != "" {
			opts = append(opts, recommend.WithSnapshot(st, s.CatalogKey))
		}
		if s.BlacklistKey != "" {
			opts = append(opts, recommend.WithBlacklist(st, s.BlacklistKey))
		}
	}

	var engine *recommend.Engine
	if s.Pipeline != "" {
		cfg, err := loadPipelineConfig(s.Pipeline)
		if err != nil {
			closer()
			return nil, nil, err
		}
		if len(s.Filters) > 0 || st != nil {
			logging.Warn().Str("pipeline", s.Pipeline).Msg("pipeline file given, --filter and store options are ignored")
		}
		engine, err = recommend.NewEngineFromConfig(cfg, opts...)
		if err != nil {
			closer()
			return nil, nil, err
		}
		logging.Info().Str("pipeline", s.Pipeline).Msg("pipeline loaded")
	} else {
		engine, err = recommend.NewEngine(opts...)
		if err != nil {
			closer()
			return nil, nil, err
		}
	}
	return engine, closer, nil
}
