package recommend

import (
	"context"
	"fmt"

	"github.com/rushteam/fairrec/config"
	"github.com/rushteam/fairrec/core"
	"github.com/rushteam/fairrec/filter"
	"github.com/rushteam/fairrec/model"
	"github.com/rushteam/fairrec/pipeline"
	"github.com/rushteam/fairrec/pkg/logging"
	"github.com/rushteam/fairrec/pkg/metrics"
	"github.com/rushteam/fairrec/rank"
	"github.com/rushteam/fairrec/recall"
	"github.com/rushteam/fairrec/rerank"
)

// Engine 以 Pipeline 形式执行与 Recommend 相同的链路，并支持额外的过滤器、
// 目录快照和配置化的 Pipeline。Engine 构建后只读，可并发调用。
//
//	engine, err := recommend.NewEngine(
//	    recommend.WithCatalog(catalog.Default()),
//	    recommend.WithBlacklist(redisStore, "blacklist:items"),
//	    recommend.WithExpr(`item.popularity < 0.3`),
//	)
type Engine struct {
	name     string
	pipeline *pipeline.Pipeline

	catalog        *core.Catalog
	snapshotStore  core.Store
	snapshotKey    string
	filters        []filter.Filter
	exprs          []string
	model          model.RankModel
	maxPerCategory int
}

// Option 配置 Engine。
type Option func(*Engine)

// WithName 设置 Engine 名称，用于日志与监控，默认 "default"。
func WithName(name string) Option {
	return func(e *Engine) {
		e.name = name
	}
}

// WithCatalog 设置请求未携带目录时使用的目录。
func WithCatalog(c *core.Catalog) Option {
	return func(e *Engine) {
		e.catalog = c
	}
}

// WithSnapshot 从 store 的 key 读取目录快照，key 不存在时退回 WithCatalog 的目录。
func WithSnapshot(s core.Store, key string) Option {
	return func(e *Engine) {
		e.snapshotStore = s
		e.snapshotKey = key
	}
}

// WithBlacklist 从 store 的 key 读取 JSON 数组形式的黑名单，ids 为额外的内存黑名单。
func WithBlacklist(s core.Store, key string, ids ...string) Option {
	return func(e *Engine) {
		var adapter *filter.StoreAdapter
		if s != nil {
			adapter = filter.NewStoreAdapter(s)
		}
		e.filters = append(e.filters, filter.NewBlacklistFilter(ids, adapter, key))
	}
}

// WithExpr 追加一个 CEL 过滤表达式，表达式为 true 的候选被移除。编译错误由 NewEngine 返回。
func WithExpr(expr string) Option {
	return func(e *Engine) {
		e.exprs = append(e.exprs, expr)
	}
}

// WithModel 替换默认的线性加权模型。
func WithModel(m model.RankModel) Option {
	return func(e *Engine) {
		e.model = m
	}
}

// WithMaxPerCategory 设置每个类别的上限，默认 2。
func WithMaxPerCategory(n int) Option {
	return func(e *Engine) {
		e.maxPerCategory = n
	}
}

// WithPipeline 直接使用给定的 Pipeline，此时忽略 WithSnapshot/WithBlacklist/WithExpr/WithModel/WithMaxPerCategory。
func WithPipeline(p *pipeline.Pipeline) Option {
	return func(e *Engine) {
		e.pipeline = p
	}
}

// NewEngine 按选项构建默认链路：recall → filter → rank → rerank.category_cap。
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		name:           "default",
		maxPerCategory: core.DefaultMaxPerCategory,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.pipeline != nil {
		return e, nil
	}
	if e.maxPerCategory < 1 {
		return nil, core.NewDomainError(core.ModulePipeline, core.ErrorCodeInvalidInput,
			fmt.Sprintf("max_per_category must be >= 1, got %d", e.maxPerCategory))
	}

	filters := []filter.Filter{&filter.CategoryExcludeFilter{}}
	filters = append(filters, e.filters...)
	for _, expr := range e.exprs {
		f, err := filter.NewExprFilter(expr)
		if err != nil {
			return nil, core.WrapDomainError(core.ModulePipeline, core.ErrorCodeInvalidInput,
				fmt.Sprintf("compile expr %q", expr), err)
		}
		filters = append(filters, f)
	}

	var source pipeline.Node = &recall.CatalogSource{Catalog: e.catalog}
	if e.snapshotStore != nil {
		source = &recall.SnapshotSource{Store: e.snapshotStore, Key: e.snapshotKey, Fallback: e.catalog}
	}

	ranker := rank.NewBlendNode()
	if e.model != nil {
		ranker.Model = e.model
	}

	e.pipeline = &pipeline.Pipeline{
		Name: "fairrec." + e.name,
		Nodes: []pipeline.Node{
			source,
			&filter.FilterNode{Filters: filters},
			ranker,
			&rerank.CategoryCap{MaxPerCategory: e.maxPerCategory},
		},
	}
	return e, nil
}

// NewEngineFromConfig 用配置文件定义的 Pipeline 构建 Engine。
// 调用方需 import _ "github.com/rushteam/fairrec/config/builders" 注册内置 Node。
func NewEngineFromConfig(cfg *pipeline.Config, opts ...Option) (*Engine, error) {
	if err := config.ValidatePipelineConfig(cfg); err != nil {
		return nil, err
	}
	p, err := cfg.BuildPipeline(config.DefaultFactory())
	if err != nil {
		return nil, err
	}
	name := cfg.Pipeline.Name
	if name == "" {
		name = "config"
	}
	opts = append([]Option{WithName(name)}, opts...)
	return NewEngine(append(opts, WithPipeline(p))...)
}

// Name 返回 Engine 名称。
func (e *Engine) Name() string { return e.name }

// Recommend 执行一次推荐。rctx 不会被修改；rctx.Catalog 为空时使用 Engine 的目录。
func (e *Engine) Recommend(ctx context.Context, rctx *core.RecommendContext) ([]*core.Candidate, error) {
	if rctx == nil {
		return nil, core.NewDomainError(core.ModulePipeline, core.ErrorCodeInvalidInput, "recommend context is nil")
	}
	req := *rctx
	if req.Catalog == nil {
		req.Catalog = e.catalog
	}

	out, err := e.pipeline.Run(ctx, &req, nil)
	if err != nil {
		logging.Error().Err(err).Str("engine", e.name).Str("request_id", req.RequestID).Msg("recommend failed")
		return nil, err
	}

	categories := make([]string, 0, len(out))
	for _, it := range out {
		categories = append(categories, it.Category())
	}
	backfilled := rerank.Backfilled(out)
	metrics.ObserveRecommendation(e.name, categories, backfilled)
	logging.Debug().
		Str("engine", e.name).
		Str("request_id", req.RequestID).
		Strs("preferred", req.Preferred.Sorted()).
		Strs("excluded", req.Excluded.Sorted()).
		Int("count", req.Count).
		Int("results", len(out)).
		Int("backfilled", backfilled).
		Msg("recommend done")
	return out, nil
}
