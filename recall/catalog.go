package recall

import (
	"context"

	"github.com/rushteam/fairrec/core"
	"github.com/rushteam/fairrec/pipeline"
)

// CatalogSource 召回目录中的全部商品，保持目录顺序。
// Catalog 为空时使用 rctx.Catalog。
// CatalogSource 同时实现了 Source 和 Node 接口，可以直接在 Pipeline 中使用。
type CatalogSource struct {
	Catalog *core.Catalog
}

func (r *CatalogSource) Name() string        { return "recall.catalog" }
func (r *CatalogSource) Kind() pipeline.Kind { return pipeline.KindRecall }

func (r *CatalogSource) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Candidate,
) ([]*core.Candidate, error) {
	return r.Recall(ctx, rctx)
}

func (r *CatalogSource) Recall(
	_ context.Context,
	rctx *core.RecommendContext,
) ([]*core.Candidate, error) {
	c := r.Catalog
	if c == nil && rctx != nil {
		c = rctx.Catalog
	}
	if c.Len() == 0 {
		return nil, nil
	}
	return fromCatalog(c, r.Name()), nil
}
