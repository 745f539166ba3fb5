package recall

import (
	"context"

	"github.com/rushteam/fairrec/catalog"
	"github.com/rushteam/fairrec/core"
	"github.com/rushteam/fairrec/pipeline"
	"github.com/rushteam/fairrec/pkg/logging"
)

// SnapshotSource 从 Store 读取目录快照（`fairrec catalog push` 写入）。
//   - key 不存在时退回 Fallback（为空则读 rctx.Catalog）
//   - 其他读取或校验错误直接返回，不做静默降级
type SnapshotSource struct {
	Store    core.Store
	Key      string
	Fallback *core.Catalog
}

func (r *SnapshotSource) Name() string        { return "recall.snapshot" }
func (r *SnapshotSource) Kind() pipeline.Kind { return pipeline.KindRecall }

func (r *SnapshotSource) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Candidate,
) ([]*core.Candidate, error) {
	return r.Recall(ctx, rctx)
}

func (r *SnapshotSource) Recall(
	ctx context.Context,
	rctx *core.RecommendContext,
) ([]*core.Candidate, error) {
	if r.Store != nil && r.Key != "" {
		c, err := catalog.LoadFromStore(ctx, r.Store, r.Key)
		switch {
		case err == nil:
			return fromCatalog(c, r.Name()), nil
		case core.IsStoreNotFound(err):
			logging.Debug().Str("store", r.Store.Name()).Str("key", r.Key).Msg("catalog snapshot missing, using fallback")
		default:
			return nil, err
		}
	}

	fallback := &CatalogSource{Catalog: r.Fallback}
	return fallback.Recall(ctx, rctx)
}
