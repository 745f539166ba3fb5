package recall

import (
	"context"

	"github.com/rushteam/fairrec/core"
	"github.com/rushteam/fairrec/pkg/utils"
)

// Source 表示一个召回源：从某处取出本次请求的候选全集。
type Source interface {
	Name() string
	Recall(ctx context.Context, rctx *core.RecommendContext) ([]*core.Candidate, error)
}

// fromCatalog 按目录顺序把商品转换为候选，并标记召回来源。
func fromCatalog(c *core.Catalog, source string) []*core.Candidate {
	products := c.Products()
	out := make([]*core.Candidate, 0, len(products))
	for _, p := range products {
		it := core.NewCandidate(p)
		it.PutLabel(utils.LabelRecallSource, utils.Label{Value: source, Source: "recall"})
		out = append(out, it)
	}
	return out
}
