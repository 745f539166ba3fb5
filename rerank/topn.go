package rerank

import (
	"context"

	"github.com/rushteam/fairrec/core"
	"github.com/rushteam/fairrec/pipeline"
)

// TopNNode 是 Top-N 截断节点。
// N > 0 时使用 N；否则使用 rctx.Count；两者都 <= 0 时不截断。
//
// CategoryCap 已按 rctx.Count 截断，TopNNode 用于不做多样性重排的 Pipeline，
// 或在多样性重排之前先限制候选规模：
//
//	&rank.ModelNode{...},
//	&rerank.TopNNode{N: 50},
//	&rerank.CategoryCap{MaxPerCategory: 2},
type TopNNode struct {
	N int
}

func (n *TopNNode) Name() string {
	return "rerank.topn"
}

func (n *TopNNode) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *TopNNode) Process(
	_ context.Context,
	rctx *core.RecommendContext,
	items []*core.Candidate,
) ([]*core.Candidate, error) {
	limit := n.N
	if limit <= 0 && rctx != nil {
		limit = rctx.Count
	}
	if limit <= 0 || len(items) <= limit {
		return items, nil
	}
	return items[:limit], nil
}
