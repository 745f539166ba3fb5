package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/rushteam/fairrec/core"
	"github.com/rushteam/fairrec/pkg/logging"
	"github.com/rushteam/fairrec/pkg/metrics"
)

// Pipeline 把推荐逻辑拆成可组合的 Node 链，按顺序执行。
type Pipeline struct {
	Name  string
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	rctx *core.RecommendContext,
	items []*core.Candidate,
) ([]*core.Candidate, error) {
	cur := items
	for _, node := range p.Nodes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		next, err := node.Process(ctx, rctx, cur)
		elapsed := time.Since(start)
		metrics.ObserveNode(node.Name(), string(node.Kind()), elapsed, err)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", node.Name(), err)
		}
		logging.Debug().
			Str("pipeline", p.Name).
			Str("node", node.Name()).
			Int("in", len(cur)).
			Int("out", len(next)).
			Dur("elapsed", elapsed).
			Msg("node done")
		cur = next
	}
	return cur, nil
}
