package recommend

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/fairrec/core"
)

// Batch 并发执行多个独立请求，结果与 reqs 一一对应。
// concurrency <= 0 表示不限制并发数；任一请求出错时取消其余请求并返回该错误。
func Batch(
	ctx context.Context,
	engine *Engine,
	reqs []*core.RecommendContext,
	concurrency int,
) ([][]*core.Candidate, error) {
	results := make([][]*core.Candidate, len(reqs))
	if len(reqs) == 0 {
		return results, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		eg.SetLimit(concurrency)
	}
	for i, req := range reqs {
		i, req := i, req
		eg.Go(func() error {
			out, err := engine.Recommend(egCtx, req)
			if err != nil {
				return err
			}
			// 每个 goroutine 只写自己的下标
			results[i] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
