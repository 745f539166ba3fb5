package filter

import (
	"context"

	"github.com/rushteam/fairrec/core"
)

// CategoryExcludeFilter 过滤掉类别在排除集合中的候选。
// 静态配置的 Categories 与请求的 rctx.Excluded 同时生效，命中任一即过滤。
type CategoryExcludeFilter struct {
	Categories core.CategorySet
}

func (f *CategoryExcludeFilter) Name() string {
	return "filter.category_exclude"
}

func (f *CategoryExcludeFilter) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	item *core.Candidate,
) (bool, error) {
	if item == nil {
		return true, nil
	}
	if f.Categories.Has(item.Category()) {
		return true, nil
	}
	if rctx != nil && rctx.Excluded.Has(item.Category()) {
		return true, nil
	}
	return false, nil
}

// ExcludeCategories 返回类别不在 excluded 中的商品，保持目录顺序。
func ExcludeCategories(products []core.Product, excluded core.CategorySet) []core.Product {
	out := make([]core.Product, 0, len(products))
	for _, p := range products {
		if excluded.Has(p.Category) {
			continue
		}
		out = append(out, p)
	}
	return out
}
