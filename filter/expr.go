package filter

import (
	"context"

	"github.com/rushteam/fairrec/core"
	"github.com/rushteam/fairrec/pkg/dsl"
)

// ExprFilter 用 CEL 表达式过滤候选，表达式为 true 时移除。
//
//	f, err := filter.NewExprFilter(`item.popularity < 0.7`)
type ExprFilter struct {
	Expr *dsl.Expr
}

// NewExprFilter 编译表达式并创建过滤器。
func NewExprFilter(expr string) (*ExprFilter, error) {
	e, err := dsl.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &ExprFilter{Expr: e}, nil
}

func (f *ExprFilter) Name() string {
	return "filter.expr"
}

func (f *ExprFilter) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	item *core.Candidate,
) (bool, error) {
	if item == nil {
		return true, nil
	}
	if f.Expr == nil {
		return false, nil
	}
	return f.Expr.Eval(item, rctx)
}
