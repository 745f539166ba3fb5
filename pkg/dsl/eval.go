// Package dsl 是候选上的表达式解释器，基于 CEL (Common Expression Language)。
//
// 可用变量：
//   - item:  id / name / category / brand / popularity / score / reasons / features
//   - label: 候选 label 的 value，例如 label.rank_model
//   - rctx:  preferred / excluded（升序列表）/ count / params
//
// 示例：
//   - `item.brand == "FunBox"`
//   - `item.popularity < 0.7 && !(item.category in rctx.preferred)`
//   - `label.rank_model != null`
package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/fairrec/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvErr  error
	celEnvOnce sync.Once
)

func getCELEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = cel.NewEnv(
			cel.Variable("item", cel.DynType),
			cel.Variable("label", cel.DynType),
			cel.Variable("rctx", cel.DynType),
		)
	})
	return celEnv, celEnvErr
}

// Expr 是编译后的布尔表达式，可并发复用。
type Expr struct {
	source string
	prg    cel.Program
}

// Compile 编译表达式，表达式必须返回 bool。
func Compile(expr string) (*Expr, error) {
	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile %q: %w", expr, issues.Err())
	}
	if out := ast.OutputType(); !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("compile %q: expression must return bool, got %s", expr, out)
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", expr, err)
	}
	return &Expr{source: expr, prg: prg}, nil
}

// String 返回原始表达式。
func (e *Expr) String() string { return e.source }

// Eval 在候选与请求上下文上求值。
func (e *Expr) Eval(item *core.Candidate, rctx *core.RecommendContext) (bool, error) {
	out, _, err := e.prg.Eval(buildInput(item, rctx))
	if err != nil {
		// 访问不存在的 label key 会报错，表达式里应先判断 label.key != null
		return false, fmt.Errorf("eval %q: %w", e.source, err)
	}
	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("eval %q: expression must return boolean, got %T", e.source, out.Value())
	}
	return result, nil
}

func buildInput(item *core.Candidate, rctx *core.RecommendContext) map[string]any {
	labels := make(map[string]any, len(item.Labels))
	for k, v := range item.Labels {
		labels[k] = v.Value
	}

	reasons := make([]any, 0, len(item.Reasons))
	for _, r := range item.Reasons {
		reasons = append(reasons, r)
	}

	features := make(map[string]any, len(item.Features))
	for k, v := range item.Features {
		features[k] = v
	}

	itemMap := map[string]any{
		"id":         item.Product.ID,
		"name":       item.Product.Name,
		"category":   item.Product.Category,
		"brand":      item.Product.Brand,
		"popularity": item.Product.Popularity,
		"score":      item.Score,
		"reasons":    reasons,
		"features":   features,
	}

	rctxMap := map[string]any{
		"preferred": []any{},
		"excluded":  []any{},
		"count":     0,
		"params":    map[string]any{},
	}
	if rctx != nil {
		rctxMap["preferred"] = toAnySlice(rctx.Preferred.Sorted())
		rctxMap["excluded"] = toAnySlice(rctx.Excluded.Sorted())
		rctxMap["count"] = rctx.Count
		if rctx.Params != nil {
			rctxMap["params"] = rctx.Params
		}
	}

	return map[string]any{
		"item":  itemMap,
		"label": labels,
		"rctx":  rctxMap,
	}
}

func toAnySlice(s []string) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}
