package core

import "github.com/rushteam/fairrec/pkg/utils"

// RecommendContext 承载单次请求的输入，贯穿整个 Pipeline 透传。
// 每次调用独立构造，不在调用之间共享或持久化。
type RecommendContext struct {
	RequestID string

	// Catalog 是本次调用使用的只读目录
	Catalog *Catalog

	// Preferred / Excluded 是已归一化（trim + 小写）的类别集合，可为空
	Preferred CategorySet
	Excluded  CategorySet

	// Count 是期望的结果数量，由调用方限制在 [1, MaxCount]
	Count int

	// Params 请求级参数，可被 DSL 表达式读取
	Params map[string]any

	// Labels 是请求级标签
	Labels map[string]utils.Label
}

// PutLabel 写入请求级 Label。
func (rctx *RecommendContext) PutLabel(key string, lbl utils.Label) {
	if rctx.Labels == nil {
		rctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := rctx.Labels[key]; ok {
		rctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	rctx.Labels[key] = lbl
}

// GetLabel 获取请求级 Label。
func (rctx *RecommendContext) GetLabel(key string) (utils.Label, bool) {
	if rctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := rctx.Labels[key]
	return lbl, ok
}
