package pipeline

import (
	"context"

	"github.com/rushteam/fairrec/core"
)

// Kind 用于标记 Node 类型，方便观测/编排（例如按阶段打点）。
type Kind string

const (
	KindRecall Kind = "recall" // 召回阶段：从目录生成候选集
	KindFilter Kind = "filter" // 过滤阶段：剔除排除类别/黑名单等
	KindRank   Kind = "rank"   // 排序阶段：打分、写理由并排序
	KindReRank Kind = "rerank" // 重排阶段：多样性上限、补齐、截断
)

// Node 是 Pipeline 的最小可扩展单元。
// 统一采用“输入 candidates -> 输出 candidates”的形态。
type Node interface {
	Name() string
	Kind() Kind

	Process(
		ctx context.Context,
		rctx *core.RecommendContext,
		items []*core.Candidate,
	) ([]*core.Candidate, error)
}
