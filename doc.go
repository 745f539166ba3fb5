// Package fairrec 是一个可解释、类别多样的商品推荐工具包。
//
// 设计要点：
// - Pipeline-first: 推荐逻辑通过 Node 串联（Recall → Filter → Rank → ReRank）
// - Explain-first: 每个结果都带有推荐理由，labels 记录每个节点的处理痕迹
// - Diversity: 每个类别默认至多 2 个，不足时从排序头部补齐并标注
// - 纯函数入口 recommend.Recommend 与可配置的 recommend.Engine 语义一致
package fairrec

import "github.com/rushteam/fairrec/pipeline"

// 轻量 facade：便于用户直接 import "fairrec" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindRecall = pipeline.KindRecall
	KindFilter = pipeline.KindFilter
	KindRank   = pipeline.KindRank
	KindReRank = pipeline.KindReRank
)
