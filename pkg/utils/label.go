package utils

// Label 记录候选在链路中被谁、因为什么处理过：可解释、可追踪、可透传。
// Value 与 Source 的语义由节点自定义；这里只提供标准化的合并规则。
type Label struct {
	Value  string `json:"value"`
	Source string `json:"source"` // recall / filter / rank / rerank ...
}

// 链路内置节点写入的 label key。
const (
	LabelRecallSource = "recall_source"
	LabelFiltered     = "filtered"
	LabelRankModel    = "rank_model"
	LabelCategoryCap  = "category_cap"
)

// MergeLabel 合并同名 Label，保留历史：
// - Value: 以 '|' 累积
// - Source: 以 ',' 累积
func MergeLabel(existing Label, incoming Label) Label {
	if existing.Value == "" {
		return incoming
	}
	if incoming.Value == "" {
		return existing
	}

	merged := existing
	merged.Value = existing.Value + "|" + incoming.Value
	switch {
	case existing.Source == "":
		merged.Source = incoming.Source
	case incoming.Source == "":
		merged.Source = existing.Source
	default:
		merged.Source = existing.Source + "," + incoming.Source
	}
	return merged
}
