package core

// 推荐链路的默认参数。
const (
	// DefaultAlpha 是类别匹配的权重
	DefaultAlpha = 0.7
	// DefaultBeta 是热度的权重
	DefaultBeta = 0.3
	// DefaultPopularThreshold 达到该热度时追加 "popular with similar shoppers"
	DefaultPopularThreshold = 0.8
	// DefaultMaxPerCategory 是多样性上限（每个类别最多几条）
	DefaultMaxPerCategory = 2

	// DefaultCount 是请求数量缺省或无法解析时的取值
	DefaultCount = 6
	// MinCount / MaxCount 是调用方需要保证的数量区间
	MinCount = 1
	MaxCount = 12
)

// 推荐理由文案。
const (
	ReasonPopular   = "popular with similar shoppers"
	ReasonBalanced  = "balanced relevance and popularity"
	ReasonDiversity = "included for diversity"
)

// ReasonInterest 返回类别命中时的理由文案。
func ReasonInterest(category string) string {
	return "matches your interest in '" + category + "'"
}
