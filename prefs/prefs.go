// Package prefs 解析用户输入的偏好：逗号分隔的类别与结果数量。
package prefs

import (
	"strconv"
	"strings"

	"github.com/rushteam/fairrec/core"
)

// ParseCSV 按逗号切分，去空白、转小写，丢弃空项。
func ParseCSV(s string) core.CategorySet {
	out := core.NewCategorySet()
	for _, part := range strings.Split(s, ",") {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" {
			continue
		}
		out[token] = struct{}{}
	}
	return out
}

// ParseCount 解析结果数量：空串或非整数返回 core.DefaultCount，其余限制在 [core.MinCount, core.MaxCount]。
func ParseCount(s string) int {
	return ParseCountOr(s, core.DefaultCount)
}

// ParseCountOr 同 ParseCount，但空串或非整数时返回 Clamp(def)。
func ParseCountOr(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Clamp(def)
	}
	return Clamp(n)
}

// Clamp 把 n 限制在 [core.MinCount, core.MaxCount]。
func Clamp(n int) int {
	return max(core.MinCount, min(core.MaxCount, n))
}

// Confirmed 判断确认输入：空、"y"、"yes"（不区分大小写）视为确认。
func Confirmed(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "y", "yes":
		return true
	default:
		return false
	}
}
