package core

import "sort"

// CategorySet 是类别集合（偏好 / 排除）。
// 成员比较是精确匹配，大小写归一化由调用方（prefs 包）完成。
type CategorySet map[string]struct{}

func NewCategorySet(categories ...string) CategorySet {
	s := make(CategorySet, len(categories))
	for _, c := range categories {
		if c == "" {
			continue
		}
		s[c] = struct{}{}
	}
	return s
}

// Has 判断类别是否在集合中；nil 集合视为空集。
func (s CategorySet) Has(category string) bool {
	if s == nil {
		return false
	}
	_, ok := s[category]
	return ok
}

// Sorted 返回升序排列的成员列表（用于日志、DSL 输入等需要确定顺序的场景）。
func (s CategorySet) Sorted() []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
