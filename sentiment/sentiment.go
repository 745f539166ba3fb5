// Package sentiment 是基于固定词表的评论情感判断。
package sentiment

import (
	"strings"
)

// Polarity 是判断结果。
type Polarity string

const (
	Positive Polarity = "Positive"
	Negative Polarity = "Negative"
)

var positiveWords = wordSet(
	"good", "great", "excellent", "happy", "love", "wonderful",
	"positive", "amazing", "fantastic", "enjoyed", "liked", "best",
)

var negativeWords = wordSet(
	"bad", "terrible", "poor", "sad", "hate", "awful",
	"negative", "worst", "boring", "dislike", "disappointed", "horrible",
)

// Result 记录判断结果以及命中的正/负面词数（去重后）。
type Result struct {
	Polarity Polarity `json:"polarity"`
	Positive int      `json:"positive"`
	Negative int      `json:"negative"`
}

// Classify 判断评论倾向：无任何命中时为 Negative，正面词数 >= 负面词数时为 Positive。
func Classify(text string) Result {
	words := make(map[string]struct{})
	for _, field := range strings.Fields(text) {
		w := strings.ToLower(strings.Trim(field, ".,!?"))
		if w == "" {
			continue
		}
		words[w] = struct{}{}
	}

	var r Result
	for w := range words {
		if _, ok := positiveWords[w]; ok {
			r.Positive++
		}
		if _, ok := negativeWords[w]; ok {
			r.Negative++
		}
	}

	switch {
	case r.Positive == 0 && r.Negative == 0:
		r.Polarity = Negative
	case r.Positive >= r.Negative:
		r.Polarity = Positive
	default:
		r.Polarity = Negative
	}
	return r
}

// Sentence 返回面向用户的结论，例如 "The review is Positive."。
func (r Result) Sentence() string {
	return "The review is " + string(r.Polarity) + "."
}

func wordSet(words ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		out[w] = struct{}{}
	}
	return out
}
