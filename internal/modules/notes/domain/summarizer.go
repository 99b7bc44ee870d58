package domain

import (
	"sort"
	"strings"
)

// DefaultSummarySentences is how many sentences a summary keeps unless configured.
const DefaultSummarySentences = 3

const sentenceDelimiter = "."

// Sentence is one scored fragment of the input text.
type Sentence struct {
	Index int
	Text  string
	Score int
}

// SplitSentences splits on '.' and trims each fragment. Empty fragments
// left by adjacent or trailing delimiters are dropped; whitespace-only
// fragments survive as empty sentences.
func SplitSentences(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, sentenceDelimiter)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		out = append(out, strings.TrimSpace(part))
	}
	return out
}

// ScoreSentences scores every sentence by its whitespace-delimited word count.
func ScoreSentences(sentences []string) []Sentence {
	out := make([]Sentence, 0, len(sentences))
	for i, s := range sentences {
		out = append(out, Sentence{Index: i, Text: s, Score: len(strings.Fields(s))})
	}
	return out
}

// Rank orders sentences by descending score, earlier sentences first on ties.
func Rank(scored []Sentence) []Sentence {
	ranked := append([]Sentence(nil), scored...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Index < ranked[j].Index
	})
	return ranked
}

// Summarize joins the n highest scoring sentences with a single space, in
// rank order rather than reading order.
func Summarize(text string, n int) string {
	if n <= 0 {
		return ""
	}
	ranked := Rank(ScoreSentences(SplitSentences(text)))
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	parts := make([]string, 0, len(ranked))
	for _, s := range ranked {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, " ")
}
