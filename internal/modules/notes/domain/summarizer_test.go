package domain_test

import (
	"testing"

	"aperture/internal/modules/notes/domain"
)

func TestSummarizeKeepsRankOrder(t *testing.T) {
	t.Parallel()
	sentences := domain.SplitSentences("A b c. D e. F.")
	if len(sentences) != 3 || sentences[0] != "A b c" || sentences[1] != "D e" || sentences[2] != "F" {
		t.Fatalf("unexpected sentences: %q", sentences)
	}
	scored := domain.ScoreSentences(sentences)
	for i, want := range []int{3, 2, 1} {
		if scored[i].Score != want {
			t.Fatalf("sentence %d: expected score %d, got %d", i, want, scored[i].Score)
		}
	}
	if got := domain.Summarize("A b c. D e. F.", domain.DefaultSummarySentences); got != "A b c D e F" {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()
	if got := domain.Summarize("", domain.DefaultSummarySentences); got != "" {
		t.Fatalf("expected empty summary, got %q", got)
	}
	if got := domain.Summarize("One two. Three.", 0); got != "" {
		t.Fatalf("expected empty summary for n=0, got %q", got)
	}
}

func TestSummarizePicksLongestThree(t *testing.T) {
	t.Parallel()
	text := "one. one two three four five. one two. one two three four. one two three."
	got := domain.Summarize(text, domain.DefaultSummarySentences)
	want := "one two three four five one two three four one two three"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSummarizeTiesKeepReadingOrder(t *testing.T) {
	t.Parallel()
	got := domain.Summarize("red fox. blue jay. small cat. big dog owner.", 3)
	if got != "big dog owner red fox blue jay" {
		t.Fatalf("unexpected tie order %q", got)
	}
}

func TestWhitespaceFragmentsScoreZero(t *testing.T) {
	t.Parallel()
	sentences := domain.SplitSentences("Hello world.   . End")
	if len(sentences) != 3 || sentences[1] != "" {
		t.Fatalf("expected whitespace fragment kept as empty sentence, got %q", sentences)
	}
	if got := domain.Summarize("Hello world.   . End", 2); got != "Hello world End" {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestTitleFromBody(t *testing.T) {
	t.Parallel()
	if got := domain.TitleFromBody("\n\n# Golden hour\nwarm light"); got != "Golden hour" {
		t.Fatalf("unexpected title %q", got)
	}
	long := "Ãperture priority mode lets the camera pick shutter speed while you fix f-number"
	got := domain.TitleFromBody(long)
	if len([]rune(got)) > 60 {
		t.Fatalf("title should be cut to 60 runes, got %d", len([]rune(got)))
	}
}
