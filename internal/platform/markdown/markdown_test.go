package markdown_test

import (
	"strings"
	"testing"
	"time"

	"aperture/internal/platform/markdown"
)

func TestFrontmatterRoundTripKeepsBody(t *testing.T) {
	t.Parallel()
	rendered, err := markdown.RenderFrontmatter(map[string]any{"id": "n-1", "words": 3}, "# Title\n\nbody\n")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	meta, body, err := markdown.SplitFrontmatter(rendered)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if markdown.AsString(meta["id"]) != "n-1" || markdown.AsInt(meta["words"]) != 3 {
		t.Fatalf("unexpected meta: %+v", meta)
	}
	if body != "# Title\n\nbody\n" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestSplitFrontmatterHandlesCRLFAndMissingHeader(t *testing.T) {
	t.Parallel()
	meta, body, err := markdown.SplitFrontmatter("---\r\ntitle: x\r\n---\r\nhello\r\n")
	if err != nil {
		t.Fatalf("split crlf: %v", err)
	}
	if markdown.AsString(meta["title"]) != "x" || body != "hello\n" {
		t.Fatalf("unexpected crlf split: %+v %q", meta, body)
	}
	meta, body, err = markdown.SplitFrontmatter("plain body")
	if err != nil || len(meta) != 0 || body != "plain body" {
		t.Fatalf("expected passthrough, got %+v %q %v", meta, body, err)
	}
	if _, _, err := markdown.SplitFrontmatter("---\ntitle: x\nbody"); err == nil {
		t.Fatalf("expected missing separator error")
	}
}

func TestManagedBlockLifecycle(t *testing.T) {
	t.Parallel()
	const start, end = "<!-- s -->", "<!-- e -->"
	body := markdown.ReplaceManagedBlock("text\n", start, end, "one")
	if got, ok := markdown.ExtractManagedBlock(body, start, end); !ok || got != "one" {
		t.Fatalf("expected block one, got %q %t", got, ok)
	}
	body = markdown.ReplaceManagedBlock(body, start, end, "two")
	if strings.Count(body, start) != 1 {
		t.Fatalf("block duplicated: %q", body)
	}
	if got, _ := markdown.ExtractManagedBlock(body, start, end); got != "two" {
		t.Fatalf("expected block two, got %q", got)
	}
	if cleaned := markdown.RemoveManagedBlock(body, start, end); cleaned != "text\n" {
		t.Fatalf("unexpected cleaned body: %q", cleaned)
	}
}

func TestAsTimeParsesRFC3339(t *testing.T) {
	t.Parallel()
	want := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	if got := markdown.AsTime(want.Format(time.RFC3339)); !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if got := markdown.AsTime(42); !got.IsZero() {
		t.Fatalf("expected zero time, got %s", got)
	}
}
