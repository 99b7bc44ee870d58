package components_test

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "aperture/internal/platform/errors"
	"aperture/internal/ui/components"
)

func TestPaletteSubmitsTrimmedInput(t *testing.T) {
	t.Parallel()
	p := components.NewPalette([]string{"exam:start <subject>", "exam:quit", "logout"})
	_ = p.Open()
	for _, r := range "exam:quit " {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if got := p.Matching(); len(got) != 1 || got[0] != "exam:quit" {
		t.Fatalf("unexpected matches %v", got)
	}
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.Visible() {
		t.Fatalf("palette should close on enter")
	}
	msg, ok := cmd().(components.PaletteSubmitMsg)
	if !ok || msg.Input != "exam:quit" {
		t.Fatalf("unexpected submit %#v", cmd())
	}
}

func TestUserMessage(t *testing.T) {
	t.Parallel()
	if got := components.UserMessage(apperrors.NewValidationError("email", "Email is invalid.")); got != "Email is invalid." {
		t.Fatalf("unexpected validation message %q", got)
	}
	if got := components.UserMessage(apperrors.ErrAccountExists); got != "An account with this email already exists." {
		t.Fatalf("unexpected duplicate message %q", got)
	}
	if got := components.UserMessage(fmt.Errorf("login: %w", apperrors.ErrInvalidCredentials)); got != "Invalid email or password." {
		t.Fatalf("unexpected credentials message %q", got)
	}
	if got := components.UserMessage(nil); got != "" {
		t.Fatalf("expected empty message, got %q", got)
	}
}
