package out

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	newsout "aperture/internal/modules/news/port/out"
	apperrors "aperture/internal/platform/errors"
)

// OSExternalLauncher hands links to the desktop browser.
type OSExternalLauncher struct{}

func NewOSExternalLauncher() newsout.ExternalLauncher {
	return &OSExternalLauncher{}
}

func (l *OSExternalLauncher) Open(_ context.Context, link string) error {
	if _, err := url.ParseRequestURI(link); err != nil {
		return fmt.Errorf("link %q: %w", link, apperrors.ErrInvalidInput)
	}
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", link)
	case "linux", "freebsd", "openbsd":
		cmd = exec.Command("xdg-open", link)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", link)
	default:
		return fmt.Errorf("opening links is not supported on %s", runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch browser: %w", err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
