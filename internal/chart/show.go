package chart

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// ErrNoDisplay is returned by Show when no graphical session is available.
var ErrNoDisplay = errors.New("no display available")

// Show opens path in the platform image viewer.
func Show(ctx context.Context, path string) error {
	args, err := viewerCommand(runtime.GOOS, os.Getenv, path)
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", args[0], err, out)
	}
	return nil
}

func viewerCommand(goos string, getenv func(string) string, path string) ([]string, error) {
	switch goos {
	case "darwin":
		return []string{"open", path}, nil
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler", path}, nil
	default:
		if getenv("DISPLAY") == "" && getenv("WAYLAND_DISPLAY") == "" {
			return nil, ErrNoDisplay
		}
		return []string{"xdg-open", path}, nil
	}
}
