package chart

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Show opens an image file with the platform viewer. Best effort: the
// viewer runs detached and display problems do not fail the pass.
func Show(path string) error {
	var opener string
	switch runtime.GOOS {
	case "darwin":
		opener = "open"
	case "windows":
		opener = "explorer"
	default:
		opener = "xdg-open"
	}
	if _, err := exec.LookPath(opener); err != nil {
		return fmt.Errorf("no image viewer available: %w", err)
	}
	return exec.Command(opener, path).Start()
}
