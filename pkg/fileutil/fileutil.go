// Package fileutil provides small filesystem helpers shared by the services
// and the HTTP surface.
package fileutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// EnsureUniquePath returns path unchanged if nothing exists there, otherwise
// a variant with a " (n)" suffix before the extension.
func EnsureUniquePath(path string) string {
	if _, err := os.Stat(path); err != nil {
		return path
	}
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	name := strings.TrimSuffix(filepath.Base(path), ext)

	for counter := 1; ; counter++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", name, counter, ext))
		if _, err := os.Stat(candidate); err != nil {
			return candidate
		}
	}
}

// FormatBytes renders a byte count in a human-readable unit.
func FormatBytes(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	value := float64(size)
	for _, suffix := range []string{"KB", "MB", "GB"} {
		value /= unit
		if value < unit {
			return fmt.Sprintf("%.1f %s", value, suffix)
		}
	}
	return fmt.Sprintf("%.1f TB", value/unit)
}

// FileSizeFormatted returns the size of the file at path, formatted, or
// "Unknown" when the file cannot be read.
func FileSizeFormatted(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "Unknown"
	}
	return FormatBytes(info.Size())
}

// TruncatePath shortens a path for display while keeping the filename visible.
func TruncatePath(path string, maxLength int) string {
	if len(path) <= maxLength {
		return path
	}
	name := filepath.Base(path)
	if len(name) >= maxLength-3 {
		return "..." + name[len(name)-(maxLength-3):]
	}
	remaining := maxLength - len(name) - 4
	if remaining > 0 {
		dir := filepath.Dir(path)
		if len(dir) > remaining {
			dir = dir[len(dir)-remaining:]
		}
		return "..." + dir + string(os.PathSeparator) + name
	}
	return "..." + name
}

// OpenInFileManager opens the platform file manager at the given directory.
// Best effort; callers treat failure as non-fatal.
func OpenInFileManager(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("explorer", dir)
	case "darwin":
		cmd = exec.Command("open", dir)
	default:
		cmd = exec.Command("xdg-open", dir)
	}
	return cmd.Start()
}
