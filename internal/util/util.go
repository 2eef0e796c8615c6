// Package util contains small helpers shared across layers.
package util

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

// FileSize returns the size in bytes of a stored product file.
func FileSize(dir, name string) (int64, error) {
	info, err := os.Stat(filepath.Join(dir, name))
	if err != nil {
		return 0, errors.Wrap(err, "failed to stat file")
	}

	return info.Size(), nil
}

// FormatFileSize renders a byte count using decimal thresholds and the
// historical unit labels. Boundaries are strict, so exactly 1000 bytes
// still renders as bytes.
func FormatFileSize(size int64) string {
	switch {
	case size > 1_000_000_000:
		return formatScaled(size, 1_000_000_000) + " Gb"
	case size > 1_000_000:
		return formatScaled(size, 1_000_000) + " Mb"
	case size > 1_000:
		return formatScaled(size, 1_000) + " Kb"
	default:
		return strconv.FormatInt(size, 10) + " bytes"
	}
}

// formatScaled divides in single precision to match the display values
// the catalog has always shown.
func formatScaled(size, unit int64) string {
	v := float32(size) / float32(unit)

	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
