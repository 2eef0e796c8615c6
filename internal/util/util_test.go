package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFormatFileSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		size     int64
		expected string
	}{
		{name: "zero bytes", size: 0, expected: "0 bytes"},
		{name: "under a kilobyte", size: 512, expected: "512 bytes"},
		{name: "exactly one thousand stays bytes", size: 1000, expected: "1000 bytes"},
		{name: "just above a kilobyte", size: 1001, expected: "1.001 Kb"},
		{name: "kilobytes", size: 1500, expected: "1.5 Kb"},
		{name: "exactly one million stays kilobytes", size: 1_000_000, expected: "1000 Kb"},
		{name: "megabytes", size: 2_500_000, expected: "2.5 Mb"},
		{name: "gigabytes", size: 3_000_000_001, expected: "3 Gb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatFileSize(tt.size); got != tt.expected {
				t.Fatalf("FormatFileSize(%d) = %s, want %s", tt.size, got, tt.expected)
			}
		})
	}
}

func TestFileSize(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "product.bin"), make([]byte, 1234), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	size, err := FileSize(dir, "product.bin")
	if err != nil {
		t.Fatalf("FileSize returned error: %v", err)
	}
	if size != 1234 {
		t.Fatalf("FileSize = %d, want 1234", size)
	}

	if _, err := FileSize(dir, "missing.bin"); err == nil {
		t.Fatal("FileSize on missing file should error")
	}
}
