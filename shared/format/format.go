package format

import "fmt"

// Preview returns a truncated string for logging
func Preview(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length] + "..."
}

// Bytes formats bytes into human-readable format (KB, MB, GB, TB, etc.)
func Bytes(b int64) string {
	if b == 0 {
		return "0 B"
	}

	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}

	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.2f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
