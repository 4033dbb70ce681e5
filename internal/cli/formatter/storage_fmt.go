package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/learnhub/internal/storage"
)

// FormatStorageInfo renders where progress is persisted.
func FormatStorageInfo(info storage.Info) string {
	lines := []string{
		StatLine("Backend", Bold(info.Backend), 9),
		StatLine("Location", info.Location, 9),
	}
	if info.Key != "" {
		lines = append(lines, StatLine("Key", info.Key, 9))
	}
	if len(info.Records) > 0 {
		lines = append(lines, StatLine("Records", strings.Join(info.Records, ", "), 9))
	}
	if !info.Found {
		lines = append(lines, StatLine("Record", Dim("none saved yet"), 9))
		return strings.Join(lines, "\n") + "\n"
	}
	lines = append(lines, StatLine("Size", fmt.Sprintf("%d bytes", info.SizeBytes), 9))
	if !info.UpdatedAt.IsZero() {
		lines = append(lines, StatLine("Updated", info.UpdatedAt.Local().Format(time.DateTime), 9))
	}
	return strings.Join(lines, "\n") + "\n"
}
