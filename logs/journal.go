package logs

import (
	"log/slog"
	"os"
	"path"
	"strings"

	slogjournal "github.com/systemd/slog-journal"
)

func newJournalHandler() (slog.Handler, error) {
	return slogjournal.NewHandler(&slogjournal.Options{
		Level:        level,
		ReplaceGroup: toJournalKey,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
}

// toJournalKey maps a key to the journal field charset, upper case letters, digits and underscores.
func toJournalKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		}
		return '_'
	}, key)
}

func runningAsService() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	// hierarchy-ID:controllers:path
	parts := strings.SplitN(strings.TrimSpace(string(content)), ":", 3)
	if len(parts) < 3 {
		return false
	}
	return strings.HasSuffix(path.Dir(parts[2]), ".service")
}
