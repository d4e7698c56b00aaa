package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/beeep"
	log "github.com/sirupsen/logrus"
)

// ExpandTilde will resolve to the correct location on disk.
func ExpandTilde(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// SplitPatterns flattens repeated and comma-separated flag values, dropping
// empty entries.
func SplitPatterns(values []string) []string {
	var out []string
	for _, v := range values {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func SendNotification(enabled bool, title string, message string) {
	if enabled {
		if err := beeep.Notify(title, message, ""); err != nil {
			log.Warnf("Notification failed: %v", err)
		}
	}
}
