package utils

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// WriteList prints paths in the given format: "text" writes one path per
// line, "null" terminates each path with a NUL byte and "yaml" writes a YAML
// sequence.
func WriteList(w io.Writer, paths []string, format string) error {
	switch format {
	case "", "text":
		for _, p := range paths {
			if _, err := fmt.Fprintln(w, p); err != nil {
				return err
			}
		}
	case "null":
		for _, p := range paths {
			if _, err := fmt.Fprint(w, p, "\x00"); err != nil {
				return err
			}
		}
	case "yaml":
		if paths == nil {
			paths = []string{}
		}
		data, err := yaml.Marshal(paths)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}
