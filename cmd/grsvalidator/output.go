package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Amr-9/GrsValidator/internal/config"
	"github.com/Amr-9/GrsValidator/internal/ui"
)

// printData writes data as JSON or YAML.
func printData(w io.Writer, format string, data any) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("invalid format %q", format)
	}
}

// newConsole colors output only when w is a terminal and NO_COLOR is unset.
func newConsole(w io.Writer) *ui.Console {
	color := false
	if f, ok := w.(*os.File); ok && os.Getenv("NO_COLOR") == "" {
		if fi, err := f.Stat(); err == nil {
			color = fi.Mode()&os.ModeCharDevice != 0
		}
	}
	return ui.NewConsole(w, color)
}
