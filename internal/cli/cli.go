// Package cli implements the formlayout command-line interface.
//
// Commands load form and table definitions (JSON, YAML or TOML files, or a
// directory of them) and print layout arrays, outlines and column orders.
// The openapi command builds a form from an OpenAPI operation instead.
//
// Every command accepts --verbose (-v) for debug logging. The logger travels
// through the command context.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formlayout/pkg/definition"
)

const appName = "formlayout"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var version = "dev"

// SetVersion sets the version printed by --version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// CLI holds state shared by every command.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// RootCommand creates the root command with every subcommand registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Inspect form layouts and table definitions",
		Long:         `formlayout loads form and table definitions, serialises form layouts to their compact array form, and prints outlines of layouts and tables.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				c.Logger.SetLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.describeCommand())
	root.AddCommand(c.orderCommand())
	root.AddCommand(c.openapiCommand())
	return root
}

// loadDefinitions reads a definition file, or every definition file below a
// directory.
func loadDefinitions(path string) (*definition.Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("definitions path is required (-f)")
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("load definitions: %w", err)
	}
	if info.IsDir() {
		return definition.LoadFS(os.DirFS(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load definitions: %w", err)
	}
	return definition.LoadBytes(data, filepath.Base(path))
}

// writeEncoded prints value as indented JSON or YAML.
func writeEncoded(w io.Writer, format string, value any) error {
	switch strings.ToLower(format) {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q (json, yaml)", format)
	}
}
