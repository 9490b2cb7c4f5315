package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formlayout/pkg/outline"
)

// orderCommand applies a column order to a table and prints the result.
func (c *CLI) orderCommand() *cobra.Command {
	var (
		path      string
		tableName string
		columns   []string
	)

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Reorder the columns of a table",
		Long: `Apply a column order to a table definition and print its outline.

Named columns come first, in the given order, and are shown. Every other
column is hidden and kept after them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFromContext(cmd.Context())

			store, err := loadDefinitions(path)
			if err != nil {
				return err
			}
			t, err := store.BuildTable(tableName)
			if err != nil {
				return fmt.Errorf("build table: %w", err)
			}

			for _, name := range columns {
				if !t.HasColumn(name) {
					logger.Warn("unknown column ignored", "table", tableName, "column", name)
				}
			}
			t.SetOrder(columns)
			logger.Debug("applied order", "order", t.Order())

			text, err := outline.Table(t)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "definition file or directory")
	cmd.Flags().StringVar(&tableName, "table", "", "table name")
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "column names in display order (comma separated)")
	_ = cmd.MarkFlagRequired("table")
	return cmd
}
