package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formlayout/pkg/outline"
)

// describeCommand prints the outline of a form layout or a table.
func (c *CLI) describeCommand() *cobra.Command {
	var (
		path      string
		formName  string
		tableName string
	)

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the outline of a form layout or a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if (formName == "") == (tableName == "") {
				return errors.New("exactly one of --form or --table is required")
			}
			store, err := loadDefinitions(path)
			if err != nil {
				return err
			}

			var text string
			if formName != "" {
				f, err := store.BuildForm(formName)
				if err != nil {
					return fmt.Errorf("build form: %w", err)
				}
				text, err = outline.Layout(f.EnsureLayout())
				if err != nil {
					return err
				}
			} else {
				t, err := store.BuildTable(tableName)
				if err != nil {
					return fmt.Errorf("build table: %w", err)
				}
				text, err = outline.Table(t)
				if err != nil {
					return err
				}
			}
			_, err = io.WriteString(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "definition file or directory")
	cmd.Flags().StringVar(&formName, "form", "", "form name")
	cmd.Flags().StringVar(&tableName, "table", "", "table name")
	return cmd
}
