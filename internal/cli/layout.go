package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// layoutCommand prints the layout array of a form definition.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		path          string
		formName      string
		format        string
		createDefault bool
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the layout array of a form",
		Long: `Build a form from its definition and print its layout in array form.

Without --default a form that defines no layout prints an empty array; with
--default it gets one row per field.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFromContext(cmd.Context())

			store, err := loadDefinitions(path)
			if err != nil {
				return err
			}
			logger.Debug("loaded definitions", "forms", len(store.FormNames()), "tables", len(store.TableNames()))

			f, err := store.BuildForm(formName)
			if err != nil {
				return fmt.Errorf("build form: %w", err)
			}
			if !f.HasLayout() && !createDefault {
				logger.Warn("form has no layout", "form", formName)
			}
			return writeEncoded(cmd.OutOrStdout(), format, f.LayoutArray(createDefault))
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "definition file or directory")
	cmd.Flags().StringVar(&formName, "form", "", "form name")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json, yaml")
	cmd.Flags().BoolVar(&createDefault, "default", false, "create the default layout when the form has none")
	_ = cmd.MarkFlagRequired("form")
	return cmd
}
