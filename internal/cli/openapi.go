package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formlayout/pkg/form"
	"github.com/goliatone/go-formlayout/pkg/openapi"
	"github.com/goliatone/go-formlayout/pkg/outline"
)

type fieldSummary struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

type openapiResult struct {
	Operation string           `json:"operation" yaml:"operation"`
	Fields    []fieldSummary   `json:"fields" yaml:"fields"`
	Layout    form.LayoutArray `json:"layout" yaml:"layout"`
	Rules     form.RuleSet     `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// openapiCommand builds a form from an OpenAPI operation, or lists the
// operations when none is named.
func (c *CLI) openapiCommand() *cobra.Command {
	var (
		path        string
		operationID string
		format      string
		validate    bool
	)

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Build a form from an OpenAPI operation",
		Long: `Build a form from the request body of an OpenAPI 3 operation and print
its fields, layout array and validation rules.

Without --operation the operations of the document are listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			out := cmd.OutOrStdout()

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}
			opts := []openapi.Option{openapi.WithValidation(validate)}

			if operationID == "" {
				ops, err := openapi.Operations(ctx, data, opts...)
				if err != nil {
					return err
				}
				for _, op := range ops {
					line := fmt.Sprintf("%s\t%s %s", op.ID, op.Method, op.Path)
					if op.Summary != "" {
						line += "\t" + op.Summary
					}
					if _, err := io.WriteString(out, line+"\n"); err != nil {
						return err
					}
				}
				return nil
			}

			p := newProgress(logger)
			f, rules, err := openapi.FormFromOperation(ctx, data, operationID, opts...)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("built form for %s with %d fields", operationID, len(f.Fields())))

			if strings.EqualFold(format, "outline") {
				text, err := outline.Layout(f.EnsureLayout())
				if err != nil {
					return err
				}
				_, err = io.WriteString(out, text)
				return err
			}

			result := openapiResult{
				Operation: operationID,
				Layout:    f.LayoutArray(true),
				Rules:     rules,
			}
			for _, field := range f.Fields() {
				result.Fields = append(result.Fields, fieldSummary{Name: field.Name(), Type: field.Type()})
			}
			return writeEncoded(out, format, result)
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "OpenAPI document (JSON or YAML)")
	cmd.Flags().StringVar(&operationID, "operation", "", "operation id (lists operations when empty)")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json, yaml, outline")
	cmd.Flags().BoolVar(&validate, "validate", false, "validate the document before building")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
