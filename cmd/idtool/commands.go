package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/Stockpile_Go/internal/customid"
	"github.com/osse101/Stockpile_Go/internal/domain"
)

func newPreviewCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "preview <template>",
		Short: "Render the IDs the first items of an inventory would get",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, tmpl, err := loadTemplate(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "pattern: %s\n", tmpl.Pattern())
			for _, issue := range tmpl.Issues() {
				fmt.Fprintf(out, "warning: segment %d (%s): %s\n", issue.Index, issue.Type, issue.Message)
			}
			for seq := customid.PreviewSequence; seq < customid.PreviewSequence+int64(count); seq++ {
				id, err := tmpl.Generate(seq)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, id)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of consecutive IDs to render")
	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <template> [custom-id...]",
		Short: "Check that a template can be saved and that IDs fit it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			segments, tmpl, err := loadTemplate(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := customid.CheckFormat(segments); err != nil {
				var templateErr *domain.TemplateError
				if errors.As(err, &templateErr) {
					for _, issue := range templateErr.Issues {
						fmt.Fprintf(out, "segment %d (%s): %s\n", issue.Index, issue.Type, issue.Message)
					}
				}
				return err
			}
			fmt.Fprintf(out, "template ok: %s\n", tmpl.Pattern())

			failed := 0
			for _, candidate := range args[1:] {
				if err := tmpl.Match(candidate); err != nil {
					failed++
					fmt.Fprintf(out, "%s: %v\n", candidate, err)
					continue
				}
				fmt.Fprintf(out, "%s: ok\n", candidate)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d IDs do not fit the template", failed, len(args)-1)
			}
			return nil
		},
	}
}

func newEditCmd() *cobra.Command {
	var original, edited string

	cmd := &cobra.Command{
		Use:   "edit <template>",
		Short: "Validate a manual edit of a generated custom ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, tmpl, err := loadTemplate(args[0])
			if err != nil {
				return err
			}

			result := tmpl.ValidateEdit(original, edited)
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				return err
			}
			if !result.Valid {
				return &domain.EditRejectedError{Reason: result.Message}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&original, "original", "", "Custom ID as generated")
	cmd.Flags().StringVar(&edited, "edited", "", "Custom ID after the edit")
	_ = cmd.MarkFlagRequired("original")
	_ = cmd.MarkFlagRequired("edited")
	return cmd
}
