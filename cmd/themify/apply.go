package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/themify/internal/palette"
	"bennypowers.dev/themify/internal/runtime"
)

func newApplyCmd(a *app) *cobra.Command {
	var (
		fallback string
		override string
		legacy   bool
		html     bool
	)
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Preview the style a theme override injects at runtime",
		Long: `Apply a theme override the way the runtime does and print the injected
style. With --legacy the fallback bundle is fetched and decoded, as for a
browser without custom property support.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			over, err := palette.LoadFile(override)
			if err != nil {
				return fmt.Errorf("failed to load override: %w", err)
			}

			base, err := a.cfg.Palette()
			if err != nil {
				return err
			}

			locator := fallback
			if locator == "" {
				locator = a.cfg.Resolve(a.cfg.Fallback.DynamicPath)
			}

			doc := runtime.NewMemoryDocument()
			applier := runtime.NewApplier(doc, func() bool { return !legacy }, runtime.DefaultFetcher{})
			css, err := applier.Apply(cmd.Context(), locator, over, base)
			if err != nil {
				return err
			}

			if html {
				_, err = fmt.Fprint(cmd.OutOrStdout(), doc.HTML())
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), css)
			return err
		},
	}
	cmd.Flags().StringVar(&fallback, "fallback", "", "fallback JSON path or URL (default: the \"fallback.dynamicPath\" config option)")
	cmd.Flags().StringVar(&override, "override", "", "theme override file (JSON or YAML)")
	cmd.Flags().BoolVar(&legacy, "legacy", false, "decode the fallback bundle instead of setting custom properties")
	cmd.Flags().BoolVar(&html, "html", false, "print the injected <style> elements")
	_ = cmd.MarkFlagRequired("override")
	return cmd
}
