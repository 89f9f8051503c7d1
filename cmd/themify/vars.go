package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/themify/internal/themify"
)

func newVarsCmd(a *app) *cobra.Command {
	var sass bool
	cmd := &cobra.Command{
		Use:   "vars",
		Short: "Print the custom property blocks generated from the palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.cfg.Palette()
			if err != nil {
				return err
			}
			if err := p.Validate(); err != nil {
				return err
			}
			css, err := themify.VarsCSS(p, a.cfg.ClassPrefix)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, css); err != nil {
				return err
			}
			if sass {
				_, err = fmt.Fprintln(out, themify.SassMap(p))
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&sass, "sass", false, "also print the $pallete Sass map")
	return cmd
}
