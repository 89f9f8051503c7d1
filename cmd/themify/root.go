package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/themify/internal/config"
	"bennypowers.dev/themify/internal/log"
	"bennypowers.dev/themify/internal/version"
)

// app holds the state shared by subcommands
type app struct {
	cfgFile string
	dir     string
	cfg     config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "themify",
		Short:         "Expand themify() color macros into themeable CSS",
		Long:          `themify compiles stylesheets containing themify({"light": ..., "dark": ...}) macros into CSS custom properties, with an optional fallback bundle for browsers without custom property support.`,
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: ./themify.yaml or the \"themify\" key of package.json)")
	root.PersistentFlags().StringVarP(&a.dir, "dir", "C", ".",
		"project directory")
	root.PersistentFlags().String("log-level", "", "debug, info, warn or error")

	root.AddCommand(
		newBuildCmd(a),
		newVarsCmd(a),
		newApplyCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	v := viper.New()
	if err := v.BindPFlag("logLevel", cmd.Flags().Lookup("log-level")); err != nil {
		return err
	}

	cfg, err := config.Load(v, a.cfgFile, a.dir)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if level, ok := log.ParseLevel(cfg.LogLevel); ok {
		log.SetLevel(level)
	} else if cfg.LogLevel != "" {
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}
	log.SetOutput(os.Stderr)
	return nil
}
