package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"bennypowers.dev/themify/internal/build"
	"bennypowers.dev/themify/internal/log"
	"bennypowers.dev/themify/internal/themify"
	"bennypowers.dev/themify/internal/watcher"
)

type buildFlags struct {
	outDir string
	check  bool
	watch  bool
}

func newBuildCmd(a *app) *cobra.Command {
	var flags buildFlags
	cmd := &cobra.Command{
		Use:   "build [globs...]",
		Short: "Compile stylesheets",
		Long: `Compile every stylesheet matching the globs (default: the "input" config
option) into the output directory. With --check nothing is written; stale
outputs are printed as a diff and the command fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.outDir != "" {
				a.cfg.OutDir = flags.outDir
			}
			patterns := args
			if len(patterns) == 0 {
				patterns = a.cfg.Input
			}

			if flags.watch {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return a.watch(ctx, cmd, patterns, flags)
			}
			return a.build(cmd.Context(), cmd, patterns, flags)
		},
	}
	cmd.Flags().StringVarP(&flags.outDir, "out-dir", "o", "", "output directory (default: the \"outDir\" config option)")
	cmd.Flags().BoolVar(&flags.check, "check", false, "fail when outputs are out of date instead of writing them")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "rebuild when inputs or the palette change")
	cmd.MarkFlagsMutuallyExclusive("check", "watch")
	return cmd
}

func (a *app) builder(check bool) (*build.Builder, error) {
	opts, err := a.cfg.Options()
	if err != nil {
		return nil, err
	}
	th, err := themify.New(opts)
	if err != nil {
		return nil, err
	}
	return &build.Builder{
		Themify: th,
		RootDir: a.dir,
		OutDir:  a.cfg.Resolve(a.cfg.OutDir),
		Check:   check,
	}, nil
}

func (a *app) build(ctx context.Context, cmd *cobra.Command, patterns []string, flags buildFlags) error {
	b, err := a.builder(flags.check)
	if err != nil {
		return err
	}

	inputs, err := build.Discover(a.dir, patterns, b.OutDir)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		log.Warn("No stylesheets match %s", strings.Join(patterns, ", "))
		return nil
	}

	report, err := b.Run(ctx, inputs)
	if errors.Is(err, build.ErrStale) {
		out := cmd.OutOrStdout()
		for _, f := range report.Stale() {
			_, _ = fmt.Fprintf(out, "--- %s\n+++ %s\n%s", f.Output, f.Input, f.Diff)
		}
		return fmt.Errorf("%d of %d outputs: %w", len(report.Stale()), len(report.Files), err)
	}
	if err != nil {
		return err
	}
	if !flags.check {
		log.Info("Built %d stylesheets", len(report.Files))
	}
	return nil
}

func (a *app) watch(ctx context.Context, cmd *cobra.Command, patterns []string, flags buildFlags) error {
	if err := a.build(ctx, cmd, patterns, flags); err != nil {
		log.Error("%v", err)
	}

	outDir := a.cfg.Resolve(a.cfg.OutDir)
	dirs, err := watchDirs(a.dir, outDir)
	if err != nil {
		return err
	}
	palettePath := a.cfg.Resolve(a.cfg.PalleteFile)

	cfg := watcher.DefaultConfig(dirs...)
	cfg.Match = func(path string) bool {
		if palettePath != "" && filepath.Clean(path) == filepath.Clean(palettePath) {
			return true
		}
		rel, err := filepath.Rel(a.dir, path)
		return err == nil && build.MatchesAnyPattern(rel, patterns)
	}

	w, err := watcher.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	changes, err := w.Start()
	if err != nil {
		return err
	}
	log.Info("Watching %d directories for changes", len(dirs))

	for {
		select {
		case <-ctx.Done():
			return nil
		case changed := <-changes:
			log.Info("Changed: %s", strings.Join(changed, ", "))
			if err := a.loadConfig(cmd); err != nil {
				log.Error("%v", err)
				continue
			}
			if err := a.build(ctx, cmd, patterns, flags); err != nil {
				log.Error("%v", err)
			}
		}
	}
}

// watchDirs lists root and its subdirectories, skipping the ones Discover skips
func watchDirs(root, outDir string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != root && (strings.HasPrefix(name, ".") || name == "node_modules" || filepath.Clean(path) == filepath.Clean(outDir)) {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	return dirs, err
}
