package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/macropower/verbump/pkg/config"
	"github.com/macropower/verbump/pkg/paths"
	"github.com/macropower/verbump/pkg/syncprint"
	"github.com/macropower/verbump/pkg/versync"
)

// newSynchronizer builds a [versync.Synchronizer] from the root flags and
// the configuration file, if any.
func newSynchronizer(args *RootArgs, opts ...versync.SynchronizerOpts) (*versync.Synchronizer, error) {
	var (
		cfg *config.Config
		err error
	)

	// An explicit config file may rename the root manifest, which is needed
	// to discover the root.
	if args.GetConfig() != "" {
		cfg, err = config.Load("", args.GetConfig())
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	manifestName := (&config.Config{}).GetRootManifest()
	if cfg != nil {
		manifestName = cfg.GetRootManifest()
	}

	root, err := getRoot(args.GetRoot(), manifestName)
	if err != nil {
		return nil, err
	}

	if cfg == nil {
		cfg, err = config.Load(root, "")
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	ts, err := cfg.GetTargets()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	slog.Debug("using project root",
		slog.String("root", root),
		slog.String("manifest", cfg.GetRootManifest()),
		slog.Bool("custom_targets", ts != nil),
	)

	opts = append([]versync.SynchronizerOpts{
		versync.WithRootManifest(cfg.GetRootManifest()),
		versync.WithTargets(ts),
	}, opts...)

	return versync.New(root, opts...), nil
}

// getRoot returns root if set, otherwise the closest directory containing
// manifestName. If there is none, the working directory is used so the
// missing manifest is reported by the synchronizer.
func getRoot(root, manifestName string) (string, error) {
	if root != "" {
		return root, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	found, err := paths.FindProjectRoot(cwd, manifestName)
	if err != nil {
		slog.Debug("project root not found, using working directory",
			slog.String("cwd", cwd),
			slog.Any("err", err),
		)

		return cwd, nil
	}

	return found, nil
}

func newPrinter(cc *cobra.Command, args *RootArgs) (*syncprint.Printer, error) {
	mode, err := syncprint.GetColorMode(args.GetColor())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}

	return syncprint.NewPrinter(cc.OutOrStdout(), mode), nil
}
