package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/macropower/verbump/pkg/log"
	"github.com/macropower/verbump/pkg/semver"
	"github.com/macropower/verbump/pkg/versync"
)

var (
	ErrLogHandlerFailed = errors.New("log handler failed")
	ErrInvalidArgs      = errors.New("invalid arguments")
	ErrSyncFailed       = errors.New("sync failed")
)

const exitStatusDesc = `Exit status is 0 when every target was updated, unchanged or skipped as
missing. It is 1 when the root manifest is unusable (nothing is written),
when a flag is invalid, or when any target failed to update. Other targets
are still processed after a failure.`

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	args := NewRootArgs()

	if longDesc != "" {
		longDesc += "\n"
	}

	cmd := &cobra.Command{
		Use:           name + " [version]",
		Short:         shortDesc,
		Long:          longDesc + exitStatusDesc,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionString(),
	}

	cmd.PersistentFlags().StringVar(args.logLevel, "log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(args.logFormat, "log_format", "text", "Set the log format (text, logfmt, json)")
	cmd.PersistentFlags().StringVar(args.root, "root", "", "Project root (default: closest directory with the root manifest)")
	cmd.PersistentFlags().StringVar(args.config, "config", "", "Path to a target configuration file")
	cmd.PersistentFlags().StringVar(args.color, "color", "auto", "Colorize output (auto, always, never)")

	cmd.Flags().StringVar(args.bump, "bump", "patch", "Component to increment when no version is given (patch, minor, major)")
	cmd.Flags().BoolVar(args.dryRun, "dry_run", false, "Show the changes without writing any file")

	err := cmd.MarkPersistentFlagDirname("root")
	if err != nil {
		panic(err)
	}

	err = cmd.MarkPersistentFlagFilename("config", "yaml", "yml")
	if err != nil {
		panic(err)
	}

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		h, err := log.CreateHandlerWithStrings(
			cc.ErrOrStderr(),
			args.GetLogLevel(),
			args.GetLogFormat(),
		)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		slog.SetDefault(slog.New(h))

		slog.Debug("ready to go")

		return nil
	}

	cmd.RunE = func(cc *cobra.Command, posArgs []string) error {
		kind, err := semver.GetBumpKind(args.GetBump())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
		}

		explicit := ""
		if len(posArgs) == 1 {
			explicit = posArgs[0]
		}

		p, err := newPrinter(cc, args)
		if err != nil {
			return err
		}

		s, err := newSynchronizer(args, versync.WithDryRun(args.GetDryRun()))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSyncFailed, err)
		}

		s.Subscribe(p.Handle)

		if _, err := s.Sync(explicit, kind); err != nil {
			return fmt.Errorf("%w: %w", ErrSyncFailed, err)
		}

		return nil
	}

	cmd.AddCommand(NewCheckCmd(args))
	cmd.AddCommand(NewVersionCmd())

	return cmd
}
