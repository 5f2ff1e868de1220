package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var ErrCheckFailed = errors.New("check failed")

// NewCheckCmd returns the check command.
func NewCheckCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "check [version]",
		Short: "Report targets that do not carry the project version",
		Long: `Report, for every target, whether it carries the expected version.

The expected version is the root manifest version, or the given argument.
Nothing is written. Exits non-zero when any target has drifted or failed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cc *cobra.Command, posArgs []string) error {
			version := ""
			if len(posArgs) == 1 {
				version = posArgs[0]
			}

			p, err := newPrinter(cc, args)
			if err != nil {
				return err
			}

			s, err := newSynchronizer(args)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrCheckFailed, err)
			}

			report, err := s.Check(version)
			if report != nil {
				p.PrintCheck(report)
			}

			if err != nil {
				return fmt.Errorf("%w: %w", ErrCheckFailed, err)
			}

			return nil
		},
	}
}
