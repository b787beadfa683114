package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart/recording"
)

// NewBackendsCommand creates the backends command.
func NewBackendsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backends [NAME...]",
		Short: "List output backends",
		Long: `List the registered output backends and the file extensions they claim.
With names, list only those backends and fail if one is not registered.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if recording.Count() == 0 {
				return errors.New("no backends registered")
			}
			names := args
			if len(names) == 0 {
				names = recording.Backends()
			}
			for _, name := range names {
				if !recording.IsRegistered(name) {
					return fmt.Errorf("backend %q is not registered (registered: %s)",
						name, strings.Join(recording.Backends(), ", "))
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", name, strings.Join(recording.Extensions(name), " "))
			}
			return nil
		},
	}
}
