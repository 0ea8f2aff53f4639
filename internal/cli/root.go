// Package cli wires the cobra command tree: one command per script family
// of the migration tooling.
package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cms-migrate",
		Short: "One-off migration tooling for the Casa Rosier site content",
		Long: `cms-migrate moves site content out of the legacy key/value backend into
the structured content store: settings, menu, blog posts, landing pages, and
courses/gift cards recovered from history snapshots. It also repairs and
audits menu links broken by slug renames during migration.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.AddCommand(NewMigrateCmd())
	rootCmd.AddCommand(NewMenuCmd())
	rootCmd.AddCommand(NewVerifyCmd())

	return rootCmd
}
