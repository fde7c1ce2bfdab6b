package main

import (
	"todos/helper"

	"github.com/spf13/cobra"
)

var descriptions = map[helper.Action]string{
	helper.ActionUp:     "Apply every pending migration",
	helper.ActionDown:   "Roll back the most recent migration",
	helper.ActionStepUp: "Apply the next pending migration",
	helper.ActionDrop:   "Roll back every applied migration",
}

// newRootCommand builds the migrate CLI with one subcommand per action.
func newRootCommand(run func(action helper.Action) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the todos database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	for _, action := range helper.Actions {
		cmd.AddCommand(&cobra.Command{
			Use:   string(action),
			Short: descriptions[action],
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				return run(action)
			},
		})
	}

	return cmd
}
