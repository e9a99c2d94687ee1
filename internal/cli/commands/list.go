package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mockcheck/internal/config"
	"mockcheck/internal/suite"
	"mockcheck/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config *config.Config
	loader *suite.Loader
	filter *suite.Filter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, loader *suite.Loader, filter *suite.Filter) *ListCommand {
	return &ListCommand{
		config: cfg,
		loader: loader,
		filter: filter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cases, err := lc.loader.Load(lc.config.Flags.SuitePath)
	if err != nil {
		return err
	}

	cases = lc.filter.FilterByName(cases, lc.config.Flags.NameFilter)

	if len(cases) == 0 {
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "No cases found")
		return nil
	}

	details, _ := cmd.Flags().GetBool("details")
	ui.NewFormatter(cmd.OutOrStdout(), false).PrintCaseList(cases, details)
	return nil
}
