package commands

import (
	"mockcheck/internal/assertion"
	"mockcheck/internal/cli"
	"mockcheck/internal/config"
	"mockcheck/internal/execution"
	"mockcheck/internal/storage"
	"mockcheck/internal/suite"
	"mockcheck/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	loader := suite.NewLoader(suite.NewScanner())
	filter := suite.NewFilter()
	runner := execution.NewRunner(cfg, assertion.NewChecker())
	sequencer := execution.NewSequencer(runner)
	jsonStorage := storage.NewJSONStorage(cfg)
	excelExporter := storage.NewExcelExporter()
	errorViewer := ui.NewErrorViewer(jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, loader, filter, sequencer, jsonStorage, excelExporter),
		List:     NewListCommand(cfg, loader, filter),
		Failures: NewFailuresCommand(jsonStorage, errorViewer),
	}
}

// NewRootCommand builds the root command; running it without a subcommand runs the checks
func NewRootCommand(version string, cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mockcheck [base-url]",
		Short: "Contract checks against a mocked HTTP API",
		Long: `Probe a running mock server and run an ordered suite of HTTP checks against it.
Each case issues one request and asserts on the status code and on markers in the body.
The base URL defaults to ` + config.DefaultBaseURL + `.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var flags cli.Flags
	NewCommands(cfg).Register(rootCmd, &flags, cfg)
	return rootCmd
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			flags.BaseURL = args[0]
		}
		return cfg.ApplyFlags(flags.ToConfigFlags())
	}

	// Root runs the suite
	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.RunE = c.Run.Execute
	rootCmd.PreRunE = applyFlags
	rootCmd.Flags().StringVarP(&flags.SuitePath, "suite", "s", "", "YAML suite file or directory (default: built-in contacts suite)")
	rootCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Run only cases whose name matches the pattern (supports wildcards, e.g. 'Create*')")
	rootCmd.Flags().StringVar(&flags.HealthPath, "health-path", "", "Admin endpoint probed before running (default "+config.DefaultHealthPath+")")
	rootCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print the curl equivalent of every request")
	rootCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar instead of one line per case")
	rootCmd.Flags().BoolVar(&flags.Save, "save", false, "Save results to "+config.DefaultOutputJSONDir+"/"+config.DefaultOutputJSONFile+" for the failures viewer")
	rootCmd.Flags().StringVar(&flags.XLSXPath, "xlsx", "", "Write an Excel report to the given file")

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List the test cases",
		Long:    "Load the suite and list its cases without issuing any request",
		Args:    cobra.NoArgs,
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.SuitePath, "suite", "s", "", "YAML suite file or directory (default: built-in contacts suite)")
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "List only cases whose name matches the pattern")
	listCmd.Flags().BoolVarP(&flags.Details, "details", "d", false, "Show request and expectation of every case")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View failed cases interactively",
		Long:  "Display the failed cases of the last run saved with --save in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}
