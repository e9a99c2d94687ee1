package commands

import (
	"errors"
	"fmt"
	"time"

	"mockcheck/internal/config"
	"mockcheck/internal/domain"
	"mockcheck/internal/execution"
	"mockcheck/internal/exitcodes"
	"mockcheck/internal/storage"
	"mockcheck/internal/suite"
	"mockcheck/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand probes the mock server and runs the suite
type RunCommand struct {
	config   *config.Config
	loader   *suite.Loader
	filter   *suite.Filter
	executor execution.Executor
	storage  storage.Storage
	exporter storage.Exporter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	loader *suite.Loader,
	filter *suite.Filter,
	executor execution.Executor,
	st storage.Storage,
	exporter storage.Exporter,
) *RunCommand {
	return &RunCommand{
		config:   cfg,
		loader:   loader,
		filter:   filter,
		executor: executor,
		storage:  st,
		exporter: exporter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := ui.NewFormatter(cmd.OutOrStdout(), rc.config.Flags.Verbose)

	cases, err := rc.loader.Load(rc.config.Flags.SuitePath)
	if err != nil {
		return err
	}
	cases = rc.filter.FilterByName(cases, rc.config.Flags.NameFilter)

	formatter.PrintHeader(rc.config.GetBaseURL(), len(cases))

	// The probe is a precondition: no case runs against an unreachable target
	prober := execution.NewProber(rc.config)
	status, err := prober.Probe(ctx)
	if err != nil {
		if errors.Is(err, execution.ErrUnreachable) {
			formatter.PrintUnreachable(rc.config.GetBaseURL(), err)
			return &exitcodes.ExitError{Code: exitcodes.Failure}
		}
		return err
	}
	formatter.PrintProbeOK(prober.URL(), status)

	if len(cases) == 0 {
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "No cases to run")
		return nil
	}

	if rc.config.Flags.Progress {
		rc.executor.SetProgress(ui.NewProgressBar(len(cases)))
		rc.executor.OnResult(nil)
	} else {
		rc.executor.SetProgress(nil)
		rc.executor.OnResult(formatter.PrintResult)
	}

	summary := rc.executor.Execute(ctx, cases)

	if rc.config.Flags.Progress {
		formatter.PrintFailures(summary.Failures())
	}
	formatter.PrintSummary(summary)

	if err := rc.writeReports(summary); err != nil {
		return err
	}

	if code := exitcodes.FromFailures(summary.Failed); code != exitcodes.Success {
		return &exitcodes.ExitError{Code: code}
	}
	return nil
}

func (rc *RunCommand) writeReports(summary *domain.RunSummary) error {
	if !rc.config.Flags.Save && rc.config.Flags.XLSXPath == "" {
		return nil
	}

	output := storage.BuildOutput(rc.config.GetBaseURL(), summary, time.Now())

	if rc.config.Flags.Save {
		if err := rc.storage.Save(output); err != nil {
			return fmt.Errorf("failed to save results: %w", err)
		}
		color.Cyan("Results saved to %s", rc.config.GetOutputPath())
	}

	if path := rc.config.Flags.XLSXPath; path != "" {
		if err := rc.exporter.Export(output, path); err != nil {
			return fmt.Errorf("failed to write xlsx report: %w", err)
		}
		color.Cyan("Excel report written to %s", path)
	}
	return nil
}
