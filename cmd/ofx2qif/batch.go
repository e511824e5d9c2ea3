package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yurifrl/ofx2qif/pkg/config"
	"github.com/yurifrl/ofx2qif/pkg/executors"
	"github.com/yurifrl/ofx2qif/pkg/plan"
)

var planCmd = &cobra.Command{
	Use:   "plan <plan_file>",
	Short: "Preview a YAML plan of conversions (dry-run)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exec, p, err := loadPlan(cmd, args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Plan preview for %s\n", args[0])
		p.Print(cmd.OutOrStdout())
		changes, err := exec.Plan(p)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Summary of changes:")
		executors.Render(cmd.OutOrStdout(), changes)
		return nil
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply <plan_file>",
	Short: "Run every conversion of a YAML plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exec, p, err := loadPlan(cmd, args[0])
		if err != nil {
			return err
		}

		changes, err := exec.Apply(cmd.Context(), p)
		if err != nil {
			return err
		}
		executors.Render(cmd.OutOrStdout(), changes)
		return nil
	},
}

func loadPlan(cmd *cobra.Command, path string) (*executors.Executor, *plan.Plan, error) {
	cfg, err := config.Build(cfgFile, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	p, err := plan.Load(path)
	if err != nil {
		return nil, nil, err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbosity)
	return executors.New(logger, cfg), p, nil
}
