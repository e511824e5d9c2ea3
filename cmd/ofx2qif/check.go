package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/yurifrl/ofx2qif/pkg/config"
	"github.com/yurifrl/ofx2qif/pkg/parser"
	"github.com/yurifrl/ofx2qif/pkg/reconcile"
	"github.com/yurifrl/ofx2qif/pkg/service"
)

var dumpStrict bool

var checkCmd = &cobra.Command{
	Use:   "check <statement>",
	Short: "Compare the tolerant scan with a strict OFX parse",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		logger := newLogger(cmd.ErrOrStderr(), cfg.Verbosity)
		out := cmd.OutOrStdout()

		doc, err := service.ReadDocument(args[0])
		if err != nil {
			return fmt.Errorf("%w %s: %v", service.ErrRead, args[0], err)
		}
		name := strings.TrimSuffix(filepath.Base(args[0]), ".xz")
		local, err := parser.New(logger).ProcessBytes(doc, name)
		if err != nil {
			return err
		}
		strict, err := reconcile.Strict(doc)
		if err != nil {
			return err
		}
		report := reconcile.Build(local, strict)

		matchedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // gray
		scanStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))   // yellow
		strictStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red

		for _, e := range report.Items {
			line := fmt.Sprintf("%s | %-30s | %s", e.Local.Date(), e.Local.Payee(), e.Local.Amount())
			if e.Status == reconcile.Matched {
				fmt.Fprintln(out, matchedStyle.Render("= "+line))
				continue
			}
			fmt.Fprintln(out, scanStyle.Render("+ "+line))
		}
		for _, st := range report.StrictOnly {
			line := fmt.Sprintf("%s | %-30s | %s", st.DtPosted.Format("01/02/2006"), st.Name, st.TrnAmt.String())
			fmt.Fprintln(out, strictStyle.Render("- "+line))
		}

		fmt.Fprintf(out, "\nCheck: %d matched, %d only in scan, %d only in strict parse\n",
			report.MatchedCount(), report.ScanOnlyCount(), len(report.StrictOnly))

		if dumpStrict && len(report.StrictOnly) > 0 {
			printer := pp.New()
			printer.SetColoringEnabled(false)
			printer.SetOutput(out)
			printer.Println(report.StrictOnly)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&dumpStrict, "dump", false, "Pretty-print transactions only the strict parser found")
}
