package cli

import (
	"fmt"
	"io"

	"github.com/ogurasousui/codex-workforce-synth/internal/core/workforce"
	"github.com/spf13/cobra"
)

// Version はビルド時に -ldflags で上書きされます。
var Version = "dev"

// NewRootCommand は workforce コマンドを構築します。
// 標準出力にレポート、標準エラーにログを書き出します。
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:     "workforce",
		Short:   "Synthetic employee dataset generator",
		Version: Version,
		Long: `Generates a reproducible synthetic workforce dataset, derives age and tenure,
aggregates salaries by gender and bracket, and optionally exports the dataset to
CSV / XLSX and PostgreSQL.`,
		Example: `  # Print the report for the configured seed
  $ workforce report

  # Generate 1000 records with seed 7 and export / persist as configured
  $ workforce run --count 1000 --seed 7

  # Evaluate ages and tenure at a fixed date
  $ workforce report --as-of 2025-01-01`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			flags := cmd.Flags()
			opts.countSet = flags.Changed("count")
			opts.seedSet = flags.Changed("seed")
			opts.asOfSet = flags.Changed("as-of")
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate("workforce version {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
	pf.IntVarP(&opts.count, "count", "n", 0, "number of records to generate")
	pf.Int64VarP(&opts.seed, "seed", "s", 0, "random seed")
	pf.StringVar(&opts.asOf, "as-of", "", "evaluation date (YYYY-MM-DD), defaults to the generation date")

	root.AddCommand(newReportCommand(&opts), newRunCommand(&opts), newQueryCommand(&opts), newVersionCommand())
	return root
}

func newReportCommand(opts *options) *cobra.Command {
	var noChart bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "generate the dataset and print the salary report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*opts)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), cfg, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer a.close()

			in := reportInput(cfg)
			report, err := a.service.BuildReport(cmd.Context(), in)
			if err != nil {
				return err
			}
			writeReport(cmd.OutOrStdout(), in, report, !noChart)
			return nil
		},
	}
	cmd.Flags().BoolVar(&noChart, "no-chart", false, "omit the bar charts")
	return cmd
}

func newRunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "generate, export, persist and cross-check the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*opts)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), cfg, cmd.ErrOrStderr(), true)
			if err != nil {
				return err
			}
			defer a.close()

			in := reportInput(cfg)
			res, err := a.service.Run(cmd.Context(), in)
			if err != nil {
				return err
			}
			writeReport(cmd.OutOrStdout(), in, res.Report, true)
			writeRunResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func newQueryCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "query",
		Short: "aggregate the table persisted by the last run",
		Long: `Reads the employees table written by the last "run" inside a read-only
transaction and prints the mean salary by gender and tenure bracket computed in SQL.
Requires database.enabled in the config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*opts)
			if err != nil {
				return err
			}
			if !cfg.Database.Enabled {
				return fmt.Errorf("query needs database.enabled: %w", workforce.ErrConfiguration)
			}
			a, err := newApp(cmd.Context(), cfg, cmd.ErrOrStderr(), true)
			if err != nil {
				return err
			}
			defer a.close()

			summary, err := a.service.Query(cmd.Context())
			if err != nil {
				return err
			}
			writeStoredSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "workforce version %s\n", Version)
		},
	}
}
