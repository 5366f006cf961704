package main

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/braydenmay123/mclaughlin-toolkit/internal/calculation"
	"github.com/braydenmay123/mclaughlin-toolkit/internal/config"
	"github.com/braydenmay123/mclaughlin-toolkit/internal/output"
	"github.com/braydenmay123/mclaughlin-toolkit/internal/taxdata"
)

func newCalcCommand() *cobra.Command {
	var (
		inputPath  string
		format     string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Run the calculators described by an input file",
		Long: `calc reads a YAML input file and runs every calculator it describes.
An input file may carry tax, affordability, purchase, tfsa, and
amortization sections in any combination.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			input, err := parser.LoadFromFile(inputPath)
			if err != nil {
				return err
			}

			tables, err := taxdata.Load()
			if err != nil {
				return err
			}
			engine := calculation.NewEngine(tables, calculation.NewZapLogger(logger))

			report, err := buildReport(engine, input)
			if err != nil {
				return err
			}

			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unknown format %q (available: %v)", format, output.AvailableFormatterNames())
			}

			if outputPath != "" {
				data, err := formatter.Format(report)
				if err != nil {
					return err
				}
				if err := os.WriteFile(outputPath, data, 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", outputPath, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Wrote", outputPath)
				return nil
			}

			if formatter.Name() == "pdf" {
				filename, err := output.WriteFormatted(formatter, report, "pdf")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Wrote", filename)
				return nil
			}

			data, err := formatter.Format(report)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to YAML input file")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, json, csv, pdf)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write output to file instead of stdout")
	cmd.MarkFlagRequired("input")

	return cmd
}

func buildReport(engine *calculation.Engine, input *config.InputFile) (*output.Report, error) {
	report := &output.Report{GeneratedAt: time.Now()}

	if in := input.Tax; in != nil {
		result, ok := engine.CalculateTax(in.AnnualIncome, in.OtherDeductions, in.Province)
		if !ok {
			return nil, fmt.Errorf("tax calculation not ready: check income and province %q", in.Province)
		}
		report.Tax = &result
	}

	if in := input.Affordability; in != nil {
		result := engine.CalculateAffordability(*in)
		report.Affordability = &result
	}

	if in := input.Purchase; in != nil {
		result := engine.ComparePurchase(*in)
		report.Purchase = &result
	}

	if in := input.TFSA; in != nil {
		tracker := calculation.NewTFSATrackerFromLedger(in.Profile, engine.Tables().TFSALimits,
			in.Contributions, in.Withdrawals, calculation.NewZapLogger(logger))
		state := tracker.State()
		report.TFSA = &state
	}

	if in := input.Amortization; in != nil {
		frequency := calculation.PaymentFrequency(in.Frequency)
		if in.Frequency == "" {
			frequency = calculation.FrequencyMonthly
		}
		payment := calculation.PeriodicPayment(in.Principal, in.AnnualRatePercent, in.TermYears, frequency)
		periods := frequency.PeriodsPerYear()
		report.Amortization = &output.AmortizationSummary{
			Principal:      in.Principal,
			AnnualRate:     in.AnnualRatePercent,
			TermYears:      in.TermYears,
			Frequency:      string(frequency),
			Payment:        payment,
			PeriodsPerYear: periods,
			TotalPaid:      payment.Mul(decimal.NewFromInt(int64(periods * in.TermYears))),
		}
	}

	return report, nil
}
