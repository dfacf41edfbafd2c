package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ledger-reconciliation/internal/gateway"
	"ledger-reconciliation/internal/report"
	"ledger-reconciliation/internal/usecase"
)

// Exit codes: 0 when the ledger reconciles, exitMismatch when the computed
// total differs from the claimed total, 1 on load or validation failure.
const exitMismatch = 2

// errMismatch marks a reconciliation finding, not a tool failure; main maps
// it to exitMismatch after the report has been printed.
var errMismatch = errors.New("computed total does not match claimed total")

var (
	inputPath   string
	inputFormat string
	claimedStr  string
	jsonOutput  bool
	verbose     bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ledgercheck",
	Short: "Aggregate a ledger of named metrics and reconcile it against a claimed total",
	Long: `ledgercheck ingests a ledger of (name, value) records, computes their
exact decimal sum, and compares it against an optionally claimed total.

The report lists every record, the computed total, the claimed total when one
was supplied (via the file or --claimed), and an explicit match/mismatch
statement with the signed discrepancy. All arithmetic is exact decimal; no
value is ever rounded or passed through floating point.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runReconcile,
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to the ledger file (required)")
	rootCmd.Flags().StringVarP(&inputFormat, "format", "f", "csv", "ledger file format: csv or yaml")
	rootCmd.Flags().StringVar(&claimedStr, "claimed", "", "claimed total to reconcile against (overrides one carried by the file)")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the reconciliation result as JSON instead of text")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = rootCmd.MarkFlagRequired("input")
}

func runReconcile(cmd *cobra.Command, args []string) error {
	var claimed *decimal.Decimal
	if claimedStr != "" {
		ct, err := decimal.NewFromString(claimedStr)
		if err != nil {
			return fmt.Errorf("invalid --claimed value %q: %w", claimedStr, err)
		}
		claimed = &ct
	}

	var source usecase.LedgerSource
	switch inputFormat {
	case "csv":
		source = gateway.NewCSVLedgerSource()
	case "yaml", "yml":
		source = gateway.NewYAMLLedgerSource()
	default:
		return fmt.Errorf("unknown ledger format %q (want csv or yaml)", inputFormat)
	}

	uc := usecase.NewLedgerUseCase(source)

	ledger, result, err := uc.Reconcile(cmd.Context(), inputPath, claimed)
	if err != nil {
		return err
	}

	logger.Debug("ledger reconciled",
		zap.Int("records", len(ledger.Records)),
		zap.String("computed_total", result.ComputedTotal.String()),
		zap.Bool("matches", result.Matches))

	if jsonOutput {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to generate JSON result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	} else {
		fmt.Fprint(cmd.OutOrStdout(), report.Render(ledger, result))
	}

	if !result.Matches {
		logger.Warn("claimed total does not match computed total",
			zap.String("discrepancy", result.Discrepancy.String()))
		return errMismatch
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errMismatch) {
			os.Exit(exitMismatch)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
