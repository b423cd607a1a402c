// seedgen generates seed datasets (CSV/XLSX) for manual and end-to-end
// testing of the forecasting backend.
package main

import (
	"fmt"
	"os"
	"time"

	"vyapar-testkit/pkg/datagen"
	"vyapar-testkit/pkg/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagCount  int
	flagSeed   int64
	flagFormat string
	flagOut    string
)

var rootCmd = &cobra.Command{
	Use:   "seedgen",
	Short: "Generate seed datasets for forecasting backend tests",
	Long: `seedgen produces randomized, constraint-satisfying sales, festival and
inventory datasets as CSV or XLSX files. Pass --seed for reproducible output.`,
	SilenceUsage: true,
}

var salesCmd = &cobra.Command{
	Use:   "sales",
	Short: "Generate a sales history dataset",
	RunE:  runSales,
}

var festivalsCmd = &cobra.Command{
	Use:   "festivals",
	Short: "Generate a festival calendar dataset (XLSX)",
	RunE:  runFestivals,
}

var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Generate an XLSX workbook with sales, festivals and inventory sheets",
	RunE:  runBundle,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagCount, "count", 100, "number of records to generate")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "generator seed (0 uses the clock)")
	rootCmd.PersistentFlags().StringVar(&flagOut, "out", "", "output path (required)")
	salesCmd.Flags().StringVar(&flagFormat, "format", "csv", "output format: csv or xlsx")

	rootCmd.AddCommand(salesCmd, festivalsCmd, bundleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newGenerator(logger *zap.Logger) *datagen.Generator {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("generating dataset", zap.Int64("seed", seed), zap.Int("count", flagCount))
	return datagen.New(seed)
}

func newCLILogger() (*zap.Logger, error) {
	return zap.NewDevelopment()
}

func runSales(cmd *cobra.Command, args []string) error {
	if flagOut == "" {
		return fmt.Errorf("--out is required")
	}
	logger, err := newCLILogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	gen := newGenerator(logger)
	records := gen.SalesRecords(flagCount, flagCount)

	switch flagFormat {
	case "csv":
		f, err := os.Create(flagOut)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		if err := datagen.WriteSalesCSV(f, records); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
	case "xlsx":
		wb, err := datagen.SalesWorkbook(records)
		if err != nil {
			return fmt.Errorf("failed to build workbook: %w", err)
		}
		if err := wb.SaveAs(flagOut); err != nil {
			return fmt.Errorf("failed to save workbook: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q (use csv or xlsx)", flagFormat)
	}

	logger.Info("dataset written", zap.String("path", flagOut), zap.Int("records", len(records)))
	return nil
}

func runFestivals(cmd *cobra.Command, args []string) error {
	if flagOut == "" {
		return fmt.Errorf("--out is required")
	}
	logger, err := newCLILogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	gen := newGenerator(logger)
	events := make([]models.FestivalEvent, flagCount)
	for i := range events {
		events[i] = gen.FestivalEvent()
	}

	wb, err := datagen.FestivalWorkbook(events)
	if err != nil {
		return fmt.Errorf("failed to build workbook: %w", err)
	}
	if err := wb.SaveAs(flagOut); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	logger.Info("dataset written", zap.String("path", flagOut), zap.Int("records", len(events)))
	return nil
}

func runBundle(cmd *cobra.Command, args []string) error {
	if flagOut == "" {
		return fmt.Errorf("--out is required")
	}
	logger, err := newCLILogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	gen := newGenerator(logger)
	sales := gen.SalesRecords(flagCount, flagCount)

	festivalCount := flagCount / 10
	if festivalCount < 1 {
		festivalCount = 1
	}
	festivals := make([]models.FestivalEvent, festivalCount)
	for i := range festivals {
		festivals[i] = gen.FestivalEvent()
	}

	inventory := make([]models.InventoryRecord, flagCount)
	for i := range inventory {
		inventory[i] = gen.InventoryRecord()
	}

	wb, err := datagen.BundleWorkbook(sales, festivals, inventory)
	if err != nil {
		return fmt.Errorf("failed to build workbook: %w", err)
	}
	if err := wb.SaveAs(flagOut); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	logger.Info("bundle written",
		zap.String("path", flagOut),
		zap.Int("sales", len(sales)),
		zap.Int("festivals", len(festivals)),
		zap.Int("inventory", len(inventory)),
	)
	return nil
}
