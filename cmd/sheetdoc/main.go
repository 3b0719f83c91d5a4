// Package main provides the CLI entry point for sheetdoc-go.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/takara2/sheetdoc-go/pkg/sheetdoc"
	"github.com/takara2/sheetdoc-go/pkg/sheetdoc/ingest"
	"github.com/takara2/sheetdoc-go/pkg/sheetdoc/models"
	"github.com/takara2/sheetdoc-go/pkg/sheetdoc/output"
	"github.com/takara2/sheetdoc-go/pkg/sheetdoc/reducer"
)

var (
	docPath    string
	outputPath string
	pretty     bool
	sheetName  string
	strict     bool
	chartType  string
	chartTitle string
	labelCol   string
	valueCol   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetdoc",
		Short: "Inspect and transform spreadsheet document snapshots",
		Long: `sheetdoc manages JSON snapshots of spreadsheet documents: it creates
documents, imports CSV/XLSX rows into them, replays action logs, and adds
charts materialized from sheet data.`,
	}
	rootCmd.PersistentFlags().StringVar(&docPath, "doc", "", "Existing document snapshot to start from")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Create a fresh document snapshot",
		Args:  cobra.NoArgs,
		RunE:  runNew,
	}

	importCmd := &cobra.Command{
		Use:   "import [input.csv|input.xlsx]",
		Short: "Import file rows into a new sheet",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}
	importCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name (xlsx: source sheet, default first)")

	replayCmd := &cobra.Command{
		Use:   "replay [actions.jsonl]",
		Short: "Replay an action log against a document snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  runReplay,
	}
	replayCmd.Flags().BoolVar(&strict, "strict", false, "Abort on the first rejected action")

	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "Add a chart materialized from two sheet columns",
		Args:  cobra.NoArgs,
		RunE:  runChart,
	}
	chartCmd.Flags().StringVar(&chartType, "type", models.ChartTypeBar, "Chart type: bar, line, pie, area")
	chartCmd.Flags().StringVar(&chartTitle, "title", "", "Chart title")
	chartCmd.Flags().StringVar(&labelCol, "label-col", "A", "Column holding point labels")
	chartCmd.Flags().StringVar(&valueCol, "value-col", "B", "Column holding point values")

	rootCmd.AddCommand(newCmd, importCmd, replayCmd, chartCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runNew(cmd *cobra.Command, args []string) error {
	engine, err := loadEngine()
	if err != nil {
		return err
	}
	return writeSnapshot(engine)
}

func runImport(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(inputPath)) {
	case ".csv":
		f, openErr := os.Open(inputPath)
		if openErr != nil {
			return openErr
		}
		defer f.Close()
		rows, err = ingest.ReadCSV(f)
	case ".xlsx":
		rows, err = ingest.ReadXLSX(inputPath, sheetName)
	default:
		return fmt.Errorf("unsupported input format: %s", inputPath)
	}
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	engine, err := loadEngine()
	if err != nil {
		return err
	}
	name := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	if _, err := engine.Dispatch(reducer.AddSheetFromRows{Rows: rows, Name: name}); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	if writes := ingest.NumericWrites(rows); len(writes) > 0 {
		if _, err := engine.Dispatch(reducer.BulkUpdateCells{Writes: writes}); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
	}
	return writeSnapshot(engine)
}

func runReplay(cmd *cobra.Command, args []string) error {
	logFile, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer logFile.Close()

	engine, err := loadEngine()
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(logFile)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var env reducer.Envelope
		if err := json.Unmarshal([]byte(text), &env); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		action, err := reducer.Decode(env)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if _, err := engine.Dispatch(action); err != nil {
			if strict {
				return fmt.Errorf("line %d: %w", line, err)
			}
			fmt.Fprintf(os.Stderr, "line %d: %v\n", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return writeSnapshot(engine)
}

func runChart(cmd *cobra.Command, args []string) error {
	engine, err := loadEngine()
	if err != nil {
		return err
	}
	data, err := sheetdoc.MaterializeSeries(engine.ActiveSheet(), labelCol, valueCol)
	if err != nil {
		return fmt.Errorf("chart failed: %w", err)
	}
	chart := models.Chart{
		Type:  chartType,
		Title: chartTitle,
		Data:  data,
	}
	if _, err := engine.Dispatch(reducer.AddChart{Chart: chart}); err != nil {
		return fmt.Errorf("chart failed: %w", err)
	}
	return writeSnapshot(engine)
}

func loadEngine() (*sheetdoc.Engine, error) {
	if docPath == "" {
		return sheetdoc.New(sheetdoc.DefaultOptions()), nil
	}
	data, err := os.ReadFile(docPath)
	if err != nil {
		return nil, err
	}
	doc, err := output.FromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return sheetdoc.NewFromDocument(*doc, sheetdoc.DefaultOptions()), nil
}

func writeSnapshot(engine *sheetdoc.Engine) error {
	doc := engine.Document()
	jsonData, err := output.ToJSON(&doc, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if outputPath != "" {
		return os.WriteFile(outputPath, jsonData, 0644)
	}
	fmt.Println(string(jsonData))
	return nil
}
