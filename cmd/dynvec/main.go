package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/dynvec/internal/catalog"
	"github.com/san-kum/dynvec/internal/config"
	"github.com/san-kum/dynvec/internal/scenario"
	"github.com/san-kum/dynvec/internal/storage"
	"github.com/san-kum/dynvec/internal/trace"
	"github.com/san-kum/dynvec/internal/vector"
	"github.com/san-kum/dynvec/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	// trace
	count    int
	capacity int
	seed     int64
	preset   string
	numRuns  int
	// catalog
	styled bool
	// plot
	plotWidth  int
	plotHeight int
	showCost   bool
	// theme for styled output
	theme string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dynvec",
		Short: "growable array lab: catalog demo, growth traces and a playground",
		RunE:  printCatalog,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "cyberpunk", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	catalogCmd := &cobra.Command{
		Use:   "catalog [author]",
		Short: "print the author catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE:  printCatalog,
	}
	catalogCmd.Flags().BoolVar(&styled, "styled", false, "render with panels and colors")

	traceCmd := &cobra.Command{
		Use:   "trace [workload]",
		Short: "run a workload against a vector and record every step",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTrace,
	}
	traceCmd.Flags().IntVar(&count, "count", config.DefaultCount, "number of operations")
	traceCmd.Flags().IntVar(&capacity, "capacity", 0, "initial capacity")
	traceCmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")
	traceCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	traceCmd.Flags().IntVar(&numRuns, "runs", 1, "run this many consecutive seeds in parallel")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot size and capacity of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "chart width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 12, "chart height")
	plotCmd.Flags().BoolVar(&showCost, "cost", false, "also plot per-step write cost")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata and steps as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run steps to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time push back, push front and preallocated push back",
		RunE:  benchVector,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [workload]",
		Short: "list available presets for a workload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for workload: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	workloadsCmd := &cobra.Command{
		Use:   "workloads",
		Short: "list registered workloads",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range trace.NewRegistry().Names() {
				fmt.Println(name)
			}
			return nil
		},
	}

	scriptCmd := &cobra.Command{
		Use:   "script [file]",
		Short: "run a scenario file, or the built-in walkthrough",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScript,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "drive a vector interactively",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&capacity, "capacity", 0, "initial capacity")

	rootCmd.AddCommand(catalogCmd, traceCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, benchCmd, presetsCmd, workloadsCmd, scriptCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig returns the defaults, or the --config file overlaid on them.
// A data_dir in the file applies unless --data was given.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if !cmd.Flags().Changed("data") && cfg.DataDir != "" {
		dataDir = cfg.DataDir
	}
	viz.SetTheme(theme)
	return cfg, nil
}

func printCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cat := catalog.FromConfig(cfg.Catalog)

	if len(args) == 1 {
		author, err := cat.Find(args[0])
		if err != nil {
			return err
		}
		if styled {
			fmt.Println(viz.RenderAuthor(author))
		} else {
			fmt.Println(author)
		}
		return nil
	}

	if styled {
		fmt.Println(viz.RenderCatalog(cat))
	} else {
		fmt.Println(cat)
	}
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tc := cfg.Trace
	if len(args) == 1 {
		tc.Workload = args[0]
	}

	// Presets override the config file; explicit flags override both.
	if preset != "" {
		p := config.GetPreset(tc.Workload, preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(tc.Workload))
		}
		tc = *p
	}
	if cmd.Flags().Changed("count") {
		tc.Count = count
	}
	if cmd.Flags().Changed("capacity") {
		tc.InitialCapacity = capacity
	}
	if cmd.Flags().Changed("seed") {
		tc.Seed = seed
	}

	if numRuns < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", numRuns)
	}

	tcfg := trace.Config{
		Workload:        tc.Workload,
		Count:           tc.Count,
		InitialCapacity: tc.InitialCapacity,
		Seed:            tc.Seed,
	}
	results, err := trace.NewEnsemble(trace.NewRegistry(), trace.DefaultMetrics, numRuns, tc.Seed).Run(cmd.Context(), tcfg)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	for _, result := range results {
		runID, err := st.Save(result)
		if err != nil {
			return err
		}
		fmt.Printf("run: %s (seed %d, %d steps, final size %d)\n",
			runID, result.Config.Seed, len(result.Steps), len(result.Final))
	}
	fmt.Println()

	metrics := results[0].Metrics
	header := "METRIC\tVALUE"
	if len(results) > 1 {
		metrics = trace.MeanMetrics(results)
		header = "METRIC\tMEAN"
	}
	return printMetrics(header, metrics)
}

func printMetrics(header string, metrics map[string]float64) error {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, header)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.4g\n", name, metrics[name])
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWORKLOAD\tTIME\tSTEPS\tSIZE\tCAP\tREALLOCS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%.0f\n",
			run.ID,
			run.Workload,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.FinalSize,
			run.FinalCapacity,
			run.Metrics["reallocations"],
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	steps, err := st.LoadSteps(runID)
	if err != nil {
		return err
	}

	if len(steps) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("workload: %s\n", meta.Workload)
	fmt.Printf("steps: %d\n\n", len(steps))

	fmt.Println(viz.PlotTrace(steps, plotWidth, plotHeight))
	if showCost {
		fmt.Println(viz.Separator(plotWidth))
		fmt.Println(viz.PlotCost(steps, plotWidth, plotHeight))
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}
	return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
}

func exportCSV(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}
	steps, err := storage.New(dataDir).LoadSteps(args[0])
	if err != nil {
		return err
	}

	if len(steps) == 0 {
		return fmt.Errorf("no data to export")
	}

	return storage.WriteStepsCSV(os.Stdout, steps)
}

func benchVector(cmd *cobra.Command, args []string) error {
	sizes := []int{1000, 5000, 20000}

	cases := []struct {
		name string
		fill func(n int) *vector.Vector[int]
	}{
		{"push_back", func(n int) *vector.Vector[int] {
			v := vector.New[int]()
			for i := 0; i < n; i++ {
				v.PushBack(i)
			}
			return v
		}},
		{"push_front", func(n int) *vector.Vector[int] {
			v := vector.New[int]()
			for i := 0; i < n; i++ {
				v.PushFront(i)
			}
			return v
		}},
		{"preallocated", func(n int) *vector.Vector[int] {
			v := vector.WithCapacity[int](n)
			for i := 0; i < n; i++ {
				v.PushBack(i)
			}
			return v
		}},
	}

	fmt.Println("benchmarking vector insertion")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "OP\tN\tCAP\tTIME\tOPS/SEC")

	for _, c := range cases {
		for _, n := range sizes {
			start := time.Now()
			v := c.fill(n)
			elapsed := time.Since(start)

			opsPerSec := float64(n) / elapsed.Seconds()
			fmt.Fprintf(w, "%s\t%d\t%d\t%v\t%.0f\n", c.name, n, v.Capacity(), elapsed, opsPerSec)
		}
	}

	return w.Flush()
}

func runScript(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}
	sc := scenario.Builtin()
	if len(args) == 1 {
		loaded, err := scenario.LoadScenario(args[0])
		if err != nil {
			return err
		}
		sc = loaded
	}

	fmt.Printf("scenario: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Printf("%s\n", sc.Description)
	}
	fmt.Println()

	report, err := scenario.Run(cmd.Context(), sc, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("\n%d/%d steps passed\n", report.Passed, report.Steps)
	if !report.OK() {
		for _, f := range report.Failures {
			fmt.Printf("  FAIL %s\n", f)
		}
		return fmt.Errorf("scenario %s failed: %d mismatches", sc.Name, len(report.Failures))
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}
	if capacity < 0 {
		return fmt.Errorf("capacity must be non-negative, got %d", capacity)
	}

	p := tea.NewProgram(viz.NewPlayground(capacity))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
