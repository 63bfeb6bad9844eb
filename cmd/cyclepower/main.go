package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/cyclepower/internal/config"
	"github.com/san-kum/cyclepower/internal/export"
	"github.com/san-kum/cyclepower/internal/power"
	"github.com/san-kum/cyclepower/internal/report"
	"github.com/san-kum/cyclepower/internal/storage"
	"github.com/san-kum/cyclepower/internal/sweep"
	"github.com/san-kum/cyclepower/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string

	// compute/sweep output
	asJSON    bool
	save      bool
	plotAll   bool
	component int
	svgWidth  int
	svgHeight int
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "cyclepower",
		Short:        "road cycling power model (Martin et al. 1998)",
		SilenceUsage: true,
	}
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".cyclepower", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	computeCmd := &cobra.Command{
		Use:   "compute",
		Short: "compute the power breakdown for one set of parameters",
		Args:  cobra.NoArgs,
		RunE:  runCompute,
	}
	addInputFlags(computeCmd)
	computeCmd.Flags().BoolVar(&asJSON, "json", false, "print the ordered 6-value array as json")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "evaluate the model over a range of ground velocities",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addInputFlags(sweepCmd)
	addSweepFlags(sweepCmd)
	sweepCmd.Flags().BoolVar(&save, "save", false, "store the sweep in the data directory")
	sweepCmd.Flags().BoolVar(&plotAll, "all", false, "plot every component")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored sweeps",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored sweep",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&component, "component", power.IndexTotal, "component index (0 total .. 5 kinetic)")
	plotCmd.Flags().BoolVar(&plotAll, "all", false, "plot every component")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored sweep to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored sweep to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id] [file]",
		Short: "export a stored sweep as an SVG chart",
		Args:  cobra.ExactArgs(2),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 450, "image height")

	exportParquetCmd := &cobra.Command{
		Use:   "export-parquet [run_id] [file]",
		Short: "export a stored sweep as a parquet file",
		Args:  cobra.ExactArgs(2),
		RunE:  exportParquet,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "presets:")
			for _, p := range config.ListPresets() {
				fmt.Fprintf(w, "  %s\n", p)
			}
			return nil
		},
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [file]",
		Short: "write the selected configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
	addInputFlags(initConfigCmd)
	addSweepFlags(initConfigCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "explore the model interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg.Name, cfg.Input())
		},
	}
	addInputFlags(tuiCmd)

	rootCmd.AddCommand(computeCmd, sweepCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, exportParquetCmd, presetsCmd, initConfigCmd, tuiCmd)
	return rootCmd
}

func runCompute(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	in := cfg.Input()
	b, err := power.Compute(in)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if asJSON {
		return json.NewEncoder(w).Encode(b.Values())
	}

	fmt.Fprintln(w, report.Breakdown(b, in))
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	base := cfg.Input()
	points, err := sweep.Run(base, cfg.Sweep.MinVelocity, cfg.Sweep.MaxVelocity, cfg.Sweep.Step)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "sweep: %s (%d points)\n\n", cfg.Name, len(points))
	if err := report.WriteTable(w, points); err != nil {
		return err
	}
	fmt.Fprintln(w)

	if err := printChart(w, points, power.IndexTotal, plotAll); err != nil {
		return err
	}

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg.Name, base, cfg.Sweep.Step, points)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\nrun id: %s\n", runID)
	}
	return nil
}

func printChart(w io.Writer, points []sweep.Point, idx int, all bool) error {
	var (
		graph string
		err   error
	)
	if all {
		graph, err = report.ChartAll(points, report.DefaultChartOptions())
	} else {
		graph, err = report.Chart(points, idx, report.DefaultChartOptions())
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(w, graph)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tVELOCITY\tPOINTS\tPEAK")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f..%.1f m/s\t%d\t%.1f W\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.MinVelocity,
			run.MaxVelocity,
			run.Points,
			run.PeakTotal,
		)
	}

	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, []sweep.Point, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}

	points, err := st.LoadSweep(runID)
	if err != nil {
		return nil, nil, err
	}
	if len(points) == 0 {
		return nil, nil, fmt.Errorf("run %s has no data", runID)
	}
	return meta, points, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	if !plotAll && (component < 0 || component >= len(power.Components)) {
		return fmt.Errorf("unknown component %d (0..%d)", component, len(power.Components)-1)
	}

	meta, points, err := loadRun(args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "run: %s\n", meta.ID)
	fmt.Fprintf(w, "name: %s\n", meta.Name)
	if !plotAll {
		fmt.Fprintf(w, "component: %s\n", report.ComponentLabel(component))
	}
	fmt.Fprintf(w, "samples: %d\n\n", len(points))

	return printChart(w, points, component, plotAll)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, points, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return storage.WriteSweepCSV(csv.NewWriter(cmd.OutOrStdout()), points)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, points, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return export.SweepToJSON(cmd.OutOrStdout(), meta.Name, points)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	_, points, err := loadRun(args[0])
	if err != nil {
		return err
	}

	svg := export.SweepToSVG(points, svgWidth, svgHeight)
	if svg == "" {
		return fmt.Errorf("not enough points to draw")
	}
	if err := os.WriteFile(args[1], []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[1])
	return nil
}

func exportParquet(cmd *cobra.Command, args []string) error {
	_, points, err := loadRun(args[0])
	if err != nil {
		return err
	}

	data, err := export.SweepToParquet(points)
	if err != nil {
		return err
	}
	if err := os.WriteFile(args[1], data, 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", args[1], len(data))
	return nil
}
