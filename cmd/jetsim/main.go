package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/kinjalh/Physics-Jet-Simulator-3D/internal/analysis"
	"github.com/kinjalh/Physics-Jet-Simulator-3D/internal/config"
	"github.com/kinjalh/Physics-Jet-Simulator-3D/internal/export"
	"github.com/kinjalh/Physics-Jet-Simulator-3D/internal/shower"
	"github.com/kinjalh/Physics-Jet-Simulator-3D/internal/storage"
	"github.com/kinjalh/Physics-Jet-Simulator-3D/internal/viz"
)

var (
	dataDir string
	layers  int
	seed    int64
	theta0  float64
	px      float64
	py      float64
	pz      float64
	single  bool
	verbose bool
	// Config file and preset
	configFile string
	preset     string
	// SVG export
	svgOut    string
	svgWidth  int
	svgHeight int
	svgColor  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jetsim",
		Short: "toy parton shower simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive viewer when no command given
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return viz.Run(cfg.InitMomentum(), cfg.Theta0, cfg.Layers, seed, cfg.BackToBack)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".jetsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "build a shower and save it",
		RunE:  runShower,
	}

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "build a shower and view it interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return viz.Run(cfg.InitMomentum(), cfg.Theta0, cfg.Layers, seed, cfg.BackToBack)
		},
	}

	for _, cmd := range []*cobra.Command{rootCmd, runCmd, viewCmd} {
		cmd.Flags().IntVar(&layers, "layers", config.DefaultLayers, "shower depth")
		cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
		cmd.Flags().Float64Var(&theta0, "theta0", config.DefaultTheta0, "initial in-plane angle")
		cmd.Flags().Float64Var(&px, "px", config.DefaultPx, "initial momentum x")
		cmd.Flags().Float64Var(&py, "py", config.DefaultPy, "initial momentum y")
		cmd.Flags().Float64Var(&pz, "pz", config.DefaultPz, "initial momentum z")
		cmd.Flags().BoolVar(&single, "single", false, "shower only the forward jet")
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	}
	runCmd.Flags().BoolVar(&verbose, "verbose", false, "log every splitting")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot shower observables",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run segments to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "", "output file (default stdout)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 1000, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 1000, "image height")
	exportSVGCmd.Flags().StringVar(&svgColor, "color", "#00ff88", "stroke color")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, viewCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges preset, config file, and CLI flags, flags winning.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("layers") {
		cfg.Layers = layers
	}
	if cmd.Flags().Changed("theta0") {
		cfg.Theta0 = theta0
	}
	if cmd.Flags().Changed("px") {
		cfg.Momentum.Px = px
	}
	if cmd.Flags().Changed("py") {
		cfg.Momentum.Py = py
	}
	if cmd.Flags().Changed("pz") {
		cfg.Momentum.Pz = pz
	}
	if cmd.Flags().Changed("single") {
		cfg.BackToBack = !single
	}
	if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
		seed = cfg.Seed
	}

	return cfg, nil
}

func runShower(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	b := shower.NewBuilder(shower.NewSampler(seed), cfg.Layers)
	if verbose {
		b.SetTrace(os.Stdout)
	}

	fmt.Printf("growing %d-layer shower...\n", cfg.Layers)
	start := time.Now()

	ev := shower.BuildEvent(b, cfg.InitMomentum(), cfg.Theta0, cfg.BackToBack)
	segs := ev.Segments(shower.Point{})

	elapsed := time.Since(start)

	leaves := 0
	for _, jet := range ev.Jets {
		leaves += len(jet.Leaves())
	}

	p0 := cfg.InitMomentum()
	meta := storage.RunMetadata{
		Seed:       seed,
		Layers:     cfg.Layers,
		Theta0:     cfg.Theta0,
		BackToBack: cfg.BackToBack,
		Momentum:   [3]float64{p0.X, p0.Y, p0.Z},
		Partons:    ev.Count(),
		Leaves:     leaves,
	}

	runID, err := st.Save(meta, segs)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("jets: %d\n", len(ev.Jets))
	fmt.Printf("partons: %d\n", ev.Count())
	fmt.Printf("final-state partons: %d\n", leaves)

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
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
	fmt.Fprintln(w, "ID\tTIME\tLAYERS\tSEED\tJETS\tPARTONS")

	for _, run := range runs {
		jets := 1
		if run.BackToBack {
			jets = 2
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Layers,
			run.Seed,
			jets,
			run.Partons,
		)
	}

	return w.Flush()
}

// rebuildEvent regrows a saved run's shower from its recorded seed, which
// reproduces it exactly.
func rebuildEvent(meta *storage.RunMetadata) *shower.Event {
	b := shower.NewBuilder(shower.NewSampler(meta.Seed), meta.Layers)
	p0 := shower.Momentum{X: meta.Momentum[0], Y: meta.Momentum[1], Z: meta.Momentum[2]}
	return shower.BuildEvent(b, p0, meta.Theta0, meta.BackToBack)
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	ev := rebuildEvent(meta)

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("layers: %d, seed: %d\n\n", meta.Layers, meta.Seed)

	var spectrum []float64
	for _, jet := range ev.Jets {
		spectrum = append(spectrum, analysis.LeafSpectrum(jet)...)
	}
	if len(spectrum) > 1 {
		graph := asciigraph.Plot(spectrum,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("leaf |p| (depth-first order)"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	drift := analysis.LayerDrift(ev.Jets[0])
	if len(drift) > 1 {
		graph := asciigraph.Plot(drift,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption("per-layer momentum drift (forward jet)"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	angles := analysis.OpeningAngles(ev.Jets[0])
	if len(angles) > 1 {
		graph := asciigraph.Plot(angles,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption("opening angles (forward jet)"),
		)
		fmt.Println(graph)
	}

	return nil
}

type exportData struct {
	storage.RunMetadata
	Segments []shower.Segment `json:"segments"`
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	segs, err := st.LoadSegments(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(exportData{RunMetadata: *meta, Segments: segs})
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	segs, err := st.LoadSegments(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"x0", "y0", "z0", "x1", "y1", "z1"}); err != nil {
		return err
	}
	for _, seg := range segs {
		row := make([]string, 0, 6)
		for _, v := range []float64{seg.Start.X, seg.Start.Y, seg.Start.Z, seg.End.X, seg.End.Y, seg.End.Z} {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	segs, err := st.LoadSegments(args[0])
	if err != nil {
		return err
	}

	svg := export.SegmentsToSVG(segs, viz.NewCamera(), svgWidth, svgHeight, svgColor)
	if svg == "" {
		return fmt.Errorf("run %s has no segments to export", args[0])
	}

	if svgOut == "" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", svgOut)
	return nil
}
