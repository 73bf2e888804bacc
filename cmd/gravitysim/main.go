package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Syrthax/gravity-sim/internal/config"
	"github.com/Syrthax/gravity-sim/internal/engine"
	"github.com/Syrthax/gravity-sim/internal/storage"
	"github.com/Syrthax/gravity-sim/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	ticks      int
	record     bool
	frameRate  int
	bodies     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravitysim",
		Short: "interactive 2D n-body gravity simulator",
		RunE:  runLive,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gravitysim", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	rootCmd.PersistentFlags().IntVar(&bodies, "bodies", 0, "override initial body count")
	rootCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless for a fixed number of ticks",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&ticks, "ticks", 1000, "number of ticks")
	runCmd.Flags().BoolVar(&record, "record", false, "record the run to the data directory")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a recorded run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildEngine() (*engine.Engine, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s", preset)
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	params := cfg.Params()
	params.Seed = seed
	if bodies > 0 {
		params.InitialBodies = bodies
	}
	return engine.New(params)
}

func runLive(cmd *cobra.Command, args []string) error {
	eng, err := buildEngine()
	if err != nil {
		return err
	}
	return viz.Run(eng, frameRate)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	eng, err := buildEngine()
	if err != nil {
		return err
	}

	var frames [][]engine.BodyView
	collisions := 0
	for i := 0; i < ticks; i++ {
		out := eng.Tick()
		collisions += len(out.Collisions)
		for _, c := range out.Collisions {
			fmt.Printf("tick %d: body %d absorbed body %d (new mass: %.1f)\n",
				i, c.Absorber, c.Absorbed, c.NewMass)
		}
		for _, adv := range out.Advisories {
			fmt.Printf("tick %d: [%s] body %d: %s\n", i, adv.Kind, adv.Body, adv.Detail)
		}
		if record {
			frames = append(frames, eng.Snapshot())
		}
		if out.BecameUnstable {
			fmt.Printf("tick %d: simulation unstable, paused\n", i)
			break
		}
		if eng.Paused {
			fmt.Printf("tick %d: simulation paused\n", i)
			break
		}
	}

	fmt.Printf("ran %d ticks: %d active bodies, total mass %.1f, %d merges\n",
		eng.Ticks(), eng.ActiveBodies(), eng.TotalMass(), collisions)

	if record {
		store := storage.New(dataDir)
		if err := store.Init(); err != nil {
			return err
		}
		runID, err := store.Save(seed, eng.Params().Dt, collisions, frames)
		if err != nil {
			return err
		}
		fmt.Printf("saved run %s\n", runID)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tTICKS\tMERGES\tBODIES\tMASS")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%.1f\n",
			r.ID, r.Timestamp.Format("2006-01-02 15:04:05"), r.Ticks, r.Collisions, r.ActiveBodies, r.TotalMass)
	}
	return w.Flush()
}
