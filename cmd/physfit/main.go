package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"physfit/internal/bounce"
	"physfit/internal/config"
	"physfit/internal/dataset"
	"physfit/internal/fit"
	"physfit/internal/model"
	"physfit/internal/plotting"
	"physfit/internal/storage"
	"physfit/internal/viz"
)

var (
	dataDir    string
	configFile string

	// bounce
	initialHeight float64
	minimumHeight float64
	efficiency    float64
	live          bool
	frameRate     int
	peaksPlot     string

	// thickness
	thicknessFile string
	thicknessPlot string

	// decay
	decayFile1  string
	decayFile2  string
	prelimPlot  string
	finalPlot   string
	contourPlot string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "physfit",
		Short: "physics coursework analysis lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".physfit", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	bounceCmd := &cobra.Command{
		Use:   "bounce",
		Short: "simulate a bouncing ball over a minimum height",
		RunE:  runBounce,
	}
	bounceCmd.Flags().Float64Var(&initialHeight, "height", 0, "initial drop height (m)")
	bounceCmd.Flags().Float64Var(&minimumHeight, "min", 0, "minimum counted height (m)")
	bounceCmd.Flags().Float64Var(&efficiency, "efficiency", 0, "height retained per bounce (0,1)")
	bounceCmd.Flags().BoolVar(&live, "live", false, "animate the bounce in the terminal")
	bounceCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate for live view")
	bounceCmd.Flags().StringVar(&peaksPlot, "plot", "bounce_peaks.png", "peak plot output path (empty to skip)")

	thicknessCmd := &cobra.Command{
		Use:   "thickness",
		Short: "fit barrier thickness to tunnelling data",
		RunE:  runThickness,
	}
	thicknessCmd.Flags().StringVar(&thicknessFile, "file", "Tunnelling_data_BN.csv", "tunnelling data file")
	thicknessCmd.Flags().StringVar(&thicknessPlot, "plot", "transmission_fit.png", "fit plot output path (empty to skip)")

	decayCmd := &cobra.Command{
		Use:   "decay",
		Short: "fit two decay constants to activity data",
		RunE:  runDecay,
	}
	decayCmd.Flags().StringVar(&decayFile1, "file1", "Nuclear_data_1.csv", "first activity data file")
	decayCmd.Flags().StringVar(&decayFile2, "file2", "Nuclear_data_2.csv", "second activity data file")
	decayCmd.Flags().StringVar(&prelimPlot, "prelim-plot", "preliminary_fit.png", "preliminary fit plot path (empty to skip)")
	decayCmd.Flags().StringVar(&finalPlot, "final-plot", "final_fit.png", "final fit plot path (empty to skip)")
	decayCmd.Flags().StringVar(&contourPlot, "contour-plot", "chi_squared_contour.png", "contour plot path (empty to skip)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved analysis runs",
		RunE:  listRuns,
	}

	rootCmd.AddCommand(bounceCmd, thicknessCmd, decayCmd, listCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func runBounce(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var in bounce.Inputs
	if cmd.Flags().Changed("height") || cmd.Flags().Changed("min") || cmd.Flags().Changed("efficiency") {
		// Inputs from flags skip the prompt loop; a violation is fatal
		// since there is nothing to re-ask.
		in = bounce.Inputs{Initial: initialHeight, Minimum: minimumHeight, Efficiency: efficiency}
		if err := in.Validate(); err != nil {
			return err
		}
	} else {
		in, err = bounce.Prompt(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
	}

	res := bounce.Simulate(in, cfg.Gravity)

	if live {
		p := tea.NewProgram(viz.NewModel(res, cfg.Gravity, frameRate))
		if _, err := p.Run(); err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(res.Heights,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption("peak heights above the minimum (m)"),
	))

	fmt.Printf("\nThe total number of bounces above the minimum height is %d.\n", res.Bounces)
	fmt.Printf("The total amount of time to complete these bounces is %.4g seconds.\n", res.TotalTime)

	if peaksPlot != "" {
		err := plotting.SavePeaks(peaksPlot,
			"Heights and times of each peak above the minimum height",
			"Time (s)", "Height of peaks (m)",
			res.Times, res.Heights)
		if err != nil {
			return err
		}
	}

	return saveRun("bounce", len(res.Heights), map[string]float64{
		"bounces":      float64(res.Bounces),
		"total_time_s": res.TotalTime,
	}, res.Times, res.Heights)
}

func runThickness(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tc := cfg.Thickness
	tun := model.NewTunnel(tc.BarrierHeight, tc.Epsilon0, tc.EpsilonR, tc.Wavenumber)

	ds, err := dataset.ReadCSV(thicknessFile, dataset.ReadOptions{
		SkipHeader: true,
		Validate:   dataset.TransmissionValidator(tc.BarrierHeight),
	})
	if err != nil {
		return fmt.Errorf("the data file could not be read: %w", err)
	}
	if len(ds) == 0 {
		return fit.ErrEmptyDataset
	}
	ds = dataset.Merge(ds) // sort by energy

	mf := func(x float64, p fit.Params) float64 { return tun.Transmission(x, p[0]) }
	chi := func(d float64) float64 { return fit.ChiSquared(ds, mf, fit.Params{d}) }

	final, err := fit.Descend(chi, tc.StartThickness, tc.Step, tc.MaxIterations)
	if err != nil {
		return fmt.Errorf("the fitting procedure has failed: %w", err)
	}

	thicknessErr, err := fit.BoundaryError(chi, final, tc.Step/10, tc.MaxIterations)
	if err != nil {
		return fmt.Errorf("the fitting procedure has failed: %w", err)
	}

	reduced := fit.ReducedChiSquared(ds, mf, fit.Params{final})
	layers := model.LayerCount(final, tc.LayerThickness)

	fitted := make([]float64, len(ds))
	for i, s := range ds {
		fitted[i] = tun.Transmission(s.X, final)
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(fitted,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption("fitted transmission coefficient vs energy"),
	))

	fmt.Printf("\nThe thickness of the sample is %5.3f ± %5.3f Å.\n", final, thicknessErr)
	fmt.Printf("The reduced chi-squared is %4.2f.\n", reduced)
	fmt.Printf("There is %d layer(s) of BN.\n", layers)
	printResidualSummary(ds, mf, fit.Params{final})

	if thicknessPlot != "" {
		fitLabel := fmt.Sprintf("Fit - Reduced chi-squared = %4.2f", reduced)
		err := plotting.SaveFit(thicknessPlot,
			"Transmission coefficient against Energy",
			"Energy (eV)", "Transmission coefficient",
			"Data", fitLabel, ds, fitted)
		if err != nil {
			return err
		}
	}

	return saveRun("thickness", len(ds), map[string]float64{
		"thickness_angstrom": final,
		"thickness_error":    thicknessErr,
		"reduced_chi2":       reduced,
		"layers":             float64(layers),
	}, ds.Xs(), fitted)
}

func runDecay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dc := cfg.Decay
	dec := &model.Decay{InitialNuclei: dc.InitialNuclei}

	opts := dataset.ReadOptions{Comment: '%', Validate: dataset.ActivityValidator()}
	first, err := dataset.ReadCSV(decayFile1, opts)
	if err != nil {
		return fmt.Errorf("the data files could not be read: %w", err)
	}
	second, err := dataset.ReadCSV(decayFile2, opts)
	if err != nil {
		return fmt.Errorf("the data files could not be read: %w", err)
	}

	ds := dataset.Merge(first, second).ScaleX(3600) // hours to seconds
	if len(ds) == 0 {
		return fit.ErrEmptyDataset
	}

	mf := func(x float64, p fit.Params) float64 { return dec.Activity(x, p[0], p[1]) }

	preliminary, err := fit.Minimize(func(p fit.Params) float64 {
		return fit.ChiSquared(ds, mf, p)
	}, fit.Params{dc.InitialRb, dc.InitialSr})
	if err != nil {
		return fmt.Errorf("the fitting procedure has failed: %w", err)
	}
	fmt.Println("\nThe preliminary fit was successful.")

	clean := fit.RemoveOutliers(ds, mf, preliminary, dc.OutlierSigma)
	if len(clean) == 0 {
		return fit.ErrEmptyDataset
	}

	objective := func(p fit.Params) float64 { return fit.ChiSquared(clean, mf, p) }
	final, err := fit.Minimize(objective, preliminary)
	if err != nil {
		return fmt.Errorf("the fitting procedure has failed: %w", err)
	}
	fmt.Println("The final fit was successful.")

	surface := fit.SweepSurface(objective, final, dc.GridSpan, dc.GridResolution)
	chiMin := objective(final)
	contour := surface.TraceContour(chiMin + 1)
	errRb, errSr, err := fit.ContourErrors(contour)
	if err != nil {
		return err
	}

	halfRb := model.HalfLife(final[0])
	halfSr := model.HalfLife(final[1])
	errHalfRb := model.HalfLifeError(halfRb, final[0], errRb)
	errHalfSr := model.HalfLifeError(halfSr, final[1], errSr)
	reduced := fit.ReducedChiSquared(clean, mf, final)

	fittedFinal := make([]float64, len(clean))
	for i, s := range clean {
		fittedFinal[i] = dec.Activity(s.X, final[0], final[1])
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(fittedFinal,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption("fitted activity (TBq) vs time"),
	))

	fmt.Printf("\nThe measured decay constant of Rubidium-79 is %.6f ± %.6f s^-1.\n", final[0], errRb)
	fmt.Printf("The measured decay constant of Strontium-79 is %.5f ± %.5f s^-1.\n", final[1], errSr)
	fmt.Printf("\nThe half-life of Rubidium-79 is %.3g ± %.1g minutes.\n", halfRb, errHalfRb)
	fmt.Printf("The half-life of Strontium-79 is %.3g ± %.1g minutes.\n", halfSr, errHalfSr)
	fmt.Printf("\nThe reduced chi-squared of the fit is %.2f.\n", reduced)
	printResidualSummary(clean, mf, final)

	if prelimPlot != "" {
		fittedPrelim := make([]float64, len(ds))
		for i, s := range ds {
			fittedPrelim[i] = dec.Activity(s.X, preliminary[0], preliminary[1])
		}
		label := fmt.Sprintf("Preliminary fit - Reduced chi-squared = %.2f",
			fit.ReducedChiSquared(ds, mf, preliminary))
		err := plotting.SaveFit(prelimPlot,
			"Activity of Rb-79 - preliminary fit",
			"Time (seconds)", "Activity (TBq)",
			"Data", label, ds, fittedPrelim)
		if err != nil {
			return err
		}
	}
	if finalPlot != "" {
		label := fmt.Sprintf("Final fit - Reduced chi-squared = %.2f", reduced)
		err := plotting.SaveFit(finalPlot,
			"Activity of Rb-79 - final fit",
			"Time (seconds)", "Activity (TBq)",
			"Data without outliers", label, clean, fittedFinal)
		if err != nil {
			return err
		}
	}
	if contourPlot != "" {
		err := plotting.SaveSurface(contourPlot,
			"Chi-squared contour",
			"Decay constant Rb (s^-1)", "Decay constant Sr (s^-1)",
			surface, contour, final)
		if err != nil {
			return err
		}
	}

	return saveRun("decay", len(clean), map[string]float64{
		"decay_constant_rb": final[0],
		"decay_constant_sr": final[1],
		"error_rb":          errRb,
		"error_sr":          errSr,
		"half_life_rb_min":  halfRb,
		"half_life_sr_min":  halfSr,
		"reduced_chi2":      reduced,
	}, clean.Xs(), fittedFinal)
}

func printResidualSummary(ds dataset.Dataset, mf fit.Model, p fit.Params) {
	mean, stdev, err := fit.ResidualSummary(fit.Residuals(ds, mf, p))
	if err != nil {
		return
	}
	fmt.Printf("Normalized residuals: mean %.3f, standard deviation %.3f.\n", mean, stdev)
}

func saveRun(analysis string, samples int, results map[string]float64, xs, ys []float64) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(analysis, samples, results, xs, ys)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
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
	fmt.Fprintln(w, "ID\tANALYSIS\tTIME\tSAMPLES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			run.ID,
			run.Analysis,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Samples,
		)
	}

	return w.Flush()
}
