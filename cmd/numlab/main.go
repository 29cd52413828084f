package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/numlab/internal/analysis"
	"github.com/san-kum/numlab/internal/config"
	"github.com/san-kum/numlab/internal/integrators"
	"github.com/san-kum/numlab/internal/linalg"
	"github.com/san-kum/numlab/internal/numeric"
	"github.com/san-kum/numlab/internal/problems"
	"github.com/san-kum/numlab/internal/roots"
	"github.com/san-kum/numlab/internal/storage"
	"github.com/san-kum/numlab/internal/tui"
)

var (
	dataDir    string
	method     string
	steps      int
	tol        float64
	maxIter    int
	dx         float64
	iterations int
	scale      bool
	pivot      bool
	debug      bool
	saveRun    bool
	showPlot   bool
	x0, y0, xn float64
	guess      float64
	bracketA   float64
	bracketB   float64
	levels     int
	frameRate  int
	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "numlab",
		Short: "classical numerical methods lab",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".numlab", "data directory")

	integrateCmd := &cobra.Command{
		Use:   "integrate [problem]",
		Short: "integrate a scalar initial value problem",
		Args:  cobra.ExactArgs(1),
		RunE:  runIntegrate,
	}
	integrateCmd.Flags().StringVar(&method, "method", "rk4", "integrator (euler, rk2, rk4)")
	integrateCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "step count")
	integrateCmd.Flags().Float64Var(&x0, "x0", 0, "initial x (problem default if unset)")
	integrateCmd.Flags().Float64Var(&y0, "y0", 0, "initial y (problem default if unset)")
	integrateCmd.Flags().Float64Var(&xn, "xn", 0, "target x (problem default if unset)")
	integrateCmd.Flags().BoolVar(&debug, "debug", false, "trace every step to stderr")
	integrateCmd.Flags().BoolVar(&showPlot, "plot", false, "plot the trajectory")
	integrateCmd.Flags().BoolVar(&saveRun, "save", false, "persist the run")
	integrateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	integrateCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	systemCmd := &cobra.Command{
		Use:   "system [problem]",
		Short: "integrate a coupled pair of equations",
		Args:  cobra.ExactArgs(1),
		RunE:  runSystem,
	}
	systemCmd.Flags().StringVar(&method, "method", "rk4", "integrator (euler, rk2, rk4)")
	systemCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "step count")
	systemCmd.Flags().BoolVar(&debug, "debug", false, "trace every step to stderr")
	systemCmd.Flags().BoolVar(&showPlot, "plot", false, "plot both components")
	systemCmd.Flags().BoolVar(&saveRun, "save", false, "persist the run")

	rootFindCmd := &cobra.Command{
		Use:   "root [problem]",
		Short: "find a root",
		Args:  cobra.ExactArgs(1),
		RunE:  runRoot,
	}
	rootFindCmd.Flags().StringVar(&method, "method", "bisect", "method (scan, bisect, newton)")
	rootFindCmd.Flags().Float64Var(&tol, "tol", config.DefaultTol, "tolerance")
	rootFindCmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIter, "newton iteration bound")
	rootFindCmd.Flags().Float64Var(&dx, "dx", config.DefaultDx, "scan increment")
	rootFindCmd.Flags().Float64Var(&guess, "guess", 0, "newton starting point (problem default if unset)")
	rootFindCmd.Flags().Float64Var(&bracketA, "a", 0, "left bound (problem default if unset)")
	rootFindCmd.Flags().Float64Var(&bracketB, "b", 0, "right bound (problem default if unset)")
	rootFindCmd.Flags().BoolVar(&debug, "debug", false, "trace every iteration to stderr")
	rootFindCmd.Flags().BoolVar(&saveRun, "save", false, "persist the iteration history")

	solveCmd := &cobra.Command{
		Use:   "solve [system]",
		Short: "solve a linear system by gaussian elimination",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	solveCmd.Flags().BoolVar(&pivot, "pivot", true, "partial pivoting")
	solveCmd.Flags().BoolVar(&debug, "debug", false, "trace every pivot to stderr")

	eigCmd := &cobra.Command{
		Use:   "eig [matrix]",
		Short: "dominant eigenpair by the power method",
		Args:  cobra.ExactArgs(1),
		RunE:  runEig,
	}
	eigCmd.Flags().IntVar(&iterations, "iters", config.DefaultIters, "iteration count")
	eigCmd.Flags().BoolVar(&scale, "scale", true, "rescale each iterate")
	eigCmd.Flags().BoolVar(&debug, "debug", false, "trace every iterate to stderr")

	orderCmd := &cobra.Command{
		Use:   "order [problem]",
		Short: "observed order of accuracy table",
		Args:  cobra.ExactArgs(1),
		RunE:  runOrder,
	}
	orderCmd.Flags().StringVar(&method, "method", "rk4", "integrator (euler, rk2, rk4)")
	orderCmd.Flags().IntVar(&steps, "steps", 10, "starting step count")
	orderCmd.Flags().IntVar(&levels, "levels", 6, "number of doublings")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [kind]",
		Short: "list available presets for a kind of run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for kind: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch [problem]",
		Short: "animate a root-finding iteration",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}
	watchCmd.Flags().StringVar(&method, "method", "bisect", "method (bisect, newton)")
	watchCmd.Flags().Float64Var(&tol, "tol", config.DefaultTol, "tolerance")
	watchCmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIter, "newton iteration bound")
	watchCmd.Flags().IntVar(&frameRate, "fps", 5, "iterations revealed per second")

	rootCmd.AddCommand(integrateCmd, systemCmd, rootFindCmd, solveCmd, eigCmd,
		orderCmd, listCmd, plotCmd, exportCmd, presetsCmd, watchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func tracer() numeric.Tracer {
	if !debug {
		return nil
	}
	return numeric.WriterTracer{W: os.Stderr}
}

func runIntegrate(cmd *cobra.Command, args []string) error {
	problem := args[0]

	if preset != "" {
		cfg := config.GetPreset("integrate", preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets("integrate"))
		}
		method = cfg.Method
		steps = cfg.Steps
		problem = cfg.Problem
	}
	var fileCfg *config.Config
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		fileCfg = cfg
		if !cmd.Flags().Changed("method") {
			method = cfg.Method
		}
		if !cmd.Flags().Changed("steps") {
			steps = cfg.Steps
		}
		if cfg.Problem != "" {
			problem = cfg.Problem
		}
		if cfg.Trace {
			debug = true
		}
	}

	p, ok := problems.LookupODE(problem)
	if !ok {
		return fmt.Errorf("unknown problem: %s (available: %v)", problem, problems.ODENames())
	}
	if fileCfg != nil {
		if fileCfg.Initial.X0 != nil {
			p.X0 = *fileCfg.Initial.X0
		}
		if fileCfg.Initial.Y0 != nil {
			p.Y0 = *fileCfg.Initial.Y0
		}
		if fileCfg.Initial.XN != nil {
			p.XN = *fileCfg.Initial.XN
		}
	}
	// CLI flags override both preset and config file.
	if cmd.Flags().Changed("x0") {
		p.X0 = x0
	}
	if cmd.Flags().Changed("y0") {
		p.Y0 = y0
	}
	if cmd.Flags().Changed("xn") {
		p.XN = xn
	}

	m, ok := integrators.ByName(method)
	if !ok {
		return fmt.Errorf("unknown method: %s (available: %v)", method, integrators.Names())
	}

	var opts []integrators.Option
	if t := tracer(); t != nil {
		opts = append(opts, integrators.WithTracer(t))
	}

	traj, err := integrators.Integrate(m, p.F, p.X0, p.Y0, p.XN, steps, opts...)
	if err != nil {
		return err
	}

	fmt.Printf("%s on %s, %d steps\n", m.Name(), p.Name, steps)
	fmt.Printf("y(%g) = %.12f\n", p.XN, traj.Terminal())

	summary := map[string]float64{"terminal": traj.Terminal()}
	if p.Exact != nil {
		errAbs := math.Abs(traj.Terminal() - p.Exact(p.XN))
		fmt.Printf("exact    %.12f\n", p.Exact(p.XN))
		fmt.Printf("error    %.3e\n", errAbs)
		summary["error"] = errAbs
	}

	if showPlot {
		fmt.Println()
		fmt.Println(asciigraph.Plot(traj.Ys,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("y(x), x in [%g, %g]", p.X0, p.XN)),
		))
	}

	if saveRun {
		rows := make([][]float64, traj.Len())
		for i := range rows {
			rows[i] = []float64{traj.Xs[i], traj.Ys[i]}
		}
		return persist("integrate", m.Name(), p.Name,
			map[string]float64{"steps": float64(steps)}, summary,
			storage.Series{Header: []string{"x", "y"}, Rows: rows})
	}
	return nil
}

func runSystem(cmd *cobra.Command, args []string) error {
	p, ok := problems.LookupSystem(args[0])
	if !ok {
		return fmt.Errorf("unknown problem: %s (available: %v)", args[0], problems.SystemNames())
	}

	m, ok := integrators.ByName(method)
	if !ok {
		return fmt.Errorf("unknown method: %s (available: %v)", method, integrators.Names())
	}

	var opts []integrators.Option
	if t := tracer(); t != nil {
		opts = append(opts, integrators.WithTracer(t))
	}

	traj, err := integrators.IntegrateSystem(m, p.F1, p.F2, p.T0, p.X0, p.Y0, p.TN, steps, opts...)
	if err != nil {
		return err
	}

	xTerm, yTerm := traj.Terminal()
	fmt.Printf("%s on %s, %d steps\n", m.Name(), p.Name, steps)
	fmt.Printf("x(%g) = %.12f\n", p.TN, xTerm)
	fmt.Printf("y(%g) = %.12f\n", p.TN, yTerm)
	if p.ExactX != nil {
		fmt.Printf("x error  %.3e\n", math.Abs(xTerm-p.ExactX(p.TN)))
	}
	if p.ExactY != nil {
		fmt.Printf("y error  %.3e\n", math.Abs(yTerm-p.ExactY(p.TN)))
	}

	if showPlot {
		for _, series := range []struct {
			name string
			data []float64
		}{{"x(t)", traj.Xs}, {"y(t)", traj.Ys}} {
			fmt.Println()
			fmt.Println(asciigraph.Plot(series.data,
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption(series.name),
			))
		}
	}

	if saveRun {
		rows := make([][]float64, traj.Len())
		for i := range rows {
			rows[i] = []float64{traj.Ts[i], traj.Xs[i], traj.Ys[i]}
		}
		return persist("system", m.Name(), p.Name,
			map[string]float64{"steps": float64(steps)},
			map[string]float64{"x_terminal": xTerm, "y_terminal": yTerm},
			storage.Series{Header: []string{"t", "x", "y"}, Rows: rows})
	}
	return nil
}

// collectEstimates runs a root finder while recording each iterate.
func collectEstimates(p problems.RootProblem) (root float64, estimates []float64, err error) {
	rec := numeric.TracerFunc(func(step int, values map[string]float64) {
		switch method {
		case "newton":
			estimates = append(estimates, values["next"])
		default:
			estimates = append(estimates, values["m"])
		}
	})

	switch method {
	case "bisect":
		root, err = roots.Bisection(p.F, p.A, p.B, tol, roots.WithTracer(rec))
	case "newton":
		root, err = roots.Newton(p.F, p.Derivative, p.Guess, tol,
			roots.WithTracer(rec), roots.WithMaxIter(maxIter))
	default:
		err = fmt.Errorf("method %s has no iteration history", method)
	}
	return root, estimates, err
}

func runRoot(cmd *cobra.Command, args []string) error {
	p, ok := problems.LookupRoot(args[0])
	if !ok {
		return fmt.Errorf("unknown problem: %s (available: %v)", args[0], problems.RootNames())
	}
	if cmd.Flags().Changed("a") {
		p.A = bracketA
	}
	if cmd.Flags().Changed("b") {
		p.B = bracketB
	}
	if cmd.Flags().Changed("guess") {
		p.Guess = guess
	}

	if method == "scan" {
		bracket, found, err := roots.IncrementalSearch(p.F, p.A, p.B, dx)
		if err != nil {
			return err
		}
		if !found {
			fmt.Printf("no bracket found in (%g, %g) with dx=%g\n", p.A, p.B, dx)
			return nil
		}
		fmt.Printf("bracket: (%.6f, %.6f)\n", bracket.X1, bracket.X2)
		return nil
	}

	var rootOpts []roots.Option
	if t := tracer(); t != nil {
		rootOpts = append(rootOpts, roots.WithTracer(t))
	}

	var (
		root float64
		ests []float64
		err  error
	)
	if saveRun {
		root, ests, err = collectEstimates(p)
	} else {
		switch method {
		case "bisect":
			root, err = roots.Bisection(p.F, p.A, p.B, tol, rootOpts...)
		case "newton":
			rootOpts = append(rootOpts, roots.WithMaxIter(maxIter))
			root, err = roots.Newton(p.F, p.Derivative, p.Guess, tol, rootOpts...)
		default:
			return fmt.Errorf("unknown method: %s (available: scan, bisect, newton)", method)
		}
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s on %s\n", method, p.Name)
	fmt.Printf("root     %.12f\n", root)
	fmt.Printf("residual %.3e\n", math.Abs(p.F(root)))
	fmt.Printf("known    %.12f (error %.3e)\n", p.Root, math.Abs(root-p.Root))

	if saveRun {
		rows := make([][]float64, len(ests))
		for i, e := range ests {
			rows[i] = []float64{float64(i), e}
		}
		return persist("root", method, p.Name,
			map[string]float64{"tol": tol},
			map[string]float64{"root": root},
			storage.Series{Header: []string{"iteration", "estimate"}, Rows: rows})
	}
	return nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	p, ok := problems.LookupLinear(args[0])
	if !ok {
		return fmt.Errorf("unknown system: %s (available: %v)", args[0], problems.LinearNames())
	}

	a, err := linalg.FromRows(p.A)
	if err != nil {
		return err
	}

	opts := []linalg.Option{}
	if !pivot {
		opts = append(opts, linalg.WithPivoting(linalg.NoPivoting))
	}
	if t := tracer(); t != nil {
		opts = append(opts, linalg.WithTracer(t))
	}

	x, err := linalg.Solve(a, p.B, opts...)
	if err != nil {
		return err
	}

	fmt.Printf("solve %s (pivot=%v)\n", p.Name, pivot)
	for i, v := range x {
		fmt.Printf("x%d = %.12f\n", i, v)
	}
	if p.Solution != nil {
		maxErr := 0.0
		for i := range x {
			if e := math.Abs(x[i] - p.Solution[i]); e > maxErr {
				maxErr = e
			}
		}
		fmt.Printf("max error vs known solution: %.3e\n", maxErr)
	}
	return nil
}

func runEig(cmd *cobra.Command, args []string) error {
	p, ok := problems.LookupEigen(args[0])
	if !ok {
		return fmt.Errorf("unknown matrix: %s (available: %v)", args[0], problems.EigenNames())
	}

	a, err := linalg.FromRows(p.A)
	if err != nil {
		return err
	}

	opts := []linalg.PowerOption{}
	if !scale {
		opts = append(opts, linalg.WithoutScaling())
	}
	if t := tracer(); t != nil {
		opts = append(opts, linalg.WithPowerTracer(t))
	}

	result, err := linalg.PowerMethod(a, p.X0, iterations, opts...)
	if err != nil {
		return err
	}

	fmt.Printf("power method on %s, %d iterations\n", p.Name, iterations)
	fmt.Printf("eigenvalue  %.12f (known %.12f)\n", result.Value, p.Value)
	fmt.Printf("eigenvector %v\n", result.Vector)
	fmt.Printf("residual    %.3e\n", result.Residual)
	return nil
}

func runOrder(cmd *cobra.Command, args []string) error {
	p, ok := problems.LookupODE(args[0])
	if !ok {
		return fmt.Errorf("unknown problem: %s (available: %v)", args[0], problems.ODENames())
	}

	m, ok := integrators.ByName(method)
	if !ok {
		return fmt.Errorf("unknown method: %s (available: %v)", method, integrators.Names())
	}

	points, err := analysis.DoublingSweep(m, p, steps, levels)
	if err != nil {
		return err
	}

	fmt.Printf("%s on %s (theoretical order %d)\n\n", m.Name(), p.Name, m.Order())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tERROR\tOBSERVED ORDER")
	for i, pt := range points {
		if i == 0 || pt.Err == 0 || points[i-1].Err == 0 {
			fmt.Fprintf(w, "%d\t%.3e\t-\n", pt.N, pt.Err)
			continue
		}
		fmt.Fprintf(w, "%d\t%.3e\t%.3f\n", pt.N, pt.Err, math.Log2(points[i-1].Err/pt.Err))
	}
	return w.Flush()
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
	fmt.Fprintln(w, "ID\tKIND\tMETHOD\tPROBLEM\tTIME")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			run.ID,
			run.Kind,
			run.Method,
			run.Problem,
			run.Timestamp.Format("2006-01-02 15:04:05"),
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(series.Rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("kind: %s, method: %s, problem: %s\n", meta.Kind, meta.Method, meta.Problem)
	fmt.Printf("samples: %d\n", len(series.Rows))

	// First column is the abscissa; plot every other column against it.
	for _, name := range series.Header[1:] {
		data, ok := series.Column(name)
		if !ok {
			continue
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s vs %s", name, series.Header[0])),
		))
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	return st.ExportJSON(os.Stdout, args[0])
}

func runWatch(cmd *cobra.Command, args []string) error {
	p, ok := problems.LookupRoot(args[0])
	if !ok {
		return fmt.Errorf("unknown problem: %s (available: %v)", args[0], problems.RootNames())
	}

	_, estimates, err := collectEstimates(p)
	if err != nil {
		return err
	}
	if len(estimates) == 0 {
		return fmt.Errorf("nothing to animate: %s converged immediately", method)
	}

	title := fmt.Sprintf("%s on %s", method, p.Name)
	return tui.Run(tui.NewModel(title, estimates, p.Root, frameRate))
}

func persist(kind, method, problem string, params, summary map[string]float64, series storage.Series) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(kind, method, problem, params, summary, series)
	if err != nil {
		return err
	}
	fmt.Printf("saved run: %s\n", id)
	return nil
}
