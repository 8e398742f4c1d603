package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/redoxlab/internal/config"
	"github.com/san-kum/redoxlab/internal/experiment"
	"github.com/san-kum/redoxlab/internal/logging"
	"github.com/san-kum/redoxlab/internal/physics"
	"github.com/san-kum/redoxlab/internal/viz"
)

var (
	configFile string
	preset     string
	format     string
	theme      string
	logLevel   string
	logFormat  string
	// physical parameters
	electrons int
	area      float64
	conc      float64
	diffusion float64
	// Cottrell grid
	gridStart  float64
	gridStop   float64
	gridPoints int
	// Cox profile
	coxTime   float64
	coxXMax   float64
	coxPoints int
	// working interval
	tmin float64
	tmax float64
	// config command
	savePath string
)

var (
	cfg *config.Config
	log zerolog.Logger
)

var formats = []string{"table", "csv", "json", "plot"}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		st := viz.NewStyles(viz.GetTheme(theme))
		fmt.Fprintln(os.Stderr, st.Error.Render("error:"), viz.ErrorMessage(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "redoxlab",
		Short:             "chronoamperometry analysis lab",
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset parameters")
	pf.StringVar(&format, "format", "table", "output format: "+strings.Join(formats, ", "))
	pf.StringVar(&theme, "theme", viz.ThemeLab.Name, "color theme: "+strings.Join(viz.ThemeNames(), ", "))
	pf.StringVar(&logLevel, "log-level", "info", "log level")
	pf.StringVar(&logFormat, "log-format", "console", "log format: console, json")
	pf.IntVar(&electrons, "n", config.DefaultN, "electrons transferred")
	pf.Float64Var(&area, "s", config.DefaultS, "electrode area (cm²)")
	pf.Float64Var(&conc, "c", config.DefaultC, "bulk concentration (mol/cm³)")
	pf.Float64Var(&diffusion, "d", config.DefaultD, "diffusion coefficient (cm²/s)")

	curveCmd := &cobra.Command{
		Use:   "curve",
		Short: "theoretical Cottrell current",
		Args:  cobra.NoArgs,
		RunE:  runCurve,
	}
	curveCmd.Flags().Float64Var(&gridStart, "start", 0, "first grid time (s)")
	curveCmd.Flags().Float64Var(&gridStop, "stop", config.DefaultGridStop, "last grid time (s)")
	curveCmd.Flags().IntVar(&gridPoints, "points", config.DefaultGridPoints, "grid points")

	coxCmd := &cobra.Command{
		Use:   "cox",
		Short: "concentration profile near the electrode",
		Args:  cobra.NoArgs,
		RunE:  runCox,
	}
	coxCmd.Flags().Float64Var(&coxTime, "time", config.DefaultCoxTime, "time since the potential step (s)")
	coxCmd.Flags().Float64Var(&coxXMax, "xmax", config.DefaultCoxXMax, "farthest distance from the electrode (cm)")
	coxCmd.Flags().IntVar(&coxPoints, "points", config.DefaultCoxPoints, "profile points")

	loadCmd := &cobra.Command{
		Use:   "load [file]",
		Short: "summarize a recorded transient",
		Args:  cobra.ExactArgs(1),
		RunE:  runLoad,
	}
	regressCmd := &cobra.Command{
		Use:   "regress [file]",
		Short: "estimate the diffusion coefficient from a recording",
		Args:  cobra.ExactArgs(1),
		RunE:  runRegress,
	}
	for _, c := range []*cobra.Command{loadCmd, regressCmd} {
		c.Flags().Float64Var(&tmin, "tmin", 0, "start of the working interval (s)")
		c.Flags().Float64Var(&tmax, "tmax", 0, "end of the working interval (s)")
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available parameter presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  showConfig,
	}
	configCmd.Flags().StringVar(&savePath, "save", "", "write the configuration to this path")

	rootCmd.AddCommand(curveCmd, coxCmd, loadCmd, regressCmd, presetsCmd, configCmd)
	return rootCmd
}

// setup resolves the configuration and the logger before every command.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = resolveConfig(cmd)
	if err != nil {
		return err
	}

	log, err = logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}, os.Stderr)
	if err != nil {
		return err
	}

	for _, f := range formats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unknown format: %s (available: %v)", format, formats)
}

// resolveConfig layers defaults, preset, config file and changed flags in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	c := config.DefaultConfig()

	if preset != "" {
		c = config.GetPreset(preset)
		if c == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	// config file overrides preset
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", configFile, err)
		}
		c = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("n") {
		c.Params.N = electrons
	}
	if flags.Changed("s") {
		c.Params.S = area
	}
	if flags.Changed("c") {
		c.Params.C = conc
	}
	if flags.Changed("d") {
		c.Params.D = diffusion
	}
	if flags.Changed("log-level") {
		c.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		c.Log.Format = logFormat
	}

	switch cmd.Name() {
	case "curve":
		if flags.Changed("start") {
			c.Grid.Start = gridStart
		}
		if flags.Changed("stop") {
			c.Grid.Stop = gridStop
		}
		if flags.Changed("points") {
			c.Grid.Points = gridPoints
		}
	case "cox":
		if flags.Changed("time") {
			c.Cox.Time = coxTime
		}
		if flags.Changed("xmax") {
			c.Cox.XMax = coxXMax
		}
		if flags.Changed("points") {
			c.Cox.Points = coxPoints
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func runCurve(cmd *cobra.Command, args []string) error {
	params := cfg.PhysicalParameters()
	log.Debug().
		Int("n", params.N).Float64("s", params.S).Float64("c", params.C).Float64("d", params.D).
		Msg("building theoretical curve")

	curve, err := experiment.BuildTheoreticalCurve(params, cfg.Grid.Start, cfg.Grid.Stop, cfg.Grid.Points)
	if err != nil {
		return fmt.Errorf("theoretical curve: %w", err)
	}
	log.Info().Int("points", curve.Len()).Msg("theoretical curve ready")

	return writeSeries(cmd.OutOrStdout(), curve, "time", "current", "Cottrell current (A)")
}

func runCox(cmd *cobra.Command, args []string) error {
	positions, err := physics.Positions(cfg.Cox.XMax, cfg.Cox.Points)
	if err != nil {
		return fmt.Errorf("positions: %w", err)
	}
	profile, err := experiment.BuildConcentrationProfile(cfg.Params.D, cfg.Cox.Time, positions)
	if err != nil {
		return fmt.Errorf("concentration profile: %w", err)
	}
	layer, err := physics.DiffusionLayerThickness(cfg.Params.D, cfg.Cox.Time)
	if err != nil {
		return fmt.Errorf("diffusion layer: %w", err)
	}
	log.Info().Float64("t", cfg.Cox.Time).Float64("layer_cm", layer).Msg("concentration profile ready")

	return writeProfile(cmd.OutOrStdout(), positions, profile, layer)
}

func runLoad(cmd *cobra.Command, args []string) error {
	session, err := openSession(cmd, args[0])
	if err != nil {
		return err
	}
	return writeSummary(cmd.OutOrStdout(), args[0], session)
}

func runRegress(cmd *cobra.Command, args []string) error {
	session, err := openSession(cmd, args[0])
	if err != nil {
		return err
	}

	params := cfg.PhysicalParameters()
	res, err := session.Regress(params)
	if err != nil {
		return fmt.Errorf("regress %s on %s: %w", args[0], session.Interval(), err)
	}
	log.Info().
		Float64("slope", res.Slope).
		Float64("derived_d", res.DerivedD).
		Float64("r2", res.RSquared).
		Msg("regression done")

	return writeRegression(cmd.OutOrStdout(), session, params, res)
}

// openSession loads path and applies --tmin/--tmax, each defaulting to the
// corresponding end of the recorded range.
func openSession(cmd *cobra.Command, path string) (experiment.Session, error) {
	raw, err := experiment.LoadExperimentalData(path)
	if err != nil {
		return experiment.Session{}, err
	}
	log.Debug().Str("path", path).Int("points", raw.Len()).Msg("loaded recording")

	session, err := experiment.NewSession(raw, cfg.Analysis.MinIntervalWidth)
	if err != nil {
		return experiment.Session{}, fmt.Errorf("%s: %w", path, err)
	}

	flags := cmd.Flags()
	if !flags.Changed("tmin") && !flags.Changed("tmax") {
		return session, nil
	}

	iv := session.Interval()
	if flags.Changed("tmin") {
		iv.Min = tmin
	}
	if flags.Changed("tmax") {
		iv.Max = tmax
	}
	session, err = session.WithInterval(iv)
	if err != nil {
		return experiment.Session{}, fmt.Errorf("interval %s: %w", iv, err)
	}
	log.Debug().Stringer("interval", iv).Int("points", session.Working().Len()).Msg("applied interval")
	return session, nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tN\tS (cm²)\tC (mol/cm³)\tD (cm²/s)")
	for _, name := range config.ListPresets() {
		p := config.Presets[name]
		fmt.Fprintf(w, "%s\t%d\t%g\t%g\t%g\n", name, p.N, p.S, p.C, p.D)
	}
	return w.Flush()
}

func showConfig(cmd *cobra.Command, args []string) error {
	if savePath != "" {
		if err := config.Save(savePath, cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		log.Info().Str("path", savePath).Msg("config saved")
		return nil
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
