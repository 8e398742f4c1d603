package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/san-kum/redoxlab/internal/chrono"
	"github.com/san-kum/redoxlab/internal/dataio"
	"github.com/san-kum/redoxlab/internal/experiment"
	"github.com/san-kum/redoxlab/internal/physics"
	"github.com/san-kum/redoxlab/internal/viz"
)

func styles() viz.Styles {
	return viz.NewStyles(viz.GetTheme(theme))
}

func g(v float64) string {
	return fmt.Sprintf("%.6g", v)
}

func writeSeries(w io.Writer, s chrono.TimeSeries, xName, yName, caption string) error {
	switch format {
	case "csv":
		return dataio.WriteCSV(w, []string{xName, yName}, s.Times, s.Values)
	case "json":
		return dataio.WriteJSON(w, map[string][]float64{xName: s.Times, yName: s.Values})
	case "plot":
		opts := viz.DefaultPlotOptions
		opts.Caption = caption
		_, err := fmt.Fprintln(w, viz.PlotSeries(s, opts))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", xName, yName)
	for i := range s.Times {
		fmt.Fprintf(tw, "%g\t%g\n", s.Times[i], s.Values[i])
	}
	return tw.Flush()
}

type profileReport struct {
	Time           float64   `json:"time"`
	D              float64   `json:"d"`
	LayerThickness float64   `json:"layer_thickness"`
	Positions      []float64 `json:"positions"`
	Concentration  []float64 `json:"concentration"`
}

func writeProfile(w io.Writer, positions, profile []float64, layer float64) error {
	switch format {
	case "csv":
		return dataio.WriteCSV(w, []string{"x", "c_ratio"}, positions, profile)
	case "json":
		return dataio.WriteJSON(w, profileReport{
			Time:           cfg.Cox.Time,
			D:              cfg.Params.D,
			LayerThickness: layer,
			Positions:      positions,
			Concentration:  profile,
		})
	}

	st := styles()
	fmt.Fprintln(w, st.Panel("Concentration profile", []viz.Row{
		{Label: "t (s)", Value: g(cfg.Cox.Time)},
		{Label: "D (cm²/s)", Value: g(cfg.Params.D)},
		{Label: "layer sqrt(πDt) (cm)", Value: g(layer)},
	}))

	if format == "plot" {
		opts := viz.DefaultPlotOptions
		opts.Caption = fmt.Sprintf("C/C* vs x, x = 0 .. %g cm", cfg.Cox.XMax)
		_, err := fmt.Fprintln(w, viz.Plot(profile, opts))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "x\tc_ratio")
	for i := range positions {
		fmt.Fprintf(tw, "%g\t%g\n", positions[i], profile[i])
	}
	return tw.Flush()
}

type summaryReport struct {
	File          string     `json:"file"`
	RawPoints     int        `json:"raw_points"`
	WorkingPoints int        `json:"working_points"`
	Interval      [2]float64 `json:"interval"`
	CurrentRange  [2]float64 `json:"current_range"`
	NonPositive   int        `json:"non_positive"`
}

func summarize(path string, session experiment.Session) summaryReport {
	working := session.Working()
	lo, hi := working.ValueRange()
	nonPositive := 0
	for i := range working.Values {
		if working.Times[i] <= 0 || working.Values[i] <= 0 {
			nonPositive++
		}
	}
	iv := session.Interval()
	return summaryReport{
		File:          path,
		RawPoints:     session.Raw().Len(),
		WorkingPoints: working.Len(),
		Interval:      [2]float64{iv.Min, iv.Max},
		CurrentRange:  [2]float64{lo, hi},
		NonPositive:   nonPositive,
	}
}

func writeSummary(w io.Writer, path string, session experiment.Session) error {
	switch format {
	case "csv":
		working := session.Working()
		return dataio.WriteCSV(w, []string{"time", "current"}, working.Times, working.Values)
	case "json":
		return dataio.WriteJSON(w, summarize(path, session))
	}

	rep := summarize(path, session)
	st := styles()
	rows := []viz.Row{
		{Label: "file", Value: rep.File},
		{Label: "points", Value: fmt.Sprintf("%d of %d", rep.WorkingPoints, rep.RawPoints)},
		{Label: "interval (s)", Value: session.Interval().String()},
		{Label: "current (A)", Value: fmt.Sprintf("%s .. %s", g(rep.CurrentRange[0]), g(rep.CurrentRange[1]))},
	}
	fmt.Fprintln(w, st.Panel("Recording", rows))
	if rep.NonPositive > 0 {
		fmt.Fprintln(w, st.Warn.Render(fmt.Sprintf("%d samples with t <= 0 or I <= 0; set --tmin past the step before regressing", rep.NonPositive)))
	}

	if format == "plot" {
		return writeOverlay(w, st, session)
	}
	return nil
}

// writeOverlay draws the working data against the Cottrell curve for the
// current parameters, falling back to the data alone when no curve exists.
func writeOverlay(w io.Writer, st viz.Styles, session experiment.Session) error {
	opts := viz.DefaultPlotOptions
	opts.Caption = "current (A)"

	model, err := session.TheoreticalGrid(cfg.PhysicalParameters(), cfg.Grid.Points)
	if err != nil {
		log.Warn().Err(err).Msg("no theoretical curve for this interval")
		_, err := fmt.Fprintln(w, viz.PlotSeries(session.Working(), opts))
		return err
	}

	fmt.Fprintln(w, viz.Separator(st, opts.Width))
	fmt.Fprintln(w, viz.PlotOverlay(session.Working(), model, opts))
	_, err = fmt.Fprintln(w, st.Legend("measured", "Cottrell"))
	return err
}

type regressionReport struct {
	Interval             [2]float64 `json:"interval"`
	Points               int        `json:"points"`
	Slope                float64    `json:"slope"`
	Intercept            float64    `json:"intercept"`
	TheoreticalIntercept *float64   `json:"theoretical_intercept,omitempty"`
	DerivedD             float64    `json:"derived_d"`
	InputD               float64    `json:"input_d"`
	RelativeError        float64    `json:"relative_error"`
	RSquared             float64    `json:"r_squared"`
}

func report(session experiment.Session, params chrono.PhysicalParameters, res chrono.RegressionResult) regressionReport {
	iv := session.Interval()
	rep := regressionReport{
		Interval:      [2]float64{iv.Min, iv.Max},
		Points:        res.Points,
		Slope:         res.Slope,
		Intercept:     res.Intercept,
		DerivedD:      res.DerivedD,
		InputD:        params.D,
		RelativeError: math.Abs(res.DerivedD-params.D) / params.D,
		RSquared:      res.RSquared,
	}
	if b, err := physics.CottrellIntercept(params); err == nil {
		rep.TheoreticalIntercept = &b
	}
	return rep
}

func writeRegression(w io.Writer, session experiment.Session, params chrono.PhysicalParameters, res chrono.RegressionResult) error {
	switch format {
	case "csv":
		return dataio.WriteCSV(w, []string{"ln_t", "ln_i", "fitted"}, res.LogTimes, res.LogValues, res.Fitted)
	case "json":
		return dataio.WriteJSON(w, report(session, params, res))
	}

	rep := report(session, params, res)
	st := styles()
	rows := []viz.Row{
		{Label: "interval (s)", Value: session.Interval().String()},
		{Label: "points", Value: fmt.Sprintf("%d", rep.Points)},
		{Label: "slope", Value: g(rep.Slope)},
		{Label: "intercept", Value: g(rep.Intercept)},
	}
	if rep.TheoreticalIntercept != nil {
		rows = append(rows, viz.Row{Label: "Cottrell intercept", Value: g(*rep.TheoreticalIntercept)})
	}
	rows = append(rows,
		viz.Row{Label: "R²", Value: fmt.Sprintf("%.6f", rep.RSquared)},
		viz.Row{Label: "D derived (cm²/s)", Value: g(rep.DerivedD)},
		viz.Row{Label: "D input (cm²/s)", Value: g(rep.InputD)},
		viz.Row{Label: "relative error", Value: fmt.Sprintf("%.3g%%", 100*rep.RelativeError)},
	)

	if format == "plot" {
		fmt.Fprintln(w, viz.PlotFit(res, viz.DefaultPlotOptions))
		fmt.Fprintln(w, st.Legend("ln I", "fit"))
		fmt.Fprintln(w, viz.Separator(st, viz.DefaultPlotOptions.Width))
	}
	fmt.Fprintln(w, st.Panel("Diffusion regression", rows))
	if math.Abs(rep.Slope+0.5) > 0.05 {
		fmt.Fprintln(w, st.Warn.Render(fmt.Sprintf("slope %.3f is far from -0.5; the transient may not be diffusion limited", rep.Slope)))
	} else {
		fmt.Fprintln(w, st.Ok.Render(fmt.Sprintf("slope %.3f is within 0.05 of -0.5; diffusion limited", rep.Slope)))
	}
	return nil
}
