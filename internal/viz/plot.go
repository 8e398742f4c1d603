package viz

import (
	"fmt"
	"sort"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/redoxlab/internal/chrono"
)

type PlotOptions struct {
	Width   int
	Height  int
	Caption string
}

var DefaultPlotOptions = PlotOptions{Width: 80, Height: 15}

func (o PlotOptions) graphOptions() []asciigraph.Option {
	opts := []asciigraph.Option{
		asciigraph.Height(o.Height),
		asciigraph.Width(o.Width),
	}
	if o.Caption != "" {
		opts = append(opts, asciigraph.Caption(o.Caption))
	}
	return opts
}

// Plot draws values in sample order. Empty input renders nothing.
func Plot(values []float64, opts PlotOptions) string {
	if len(values) == 0 {
		return ""
	}
	return asciigraph.Plot(values, opts.graphOptions()...)
}

// PlotSeries draws the current of s and notes its time span in the caption.
func PlotSeries(s chrono.TimeSeries, opts PlotOptions) string {
	if s.Len() == 0 {
		return ""
	}
	lo, hi := s.TimeRange()
	span := fmt.Sprintf("t = %g .. %g s", lo, hi)
	if opts.Caption == "" {
		opts.Caption = span
	} else {
		opts.Caption += " (" + span + ")"
	}
	return Plot(s.Values, opts)
}

// PlotFit overlays the fitted line on the log-log data of a regression.
func PlotFit(res chrono.RegressionResult, opts PlotOptions) string {
	if len(res.LogValues) == 0 || len(res.Fitted) != len(res.LogValues) {
		return ""
	}
	if opts.Caption == "" {
		opts.Caption = fmt.Sprintf("ln I vs ln t, slope %.4f", res.Slope)
	}
	graphOpts := append(opts.graphOptions(),
		asciigraph.SeriesColors(asciigraph.Default, asciigraph.Red),
	)
	return asciigraph.PlotMany([][]float64{res.LogValues, res.Fitted}, graphOpts...)
}

// PlotOverlay draws measured and model current on a shared time axis over
// the measured range. Both series are linearly resampled to opts.Width
// columns; model values outside its own range are held at the nearest end.
func PlotOverlay(measured, model chrono.TimeSeries, opts PlotOptions) string {
	if measured.Len() == 0 || model.Len() == 0 {
		return ""
	}
	lo, hi := measured.TimeRange()
	if !(hi > lo) {
		return PlotSeries(measured, opts)
	}

	span := fmt.Sprintf("t = %g .. %g s", lo, hi)
	if opts.Caption == "" {
		opts.Caption = span
	} else {
		opts.Caption += " (" + span + ")"
	}

	n := max(opts.Width, 2)
	graphOpts := append(opts.graphOptions(),
		asciigraph.SeriesColors(asciigraph.Default, asciigraph.Red),
	)
	return asciigraph.PlotMany([][]float64{
		resample(measured, lo, hi, n),
		resample(model, lo, hi, n),
	}, graphOpts...)
}

// resample interpolates s at n evenly spaced times from lo to hi.
func resample(s chrono.TimeSeries, lo, hi float64, n int) []float64 {
	idx := make([]int, s.Len())
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return s.Times[idx[a]] < s.Times[idx[b]] })

	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	j := 0
	for k := range out {
		t := lo + float64(k)*step
		for j < len(idx)-1 && s.Times[idx[j+1]] <= t {
			j++
		}
		t0, v0 := s.Times[idx[j]], s.Values[idx[j]]
		if j == len(idx)-1 || t <= t0 {
			out[k] = v0
			continue
		}
		t1, v1 := s.Times[idx[j+1]], s.Values[idx[j+1]]
		out[k] = v0 + (v1-v0)*(t-t0)/(t1-t0)
	}
	return out
}
