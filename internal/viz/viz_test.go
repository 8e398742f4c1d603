package viz

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/redoxlab/internal/chrono"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"missing file", fmt.Errorf("%w: data.csv", chrono.ErrFileNotFound), "check the path"},
		{"parse error", &chrono.ParseError{Line: 3, Field: "abc", Wrapped: chrono.ErrMalformedData}, "two comma-separated numbers"},
		{"negative current", &chrono.ValueError{Series: "current", Index: 0, Value: -1, Wrapped: chrono.ErrNonPositiveValue}, "move tmin past the potential step"},
		{"interval", chrono.ErrInvalidInterval, "tmin < tmax"},
		{"fit", chrono.ErrDegenerateFit, "two distinct times"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ErrorMessage(tt.err)
			if !strings.Contains(msg, tt.want) {
				t.Errorf("message %q missing hint %q", msg, tt.want)
			}
			if !strings.Contains(msg, tt.err.Error()) {
				t.Errorf("message %q drops detail %q", msg, tt.err)
			}
		})
	}
}

func TestErrorMessage_Passthrough(t *testing.T) {
	if ErrorMessage(nil) != "" {
		t.Error("nil error should render empty")
	}
	err := errors.New("unrelated")
	if got := ErrorMessage(err); got != "unrelated" {
		t.Errorf("got %q, want plain error text", got)
	}
}

func TestPlot(t *testing.T) {
	if Plot(nil, DefaultPlotOptions) != "" {
		t.Error("empty plot should render nothing")
	}

	opts := DefaultPlotOptions
	opts.Caption = "current"
	out := Plot([]float64{3, 2, 1.5, 1.2, 1}, opts)
	if !strings.Contains(out, "current") {
		t.Errorf("caption missing from plot:\n%s", out)
	}
	if lines := strings.Count(out, "\n"); lines < opts.Height {
		t.Errorf("expected at least %d lines, got %d", opts.Height, lines)
	}
}

func TestPlotSeries_Caption(t *testing.T) {
	s := chrono.TimeSeries{Times: []float64{0.1, 0.2, 0.3}, Values: []float64{1, 0.5, 0.33}}
	out := PlotSeries(s, PlotOptions{Width: 30, Height: 5, Caption: "I(t)"})
	if !strings.Contains(out, "I(t) (t = 0.1 .. 0.3 s)") {
		t.Errorf("unexpected caption:\n%s", out)
	}
	if PlotSeries(chrono.TimeSeries{}, DefaultPlotOptions) != "" {
		t.Error("empty series should render nothing")
	}
}

func TestPlotFit(t *testing.T) {
	res := chrono.RegressionResult{
		Slope:     -0.5,
		LogValues: []float64{0, -0.5, -1, -1.5},
		Fitted:    []float64{0, -0.5, -1, -1.5},
	}
	out := PlotFit(res, PlotOptions{Width: 40, Height: 8})
	if !strings.Contains(out, "slope -0.5000") {
		t.Errorf("default caption missing:\n%s", out)
	}

	res.Fitted = res.Fitted[:2]
	if PlotFit(res, DefaultPlotOptions) != "" {
		t.Error("mismatched fit should render nothing")
	}
}

func TestPanel(t *testing.T) {
	st := NewStyles(ThemeMinimal)
	out := st.Panel("Regression", []Row{
		{Label: "slope", Value: "-0.5"},
		{Label: "D (cm²/s)", Value: "1e-05"},
	})
	for _, want := range []string{"Regression", "slope", "-0.5", "D (cm²/s)", "1e-05"} {
		if !strings.Contains(out, want) {
			t.Errorf("panel missing %q:\n%s", want, out)
		}
	}
}

func TestGetTheme(t *testing.T) {
	if GetTheme("retro").Name != "retro" {
		t.Error("expected retro theme")
	}
	if GetTheme("nonexistent").Name != ThemeLab.Name {
		t.Error("unknown theme should fall back to lab")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names incomplete")
	}
}

func TestSeparator(t *testing.T) {
	st := NewStyles(ThemeMinimal)
	if !strings.Contains(Separator(st, 20), "◆") {
		t.Error("separator missing marker")
	}
	if strings.Contains(Separator(st, 3), "◆") {
		t.Error("narrow separator should be a plain rule")
	}
}

func TestResample(t *testing.T) {
	tests := []struct {
		name   string
		series chrono.TimeSeries
		lo, hi float64
		n      int
		want   []float64
	}{
		{
			name:   "linear",
			series: chrono.TimeSeries{Times: []float64{0, 1, 2}, Values: []float64{0, 10, 20}},
			lo:     0, hi: 2, n: 5,
			want: []float64{0, 5, 10, 15, 20},
		},
		{
			name:   "unsorted times",
			series: chrono.TimeSeries{Times: []float64{2, 0, 1}, Values: []float64{20, 0, 10}},
			lo:     0, hi: 2, n: 5,
			want: []float64{0, 5, 10, 15, 20},
		},
		{
			name:   "held outside range",
			series: chrono.TimeSeries{Times: []float64{1, 2}, Values: []float64{1, 2}},
			lo:     0, hi: 3, n: 4,
			want: []float64{1, 1, 2, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resample(tt.series, tt.lo, tt.hi, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d values, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("value[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPlotOverlay(t *testing.T) {
	measured := chrono.TimeSeries{Times: []float64{1, 2, 3, 4}, Values: []float64{1, 0.7, 0.58, 0.5}}
	model := chrono.TimeSeries{Times: []float64{0.5, 1, 2, 3, 4}, Values: []float64{1.4, 1, 0.71, 0.58, 0.5}}

	out := PlotOverlay(measured, model, PlotOptions{Width: 40, Height: 8, Caption: "current"})
	if !strings.Contains(out, "current (t = 1 .. 4 s)") {
		t.Errorf("caption missing:\n%s", out)
	}
	if PlotOverlay(chrono.TimeSeries{}, model, DefaultPlotOptions) != "" {
		t.Error("empty measured series should render nothing")
	}
}

func TestLegend(t *testing.T) {
	out := NewStyles(ThemeMinimal).Legend("measured", "Cottrell")
	if !strings.Contains(out, "measured (default)") || !strings.Contains(out, "Cottrell (red)") {
		t.Errorf("unexpected legend %q", out)
	}
}
