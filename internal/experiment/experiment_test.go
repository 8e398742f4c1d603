package experiment_test

import (
	"math"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/redoxlab/internal/chrono"
	"github.com/san-kum/redoxlab/internal/dataio"
	"github.com/san-kum/redoxlab/internal/experiment"
	"github.com/san-kum/redoxlab/internal/physics"
)

var params = chrono.PhysicalParameters{N: 1, S: 0.25, C: 1e-5, D: 1e-5}

// writeRecording stores a Cottrell transient preceded by the non-positive
// samples a potentiostat records before and at the step.
func writeRecording(dir string) string {
	curve, err := physics.TheoreticalCurve(params, 0, 10, 201)
	Expect(err).NotTo(HaveOccurred())

	times := append([]float64{0, 0.01}, curve.Times...)
	values := append([]float64{-2e-6, 0}, curve.Values...)
	times[1] = curve.Times[0] / 2

	path := filepath.Join(dir, "recording.csv")
	f, err := os.Create(path)
	Expect(err).NotTo(HaveOccurred())
	defer f.Close()
	Expect(dataio.WriteCSV(f, []string{"time", "current"}, times, values)).To(Succeed())
	return path
}

var _ = Describe("collaborator calls", func() {
	var path string

	BeforeEach(func() {
		path = writeRecording(GinkgoT().TempDir())
	})

	It("loads a recording with its header", func() {
		raw, err := experiment.LoadExperimentalData(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(raw.Len()).To(Equal(202))
		Expect(raw.Values[0]).To(BeNumerically("<", 0))
	})

	It("reports missing files", func() {
		_, err := experiment.LoadExperimentalData(filepath.Join(filepath.Dir(path), "nope.csv"))
		Expect(err).To(MatchError(chrono.ErrFileNotFound))
		Expect(chrono.Kind(err)).To(Equal("FileNotFound"))
	})

	It("refuses to regress through non-positive currents", func() {
		raw, err := experiment.LoadExperimentalData(path)
		Expect(err).NotTo(HaveOccurred())

		_, err = experiment.Regress(raw, params.N, params.S, params.C)
		Expect(err).To(MatchError(chrono.ErrNonPositiveValue))
	})

	It("recovers D once the interval excludes the step", func() {
		raw, err := experiment.LoadExperimentalData(path)
		Expect(err).NotTo(HaveOccurred())

		working, err := experiment.ApplyInterval(raw, 0.5, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(working.Len()).To(BeNumerically("<", raw.Len()))

		res, err := experiment.Regress(working, params.N, params.S, params.C)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Slope).To(BeNumerically("~", -0.5, 1e-6))
		Expect(math.Abs(res.DerivedD-params.D) / params.D).To(BeNumerically("<", 1e-3))
	})

	It("rejects reversed intervals", func() {
		raw, _ := experiment.LoadExperimentalData(path)
		_, err := experiment.ApplyInterval(raw, 5, 1)
		Expect(err).To(MatchError(chrono.ErrInvalidInterval))
	})

	It("builds curves from parameters alone", func() {
		curve, err := experiment.BuildTheoreticalCurve(params, 0, 20, 1000)
		Expect(err).NotTo(HaveOccurred())
		Expect(curve.Len()).To(Equal(999))
		Expect(curve.Times[0]).To(BeNumerically(">", 0))

		profile, err := experiment.BuildConcentrationProfile(params.D, 1, []float64{0, 0.001, 0.01})
		Expect(err).NotTo(HaveOccurred())
		Expect(profile[0]).To(BeZero())
		Expect(profile[2]).To(BeNumerically("<", 1))

		_, err = experiment.BuildConcentrationProfile(0, 1, []float64{0})
		Expect(err).To(MatchError(chrono.ErrDegenerateParameters))
	})
})

var _ = Describe("Session", func() {
	var raw chrono.TimeSeries

	BeforeEach(func() {
		var err error
		raw, err = experiment.LoadExperimentalData(writeRecording(GinkgoT().TempDir()))
		Expect(err).NotTo(HaveOccurred())
	})

	It("starts on the full data range", func() {
		s, err := experiment.NewSession(raw, 0.2)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Interval()).To(Equal(chrono.Interval{Min: 0, Max: 10}))
		Expect(s.Working().Len()).To(Equal(raw.Len()))
	})

	It("keeps the raw data when intervals change", func() {
		s, err := experiment.NewSession(raw, 0.2)
		Expect(err).NotTo(HaveOccurred())

		narrow, err := s.WithInterval(chrono.Interval{Min: 2, Max: 4})
		Expect(err).NotTo(HaveOccurred())
		Expect(narrow.Working().Len()).To(BeNumerically("<", raw.Len()))

		wide, err := narrow.WithInterval(chrono.Interval{Min: 1, Max: 9})
		Expect(err).NotTo(HaveOccurred())
		Expect(wide.Working().Len()).To(BeNumerically(">", narrow.Working().Len()))

		Expect(s.Working().Len()).To(Equal(raw.Len()))
		Expect(wide.Raw().Len()).To(Equal(raw.Len()))
	})

	It("validates intervals against the raw range and minimum width", func() {
		s, err := experiment.NewSession(raw, 0.2)
		Expect(err).NotTo(HaveOccurred())

		_, err = s.WithInterval(chrono.Interval{Min: 2, Max: 2.1})
		Expect(err).To(MatchError(chrono.ErrInvalidInterval))

		_, err = s.WithInterval(chrono.Interval{Min: -1, Max: 5})
		Expect(err).To(MatchError(chrono.ErrInvalidInterval))

		narrow, err := s.WithInterval(chrono.Interval{Min: 2, Max: 4})
		Expect(err).NotTo(HaveOccurred())

		// bounds are checked against the raw data, not the current window
		_, err = narrow.WithInterval(chrono.Interval{Min: 1, Max: 8})
		Expect(err).NotTo(HaveOccurred())
	})

	It("spans the theoretical grid over the working data", func() {
		s, _ := experiment.NewSession(raw, 0.2)
		s, err := s.WithInterval(chrono.Interval{Min: 1, Max: 6})
		Expect(err).NotTo(HaveOccurred())

		curve, err := s.TheoreticalGrid(params, 1000)
		Expect(err).NotTo(HaveOccurred())
		Expect(curve.Times[curve.Len()-1]).To(BeNumerically("<=", 6))
		Expect(curve.Times[0]).To(BeNumerically(">", 0))
	})

	It("regresses the working series", func() {
		s, _ := experiment.NewSession(raw, 0.2)
		_, err := s.Regress(params)
		Expect(err).To(MatchError(chrono.ErrNonPositiveValue))

		s, err = s.WithInterval(chrono.Interval{Min: 0.5, Max: 10})
		Expect(err).NotTo(HaveOccurred())
		res, err := s.Regress(params)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.DerivedD).To(BeNumerically("~", params.D, params.D*1e-3))
	})

	It("rejects empty datasets", func() {
		_, err := experiment.NewSession(chrono.TimeSeries{}, 0.2)
		Expect(err).To(MatchError(chrono.ErrEmptyDataset))
	})
})
