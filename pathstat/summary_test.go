package pathstat_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/stochsim/pathstat"
)

var _ = Describe("Summarize", func() {
	When("given the integers 1 through 100", func() {
		var s pathstat.Summary

		BeforeEach(func() {
			xs := make([]float64, 100)
			for i := range xs {
				xs[i] = float64(i + 1)
			}
			s = pathstat.Summarize(xs)
		})

		It("computes the mean", func() {
			Expect(s.Mean).To(BeNumerically("~", 50.5, 1e-12))
		})

		It("computes the extremes", func() {
			Expect(s.Min).To(Equal(1.0))
			Expect(s.Max).To(Equal(100.0))
		})

		It("computes empirical quantiles", func() {
			Expect(s.Q05).To(Equal(5.0))
			Expect(s.Median).To(Equal(50.0))
			Expect(s.Q95).To(Equal(95.0))
		})

		It("computes the sample standard deviation", func() {
			Expect(s.Std).To(BeNumerically("~", 29.011491975882016, 1e-9))
		})
	})

	When("the sample is empty", func() {
		It("returns a zero summary", func() {
			Expect(pathstat.Summarize(nil)).To(Equal(pathstat.Summary{}))
		})
	})

	When("the sample is unsorted", func() {
		It("orders internally without mutating the input", func() {
			xs := []float64{3, 1, 2}
			s := pathstat.Summarize(xs)
			Expect(s.Min).To(Equal(1.0))
			Expect(s.Max).To(Equal(3.0))
			Expect(xs).To(Equal([]float64{3, 1, 2}))
		})
	})
})
