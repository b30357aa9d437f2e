// Command analysis samples a discrete Gaussian CDT and renders the
// empirical displacement distribution against the table's own
// probabilities as an HTML report, plus a JSON stats file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"lattice-commit/field"
	"lattice-commit/probability"
)

type summaryStats struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Std      float64 `json:"std"`
	ChiSq    float64 `json:"chi_squared"`
	ChiSq95  float64 `json:"chi_squared_95"`
	Buckets  int     `json:"buckets"`
	Theta    float64 `json:"theta"`
	TailDist int     `json:"tail_dist"`
}

func computeStats(counts map[int32]int, n int) (mean, std float64) {
	var sum, sumSq float64
	for d, c := range counts {
		sum += float64(d) * float64(c)
		sumSq += float64(d) * float64(d) * float64(c)
	}
	mean = sum / float64(n)
	std = math.Sqrt(sumSq/float64(n) - mean*mean)
	return mean, std
}

func toBarItems(vals []float64) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func newDistributionChart(title, subtitle string, labels []string, empirical, expected []float64) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("empirical", toBarItems(empirical)).
		AddSeries("expected", toBarItems(expected)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func main() {
	theta := flag.Float64("theta", 2.0, "Gaussian width of the sampled distribution")
	samples := flag.Int("samples", 200000, "number of displacements to draw")
	seed := flag.Int64("seed", 0, "PRNG seed; 0 means time-based")
	outDir := flag.String("out", "Measure_Reports", "output directory for reports")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := field.NewRNG(s)

	cdt := probability.NewGaussianCDT[field.Goldilocks](*theta)
	tail := cdt.TailDist()

	counts := make(map[int32]int)
	for i := 0; i < *samples; i++ {
		counts[cdt.SampleDisp(rng)]++
	}

	// One bucket per reachable displacement, -tail..+tail.
	labels := make([]string, 0, 2*tail+1)
	empirical := make([]float64, 0, 2*tail+1)
	expected := make([]float64, 0, 2*tail+1)
	chiSq := 0.0
	for d := -tail; d <= tail; d++ {
		exp := cdt.Prob(d) * float64(*samples)
		got := float64(counts[d])
		labels = append(labels, fmt.Sprintf("%d", d))
		empirical = append(empirical, got)
		expected = append(expected, exp)
		if exp > 0 {
			chiSq += (got - exp) * (got - exp) / exp
		}
	}

	mean, std := computeStats(counts, *samples)
	stats := summaryStats{
		Count:    *samples,
		Mean:     mean,
		Std:      std,
		ChiSq:    chiSq,
		ChiSq95:  probability.ChiSquared95(len(labels) - 1),
		Buckets:  len(labels),
		Theta:    *theta,
		TailDist: int(tail),
	}

	ts := time.Now().Format("20060102_150405")
	jsonPath := filepath.Join(*outDir, fmt.Sprintf("gaussian_stats_%s.json", ts))
	if err := saveJSON(jsonPath, stats); err != nil {
		log.Printf("warn: save stats: %v", err)
	}

	subtitle := fmt.Sprintf("n=%d, theta=%.3f, mean=%.4f, std=%.4f, chi2=%.1f (95%% crit %.1f)",
		stats.Count, stats.Theta, stats.Mean, stats.Std, stats.ChiSq, stats.ChiSq95)
	page := components.NewPage()
	page.AddCharts(newDistributionChart("discrete Gaussian displacements", subtitle, labels, empirical, expected))

	htmlPath := filepath.Join(*outDir, fmt.Sprintf("gaussian_histogram_%s.html", ts))
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Println("Histogram page:", htmlPath)
	fmt.Println("Stats JSON:", jsonPath)
}
