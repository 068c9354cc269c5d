package util

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/mihai-snyk/paretorank/pkg/multiobjective/framework"
)

// maxPlottedFronts caps the number of series in a front plot; deeper
// fronts are merged into the last series.
const maxPlottedFronts = 8

func newScatter(title string) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "f1(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "f2(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))
	return scatter
}

func scatterData(points []framework.ObjectiveSpacePoint, symbol string, size int) []opts.ScatterData {
	data := make([]opts.ScatterData, len(points))
	for i, p := range points {
		data[i] = opts.ScatterData{
			Value:      []float64{p[0], p[1]},
			Symbol:     symbol,
			SymbolSize: size,
		}
	}
	return data
}

func check2D(points []framework.ObjectiveSpacePoint) error {
	for _, p := range points {
		if len(p) != 2 {
			return fmt.Errorf("can only plot 2 objectives, got %d", len(p))
		}
	}
	return nil
}

// PlotResults creates a scatter plot comparing the true Pareto front of the given Problem
// with the final front found by the algorithm.
func PlotResults(results []framework.ObjectiveSpacePoint, problem framework.Problem, algorithmName string, outputPath ...string) error {
	if len(results) == 0 {
		return fmt.Errorf("results are empty for %s", problem.Name())
	}
	trueParetoFront := problem.TrueParetoFront(500)
	if err := check2D(results); err != nil {
		return fmt.Errorf("%s: %w", problem.Name(), err)
	}
	if err := check2D(trueParetoFront); err != nil {
		return fmt.Errorf("%s true front: %w", problem.Name(), err)
	}

	scatter := newScatter(fmt.Sprintf("%s Results for %s", algorithmName, problem.Name()))
	if trueParetoFront != nil {
		scatter.AddSeries("True Pareto Front", scatterData(trueParetoFront, "circle", 3))
	}
	scatter.AddSeries(fmt.Sprintf("%s Solutions", algorithmName), scatterData(results, "triangle", 8)).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
			charts.WithEmphasisOpts(opts.Emphasis{}),
		)

	filename := fmt.Sprintf("%s_%s_results.html", problem.Name(), algorithmName)
	if len(outputPath) > 0 && outputPath[0] != "" {
		filename = outputPath[0]
	}
	return renderToFile(scatter, filename)
}

// PlotFronts draws one series per non-dominated front, best first.
func PlotFronts(w io.Writer, title string, fronts [][]framework.ObjectiveSpacePoint) error {
	if len(fronts) == 0 {
		return fmt.Errorf("no fronts to plot")
	}
	for _, front := range fronts {
		if err := check2D(front); err != nil {
			return err
		}
	}

	scatter := newScatter(title)
	for k, front := range fronts {
		if k == maxPlottedFronts-1 && len(fronts) > maxPlottedFronts {
			var rest []framework.ObjectiveSpacePoint
			for _, deeper := range fronts[k:] {
				rest = append(rest, deeper...)
			}
			scatter.AddSeries(fmt.Sprintf("Fronts %d-%d", k+1, len(fronts)), scatterData(rest, "circle", 5))
			break
		}
		symbol, size := "circle", 5
		if k == 0 {
			symbol, size = "triangle", 8
		}
		scatter.AddSeries(fmt.Sprintf("Front %d", k+1), scatterData(front, symbol, size))
	}
	return scatter.Render(w)
}

// PlotFrontsToFile is PlotFronts writing into a new file at path.
func PlotFrontsToFile(path, title string, fronts [][]framework.ObjectiveSpacePoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return PlotFronts(f, title, fronts)
}

func renderToFile(scatter *charts.Scatter, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return scatter.Render(f)
}
