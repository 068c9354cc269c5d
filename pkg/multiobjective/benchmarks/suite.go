package benchmarks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"k8s.io/klog/v2"

	"github.com/mihai-snyk/paretorank/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/paretorank/pkg/multiobjective/framework"
	"github.com/mihai-snyk/paretorank/pkg/multiobjective/indicators"
	"github.com/mihai-snyk/paretorank/pkg/multiobjective/util"
)

// Result summarizes one benchmark run. The indicators are only set for
// problems with a known true front.
type Result struct {
	Problem     string  `json:"problem"`
	FrontSize   int     `json:"frontSize"`
	IGD         float64 `json:"igd,omitempty"`
	Hypervolume float64 `json:"hypervolume,omitempty"`
}

// TestSuite runs a set of benchmark problems
type TestSuite struct {
	problems []framework.Problem
	config   algorithms.NSGA2Config
	opts     []algorithms.Option
}

// NewTestSuite creates a new benchmark test suite
func NewTestSuite(config algorithms.NSGA2Config, opts ...algorithms.Option) *TestSuite {
	return &TestSuite{
		config: config,
		opts:   opts,
	}
}

// AddProblem adds a problem to the test suite
func (ts *TestSuite) AddProblem(p framework.Problem) {
	ts.problems = append(ts.problems, p)
}

// AddStandardProblems adds the binary benchmark problems in their usual sizes.
func (ts *TestSuite) AddStandardProblems() {
	ts.AddProblem(NewZDT5(10))
	ts.AddProblem(NewLOTZ(30))
}

// Run executes every problem in order. When outputDir is set, 2-objective
// results are plotted there.
func (ts *TestSuite) Run(ctx context.Context, outputDir string) ([]Result, error) {
	logger := klog.FromContext(ctx)
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	results := make([]Result, 0, len(ts.problems))
	for _, problem := range ts.problems {
		logger.Info("Running benchmark", "algorithm", algorithms.Name, "problem", problem.Name())

		nsga2 := algorithms.NewNSGAII(ts.config, problem, ts.opts...)
		finalPop, err := nsga2.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("running %s: %w", problem.Name(), err)
		}

		paretoFront, err := algorithms.GetParetoFront(finalPop)
		if err != nil {
			return results, fmt.Errorf("extracting front of %s: %w", problem.Name(), err)
		}
		result := Result{Problem: problem.Name(), FrontSize: len(paretoFront)}

		if outputDir != "" && problem.NumObjectives() == 2 {
			plotFile := filepath.Join(outputDir, fmt.Sprintf("%s_%s_results.html", problem.Name(), algorithms.Name))
			if err := util.PlotResults(paretoFront, problem, algorithms.Name, plotFile); err != nil {
				logger.Error(err, "Failed to plot results", "problem", problem.Name())
			}
		}

		if trueFront := problem.TrueParetoFront(500); trueFront != nil {
			if result.IGD, err = indicators.IGD(paretoFront, trueFront); err != nil {
				return results, err
			}
			if problem.NumObjectives() == 2 {
				ref := indicators.ReferencePoint(trueFront, 1)
				if result.Hypervolume, err = indicators.Hypervolume2D(paretoFront, ref); err != nil {
					return results, err
				}
			}
			logger.Info("Benchmark indicators", "problem", problem.Name(),
				"frontSize", result.FrontSize, "igd", result.IGD, "hypervolume", result.Hypervolume)
		}
		results = append(results, result)
	}

	return results, nil
}
