/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mihai-snyk/paretorank/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/paretorank/pkg/multiobjective/benchmarks"
	"github.com/mihai-snyk/paretorank/pkg/multiobjective/metrics"
)

type benchmarkOptions struct {
	configFile string
	outputDir  string
	output     string

	observability observabilityOptions
}

func (o *benchmarkOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.configFile, "config", o.configFile, "Path to an NSGA2Args file. Defaults are used when empty.")
	fs.StringVar(&o.outputDir, "output-dir", o.outputDir, "Directory for the HTML plots of two-objective problems.")
	fs.StringVarP(&o.output, "output", "o", o.output, "Output format: json or yaml.")
	o.observability.AddFlags(fs)
}

func newBenchmarkCommand() *cobra.Command {
	o := &benchmarkOptions{output: "json"}
	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Run NSGA-II over the binary benchmark problems",
		Long: `benchmark runs NSGA-II over ZDT5 and LOTZ, whose true fronts are known,
and prints the size of every obtained front with its IGD and hypervolume.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutputFormat(o.output); err != nil {
				return err
			}
			return o.Run(cmd)
		},
	}
	o.AddFlags(cmd.Flags())
	return cmd
}

func (o *benchmarkOptions) Run(cmd *cobra.Command) error {
	args, err := loadArgs(o.configFile)
	if err != nil {
		return err
	}
	config, err := nsga2Config(args, nil)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	shutdown, err := o.observability.setupTracing(ctx)
	if err != nil {
		return err
	}
	defer shutdownTracing(ctx, shutdown)

	reg := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}

	suite := benchmarks.NewTestSuite(config, algorithms.WithMetrics(recorder))
	suite.AddStandardProblems()
	results, err := suite.Run(ctx, o.outputDir)
	if err != nil {
		return err
	}
	if err := o.observability.writeMetrics(cmd.ErrOrStderr(), reg); err != nil {
		return err
	}
	return printObject(cmd.OutOrStdout(), o.output, results)
}
