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
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/paretorank/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/paretorank/pkg/multiobjective/metrics"
	"github.com/mihai-snyk/paretorank/pkg/multiobjective/problems/mkp"
	"github.com/mihai-snyk/paretorank/pkg/multiobjective/util"
)

type runOptions struct {
	configFile   string
	instance     string
	instanceDir  string
	instanceFile string
	seed         uint64
	plotOutput   string
	output       string

	observability observabilityOptions
}

func (o *runOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.configFile, "config", o.configFile, "Path to an NSGA2Args file. Defaults are used when empty.")
	fs.StringVar(&o.instance, "instance", o.instance, fmt.Sprintf("Named knapsack instance, one of %v.", mkp.Instances()))
	fs.StringVar(&o.instanceDir, "instance-dir", o.instanceDir, "Directory holding the named instances.")
	fs.StringVar(&o.instanceFile, "instance-file", o.instanceFile, "Path to a knapsack instance file. Mutually exclusive with --instance.")
	fs.Uint64Var(&o.seed, "seed", o.seed, "Overrides the seed of the configuration.")
	fs.StringVar(&o.plotOutput, "plot-output", o.plotOutput, "Write an HTML scatter plot of the final fronts to this file. Two objectives only.")
	fs.StringVarP(&o.output, "output", "o", o.output, "Output format: json or yaml.")
	o.observability.AddFlags(fs)
}

func (o *runOptions) Validate() error {
	var errs []error
	if (o.instance == "") == (o.instanceFile == "") {
		errs = append(errs, errors.New("exactly one of --instance and --instance-file is required"))
	}
	if err := validateOutputFormat(o.output); err != nil {
		errs = append(errs, err)
	}
	return utilerrors.NewAggregate(errs)
}

func (o *runOptions) loadInstance() (*mkp.MKP, error) {
	if o.instanceFile != "" {
		return mkp.LoadFile(o.instanceFile)
	}
	return mkp.LoadInstance(o.instanceDir, mkp.Instance(o.instance))
}

type selectionReport struct {
	Selection string    `json:"selection"`
	Items     int       `json:"items"`
	Profits   []float64 `json:"profits"`
}

type runReport struct {
	Problem     string            `json:"problem"`
	Generations int               `json:"generations"`
	Population  int               `json:"population"`
	Fronts      int               `json:"fronts"`
	ParetoFront []selectionReport `json:"paretoFront"`
}

func newRunCommand() *cobra.Command {
	o := &runOptions{instanceDir: ".", output: "json"}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evolve selections of a multi-objective knapsack instance",
		Long: `run evolves a population of knapsack selections with NSGA-II and prints the
distinct feasible selections of the final first front with their profits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run(cmd)
		},
	}
	o.AddFlags(cmd.Flags())
	return cmd
}

func (o *runOptions) Run(cmd *cobra.Command) error {
	ctx := cmd.Context()
	logger := klog.FromContext(ctx)

	args, err := loadArgs(o.configFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		args.Seed = &o.seed
	}
	instance, err := o.loadInstance()
	if err != nil {
		return err
	}
	config, err := nsga2Config(args, instance)
	if err != nil {
		return err
	}

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

	logger.Info("Starting run", "problem", instance.Name(), "populationSize", config.PopulationSize,
		"generations", config.MaxGenerations, "seed", config.Seed, "warmStart", len(config.InitialPopulation))
	population, err := algorithms.NewNSGAII(config, instance, algorithms.WithMetrics(recorder)).Run(ctx)
	if err != nil {
		return err
	}

	fronts, err := algorithms.NonDominatedSort(population)
	if err != nil {
		return err
	}
	report := runReport{
		Problem:     instance.Name(),
		Generations: config.MaxGenerations,
		Population:  len(population),
		Fronts:      len(fronts),
		ParetoFront: []selectionReport{},
	}
	seen := sets.New[string]()
	for _, ind := range algorithms.FrontMembers(population, fronts[0]) {
		key := ind.Solution.String()
		if seen.Has(key) || !instance.Feasible(ind.Solution) {
			continue
		}
		seen.Insert(key)
		report.ParetoFront = append(report.ParetoFront, selectionReport{
			Selection: key,
			Items:     ind.Solution.Ones(),
			Profits:   instance.Profits(ind.Solution),
		})
	}

	if o.plotOutput != "" {
		if instance.NumObjectives() != 2 {
			logger.Info("Skipping plot, only two objectives can be drawn", "objectives", instance.NumObjectives())
		} else if err := util.PlotFrontsToFile(o.plotOutput, instance.Name(), algorithms.FrontValues(population, fronts)); err != nil {
			return fmt.Errorf("plotting fronts: %w", err)
		}
	}
	if err := o.observability.writeMetrics(cmd.ErrOrStderr(), reg); err != nil {
		return err
	}

	return printObject(cmd.OutOrStdout(), o.output, report)
}
