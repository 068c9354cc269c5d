package algorithms

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/rand"
	"k8s.io/client-go/util/workqueue"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/paretorank/pkg/multiobjective/framework"
	"github.com/mihai-snyk/paretorank/pkg/multiobjective/metrics"
)

const (
	Name = "NSGA-II"

	tracerName = "github.com/mihai-snyk/paretorank/pkg/multiobjective/algorithms"
)

// NSGA2Config holds configuration parameters for NSGA-II
type NSGA2Config struct {
	PopulationSize       int
	MaxGenerations       int
	CrossoverProbability float64
	// MutationProbability is the per-bit flip probability. Zero means
	// 1/NumVariables of the problem.
	MutationProbability float64
	// Crossover defaults to OnePointCrossover.
	Crossover         CrossoverFunc
	ParallelExecution bool // Evaluate offspring on all CPUs
	Seed              uint64
	// InitialPopulation seeds the first generation, e.g. from a warm start.
	// Missing slots are filled by the problem's initializer.
	InitialPopulation []*framework.BinarySolution
}

// NSGAII represents the NSGA-II algorithm configuration
type NSGAII struct {
	PopSize           int
	NumGenerations    int
	Problem           framework.Problem
	CrossoverRate     float64
	MutationRate      float64
	ParallelExecution bool

	crossover CrossoverFunc
	seeds     []*framework.BinarySolution
	rng       *rand.Rand
	metrics   *metrics.Recorder
	tracer    trace.Tracer
}

var _ framework.Algorithm = &NSGAII{}

// Option customizes an NSGAII instance.
type Option func(*NSGAII)

// WithMetrics records ranking and generation metrics on r.
func WithMetrics(r *metrics.Recorder) Option {
	return func(n *NSGAII) {
		n.metrics = r
	}
}

// WithTracer replaces the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(n *NSGAII) {
		n.tracer = t
	}
}

// NewNSGAII creates a new instance of NSGA-II with given parameters
func NewNSGAII(config NSGA2Config, problem framework.Problem, opts ...Option) *NSGAII {
	n := &NSGAII{
		PopSize:           config.PopulationSize,
		NumGenerations:    config.MaxGenerations,
		Problem:           problem,
		CrossoverRate:     config.CrossoverProbability,
		MutationRate:      config.MutationProbability,
		ParallelExecution: config.ParallelExecution,
		crossover:         config.Crossover,
		seeds:             config.InitialPopulation,
		rng:               rand.New(rand.NewSource(config.Seed)),
		tracer:            otel.Tracer(tracerName),
	}
	if n.crossover == nil {
		n.crossover = OnePointCrossover
	}
	if n.MutationRate <= 0 && problem.NumVariables() > 0 {
		n.MutationRate = 1.0 / float64(problem.NumVariables())
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *NSGAII) Name() string {
	return Name
}

// Evaluate calculates the objective values of every individual in place.
func (n *NSGAII) Evaluate(ctx context.Context, population framework.Population) {
	evaluate := func(i int) {
		population[i].Value = n.Problem.Evaluate(population[i].Solution)
	}
	if n.ParallelExecution {
		workqueue.ParallelizeUntil(ctx, runtime.NumCPU(), len(population), evaluate)
	} else {
		for i := range population {
			evaluate(i)
		}
	}
	n.metrics.Evaluated(n.Problem.Name(), len(population))
}

// Run executes the NSGA-II algorithm and returns the final, ranked population.
func (n *NSGAII) Run(ctx context.Context) (framework.Population, error) {
	if n.PopSize < 2 {
		return nil, fmt.Errorf("population size must be at least 2, got %d: %w", n.PopSize, framework.ErrInvalidArgument)
	}
	if n.NumGenerations < 0 {
		return nil, fmt.Errorf("number of generations must not be negative, got %d: %w", n.NumGenerations, framework.ErrInvalidArgument)
	}

	logger := klog.FromContext(ctx).WithValues("algorithm", Name, "problem", n.Problem.Name())
	ctx, span := n.tracer.Start(ctx, "NSGAII.Run", trace.WithAttributes(
		attribute.String("problem", n.Problem.Name()),
		attribute.Int("populationSize", n.PopSize),
		attribute.Int("generations", n.NumGenerations),
	))
	defer span.End()

	startTime := time.Now()
	logger.Info("Starting evolution",
		"populationSize", n.PopSize,
		"generations", n.NumGenerations,
		"crossoverRate", n.CrossoverRate,
		"mutationRate", n.MutationRate,
		"parallel", n.ParallelExecution)

	population := n.initialPopulation()
	n.Evaluate(ctx, population)
	fronts, err := n.rank(population)
	if err != nil {
		return nil, err
	}
	logger.V(2).Info("Initial population ranked", "fronts", len(fronts), "firstFront", len(fronts[0]))

	for gen := 0; gen < n.NumGenerations; gen++ {
		if err := ctx.Err(); err != nil {
			return population, err
		}

		offspring, err := n.generateOffspring(population)
		if err != nil {
			return nil, err
		}
		n.Evaluate(ctx, offspring)
		if err := ctx.Err(); err != nil {
			return population, err
		}

		// Combine populations
		combined := make(framework.Population, 0, len(population)+len(offspring))
		combined = append(combined, population...)
		combined = append(combined, offspring...)

		fronts, err = n.rank(combined)
		if err != nil {
			return nil, err
		}
		population = SelectSurvivors(combined, fronts, n.PopSize)

		// Survivors are ranked again among themselves for the next selection.
		fronts, err = n.rank(population)
		if err != nil {
			return nil, err
		}

		n.metrics.GenerationDone(n.Problem.Name())
		span.AddEvent("generation", trace.WithAttributes(
			attribute.Int("generation", gen+1),
			attribute.Int("fronts", len(fronts)),
		))
		logger.V(2).Info("Generation complete",
			"generation", gen+1,
			"fronts", len(fronts),
			"firstFront", len(fronts[0]))
	}

	elapsed := time.Since(startTime)
	logger.Info("Evolution complete", "elapsed", elapsed, "firstFront", len(fronts[0]))
	if n.NumGenerations > 0 {
		logger.V(1).Info("Timing", "perGeneration", elapsed/time.Duration(n.NumGenerations))
	}
	return population, nil
}

func (n *NSGAII) rank(population framework.Population) ([]Front, error) {
	start := time.Now()
	fronts, err := AssignRanks(population)
	if err != nil {
		return nil, fmt.Errorf("ranking population: %w", err)
	}
	n.metrics.ObserveRanking(n.Problem.Name(), time.Since(start), len(fronts), len(fronts[0]))
	return fronts, nil
}

// initialPopulation takes the seeded solutions first and lets the problem
// initialize the remaining slots.
func (n *NSGAII) initialPopulation() framework.Population {
	population := make(framework.Population, 0, n.PopSize)
	for _, sol := range n.seeds {
		if len(population) == n.PopSize {
			break
		}
		population = append(population, framework.NewIndividual(sol.Clone(), nil))
	}
	if missing := n.PopSize - len(population); missing > 0 {
		for _, sol := range n.Problem.Initialize(n.rng, missing) {
			population = append(population, framework.NewIndividual(sol, nil))
		}
	}
	return population
}

// generateOffspring selects parents by binary tournament and recombines
// them pairwise. Offspring are unranked and not evaluated yet.
func (n *NSGAII) generateOffspring(population framework.Population) (framework.Population, error) {
	parents, err := BinaryTournament(n.rng, population, n.PopSize+n.PopSize%2)
	if err != nil {
		return nil, err
	}

	offspring := make(framework.Population, 0, n.PopSize)
	for i := 0; i < len(parents); i += 2 {
		child1, child2 := n.recombine(parents[i].Solution, parents[i+1].Solution)
		child1.Mutate(n.rng, n.MutationRate)
		child2.Mutate(n.rng, n.MutationRate)

		offspring = append(offspring, framework.NewIndividual(child1, nil))
		if len(offspring) < n.PopSize {
			offspring = append(offspring, framework.NewIndividual(child2, nil))
		}
	}
	return offspring, nil
}

func (n *NSGAII) recombine(parent1, parent2 *framework.BinarySolution) (*framework.BinarySolution, *framework.BinarySolution) {
	if n.rng.Float64() >= n.CrossoverRate {
		return parent1.Clone(), parent2.Clone()
	}
	bits1, bits2 := n.crossover(n.rng, parent1.Bits, parent2.Bits)
	return framework.NewBinarySolution(bits1), framework.NewBinarySolution(bits2)
}
