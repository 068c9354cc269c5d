// Package metrics exposes Prometheus collectors for evolutionary runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "paretorank"

// Recorder groups the collectors updated by the NSGA-II driver. A nil
// *Recorder is valid and records nothing.
type Recorder struct {
	rankDuration *prometheus.HistogramVec
	fronts       *prometheus.GaugeVec
	firstFront   *prometheus.GaugeVec
	generations  *prometheus.CounterVec
	evaluations  *prometheus.CounterVec
}

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		rankDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rank_duration_seconds",
			Help:      "Time spent sorting a population into fronts and computing crowding distances.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"problem"}),
		fronts: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fronts",
			Help:      "Number of fronts found by the last ranking.",
		}, []string{"problem"}),
		firstFront: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "first_front_size",
			Help:      "Number of individuals in the first front of the last ranking.",
		}, []string{"problem"}),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Number of completed generations.",
		}, []string{"problem"}),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Number of objective evaluations.",
		}, []string{"problem"}),
	}

	for _, c := range []prometheus.Collector{r.rankDuration, r.fronts, r.firstFront, r.generations, r.evaluations} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ObserveRanking records one ranking of a population.
func (r *Recorder) ObserveRanking(problem string, elapsed time.Duration, fronts, firstFront int) {
	if r == nil {
		return
	}
	r.rankDuration.WithLabelValues(problem).Observe(elapsed.Seconds())
	r.fronts.WithLabelValues(problem).Set(float64(fronts))
	r.firstFront.WithLabelValues(problem).Set(float64(firstFront))
}

// GenerationDone counts a completed generation.
func (r *Recorder) GenerationDone(problem string) {
	if r == nil {
		return
	}
	r.generations.WithLabelValues(problem).Inc()
}

// Evaluated counts n objective evaluations.
func (r *Recorder) Evaluated(problem string, n int) {
	if r == nil {
		return
	}
	r.evaluations.WithLabelValues(problem).Add(float64(n))
}
