// Package metrics exports search and playback metrics to Prometheus.
package metrics

import (
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pathfinder"

// Recorder implements i.SearchRecorder on Prometheus collectors.
type Recorder struct {
	searches       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	finalized      prometheus.Histogram
	playbackEvents prometheus.Histogram
}

var _ i.SearchRecorder = &Recorder{}

// NewRecorder registers the collectors with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Completed searches by cost mode and outcome.",
		}, []string{"mode", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of a search.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"mode"}),
		finalized: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "finalized_nodes",
			Help:      "Tiles finalized per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		playbackEvents: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "playback_batch_events",
			Help:      "Events handed out per playback batch.",
			Buckets:   prometheus.LinearBuckets(0, 5, 11),
		}),
	}
}

// ObserveSearch records one completed search.
func (r *Recorder) ObserveSearch(aggressive bool, outcome pathfinding.Outcome, finalized int, elapsed time.Duration) {
	mode := modeLabel(aggressive)
	r.searches.WithLabelValues(mode, outcome.String()).Inc()
	r.duration.WithLabelValues(mode).Observe(elapsed.Seconds())
	r.finalized.Observe(float64(finalized))
}

// ObservePlaybackBatch records the size of a drained playback batch.
func (r *Recorder) ObservePlaybackBatch(size int) {
	r.playbackEvents.Observe(float64(size))
}

func modeLabel(aggressive bool) string {
	if aggressive {
		return "aggressive"
	}
	return "normal"
}
