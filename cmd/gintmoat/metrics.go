package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gaussmoat/moat"
)

// recorder collects the summary of one run as Prometheus gauges, written
// in the text exposition format so a node-exporter textfile collector can
// pick up long research runs.
type recorder struct {
	reg *prometheus.Registry

	size       prometheus.Gauge
	maxNorm    prometheus.Gauge
	sievedNorm prometheus.Gauge
	growths    prometheus.Gauge
	primes     prometheus.Gauge
	status     *prometheus.GaugeVec
	seconds    prometheus.Gauge
}

func newRecorder(mode string) *recorder {
	labels := prometheus.Labels{"mode": mode}
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "gintmoat",
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
	}
	r := &recorder{
		reg:        prometheus.NewRegistry(),
		size:       gauge("component_size", "Primes in the explored component."),
		maxNorm:    gauge("component_max_norm", "Norm of the farthest (or highest) member."),
		sievedNorm: gauge("sieved_bound", "Norm (or strip height) covered by the sieve."),
		growths:    gauge("sieve_growths", "Region growths or strip blocks sieved."),
		primes:     gauge("sieved_primes", "Primes produced by the sieve."),
		seconds:    gauge("run_seconds", "Wall time of the search."),
		status: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   "gintmoat",
			Name:        "status",
			Help:        "1 for the terminal status of the search.",
			ConstLabels: labels,
		}, []string{"status"}),
	}
	r.reg.MustRegister(r.size, r.maxNorm, r.sievedNorm, r.growths, r.primes, r.seconds, r.status)
	return r
}

// component records an origin or segmented result.
func (r *recorder) component(res *moat.Result) {
	r.size.Set(float64(res.Size))
	r.maxNorm.Set(float64(res.Max.Norm()))
	r.sievedNorm.Set(float64(res.SievedNorm))
	r.growths.Set(float64(res.Growths))
	r.primes.Set(float64(res.Primes))
	r.status.WithLabelValues(res.Status.String()).Set(1)
}

// strip records a strip result.
func (r *recorder) strip(res *moat.StripResult) {
	r.size.Set(float64(res.Size))
	r.maxNorm.Set(float64(res.Top.Norm()))
	r.sievedNorm.Set(float64(res.SievedImag))
	r.growths.Set(float64(res.Blocks))
	r.status.WithLabelValues(res.Status.String()).Set(1)
}

func (r *recorder) elapsed(d time.Duration) {
	r.seconds.Set(d.Seconds())
}

// write stores the gauges at path.
func (r *recorder) write(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
