package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
}

type Counters struct {
	LinesRead        Counter
	ParseMisses      Counter
	RecordsIngested  Counter
	QueueDropped     Counter
	AlertsRaised     Counter
	AlertsSuppressed Counter
	StoreFailures    Counter
	APIRequests      Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func newCounter(name, help string, labels []string) *PrometheusCounter {
	return &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: help,
		}, labels),
	}
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

type counterSpec struct {
	name   string
	help   string
	labels []string
}

var specs = []counterSpec{
	{"monitor_lines_read_total", "Lines read from tailed files", []string{"file"}},
	{"parse_misses_total", "Lines dropped because no grammar or timestamp matched", []string{"path"}},
	{"records_ingested_total", "Records added to the buffer", []string{"level"}},
	{"queue_dropped_total", "Raw lines lost to the queue overflow policy", []string{"policy"}},
	{"alerts_raised_total", "Alerts emitted by the engine", []string{"kind", "severity"}},
	{"alerts_suppressed_total", "Alert candidates dropped as duplicates", []string{"kind"}},
	{"store_failures_total", "Failed persistence calls", []string{"op"}},
	{"api_requests_total", "Control API requests", []string{"route", "status"}},
}

func build(register func(*PrometheusCounter)) *Counters {
	c := make([]*PrometheusCounter, len(specs))
	for i, s := range specs {
		c[i] = newCounter(s.name, s.help, s.labels)
		register(c[i])
	}
	return &Counters{
		LinesRead:        c[0],
		ParseMisses:      c[1],
		RecordsIngested:  c[2],
		QueueDropped:     c[3],
		AlertsRaised:     c[4],
		AlertsSuppressed: c[5],
		StoreFailures:    c[6],
		APIRequests:      c[7],
	}
}

func New() *Counters {
	return build(func(c *PrometheusCounter) {
		prometheus.MustRegister(c.counter)
	})
}

// NewTestCounters registers on a private registry so tests can build as
// many sets as they like.
func NewTestCounters() *Counters {
	reg := prometheus.NewRegistry()
	return build(func(c *PrometheusCounter) {
		reg.MustRegister(c.counter)
	})
}
