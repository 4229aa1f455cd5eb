package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	MatchChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "targeting_match_checks_total",
			Help: "Per-dimension match evaluations",
		}, []string{"dimension", "outcome"},
	)
	IncompatibilitiesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "targeting_incompatibilities_total",
			Help: "Device values unaccounted for by a sibling set",
		}, []string{"dimension"},
	)
	VariantSelectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "targeting_variant_selections_total",
			Help: "Variants selected for delivery, by shape",
		}, []string{"shape"},
	)
)

func init() {
	prometheus.MustRegister(MatchChecksTotal, IncompatibilitiesTotal, VariantSelectionsTotal)
}
