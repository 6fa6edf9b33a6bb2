package autofill

import (
	"reflect"

	"github.com/prometheus/client_golang/prometheus"
)

func Injections(m *Metrics) *prometheus.CounterVec { return m.injections }

// SamePlan reports whether two lookups of t return the cached plan.
func SamePlan(t reflect.Type) bool { return planFor(t) == planFor(t) }
