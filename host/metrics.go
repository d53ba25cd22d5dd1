package host

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/rtsyn/synapse-sim/plugin"
)

// Summary aggregates the recorded values of one (node, port) series.
type Summary struct {
	Node  plugin.ID
	Kind  string
	Port  string
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Max   float64
	P50   float64
	P95   float64
	P99   float64
}

// Summarize groups samples by (node, port) and computes per-series
// statistics, returned in (node, port) order. Empty input yields nil.
func Summarize(samples []Sample) []Summary {
	type key struct {
		node plugin.ID
		port string
	}
	series := make(map[key][]float64)
	kinds := make(map[key]string)
	for _, s := range samples {
		k := key{node: s.Node, port: s.Port}
		series[k] = append(series[k], s.Value)
		kinds[k] = s.Kind
	}

	keys := make([]key, 0, len(series))
	for k := range series {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].node != keys[j].node {
			return keys[i].node < keys[j].node
		}
		return keys[i].port < keys[j].port
	})

	var summaries []Summary
	for _, k := range keys {
		values := series[k]
		sort.Float64s(values)

		summaries = append(summaries, Summary{
			Node:  k.node,
			Kind:  kinds[k],
			Port:  k.port,
			Count: len(values),
			Mean:  stat.Mean(values, nil),
			Std:   stat.StdDev(values, nil),
			Min:   values[0],
			Max:   values[len(values)-1],
			P50:   stat.Quantile(0.50, stat.Empirical, values, nil),
			P95:   stat.Quantile(0.95, stat.Empirical, values, nil),
			P99:   stat.Quantile(0.99, stat.Empirical, values, nil),
		})
	}
	return summaries
}

// Print displays the per-series statistics at the end of a run.
func Print(summaries []Summary) {
	fmt.Println("=== Output Summary ===")
	for _, s := range summaries {
		fmt.Printf("node %d  %s/%s  (n=%d)\n", s.Node, s.Kind, s.Port, s.Count)
		fmt.Printf("  mean : %.6g\n", s.Mean)
		fmt.Printf("  std  : %.6g\n", s.Std)
		fmt.Printf("  min  : %.6g\n", s.Min)
		fmt.Printf("  max  : %.6g\n", s.Max)
		fmt.Printf("  p50  : %.6g\n", s.P50)
		fmt.Printf("  p95  : %.6g\n", s.P95)
		fmt.Printf("  p99  : %.6g\n", s.P99)
	}
}
