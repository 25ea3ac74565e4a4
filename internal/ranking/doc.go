// Package ranking re-ranks catalog candidates against user weight dials.
//
// The pipeline is filter, genre affinity, weighted scoring, explanation and a
// stable descending sort. Every function here is pure: inputs are never
// mutated and no state survives between calls, so rankings may be computed
// concurrently without coordination.
package ranking
