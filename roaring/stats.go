//go:build roaringstats
// +build roaringstats

package roaring

import "expvar"

var statsMap = expvar.NewMap("roaring")

// statsHit increments the named counter, so it's possible to tell how
// often a given dispatch cell or conversion path is exercised. Built only
// under the roaringstats tag; see stats_nop.go for the default build.
func statsHit(name string) {
	statsMap.Add(name, 1)
}
