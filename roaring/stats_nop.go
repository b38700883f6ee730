//go:build !roaringstats
// +build !roaringstats

package roaring

// statsHit does nothing, because this binary wasn't built with the
// "roaringstats" tag.
func statsHit(string) {
}
