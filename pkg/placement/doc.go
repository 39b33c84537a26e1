// Package placement computes deterministic ornament positions on a tree
// silhouette.
//
// The silhouette is modelled as a triangular [Envelope]: a vertical axis at
// CenterX, a top edge at TopY and a base at BottomY, with the usable width
// tapering linearly from BaseWidth at the base to TopWidth at the top. A
// safety margin shrinks that width so markers keep clear of the drawn edge.
//
// # Algorithm
//
// [Build] partitions the items into horizontal rows, bottom row first, with
// ceil(count/rows) items per row. Every item gets a nominal slot: the row's
// height and an evenly spaced column centred on CenterX. The item is then
// jittered by a seeded pseudo-random offset; the first jittered candidate
// that stays inside the envelope and keeps MinDistance to every previously
// placed marker wins. When MaxAttempts candidates all fail, the item falls
// back to its nominal slot. Items are never dropped.
//
// # Determinism
//
// Jitter comes from [Seeded], a fixed transform of an integer seed derived
// from the item index and attempt number. No ambient random source is used,
// so the same count and [Config] always yield the same positions and the
// illustration stays stable across re-renders without storing coordinates.
//
// # Degradation
//
// When the envelope is too small for count markers at MinDistance, items
// fall back to nominal slots and may overlap. That is accepted behaviour:
// [Build] still terminates and returns exactly count positions.
//
// # Usage
//
//	positions := placement.Generate(len(projects))
//	for i, p := range projects {
//	    draw(p, positions[i])
//	}
//
// Long-lived callers that re-render often should share a [Generator], which
// memoizes layouts per count.
package placement
