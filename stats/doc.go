// Package stats provides small streaming statistics helpers.
//
// ArgMinMaxAccumulator ingests (argument, value) pairs one at a time and
// tracks the minimum and maximum values together with every argument that
// attains them, in insertion order. Snapshot produces an immutable ArgMinMax
// view that stays valid against further ingestion.
package stats
