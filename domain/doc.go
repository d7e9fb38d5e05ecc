// Package domain splits a combined feature matrix into source and target row
// blocks by a per-row domain label and merges transformed blocks back.
//
// Label convention:
//
//	l > 0  source domain (several positive labels merge into one source group)
//	l < 0  target domain (several negative labels merge into one target group)
//	l = 0  unassigned: excluded from fitting
//
// Round trip: for any labelling, Merge(p, Split(X).Source, Split(X).Target,
// Split(X).Unassigned) reproduces X exactly, and splitting the merged matrix
// again reproduces the blocks exactly.
package domain
