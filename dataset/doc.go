// Package dataset generates deterministic synthetic source/target samples
// for exercising domain adaptation code: Gaussian class blobs whose target
// copy is rotated and shifted relative to the source.
//
//	s, _ := dataset.ShiftedBlobs(40, 30, 5, dataset.WithSeed(7), dataset.WithShift(1.5))
//	// s.X is 70×5, s.Domains holds +1 / -1, s.Classes the class index.
package dataset
