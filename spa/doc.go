// Package spa describes the loss contract of graph-spectral adversarial
// alignment: three externally computed terms (adversarial domain loss,
// graph-spectral alignment loss, nearest-neighbour pseudo-label loss),
// their independent weights, and the target memory bank that must be
// refreshed once per epoch before the loss is evaluated.
//
// The training loop and the terms themselves live in a deep-learning
// framework; this package only fixes the interfaces between them.
package spa
