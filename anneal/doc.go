// Package anneal implements the simulated-annealing driver: it builds a
// System from a sparse quadratic interaction and per-label domains,
// selects a transition kernel by name, fills in any temperature bound
// the caller did not supply, and runs a geometric-schedule sweep loop
// over one or more independent samples.
//
// Solve is the package's single entry point:
//
//	results, err := anneal.Solve(interaction, ranges, numSweeps,
//		anneal.WithKernel("HEAT_BATH"),
//		anneal.WithNumSamples(10),
//		anneal.WithSeed(0),
//	)
//
// Samples are independent: each owns a private System and PRNG stream,
// so WithConcurrency can run several at once without sharing any core
// state across goroutines.
package anneal
