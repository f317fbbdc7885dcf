// Package kernel provides the three transition kernels a Driver chooses
// between when proposing a new value for one site of a System:
// Metropolis, Heat-Bath, and Suwa-Todo. All three share one contract —
// Propose(sys, site, temperature) returns a candidate value without
// mutating sys; committing is the caller's job.
//
// The kernel set is closed by design: a Driver dispatches on a kernel
// name (METROPOLIS, HEAT_BATH, SUWA-TODO) rather than accepting
// arbitrary implementations of the Kernel interface, since the three
// variants exhaust the transition rules this solver supports and a
// closed set avoids runtime dispatch surprises on the hot per-site loop.
//
// Heat-Bath and Suwa-Todo allocate their scratch buffers once, at
// construction, sized to the largest per-site state count across the
// whole System; neither reallocates on a Propose call.
package kernel
