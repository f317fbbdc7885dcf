// Package system normalizes a sparse quadratic interaction over labeled
// sites into the flat indexed form the annealing kernels operate on, and
// keeps a per-site local-field cache consistent under single-site updates.
//
// Construction:
//
//  1. Normalize the Interaction: sort each term's labels, accumulate
//     coefficients sharing the same sorted tuple.
//  2. Collect the distinct labels, sort them to build index_list and the
//     label↔index bijection.
//  3. Fill h (linear), S (self-coupling), and J (sorted neighbor lists)
//     from the normalized terms.
//  4. Derive one PRNG seed per variable from a secondary PRNG keyed off
//     the System seed, drawn in index order, so that a variable's seed
//     depends only on its sorted position, not on its label's identity.
//     Adding a label that sorts before an existing one shifts that
//     existing label's seed.
//  5. Construct all Variables.
//  6. Compute dE[i] = h[i] + Σ w·value[j] once over the initial
//     assignment.
//
// The central invariant, preserved by every mutating operation: for all
// k, dE[k] == h[k] + Σ_{(j,w)∈J[k]} w·value[j]. GetDE derives ΔE for a
// candidate change from this cache in O(1); SetValue updates the cache in
// O(deg(i)) rather than recomputing the whole energy.
package system
