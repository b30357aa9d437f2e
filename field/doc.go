// Package field defines the finite-field capability interface used by the
// vector/matrix algebra and the commitment schemes, together with the
// concrete fields shipped with the library: Goldilocks (2^64 - 2^32 + 1),
// Seven (F_7, small enough for exhaustive checks) and Binary (F_2, the
// minimal base case for digit decomposition).
//
// The zero value of every concrete field type is the additive identity.
// Operations that need "static" field data (cardinality, bit width,
// conversion, sampling) call the corresponding methods on a zero value.
package field
