// Package noise provides deterministic pseudorandom noise nodes.
//
// [MLS] is a maximal-length linear feedback shift register with state
// widths from 1 to 31 bits; [MLSNoise] turns its output bit into a bipolar
// signal. [White] runs a 64-bit linear congruential generator and emits
// samples approximately uniform on [-1, 1).
//
// Both nodes reseed from the hash set with SetHash on every Reset, so two
// copies of the same node in a graph can produce decorrelated output while
// each stays reproducible.
package noise
