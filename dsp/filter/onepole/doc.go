// Package onepole provides first-order recursive filter nodes: a one-pole
// lowpass with a per-sample cutoff input and a fixed-cutoff DC blocker.
package onepole
