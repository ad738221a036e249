// Package node defines the per-sample processing node capability shared by
// filters, noise generators and oscillators.
//
// A node is constructed, then [Node.Reset] is called (optionally binding a
// sample rate), and thereafter [Node.Tick] is called once per sample. Control
// values such as cutoff frequencies arrive through input channels, so a node
// can be retuned at audio rate without side-channel setters.
//
// Nodes are not safe for concurrent use. Independent instances share no
// mutable state and may be driven from separate goroutines.
package node
