// Package vectors generates golden test vectors for hardware testbenches of
// the SECDED encoder, decoder and parity units.
//
// Each run writes two files side by side: inputs.dat holds the stimulus for
// every test and outputs.dat holds the expected response, one test per line.
// Fields on a line are separated by a single space. Bit vectors are rendered
// highest index first by default, matching an HDL "downto" port; flags are
// written as 0 or 1.
//
//	kind     inputs.dat        outputs.dat
//	encoder  message           block
//	decoder  received block    message corrected valid
//	parity   data word         check bit
//
// Randomness comes from a single seeded source so that a run is reproducible
// from its seed alone.
package vectors
