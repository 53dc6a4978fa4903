package vectors

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/ssargent/secded/pkg/channel"
	"github.com/ssargent/secded/pkg/hamming"
	"github.com/ssargent/secded/pkg/metrics"
)

// Kind selects which testbench the vectors are for
type Kind string

const (
	KindEncoder Kind = "encoder"
	KindDecoder Kind = "decoder"
	KindParity  Kind = "parity"
)

// File names expected by the testbenches
const (
	InputFileName  = "inputs.dat"
	OutputFileName = "outputs.dat"
)

// ParseKind validates a kind name
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindEncoder, KindDecoder, KindParity:
		return k, nil
	}
	return "", fmt.Errorf("unknown vector kind %q (want encoder, decoder or parity)", s)
}

// Options controls one generation run
type Options struct {
	Kind        Kind
	Tests       int
	MaxNoise    int  // decoder: flips per block drawn from [0, MaxNoise]
	ParityWidth int  // parity: data word width in bits
	EvenParity  bool // parity: target parity of the check bit
	BigEndian   bool
}

// Report summarizes a generation run
type Report struct {
	Kind          Kind        `json:"kind"`
	Count         int         `json:"count"`
	Clean         int         `json:"clean,omitempty"`
	Corrected     int         `json:"corrected,omitempty"`
	Uncorrectable int         `json:"uncorrectable,omitempty"`
	Flips         map[int]int `json:"flips,omitempty"` // flips per block -> occurrences
	OddWords      int         `json:"odd_words,omitempty"`
	EvenWords     int         `json:"even_words,omitempty"`
}

// Generator produces test vectors from a codec and a seeded random source
type Generator struct {
	codec   *hamming.Codec
	rng     *rand.Rand
	channel *channel.Channel
	metrics *metrics.Metrics
	logger  *log.Logger
}

// NewGenerator creates a generator. The channel shares the generator's random
// source so the whole run follows from seed. m and logger may be nil.
func NewGenerator(codec *hamming.Codec, seed int64, m *metrics.Metrics, logger *log.Logger) *Generator {
	rng := rand.New(rand.NewSource(seed))
	return &Generator{
		codec:   codec,
		rng:     rng,
		channel: channel.New(rng),
		metrics: m,
		logger:  logger,
	}
}

// Generate writes opts.Tests vectors of opts.Kind to inputs and outputs
func (g *Generator) Generate(inputs, outputs io.Writer, opts Options) (*Report, error) {
	if opts.Tests < 0 {
		return nil, fmt.Errorf("test count must not be negative: %d", opts.Tests)
	}

	in := NewWriter(inputs, opts.BigEndian)
	out := NewWriter(outputs, opts.BigEndian)
	report := &Report{Kind: opts.Kind}

	var err error
	switch opts.Kind {
	case KindEncoder:
		err = g.encoderVectors(in, out, opts, report)
	case KindDecoder:
		err = g.decoderVectors(in, out, opts, report)
	case KindParity:
		err = g.parityVectors(in, out, opts, report)
	default:
		_, err = ParseKind(string(opts.Kind))
	}
	if err != nil {
		return nil, err
	}

	if err := in.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush inputs: %w", err)
	}
	if err := out.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush outputs: %w", err)
	}

	return report, nil
}

// GenerateFiles creates inputs.dat and outputs.dat in dir and fills them
func (g *Generator) GenerateFiles(dir string, opts Options) (*Report, string, string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, "", "", fmt.Errorf("failed to create output directory: %w", err)
	}

	inPath := filepath.Join(dir, InputFileName)
	outPath := filepath.Join(dir, OutputFileName)

	inFile, err := os.Create(inPath)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to create %s: %w", inPath, err)
	}
	defer inFile.Close()

	outFile, err := os.Create(outPath)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer outFile.Close()

	report, err := g.Generate(inFile, outFile, opts)
	if err != nil {
		return nil, "", "", err
	}

	if err := inFile.Close(); err != nil {
		return nil, "", "", fmt.Errorf("failed to close %s: %w", inPath, err)
	}
	if err := outFile.Close(); err != nil {
		return nil, "", "", fmt.Errorf("failed to close %s: %w", outPath, err)
	}

	return report, inPath, outPath, nil
}

func (g *Generator) randomBits(n int) hamming.Bits {
	bits := make(hamming.Bits, n)
	for j := range bits {
		bits[j] = uint8(g.rng.Intn(2))
	}
	return bits
}

func (g *Generator) encoderVectors(in, out *Writer, opts Options, report *Report) error {
	for t := 0; t < opts.Tests; t++ {
		message := g.randomBits(g.codec.MessageLen())
		block, err := g.codec.Encode(message)
		if err != nil {
			return fmt.Errorf("test %d: %w", t, err)
		}
		g.metrics.RecordEncode()

		if err := in.WriteVector(message); err != nil {
			return err
		}
		if err := out.WriteVector(block); err != nil {
			return err
		}
		g.metrics.RecordVector(string(KindEncoder))
		report.Count++
	}
	return nil
}

func (g *Generator) decoderVectors(in, out *Writer, opts Options, report *Report) error {
	if opts.MaxNoise < 0 {
		return fmt.Errorf("max noise must not be negative: %d", opts.MaxNoise)
	}
	maxNoise := opts.MaxNoise
	if maxNoise > g.codec.TotalLen() {
		maxNoise = g.codec.TotalLen()
	}
	report.Flips = map[int]int{}

	for t := 0; t < opts.Tests; t++ {
		message := g.randomBits(g.codec.MessageLen())
		block, err := g.codec.Encode(message)
		if err != nil {
			return fmt.Errorf("test %d: %w", t, err)
		}
		g.metrics.RecordEncode()

		tx, err := g.channel.Perturb(block, nil, channel.Flips(g.rng.Intn(maxNoise+1)))
		if err != nil {
			return fmt.Errorf("test %d: %w", t, err)
		}
		g.metrics.RecordFlips(len(tx.Flipped))
		report.Flips[len(tx.Flipped)]++

		res, err := g.codec.Decode(tx.Block)
		if err != nil {
			return fmt.Errorf("test %d: %w", t, err)
		}
		g.metrics.RecordDecode(res.Status())

		switch res.Status() {
		case hamming.StatusClean:
			report.Clean++
		case hamming.StatusCorrected:
			report.Corrected++
		case hamming.StatusUncorrectable:
			report.Uncorrectable++
		}

		if g.logger != nil {
			g.logger.Printf("decoder test %d: flipped %v syndrome %d status %s", t, tx.Flipped, res.Syndrome, res.Status())
		}

		if err := in.WriteVector(tx.Block); err != nil {
			return err
		}
		if err := out.WriteVector(res.Message, res.Corrected, res.Valid); err != nil {
			return err
		}
		g.metrics.RecordVector(string(KindDecoder))
		report.Count++
	}
	return nil
}

// parityVectors draws words so that odd and even values each make up at most
// half (rounded up) of the run.
func (g *Generator) parityVectors(in, out *Writer, opts Options, report *Report) error {
	width := opts.ParityWidth
	if width < 1 || width > 62 {
		return fmt.Errorf("parity width must be between 1 and 62: %d", width)
	}
	limit := (opts.Tests + 1) / 2

	for t := 0; t < opts.Tests; t++ {
		word := g.rng.Int63n(int64(1) << width)
		for (word%2 == 0 && report.EvenWords >= limit) || (word%2 == 1 && report.OddWords >= limit) {
			word = g.rng.Int63n(int64(1) << width)
		}
		if word%2 == 0 {
			report.EvenWords++
		} else {
			report.OddWords++
		}

		data := make(hamming.Bits, width)
		for j := range data {
			data[j] = uint8(word>>j) & 1
		}
		check := hamming.ComputeParity(data, opts.EvenParity)

		if err := in.WriteVector(data); err != nil {
			return err
		}
		if err := out.WriteVector(check); err != nil {
			return err
		}
		g.metrics.RecordVector(string(KindParity))
		report.Count++
	}
	return nil
}
