package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/ssargent/secded/pkg/archive"
	"github.com/ssargent/secded/pkg/config"
	"github.com/ssargent/secded/pkg/hamming"
	"github.com/ssargent/secded/pkg/metrics"
	"github.com/ssargent/secded/pkg/vectors"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <encoder|decoder|parity>",
	Short: "Generate golden test vectors for a testbench",
	Long: `Generate inputs.dat and outputs.dat for the encoder, decoder or parity
testbench. Testbench generics can be passed with -g and take precedence over
the configuration file and flags.

Examples:
  secded generate encoder -g PARITY_BITS=4 --seed 8
  secded generate decoder --tests 1000 --max-noise 4 --out ./sim
  secded generate parity -g SIZE=8 -g EVEN_PARITY=false`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(vectors.KindEncoder), string(vectors.KindDecoder), string(vectors.KindParity)},
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := vectors.ParseKind(args[0])
		if err != nil {
			return err
		}

		req, err := generateRequestFromFlags(cmd, kind)
		if err != nil {
			return err
		}

		return runGenerate(cmd.OutOrStdout(), req)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringArrayP("generic", "g", nil, "Override a testbench generic (KEY=VALUE)")
	generateCmd.Flags().Int("tests", 0, "Number of vectors to generate (default from config)")
	generateCmd.Flags().Int64("seed", 0, "Random seed (default from config)")
	generateCmd.Flags().Int("max-noise", 0, "Decoder: most bits flipped per block (default from config)")
	generateCmd.Flags().Int("width", 0, "Parity: data word width (default from config)")
	generateCmd.Flags().Bool("odd", false, "Parity: generate odd-parity check bits")
	generateCmd.Flags().Bool("little-endian", false, "Write bit vectors index 0 first")
	generateCmd.Flags().StringP("out", "o", "", "Output directory (default from config)")
	generateCmd.Flags().Bool("archive", false, "Record the run in the archive")
	generateCmd.Flags().String("metrics-file", "", "Write Prometheus metrics for the run to this file")
}

// generateRequest is everything a generation run needs
type generateRequest struct {
	ParityBits  int
	Seed        int64
	OutputDir   string
	Options     vectors.Options
	Archive     bool
	ArchiveDir  string
	MetricsFile string
	Debug       bool
}

func generateRequestFromFlags(cmd *cobra.Command, kind vectors.Kind) (*generateRequest, error) {
	flags := cmd.Flags()
	req := newGenerateRequest(cfg, kind)

	if flags.Changed("tests") {
		req.Options.Tests, _ = flags.GetInt("tests")
	}
	if flags.Changed("seed") {
		req.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("max-noise") {
		req.Options.MaxNoise, _ = flags.GetInt("max-noise")
	}
	if flags.Changed("width") {
		req.Options.ParityWidth, _ = flags.GetInt("width")
	}
	if odd, _ := flags.GetBool("odd"); odd {
		req.Options.EvenParity = false
	}
	if little, _ := flags.GetBool("little-endian"); little {
		req.Options.BigEndian = false
	}
	if out, _ := flags.GetString("out"); out != "" {
		req.OutputDir = out
	}
	if archived, _ := flags.GetBool("archive"); archived {
		req.Archive = true
	}
	req.MetricsFile, _ = flags.GetString("metrics-file")

	pairs, _ := flags.GetStringArray("generic")
	generics, err := vectors.ParseGenerics(pairs)
	if err != nil {
		return nil, err
	}
	if err := req.applyGenerics(generics); err != nil {
		return nil, err
	}

	return req, nil
}

func newGenerateRequest(c *config.Config, kind vectors.Kind) *generateRequest {
	return &generateRequest{
		ParityBits: c.ParityBits,
		Seed:       c.Vectors.Seed,
		OutputDir:  c.Vectors.OutputDir,
		Options: vectors.Options{
			Kind:        kind,
			Tests:       c.Vectors.Tests,
			MaxNoise:    c.Vectors.MaxNoise,
			ParityWidth: c.Vectors.ParityWidth,
			EvenParity:  c.Vectors.EvenParity,
			BigEndian:   c.Vectors.BigEndian,
		},
		Archive:    c.Archive.Enabled,
		ArchiveDir: c.Archive.Dir,
		Debug:      c.Debug(),
	}
}

func (r *generateRequest) applyGenerics(g vectors.Generics) error {
	if v, ok, err := g.Int(vectors.GenericParityBits); err != nil {
		return err
	} else if ok {
		r.ParityBits = v
	}
	if v, ok, err := g.Int(vectors.GenericSize); err != nil {
		return err
	} else if ok {
		r.Options.ParityWidth = v
	}
	if v, ok, err := g.Bool(vectors.GenericEvenParity); err != nil {
		return err
	} else if ok {
		r.Options.EvenParity = v
	}
	return nil
}

func runGenerate(w io.Writer, req *generateRequest) error {
	codec, err := hamming.New(req.ParityBits)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	gen := vectors.NewGenerator(codec, req.Seed, metrics.New(reg), debugLogger(req.Debug))

	report, inPath, outPath, err := gen.GenerateFiles(req.OutputDir, req.Options)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Generated %d %s vectors (parity bits %d, seed %d)\n", report.Count, report.Kind, req.ParityBits, req.Seed)
	fmt.Fprintf(w, "Inputs:  %s\n", inPath)
	fmt.Fprintf(w, "Outputs: %s\n", outPath)
	printReport(w, report)

	if req.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(req.MetricsFile, reg); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		fmt.Fprintf(w, "Metrics: %s\n", req.MetricsFile)
	}

	if req.Archive {
		a, err := archive.Open(req.ArchiveDir)
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := a.Put(&archive.Run{
			Kind:       report.Kind,
			ParityBits: req.ParityBits,
			Seed:       req.Seed,
			Tests:      req.Options.Tests,
			Report:     report,
			InputFile:  inPath,
			OutputFile: outPath,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Archived run %s\n", id)
	}

	return nil
}

func printReport(w io.Writer, report *vectors.Report) {
	switch report.Kind {
	case vectors.KindDecoder:
		fmt.Fprintf(w, "Clean: %d, corrected: %d, uncorrectable: %d\n", report.Clean, report.Corrected, report.Uncorrectable)
		flips := make([]int, 0, len(report.Flips))
		for n := range report.Flips {
			flips = append(flips, n)
		}
		sort.Ints(flips)
		for _, n := range flips {
			fmt.Fprintf(w, "  %d flipped: %d\n", n, report.Flips[n])
		}
	case vectors.KindParity:
		fmt.Fprintf(w, "Even words: %d, odd words: %d\n", report.EvenWords, report.OddWords)
	}
}
