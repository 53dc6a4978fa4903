package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"github.com/ssargent/secded/pkg/archive"
)

// runsCmd represents the runs command
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect archived generation runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withArchive(cmd, func(a *archive.Archive) error {
			return listRuns(cmd.OutOrStdout(), a)
		})
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one archived run as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := ksuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid run id %q: %w", args[0], err)
		}
		return withArchive(cmd, func(a *archive.Archive) error {
			return showRun(cmd.OutOrStdout(), a, id)
		})
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
	runsCmd.PersistentFlags().String("archive-dir", "", "Archive directory (default from config)")
}

func withArchive(cmd *cobra.Command, fn func(a *archive.Archive) error) error {
	dir, _ := cmd.Flags().GetString("archive-dir")
	if dir == "" {
		dir = cfg.Archive.Dir
	}

	a, err := archive.Open(dir)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(a)
}

func listRuns(w io.Writer, a *archive.Archive) error {
	runs, err := a.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs archived")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tKIND\tPARITY BITS\tSEED\tTESTS\tCREATED")
	for _, run := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n", run.ID, run.Kind, run.ParityBits, run.Seed, run.Tests, run.CreatedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}

func showRun(w io.Writer, a *archive.Archive, id ksuid.KSUID) error {
	run, err := a.Get(id)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(run)
}
