// Package archive keeps a record of test-vector generation runs in a Pebble
// database, keyed by KSUID so that runs list in creation order.
package archive

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/secded/pkg/vectors"
)

var runPrefix = []byte("run/")

// Errors
var (
	ErrRunNotFound = &ArchiveError{"run not found"}
	ErrInvalidRun  = &ArchiveError{"invalid run"}
)

// ArchiveError represents an archive error
type ArchiveError struct {
	Message string
}

func (e *ArchiveError) Error() string {
	return e.Message
}

// Run describes one generation run
type Run struct {
	ID         ksuid.KSUID     `json:"id"`
	Kind       vectors.Kind    `json:"kind"`
	ParityBits int             `json:"parity_bits"`
	Seed       int64           `json:"seed"`
	Tests      int             `json:"tests"`
	Report     *vectors.Report `json:"report,omitempty"`
	InputFile  string          `json:"input_file"`
	OutputFile string          `json:"output_file"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Archive stores runs
type Archive struct {
	db *pebble.DB
}

// Open opens or creates an archive in dir
func Open(dir string) (*Archive, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	return &Archive{db: db}, nil
}

// Put stores a run under a new ID and returns it. CreatedAt defaults to now.
func (a *Archive) Put(run *Run) (ksuid.KSUID, error) {
	if run == nil || run.Kind == "" {
		return ksuid.Nil, fmt.Errorf("%w: kind is required", ErrInvalidRun)
	}

	run.ID = ksuid.New()
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(run)
	if err != nil {
		return ksuid.Nil, fmt.Errorf("failed to marshal run: %w", err)
	}

	if err := a.db.Set(runKey(run.ID), data, pebble.Sync); err != nil {
		return ksuid.Nil, fmt.Errorf("failed to store run: %w", err)
	}

	return run.ID, nil
}

// Get loads a run by ID
func (a *Archive) Get(id ksuid.KSUID) (*Run, error) {
	data, closer, err := a.db.Get(runKey(id))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read run: %w", err)
	}
	defer closer.Close()

	return decodeRun(data)
}

// List returns every run, oldest first. KSUIDs only order to the second, so
// runs are sorted by CreatedAt.
func (a *Archive) List() ([]*Run, error) {
	iter, err := a.db.NewIter(&pebble.IterOptions{
		LowerBound: runPrefix,
		UpperBound: prefixEnd(runPrefix),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	defer iter.Close()

	var runs []*Run
	for iter.First(); iter.Valid(); iter.Next() {
		run, err := decodeRun(iter.Value())
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].CreatedAt.Before(runs[j].CreatedAt)
	})

	return runs, nil
}

// Delete removes a run
func (a *Archive) Delete(id ksuid.KSUID) error {
	if _, err := a.Get(id); err != nil {
		return err
	}
	return a.db.Delete(runKey(id), pebble.Sync)
}

// Close closes the archive
func (a *Archive) Close() error {
	return a.db.Close()
}

func decodeRun(data []byte) (*Run, error) {
	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to decode run: %w", err)
	}
	return &run, nil
}

func runKey(id ksuid.KSUID) []byte {
	key := append([]byte{}, runPrefix...)
	return append(key, id.Bytes()...)
}

// prefixEnd returns the smallest key greater than every key with prefix
func prefixEnd(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}
