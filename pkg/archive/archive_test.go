package archive

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/secded/pkg/vectors"
)

func openTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := Open(filepath.Join(t.TempDir(), "runs"))
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestArchive_PutGet(t *testing.T) {
	a := openTestArchive(t)

	run := &Run{
		Kind:       vectors.KindDecoder,
		ParityBits: 4,
		Seed:       9,
		Tests:      100,
		Report: &vectors.Report{
			Kind:      vectors.KindDecoder,
			Count:     100,
			Clean:     40,
			Corrected: 35,
			Flips:     map[int]int{0: 40, 1: 35, 2: 25},
		},
		InputFile:  "/tmp/inputs.dat",
		OutputFile: "/tmp/outputs.dat",
	}

	id, err := a.Put(run)
	require.NoError(t, err)
	assert.NotEqual(t, ksuid.Nil, id)
	assert.Equal(t, id, run.ID)
	assert.False(t, run.CreatedAt.IsZero())

	got, err := a.Get(id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, vectors.KindDecoder, got.Kind)
	assert.Equal(t, 4, got.ParityBits)
	assert.Equal(t, int64(9), got.Seed)
	assert.Equal(t, 100, got.Tests)
	assert.Equal(t, run.Report, got.Report)
	assert.Equal(t, "/tmp/inputs.dat", got.InputFile)
	assert.True(t, run.CreatedAt.Equal(got.CreatedAt))
}

func TestArchive_GetMissing(t *testing.T) {
	a := openTestArchive(t)

	_, err := a.Get(ksuid.New())
	assert.True(t, errors.Is(err, ErrRunNotFound))
}

func TestArchive_PutInvalid(t *testing.T) {
	a := openTestArchive(t)

	_, err := a.Put(nil)
	assert.True(t, errors.Is(err, ErrInvalidRun))

	_, err = a.Put(&Run{})
	assert.True(t, errors.Is(err, ErrInvalidRun))
}

func TestArchive_List(t *testing.T) {
	a := openTestArchive(t)

	runs, err := a.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	kinds := []vectors.Kind{vectors.KindEncoder, vectors.KindDecoder, vectors.KindParity}
	for i, kind := range kinds {
		_, err := a.Put(&Run{Kind: kind, ParityBits: 3, CreatedAt: base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
	}

	runs, err = a.List()
	require.NoError(t, err)
	require.Len(t, runs, 3)
	for i, kind := range kinds {
		assert.Equal(t, kind, runs[i].Kind)
	}
}

func TestArchive_Delete(t *testing.T) {
	a := openTestArchive(t)

	id, err := a.Put(&Run{Kind: vectors.KindParity})
	require.NoError(t, err)

	require.NoError(t, a.Delete(id))

	_, err = a.Get(id)
	assert.True(t, errors.Is(err, ErrRunNotFound))

	err = a.Delete(id)
	assert.True(t, errors.Is(err, ErrRunNotFound))
}

func TestArchive_Reopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "runs")

	a, err := Open(dir)
	require.NoError(t, err)
	id, err := a.Put(&Run{Kind: vectors.KindEncoder, Seed: 42})
	require.NoError(t, err)
	require.NoError(t, a.Close())

	a, err = Open(dir)
	require.NoError(t, err)
	defer a.Close()

	got, err := a.Get(id)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.Seed)
}

func TestPrefixEnd(t *testing.T) {
	assert.Equal(t, []byte("run0"), prefixEnd([]byte("run/")))
	assert.Equal(t, []byte{0x02}, prefixEnd([]byte{0x01, 0xFF}))
	assert.Nil(t, prefixEnd([]byte{0xFF}))
}
