package recordio_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openchem/molmap/internal/recordio"
	"github.com/openchem/molmap/pkg/dataset"
)

func TestReadWriteRoundTrip(t *testing.T) {
	records := []*dataset.Conformer{
		{ConformerID: 618451001, Fate: dataset.FateSuccess},
		{ConformerID: 57001, DuplicatedBy: 57002},
	}

	var buf bytes.Buffer
	require.NoError(t, recordio.Write(&buf, records))

	decoded, err := recordio.Read(&buf)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, int64(618451001), decoded[0].ConformerID)
	assert.Equal(t, dataset.FateSuccess, decoded[0].Fate)
	assert.Equal(t, int64(57002), decoded[1].DuplicatedBy)
}

func TestReadSkipsBlankLines(t *testing.T) {
	input := "{\"conformer_id\":57001}\n\n{\"conformer_id\":57002}\n"
	decoded, err := recordio.Read(bytes.NewBufferString(input))
	require.NoError(t, err)
	assert.Len(t, decoded, 2)
}

func TestReadRejectsMalformedLine(t *testing.T) {
	_, err := recordio.Read(bytes.NewBufferString("not json\n"))
	assert.Error(t, err)
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")
	records := []*dataset.Conformer{{ConformerID: 618451001}}

	require.NoError(t, recordio.WriteFile(path, records))
	decoded, err := recordio.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, int64(618451001), decoded[0].ConformerID)
}

func TestReadFileMissing(t *testing.T) {
	_, err := recordio.ReadFile(filepath.Join(t.TempDir(), "absent.jsonl"))
	assert.Error(t, err)
}
