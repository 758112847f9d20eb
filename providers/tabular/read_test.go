package tabular

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gi-scribe/providers"
)

func TestSupported(t *testing.T) {
	assert.True(t, Supported("responses.csv"))
	assert.True(t, Supported("Responses.XLSX"))
	assert.True(t, Supported("macro.xlsm"))
	assert.False(t, Supported("responses.pdf"))
	assert.False(t, Supported("responses"))
}

func TestReadCSV(t *testing.T) {
	r := NewReader(0, zap.NewNop())
	data := []byte("Product Name,Region of Origin,Select Product Category\n" +
		"Alphonso Mango,Ratnagiri,1\n" +
		"Kanchipuram Silk,Tamil Nadu\n")

	responses, err := r.Read("responses.csv", data)
	require.NoError(t, err)
	require.Len(t, responses, 2)

	assert.Equal(t, "Alphonso Mango", responses[0]["Product Name"])
	assert.Equal(t, "1", responses[0]["Select Product Category"])

	// Ragged row: the missing trailing cell maps to the empty string.
	assert.Equal(t, "Kanchipuram Silk", responses[1]["Product Name"])
	assert.Equal(t, "", responses[1]["Select Product Category"])
}

func TestReadCSVHeaderOnly(t *testing.T) {
	r := NewReader(0, zap.NewNop())
	_, err := r.Read("responses.csv", []byte("Product Name,Region of Origin\n"))
	assert.ErrorIs(t, err, providers.ErrSourceUnavailable)
}

func TestReadUnsupportedExtension(t *testing.T) {
	r := NewReader(0, zap.NewNop())
	_, err := r.Read("responses.pdf", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestReadSizeLimit(t *testing.T) {
	r := NewReader(8, zap.NewNop())
	_, err := r.Read("responses.csv", []byte("Product Name\nvalue here\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload limit")
}

func TestReadExcel(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]string{"Product Name", "Region of Origin"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]string{"Darjeeling Tea", "Darjeeling"}))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	r := NewReader(0, zap.NewNop())
	responses, err := r.Read("responses.xlsx", buf.Bytes())
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "Darjeeling Tea", responses[0]["Product Name"])
	assert.Equal(t, "Darjeeling", responses[0]["Region of Origin"])
}

func TestReadSkipsBlankHeaderColumns(t *testing.T) {
	r := NewReader(0, zap.NewNop())
	data := []byte("Product Name,,Region of Origin\nAlphonso Mango,stray,Ratnagiri\n")

	responses, err := r.Read("responses.csv", data)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Len(t, responses[0], 2)
	assert.Equal(t, "Ratnagiri", responses[0]["Region of Origin"])
}
