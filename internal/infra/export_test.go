package infra

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTable() Table {
	return Table{
		Title:   "Liste des Produits",
		Columns: []string{"Nom", "Catégorie", "Prix", "Stock"},
		Rows: [][]string{
			{"Café moulu", "Boissons", "3.50", "10"},
			{"Thé & infusions", "Boissons", "2.80", "0"},
		},
	}
}

func TestRenderTableCSVIsTabDelimited(t *testing.T) {
	data, err := RenderTableCSV(sampleTable())
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = '\t'
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Nom", "Catégorie", "Prix", "Stock"}, records[0])
	assert.Equal(t, "Thé & infusions", records[2][0])
}

func TestRenderTableXLSXRoundTrips(t *testing.T) {
	data, err := RenderTableXLSX(sampleTable())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Nom", "Catégorie", "Prix", "Stock"}, rows[0])
	assert.Equal(t, "Café moulu", rows[1][0])
	assert.Equal(t, "2.80", rows[2][2])
}

func TestRenderTablePDFProducesADocument(t *testing.T) {
	data, err := RenderTablePDF(sampleTable())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "missing PDF magic")
}

func TestRenderTableDOCXContainsEscapedCells(t *testing.T) {
	data, err := RenderTableDOCX(sampleTable())
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var names []string
	var document string
	for _, f := range zr.File {
		names = append(names, f.Name)
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			require.NoError(t, err)
			raw, err := io.ReadAll(rc)
			require.NoError(t, err)
			require.NoError(t, rc.Close())
			document = string(raw)
		}
	}
	assert.Contains(t, names, "[Content_Types].xml")
	assert.Contains(t, names, "_rels/.rels")
	require.NotEmpty(t, document)
	assert.Contains(t, document, "Liste des Produits")
	// The ampersand in the product name must survive as an entity.
	assert.Contains(t, document, "Thé &amp; infusions")
	assert.NotContains(t, document, "Thé & infusions")
}
