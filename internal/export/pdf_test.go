package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CurveLab/internal/curve"
	"CurveLab/internal/editor"
)

func testCurveAndView(t *testing.T) (*curve.Curve, *editor.Viewport) {
	t.Helper()
	c, err := curve.WithAutoTangents([]float64{0, 1, 2}, []float64{0, 1, 0})
	require.NoError(t, err)
	return c, editor.NewViewport(editor.Vec{T: 0, V: -0.5}, editor.Vec{T: 2, V: 2})
}

func TestWritePDFProducesDocument(t *testing.T) {
	c, vp := testCurveAndView(t)
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, c, vp))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestExportFileWritesPath(t *testing.T) {
	c, vp := testCurveAndView(t)
	path := filepath.Join(t.TempDir(), "curve.pdf")
	require.NoError(t, ExportFile(path, c, vp))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
