package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers: []string{"Order ID", "Status"},
		Rows: []map[string]string{
			{"Order ID": "ord-1", "Status": "Completed"},
			{"Order ID": "ord-2", "Status": "In-Transit"},
		},
	}
}

func TestCSVRender(t *testing.T) {
	payload, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)
	out := string(payload)
	assert.Contains(t, out, "Order ID,Status")
	assert.Contains(t, out, "ord-1,Completed")
	assert.Contains(t, out, "ord-2,In-Transit")
}

func TestCSVRenderRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFRender(t *testing.T) {
	payload, err := NewPDFExporter().Render(sampleDataset(), "Order Report")
	require.NoError(t, err)
	assert.Greater(t, len(payload), 500)
	assert.Equal(t, "%PDF", string(payload[:4]))
}

func TestPDFRenderRequiresHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Dataset{}, "")
	assert.Error(t, err)
}
