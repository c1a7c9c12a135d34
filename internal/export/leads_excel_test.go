package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/coastalrealty/coastal-api/internal/models"
)

func sampleLeads() []models.Lead {
	phone := "(561) 555-0142"
	message := "Looking in Jupiter | Timeline: 3 months"
	return []models.Lead{
		{
			ID:        1,
			Name:      "Jane Doe",
			Email:     "jane@example.com",
			Phone:     &phone,
			Type:      models.LeadTypeContact,
			Message:   &message,
			Source:    models.DefaultLeadSource,
			CreatedAt: time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:        2,
			Name:      "Sam Ortiz",
			Email:     "sam@example.com",
			Type:      models.LeadTypeChat,
			Source:    "live-chat",
			CreatedAt: time.Date(2025, 3, 11, 14, 0, 0, 0, time.UTC),
		},
	}
}

func TestLeadsWorkbook(t *testing.T) {
	f, err := LeadsWorkbook(sampleLeads())
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(leadSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, leadExportHeader, rows[0][:len(leadExportHeader)])

	assert.Equal(t, "Jane Doe", rows[1][1])
	assert.Equal(t, "(561) 555-0142", rows[1][3])
	assert.Equal(t, "Looking in Jupiter | Timeline: 3 months", rows[1][6])
	assert.Equal(t, "2025-03-10 09:30:00", rows[1][7])

	// Optional fields come through as empty cells, not placeholders.
	assert.Equal(t, "", rows[2][3])
	assert.Equal(t, "live-chat", rows[2][5])
}

func TestLeadsWorkbook_Empty(t *testing.T) {
	f, err := LeadsWorkbook(nil)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(leadSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestWriteLeadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.xlsx")

	require.NoError(t, WriteLeadsFile(sampleLeads(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(leadSheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
