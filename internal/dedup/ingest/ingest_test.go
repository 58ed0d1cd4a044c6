package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRecordsAssemblesFullName(t *testing.T) {
	rows := []map[string]string{
		{"first_name": "John", "middle_name": "A", "last_name": "Smith"},
		{"first_name": "Jane", "middle_name": "", "last_name": "Doe"},
		{"first_name": " Maria ", "middle_name": "  ", "last_name": " Garcia "},
	}
	recs := ToRecords(rows, DefaultMapping())
	require.Len(t, recs, 3)
	assert.Equal(t, "John A Smith", recs[0].Name)
	assert.Equal(t, "Jane Doe", recs[1].Name)
	assert.Equal(t, "Maria Garcia", recs[2].Name)
}

func TestToRecordsRowIDs(t *testing.T) {
	rows := []map[string]string{
		{"first_name": "John", "last_name": "Smith"},
		{"id": "emp-7", "first_name": "Jane", "last_name": "Doe"},
	}
	recs := ToRecords(rows, DefaultMapping())
	require.Len(t, recs, 2)
	assert.Equal(t, "row 1", recs[0].ID)
	assert.Equal(t, "emp-7", recs[1].ID)
	assert.Equal(t, 0, recs[0].Seq)
	assert.Equal(t, 1, recs[1].Seq)
}

func TestToRecordsFullColumnWins(t *testing.T) {
	rows := []map[string]string{
		{"full_name": "Dr. John Smith", "first_name": "John", "last_name": "Smith"},
	}
	recs := ToRecords(rows, DefaultMapping())
	require.Len(t, recs, 1)
	assert.Equal(t, "Dr. John Smith", recs[0].Name)
}

func TestResolveKeyVariants(t *testing.T) {
	row := map[string]string{"First Name": "John", "LAST-NAME": "Smith", "Full Name (as printed)": "x"}

	assert.Equal(t, "First Name", resolveKey(row, "first_name|first"))
	assert.Equal(t, "LAST-NAME", resolveKey(row, "last_name|surname"))
	// composite header resolves by containment
	assert.Equal(t, "Full Name (as printed)", resolveKey(row, "full_name"))
	assert.Equal(t, "", resolveKey(row, ""))
	assert.Equal(t, "", resolveKey(row, "zip_code"))
}

func TestToRecordsKeepsBlankNames(t *testing.T) {
	// blank rows stay in: the engine reports them as skipped
	rows := []map[string]string{
		{"first_name": "", "last_name": ""},
		{"first_name": "John", "last_name": "Smith"},
	}
	recs := ToRecords(rows, DefaultMapping())
	require.Len(t, recs, 2)
	assert.Equal(t, "", recs[0].Name)
	assert.Equal(t, "John Smith", recs[1].Name)
}
