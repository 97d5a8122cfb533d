package csvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/config"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func testStore(t *testing.T, dir string) *Store {
	t.Helper()
	cfg := config.DataConfig{
		Dir:             dir,
		DemographicFile: "demographic.csv",
		BiometricFile:   "biometric.csv",
		EnrolmentFile:   "enrolment.csv",
	}
	return NewStore(cfg, zap.NewNop()).(*Store)
}

func TestLoadTables(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "demographic.csv",
		"state,district,pincode,date,demo_age_5_17,demo_age_17_\n"+
			"Bihar,Patna,800001,2025-01-01,4000,6000\n"+
			"Bihar,Gaya,823001,2025-01-01,3000,2000\n")
	writeFixture(t, dir, "biometric.csv",
		"state,district,bio_age_5_17,bio_age_17_\n"+
			"Bihar,Patna,200,300\n")

	store := testStore(t, dir)
	tables, err := store.LoadTables(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, tables.Demographic.Len())
	assert.Equal(t, 1, tables.Biometric.Len())
	// enrolment.csv does not exist; the table is empty, not an error.
	assert.True(t, tables.Enrolment.Empty())

	row := tables.Demographic.Rows[0]
	assert.Equal(t, "Bihar", row.State)
	assert.Equal(t, "Patna", row.District)
	assert.Equal(t, "800001", row.Pincode)
	assert.Equal(t, "2025-01-01", row.Date)
	assert.Equal(t, 4000.0, row.Count(domain.ColDemoAge5_17))
	assert.Equal(t, 6000.0, row.Count(domain.ColDemoAge17))
}

func TestLoadTables_AllMissing(t *testing.T) {
	store := testStore(t, t.TempDir())

	tables, err := store.LoadTables(context.Background())

	require.NoError(t, err)
	assert.True(t, tables.Demographic.Empty())
	assert.True(t, tables.Biometric.Empty())
	assert.True(t, tables.Enrolment.Empty())
}

func TestLoadTables_MalformedCells(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "demographic.csv",
		"state,district,demo_age_5_17,demo_age_17_\n"+
			"Bihar,Patna,not-a-number,6000\n"+
			"Bihar,Gaya,3000\n")

	store := testStore(t, dir)
	tables, err := store.LoadTables(context.Background())

	require.NoError(t, err)
	require.Equal(t, 2, tables.Demographic.Len())

	// Malformed cell coerces to 0.
	assert.Equal(t, 0.0, tables.Demographic.Rows[0].Count(domain.ColDemoAge5_17))
	assert.Equal(t, 6000.0, tables.Demographic.Rows[0].Count(domain.ColDemoAge17))

	// Short row pads its missing columns with 0.
	assert.Equal(t, 3000.0, tables.Demographic.Rows[1].Count(domain.ColDemoAge5_17))
	assert.Equal(t, 0.0, tables.Demographic.Rows[1].Count(domain.ColDemoAge17))
}

func TestLoadTables_HeaderNormalization(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "demographic.csv",
		"State, District ,DEMO_AGE_5_17\nBihar,Patna,100\n")

	store := testStore(t, dir)
	tables, err := store.LoadTables(context.Background())

	require.NoError(t, err)
	require.Equal(t, 1, tables.Demographic.Len())
	assert.Equal(t, "Bihar", tables.Demographic.Rows[0].State)
	assert.Equal(t, 100.0, tables.Demographic.Rows[0].Count(domain.ColDemoAge5_17))
}

func TestLoadTables_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "demographic.csv", "")

	store := testStore(t, dir)
	tables, err := store.LoadTables(context.Background())

	require.NoError(t, err)
	assert.True(t, tables.Demographic.Empty())
}
