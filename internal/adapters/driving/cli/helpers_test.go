package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archivist-labs/docmatch-cli/internal/adapters/driven/config/file"
	"github.com/archivist-labs/docmatch-cli/internal/adapters/driven/export/csvfile"
	"github.com/archivist-labs/docmatch-cli/internal/adapters/driven/export/xlsxfile"
	"github.com/archivist-labs/docmatch-cli/internal/core/domain"
)

func newTestConfig(t *testing.T) *file.ConfigStore {
	t.Helper()
	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestReportWriter(t *testing.T) {
	tests := []struct {
		format  string
		want    any
		wantErr bool
	}{
		{format: "", want: &csvfile.Writer{}},
		{format: "csv", want: &csvfile.Writer{}},
		{format: "CSV", want: &csvfile.Writer{}},
		{format: "xlsx", want: &xlsxfile.Writer{}},
		{format: "XLSX", want: &xlsxfile.Writer{}},
		{format: "pdf", wantErr: true},
		{format: "tsv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("format_"+tt.format, func(t *testing.T) {
			writer, err := reportWriter(tt.format)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, writer)
		})
	}
}

func TestDefaultReportPath(t *testing.T) {
	assert.Equal(t, "matches.csv", defaultReportPath("csv"))
	assert.Equal(t, "matches.csv", defaultReportPath(""))
	assert.Equal(t, "matches.xlsx", defaultReportPath("xlsx"))
	assert.Equal(t, "matches.xlsx", defaultReportPath("XLSX"))
}

func TestResolveString_Precedence(t *testing.T) {
	store := newTestConfig(t)
	require.NoError(t, store.Set(keyPDFDir, "/from/config"))

	cmd := &cobra.Command{}
	cmd.Flags().String("pdf-dir", "", "")

	// Config beats the default when the flag is untouched.
	assert.Equal(t, "/from/config", resolveString(store, cmd, "pdf-dir", keyPDFDir, "/default"))

	// A changed flag beats the config.
	require.NoError(t, cmd.Flags().Set("pdf-dir", "/from/flag"))
	assert.Equal(t, "/from/flag", resolveString(store, cmd, "pdf-dir", keyPDFDir, "/default"))
}

func TestResolveString_FallsBackToDefault(t *testing.T) {
	store := newTestConfig(t)

	cmd := &cobra.Command{}
	cmd.Flags().String("report", "", "")

	assert.Equal(t, "matches.csv", resolveString(store, cmd, "report", keyReportPath, "matches.csv"))
}

func TestResolveInt_Precedence(t *testing.T) {
	store := newTestConfig(t)
	require.NoError(t, store.Set(keyThreshold, 90))

	cmd := &cobra.Command{}
	cmd.Flags().Int("threshold", 0, "")

	assert.Equal(t, 90, resolveInt(store, cmd, "threshold", keyThreshold, 80))

	require.NoError(t, cmd.Flags().Set("threshold", "70"))
	assert.Equal(t, 70, resolveInt(store, cmd, "threshold", keyThreshold, 80))
}

func TestResolveInt_ZeroConfigFallsBackToDefault(t *testing.T) {
	store := newTestConfig(t)

	cmd := &cobra.Command{}
	cmd.Flags().Int("workers", 0, "")

	assert.Equal(t, 4, resolveInt(store, cmd, "workers", keyWorkers, 4))
}
