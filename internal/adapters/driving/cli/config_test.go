package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseConfigValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want any
	}{
		{name: "integer", raw: "85", want: 85},
		{name: "negative integer", raw: "-1", want: -1},
		{name: "bool true", raw: "true", want: true},
		{name: "bool false", raw: "false", want: false},
		{name: "plain string", raw: "/data/pdfs", want: "/data/pdfs"},
		{name: "numeric-looking path", raw: "85a", want: "85a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseConfigValue(tt.raw))
		})
	}
}

func TestKnownKeys_CoverEveryResolvedKey(t *testing.T) {
	for _, key := range []string{keyPDFDir, keyRecordsDir, keyReportPath, keyReportFormat, keyThreshold, keyWorkers, keyExcerptRadius, keyPdftotextBinary} {
		assert.Contains(t, knownKeys, key)
	}
}
