package pdftotext

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/archivist-labs/docmatch-cli/internal/core/ports/driven"
)

// Ensure execRunner implements the interface.
var _ driven.CommandRunner = execRunner{}

// execRunner executes commands via os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return nil, fmt.Errorf("%s: %w: %s", name, err, firstLine(msg))
	}
	return stdout.Bytes(), nil
}

// firstLine keeps stderr reporting to a single line per failed item.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
