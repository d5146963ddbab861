package orchestrator

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/spf13/afero"
	"setup-cli/internal/interfaces"
)

// OutputHandler implements the OutputHandler interface
type OutputHandler struct {
	fs     afero.Fs
	stdout io.Writer
}

// NewOutputHandler creates a new output handler
func NewOutputHandler(fs afero.Fs, stdout io.Writer) interfaces.OutputHandler {
	return &OutputHandler{fs: fs, stdout: stdout}
}

// WriteToFile replaces the file at path. Parent directories are not created.
func (h *OutputHandler) WriteToFile(content string, path string) error {
	return afero.WriteFile(h.fs, path, []byte(content), 0644)
}

// WriteToStdout writes content to standard output
func (h *OutputHandler) WriteToStdout(content string) error {
	_, err := fmt.Fprint(h.stdout, content)
	return err
}

// WriteToClipboard copies content to the system clipboard
func (h *OutputHandler) WriteToClipboard(content string) error {
	return clipboard.WriteAll(content)
}
