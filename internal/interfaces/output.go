package interfaces

// OutputHandler manages different output destinations
type OutputHandler interface {
	// WriteToFile replaces the file at path with content
	WriteToFile(content string, path string) error

	// WriteToStdout writes content to standard output
	WriteToStdout(content string) error

	// WriteToClipboard copies content to the system clipboard
	WriteToClipboard(content string) error
}
