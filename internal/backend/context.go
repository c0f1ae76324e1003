package backend

import (
	"fmt"
	"os"
	"strings"
)

// contextMarker delimits file-derived context appended to a prompt.
const contextMarker = "[CONTEXT]"

// ReadFiles concatenates the contents of the named files, each under a header
// naming its path, for inclusion in a prompt. The second return value is a
// human-readable log of what was included. Per-file failures are recorded in
// the log only; partial context is acceptable and never aborts an operation.
func ReadFiles(paths []string) (context string, log string) {
	var combined []string
	var logParts []string

	for _, p := range paths {
		data, err := os.ReadFile(p)
		switch {
		case err == nil:
			combined = append(combined, fmt.Sprintf("\n===== FILE: %s =====\n%s\n", p, data))
			logParts = append(logParts, fmt.Sprintf("Included file: %s (%d chars)", p, len(data)))
		case os.IsNotExist(err):
			logParts = append(logParts, fmt.Sprintf("File not found: %s", p))
		default:
			logParts = append(logParts, fmt.Sprintf("Error reading %s: %v", p, err))
		}
	}

	return strings.Join(combined, ""), strings.Join(logParts, "\n")
}

// withContext appends file context to a prompt under the context marker.
func withContext(prompt, context string) string {
	if context == "" {
		return prompt
	}
	return fmt.Sprintf("%s\n\n%s\n%s", prompt, contextMarker, context)
}
