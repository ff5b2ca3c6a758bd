package resume

import "strings"

const fence = "```"

// Normalize converts raw generated text into a consistent paragraph
// structure. It is pure and idempotent:
//
//  1. strip a leading/trailing code-fence marker,
//  2. replace horizontal rules (---) with newlines,
//  3. shallow level-3 headings (###) to level-2 (##),
//  4. drop blank lines, strip the rest, and rejoin with one blank line
//     between every pair of consecutive lines.
func Normalize(raw string) string {
	content := raw
	if strings.HasPrefix(content, fence) {
		content = content[len(fence):]
	}
	if strings.HasSuffix(content, fence) {
		content = content[:len(content)-len(fence)]
	}

	content = strings.ReplaceAll(content, "---", "\n")
	content = strings.ReplaceAll(content, "###", "##")

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, "\n\n")
}
