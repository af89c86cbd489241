package manifest

import "strings"

const recordSeparator = "\n"

var quoteEscaper = strings.NewReplacer(`"`, `""`)

// formatRecord renders one record with every field quoted, including empty ones, which is
// what the carriers' import tools expect.
func formatRecord(values []string) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(quoteEscaper.Replace(v))
		b.WriteByte('"')
	}
	b.WriteString(recordSeparator)
	return b.String()
}
