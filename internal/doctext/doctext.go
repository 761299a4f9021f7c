// Package doctext converts raw document bytes into plain text, attempting to
// preserve reading order. All entry points are total: on any failure they
// return whatever text could be recovered, down to the empty string.
package doctext

// MIME types accepted by the extraction adapters.
const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Extract converts document bytes to plain text based on the declared content
// type. Unknown types are treated as DOCX-like containers; rejecting them is
// the caller's responsibility.
func Extract(content []byte, contentType string) string {
	if contentType == MimePDF {
		return ExtractPDF(content)
	}
	return ExtractDOCX(content)
}
