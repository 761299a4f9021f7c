package doctext

import (
	"bytes"
	"math"
	"sort"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
)

// rowHeight is the vertical bucket size, in PDF user-space units, used to
// group text runs into approximate visual lines. Small vertical jitter inside
// a line (superscripts, icon fonts) stays within one bucket.
const rowHeight = 50

// ExtractPDF extracts text from a PDF, preferring a layout-aware pass that
// restores approximate reading order for multi-column layouts. If that pass
// panics or yields nothing, it falls back to linear extraction.
func ExtractPDF(content []byte) string {
	if text := extractPDFLayout(content); strings.TrimSpace(text) != "" {
		return text
	}
	return extractPDFLinear(content)
}

type positionedRun struct {
	x, y, w  float64
	fontSize float64
	s        string
}

// extractPDFLayout buckets positioned text runs into rows and sorts rows
// top-to-bottom, runs within a row left-to-right. Returns "" on any failure;
// malformed PDFs can make the reader panic, which is recovered here.
func extractPDFLayout(content []byte) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return ""
	}

	var sb strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		runs := make([]positionedRun, 0, len(page.Content().Text))
		for _, t := range page.Content().Text {
			if t.S == "" {
				continue
			}
			runs = append(runs, positionedRun{x: t.X, y: t.Y, w: t.W, fontSize: t.FontSize, s: t.S})
		}
		if len(runs) == 0 {
			continue
		}

		// PDF user space grows upward, so higher Y means closer to the top of
		// the page. Bucketing by y/rowHeight and sorting buckets descending
		// yields top-to-bottom order.
		sort.SliceStable(runs, func(i, j int) bool {
			bi := int(math.Floor(runs[i].y / rowHeight))
			bj := int(math.Floor(runs[j].y / rowHeight))
			if bi != bj {
				return bi > bj
			}
			return runs[i].x < runs[j].x
		})

		prevBucket := math.MinInt32
		var rowEnd float64
		for _, run := range runs {
			bucket := int(math.Floor(run.y / rowHeight))
			switch {
			case prevBucket == math.MinInt32:
				// first run on the page
			case bucket != prevBucket:
				sb.WriteByte('\n')
			case needsGap(rowEnd, run):
				sb.WriteByte(' ')
			}
			sb.WriteString(run.s)
			rowEnd = run.x + run.w
			prevBucket = bucket
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// needsGap reports whether a space should separate two adjacent runs in the
// same row. Producers split words across runs with near-zero gaps; inserting
// a space there would shred tokens the field extractors match on.
func needsGap(prevEnd float64, next positionedRun) bool {
	gap := next.x - prevEnd
	threshold := next.fontSize * 0.3
	if threshold <= 0 {
		threshold = 1
	}
	return gap > threshold
}

// extractPDFLinear concatenates page text in document order without layout
// reconstruction.
func extractPDFLinear(content []byte) string {
	doc, err := fitz.NewFromMemory(content)
	if err != nil {
		return ""
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			continue
		}
		sb.WriteString(pageText)
	}
	return sb.String()
}
