// Package docgen writes minimal DOCX containers. It exists for sample résumé
// generation and as a fixture builder for extraction tests; it emits only the
// parts a WordprocessingML reader needs (content types, package rels,
// document.xml).
package docgen

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// Document is an ordered list of paragraphs followed by optional tables.
type Document struct {
	Paragraphs []string
	Tables     []Table
}

// Table is row-major cell text.
type Table [][]string

// AddParagraph appends a body paragraph.
func (d *Document) AddParagraph(text string) {
	d.Paragraphs = append(d.Paragraphs, text)
}

// AddTable appends a table after the paragraphs.
func (d *Document) AddTable(rows [][]string) {
	d.Tables = append(d.Tables, rows)
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// Bytes renders the document as a DOCX file.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", d.documentXML()},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.body)); err != nil {
			return nil, fmt.Errorf("write %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close container: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *Document) documentXML() string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range d.Paragraphs {
		writeParagraph(&sb, p)
	}
	for _, table := range d.Tables {
		sb.WriteString("<w:tbl>")
		for _, row := range table {
			sb.WriteString("<w:tr>")
			for _, cellText := range row {
				sb.WriteString("<w:tc>")
				writeParagraph(&sb, cellText)
				sb.WriteString("</w:tc>")
			}
			sb.WriteString("</w:tr>")
		}
		sb.WriteString("</w:tbl>")
	}
	sb.WriteString(`</w:body></w:document>`)
	return sb.String()
}

func writeParagraph(sb *strings.Builder, text string) {
	sb.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
	_ = xml.EscapeText(sb, []byte(text))
	sb.WriteString(`</w:t></w:r></w:p>`)
}
