package doctext

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// ExtractDOCX extracts text from a DOCX container: body paragraphs first,
// newline-separated, then table cells row-major (cells space-joined, rows
// newline-joined). Failures degrade to whatever was collected.
func ExtractDOCX(content []byte) string {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return ""
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return ""
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return ""
			}
			break
		}
	}
	if len(docXML) == 0 {
		return ""
	}

	paragraphs, tables := walkDocumentXML(docXML)

	var sb strings.Builder
	for _, p := range paragraphs {
		sb.WriteString(p)
		sb.WriteByte('\n')
	}
	for _, table := range tables {
		for _, row := range table {
			sb.WriteString(strings.Join(row, " "))
			sb.WriteString(" \n")
		}
	}
	return sb.String()
}

// walkDocumentXML streams through document.xml collecting body-level
// paragraph texts and table cell texts. Paragraphs inside table cells belong
// to the cell, not the paragraph list.
func walkDocumentXML(docXML []byte) (paragraphs []string, tables [][][]string) {
	dec := xml.NewDecoder(bytes.NewReader(docXML))

	var (
		tableDepth int
		inText     bool
		para       strings.Builder
		inPara     bool
		cell       strings.Builder
		inCell     bool
		curRow     []string
		curTable   [][]string
	)

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
				if tableDepth == 1 {
					curTable = nil
				}
			case "tr":
				if tableDepth == 1 {
					curRow = nil
				}
			case "tc":
				if tableDepth == 1 {
					inCell = true
					cell.Reset()
				}
			case "p":
				if tableDepth == 0 {
					inPara = true
					para.Reset()
				}
			case "t":
				inText = true
			case "tab":
				if inPara {
					para.WriteByte('\t')
				}
				if inCell {
					cell.WriteByte('\t')
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				if tableDepth == 1 && len(curTable) > 0 {
					tables = append(tables, curTable)
				}
				tableDepth--
			case "tr":
				if tableDepth == 1 {
					curTable = append(curTable, curRow)
				}
			case "tc":
				if tableDepth == 1 {
					curRow = append(curRow, cell.String())
					inCell = false
				}
			case "p":
				if tableDepth == 0 && inPara {
					paragraphs = append(paragraphs, para.String())
					inPara = false
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if !inText {
				continue
			}
			if inCell {
				cell.Write(t)
			} else if inPara {
				para.Write(t)
			}
		}
	}
	return paragraphs, tables
}
