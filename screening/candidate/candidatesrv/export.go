package candidatesrv

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/talentshift/ats/internal/scoring"
	"github.com/talentshift/ats/screening/candidate"
)

// exportColumns is the fixed export layout; the last six columns are the
// total score followed by the per-category scores.
var exportColumns = []string{
	"Rank", "Name", "Email", "Phone", "Location", "Total Score", "Status",
	"Education", "Experience", "Skills", "Bootcamp", "Portfolio",
}

// Export renders candidates ranked by total score as CSV or XLSX.
func (s *Service) Export(ctx context.Context, req candidate.ExportRequest) (*candidate.ExportResult, error) {
	candidates, err := s.repo.ListAll(ctx, req.JobID)
	if err != nil {
		return nil, candidate.ErrExportFailed().WithCause(err)
	}

	timestamp := time.Now().Format("20060102_150405")
	switch req.Format {
	case "xlsx":
		content, err := renderXLSX(candidates)
		if err != nil {
			return nil, candidate.ErrExportFailed().WithCause(err)
		}
		return &candidate.ExportResult{
			Filename:    "candidates_" + timestamp + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     content,
		}, nil
	case "", "csv":
		content, err := renderCSV(candidates)
		if err != nil {
			return nil, candidate.ErrExportFailed().WithCause(err)
		}
		return &candidate.ExportResult{
			Filename:    "candidates_" + timestamp + ".csv",
			ContentType: "text/csv",
			Content:     content,
		}, nil
	default:
		return nil, candidate.ErrInvalidRequest().WithDetail("format", req.Format)
	}
}

func exportRow(rank int, c *candidate.Candidate) []string {
	categoryScore := func(name string) string {
		if breakdown, ok := c.Breakdown[name]; ok {
			return strconv.FormatFloat(breakdown.Score, 'f', 1, 64)
		}
		return ""
	}
	return []string{
		strconv.Itoa(rank),
		c.Name,
		c.Email,
		c.Phone,
		c.Location,
		strconv.FormatFloat(c.TotalScore, 'f', 1, 64),
		string(c.Qualification),
		categoryScore(scoring.CategoryEducation),
		categoryScore(scoring.CategoryExperience),
		categoryScore(scoring.CategorySkills),
		categoryScore(scoring.CategoryBootcamp),
		categoryScore(scoring.CategoryPortfolio),
	}
}

func renderCSV(candidates []candidate.Candidate) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportColumns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for i := range candidates {
		if err := w.Write(exportRow(i+1, &candidates[i])); err != nil {
			return nil, fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func renderXLSX(candidates []candidate.Candidate) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Candidates"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for col, title := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}
	f.SetColWidth(sheet, "B", "C", 25)
	f.SetColWidth(sheet, "D", "E", 18)

	for i := range candidates {
		for col, value := range exportRow(i+1, &candidates[i]) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
