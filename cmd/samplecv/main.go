// Command samplecv writes a sample Indonesian résumé as a DOCX file, useful
// for trying the parse and score endpoints without real candidate data.
package main

import (
	"flag"
	"os"

	"github.com/talentshift/ats/internal/docgen"
	"github.com/talentshift/ats/pkg/logx"
)

func main() {
	out := flag.String("out", "sample_cv.docx", "output path for the generated DOCX")
	flag.Parse()

	var doc docgen.Document
	for _, line := range []string{
		"Andi Wijaya",
		"Backend Developer",
		"Email: andi.wijaya@email.com",
		"Phone: 0812-3456-7890",
		"Location: Jakarta",
		"",
		"PENDIDIKAN",
		"S1 Teknik Informatika - Universitas Indonesia (2015-2019)",
		"",
		"PENGALAMAN KERJA",
		"Backend Developer - PT Teknologi Nusantara (2019-sekarang)",
		"5 years of experience building REST API services with Python and PostgreSQL",
		"",
		"PELATIHAN",
		"Hacktiv8 Full Stack JavaScript Bootcamp (2019)",
		"",
		"PORTFOLIO",
		"github.com/andiwijaya",
		"linkedin.com/in/andiwijaya",
	} {
		doc.AddParagraph(line)
	}
	doc.AddTable([][]string{
		{"Skill", "Level"},
		{"Python", "Advanced"},
		{"PostgreSQL", "Advanced"},
		{"Docker", "Intermediate"},
		{"Redis", "Intermediate"},
		{"Git", "Advanced"},
	})

	content, err := doc.Bytes()
	if err != nil {
		logx.Fatalf("Failed to render document: %v", err)
	}
	if err := os.WriteFile(*out, content, 0o644); err != nil {
		logx.Fatalf("Failed to write %s: %v", *out, err)
	}
	logx.Infof("Wrote sample resume to %s (%d bytes)", *out, len(content))
}
