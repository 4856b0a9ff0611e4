package parser

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"resume-screener/internal/domain/resume"
)

var ErrUnsupportedFileType = errors.New("unsupported file type")

// Extractor turns raw resume text into an ExtractedProfile. Extraction is
// pure and heuristic: absent data degrades to empty defaults, never errors.
type Extractor struct {
	now func() time.Time
}

func NewExtractor() *Extractor {
	return &Extractor{now: time.Now}
}

// NewExtractorAt pins the extractor's clock, which anchors "present" end
// dates and year arithmetic.
func NewExtractorAt(now func() time.Time) *Extractor {
	if now == nil {
		now = time.Now
	}
	return &Extractor{now: now}
}

type ParseResult struct {
	RawText  string
	Profile  resume.ExtractedProfile
	Metadata resume.Metadata
}

// ParseResume decodes the file into text and extracts a structured profile.
// Only the declared type is consulted; an unknown type is the single fatal
// condition on the upload path.
func (e *Extractor) ParseResume(fileBytes []byte, fileName, fileType string) (ParseResult, error) {
	var text string
	switch strings.ToLower(fileType) {
	case "pdf":
		extracted, err := extractPDFText(fileBytes)
		if err != nil {
			return ParseResult{}, fmt.Errorf("pdf parsing failed: %w", err)
		}
		text = extracted
	case "txt":
		text = string(fileBytes)
	default:
		return ParseResult{}, fmt.Errorf("%w: %s", ErrUnsupportedFileType, fileType)
	}

	return ParseResult{
		RawText: text,
		Profile: e.Extract(text),
		Metadata: resume.Metadata{
			FileName:  fileName,
			FileType:  strings.ToLower(fileType),
			ParsedAt:  e.now(),
			WordCount: len(strings.Split(text, " ")),
		},
	}, nil
}

// Extract runs the full pipeline over one resume's text. Identity fields are
// pulled from the original-case text; everything else from the normalized
// form.
func (e *Extractor) Extract(text string) resume.ExtractedProfile {
	norm := Normalize(text)
	now := e.now()

	return resume.ExtractedProfile{
		Name:                 ExtractName(text),
		Email:                ExtractEmail(text),
		Phone:                ExtractPhone(text),
		Skills:               ExtractSkills(norm),
		Experience:           ExtractExperience(norm, now),
		Education:            ExtractEducation(norm),
		Certifications:       ExtractCertifications(norm),
		TotalExperienceYears: CalculateTotalExperience(norm, now),
		Summary:              extractSummary(norm),
	}
}

func extractSummary(normText string) string {
	sections := ExtractSections(normText, summarySectionHeaders)
	if len(sections) == 0 {
		return ""
	}
	return truncate(sections[0], 500)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func extractPDFText(fileBytes []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(fileBytes), int64(len(fileBytes)))
	if err != nil {
		return "", err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var b bytes.Buffer
	if _, err := b.ReadFrom(plain); err != nil {
		return "", err
	}
	return b.String(), nil
}
