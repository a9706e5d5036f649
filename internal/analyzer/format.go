package analyzer

import (
	"fmt"
	"regexp"
	"strings"
)

// AnalysisSections holds every field of a search report. Built either from
// a canned pattern match or by regex extraction from the model's raw
// answer; lives for a single request.
type AnalysisSections struct {
	TechnicalCause      string
	CommonScenarios     string
	TechnicalBackground string

	Steps []string

	DesignPattern    string
	CodeOrganization string
	CommonPitfalls   string
	ErrorHandling    string

	BeforeCode      string
	AfterCode       string
	AlternativeCode string
}

// Static fallbacks used when a field cannot be extracted from the model
// output. Each extractor is independent; a single garbled answer degrades
// field by field instead of failing the whole report.
const (
	fallbackTechnicalCause      = "Unable to determine cause"
	fallbackCommonScenarios     = "No common scenarios identified"
	fallbackTechnicalBackground = "No additional background available"
	fallbackDesignPattern       = "Validate and convert data at system boundaries"
	fallbackCodeOrganization    = "Keep type conversions close to where data enters the program"
	fallbackCommonPitfalls      = "No specific pitfalls identified"
	fallbackErrorHandling       = "Wrap risky conversions in explicit error handling"
	fallbackCode                = "# No code example available"

	// Returned for Technical Cause whenever the query mentions TypeError,
	// regardless of what the model said. Known accuracy limitation: the
	// query text, not the actual cause, decides.
	typeErrorCause = "Python is a strongly typed language and does not allow operations between incompatible types without explicit conversion"
)

var fallbackSteps = []string{
	"Read the error message carefully to identify the failing operation",
	"Inspect the types of each operand involved",
	"Apply an explicit conversion so both operands share a type",
}

// Keyword sets locating the fenced code blocks in the model answer.
var (
	// "fixed" is checked before "correct": a bare substring scan for
	// "correct" would land on "Incorrect" first
	beforeCodeKeywords      = []string{"incorrect", "problematic", "error"}
	afterCodeKeywords       = []string{"fixed", "solution", "correct"}
	alternativeCodeKeywords = []string{"alternative", "another way", "instead"}
)

var (
	stepRe  = regexp.MustCompile(`(?i)step\s*\d*[ \t]*:[ \t]*(.+)`)
	fenceRe = regexp.MustCompile("(?s)```[a-zA-Z0-9_+-]*\n?(.*?)```")
)

// FormatReport turns the model's raw answer into the fixed four-section
// report. Pure and deterministic: the same raw text and query always yield
// byte-identical output, and extraction failures fall back to static text
// rather than erroring.
func FormatReport(raw, query string) string {
	return RenderReport(ParseSections(raw, query))
}

// ParseSections extracts every report field from the raw model answer.
func ParseSections(raw, query string) AnalysisSections {
	return AnalysisSections{
		TechnicalCause:      extractTechnicalCause(raw, query),
		CommonScenarios:     extractField(raw, "common scenarios", fallbackCommonScenarios),
		TechnicalBackground: extractField(raw, "technical background", fallbackTechnicalBackground),
		Steps:               extractSteps(raw),
		DesignPattern:       extractField(raw, "pattern", fallbackDesignPattern),
		CodeOrganization:    extractField(raw, "code organization", fallbackCodeOrganization),
		CommonPitfalls:      extractField(raw, "common pitfalls", fallbackCommonPitfalls),
		ErrorHandling:       extractField(raw, "error handling", fallbackErrorHandling),
		BeforeCode:          extractCode(raw, beforeCodeKeywords),
		AfterCode:           extractCode(raw, afterCodeKeywords),
		AlternativeCode:     extractCode(raw, alternativeCodeKeywords),
	}
}

// extractField finds "label:" (case-insensitive) and returns the text up to
// the next bullet or line break, or the fallback when absent.
func extractField(text, label, fallback string) string {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + `[ \t]*:[ \t]*([^\n•]+)`)
	m := re.FindStringSubmatch(text)
	if m == nil {
		return fallback
	}
	v := strings.TrimSpace(m[1])
	if v == "" {
		return fallback
	}
	return v
}

func extractTechnicalCause(text, query string) string {
	if strings.Contains(query, "TypeError") {
		return typeErrorCause
	}
	return extractField(text, "technical cause", fallbackTechnicalCause)
}

// extractSteps collects all "step N:" fragments in document order. Original
// numbering is discarded; steps are renumbered from 1 at render time.
func extractSteps(text string) []string {
	matches := stepRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return append([]string(nil), fallbackSteps...)
	}
	steps := make([]string, 0, len(matches))
	for _, m := range matches {
		step := strings.TrimSpace(m[1])
		if step != "" {
			steps = append(steps, step)
		}
	}
	if len(steps) == 0 {
		return append([]string(nil), fallbackSteps...)
	}
	return steps
}

// extractCode returns the body of the first fenced code block following any
// of the keywords (checked in order, case-insensitive).
func extractCode(text string, keywords []string) string {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		idx := strings.Index(lower, strings.ToLower(kw))
		if idx < 0 {
			continue
		}
		m := fenceRe.FindStringSubmatch(text[idx:])
		if m == nil {
			continue
		}
		body := strings.TrimSpace(m[1])
		if body != "" {
			return body
		}
	}
	return fallbackCode
}

const sectionRule = "----------------------------------------"

// RenderReport assembles the four sections in fixed order, each with a
// header line and a dashed rule. Steps carry their own numbering so they
// are rendered without the bullet-label prefix.
func RenderReport(s AnalysisSections) string {
	var b strings.Builder

	b.WriteString("ROOT CAUSE ANALYSIS\n")
	b.WriteString(sectionRule + "\n")
	fmt.Fprintf(&b, "• Technical Cause: %s\n", s.TechnicalCause)
	fmt.Fprintf(&b, "• Common Scenarios: %s\n", s.CommonScenarios)
	fmt.Fprintf(&b, "• Technical Background: %s\n", s.TechnicalBackground)
	b.WriteString("\n")

	b.WriteString("SOLUTION STEPS\n")
	b.WriteString(sectionRule + "\n")
	for i, step := range s.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	b.WriteString("\n")

	b.WriteString("PREVENTION GUIDE\n")
	b.WriteString(sectionRule + "\n")
	fmt.Fprintf(&b, "• Pattern: %s\n", s.DesignPattern)
	fmt.Fprintf(&b, "• Code Organization: %s\n", s.CodeOrganization)
	fmt.Fprintf(&b, "• Common Pitfalls: %s\n", s.CommonPitfalls)
	fmt.Fprintf(&b, "• Error Handling: %s\n", s.ErrorHandling)
	b.WriteString("\n")

	b.WriteString("CODE EXAMPLES\n")
	b.WriteString(sectionRule + "\n")
	fmt.Fprintf(&b, "• Problem Code:\n%s\n\n", s.BeforeCode)
	fmt.Fprintf(&b, "• Fixed Code:\n%s\n\n", s.AfterCode)
	fmt.Fprintf(&b, "• Alternative Solution:\n%s\n", s.AlternativeCode)

	return b.String()
}
