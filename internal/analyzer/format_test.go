package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleAnswer = "ROOT CAUSE ANALYSIS:\n" +
	"- Technical Cause: the index is off by one\n" +
	"- Common Scenarios: iterating past the last element\n" +
	"- Technical Background: slices are zero-indexed\n" +
	"\n" +
	"SOLUTION STEPS:\n" +
	"- Step 1: reproduce the failure\n" +
	"- Step 2: check the loop bounds\n" +
	"\n" +
	"PREVENTION GUIDE:\n" +
	"- Pattern: iterate with range\n" +
	"- Code Organization: extract bounds checks\n" +
	"- Common Pitfalls: manual index arithmetic\n" +
	"- Error Handling: validate indices before access\n" +
	"\n" +
	"CODE EXAMPLES:\n" +
	"Incorrect:\n```python\nxs[len(xs)]\n```\n" +
	"Fixed:\n```python\nxs[len(xs)-1]\n```\n" +
	"Alternative:\n```python\nxs[-1]\n```\n"

func TestParseSectionsExtractsFields(t *testing.T) {
	s := ParseSections(sampleAnswer, "why does my loop crash")

	assert.Equal(t, "the index is off by one", s.TechnicalCause)
	assert.Equal(t, "iterating past the last element", s.CommonScenarios)
	assert.Equal(t, "slices are zero-indexed", s.TechnicalBackground)
	assert.Equal(t, []string{"reproduce the failure", "check the loop bounds"}, s.Steps)
	assert.Equal(t, "iterate with range", s.DesignPattern)
	assert.Equal(t, "xs[len(xs)]", s.BeforeCode)
	assert.Equal(t, "xs[len(xs)-1]", s.AfterCode)
	assert.Equal(t, "xs[-1]", s.AlternativeCode)
}

func TestParseSectionsFallbacks(t *testing.T) {
	s := ParseSections("the model rambled about something else entirely", "why")

	assert.Equal(t, "Unable to determine cause", s.TechnicalCause)
	assert.Equal(t, "No common scenarios identified", s.CommonScenarios)
	assert.Equal(t, fallbackSteps, s.Steps)
	assert.Equal(t, "# No code example available", s.BeforeCode)
	assert.Equal(t, "# No code example available", s.AfterCode)
	assert.Equal(t, "# No code example available", s.AlternativeCode)
}

func TestTechnicalCauseTypeErrorOverride(t *testing.T) {
	// the override ignores whatever cause the model reported
	s := ParseSections(sampleAnswer, "TypeError: unsupported operand type(s)")

	assert.Equal(t, typeErrorCause, s.TechnicalCause)
	assert.NotContains(t, s.TechnicalCause, "off by one")
}

func TestExtractStepsRenumbers(t *testing.T) {
	raw := "- Step 4: first thing\nsome prose\n- Step 9: second thing\n"
	report := FormatReport(raw, "q")

	assert.Contains(t, report, "1. first thing\n")
	assert.Contains(t, report, "2. second thing\n")
	assert.NotContains(t, report, "4. first thing")
}

func TestFormatReportGenericStepsFallback(t *testing.T) {
	report := FormatReport("no recognizable markers here", "q")

	assert.Contains(t, report, "1. Read the error message carefully to identify the failing operation\n")
	assert.Contains(t, report, "2. Inspect the types of each operand involved\n")
	assert.Contains(t, report, "3. Apply an explicit conversion so both operands share a type\n")
}

func TestFormatReportSectionOrder(t *testing.T) {
	report := FormatReport(sampleAnswer, "q")

	root := strings.Index(report, "ROOT CAUSE ANALYSIS")
	steps := strings.Index(report, "SOLUTION STEPS")
	prevention := strings.Index(report, "PREVENTION GUIDE")
	examples := strings.Index(report, "CODE EXAMPLES")

	require.True(t, root >= 0 && steps > root && prevention > steps && examples > prevention,
		"sections out of order: %d %d %d %d", root, steps, prevention, examples)
	assert.True(t, strings.HasPrefix(report, "ROOT CAUSE ANALYSIS\n"+sectionRule+"\n"))
}

func TestFormatReportIdempotent(t *testing.T) {
	first := FormatReport(sampleAnswer, "TypeError in my code")
	second := FormatReport(sampleAnswer, "TypeError in my code")

	assert.Equal(t, first, second)
}

func TestExtractCodeKeywordWithoutFence(t *testing.T) {
	// the fence does not need to be adjacent, only somewhere after the keyword
	raw := "This is incorrect usage.\nThe problematic part:\n```\nbad()\n```\n"
	s := ParseSections(raw, "q")

	assert.Equal(t, "bad()", s.BeforeCode)
}
