package analyzer

import (
	"fmt"
	"strings"

	"codesearch/apimodels"
)

// formatInstructions pins the model to the exact labels the extractors in
// format.go search for.
const formatInstructions = `Structure your answer exactly as follows:

ROOT CAUSE ANALYSIS:
- Technical Cause: <one sentence>
- Common Scenarios: <one sentence>
- Technical Background: <one sentence>

SOLUTION STEPS:
- Step 1: <action>
- Step 2: <action>
- Step 3: <action>

PREVENTION GUIDE:
- Pattern: <one sentence>
- Code Organization: <one sentence>
- Common Pitfalls: <one sentence>
- Error Handling: <one sentence>

CODE EXAMPLES:
Incorrect:
` + "```" + `
<problem code>
` + "```" + `
Fixed:
` + "```" + `
<fixed code>
` + "```" + `
Alternative:
` + "```" + `
<alternative solution>
` + "```"

func buildPrompt(req apimodels.SearchRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Analyze this coding question and explain the underlying problem.\n\nQuestion: %s\n", req.Query)

	if req.Code != "" {
		lang := req.Language
		if lang == "" || lang == "auto" {
			lang = ""
		}
		fmt.Fprintf(&b, "\nCode:\n```%s\n%s\n```\n", lang, req.Code)
	}

	b.WriteString("\n" + formatInstructions)
	return b.String()
}
