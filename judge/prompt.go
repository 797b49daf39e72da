package judge

import (
	"fmt"
	"strings"

	"github.com/hupe1980/toolcheck/toolcall"
)

const defaultSystemPrompt = "You are an evaluation judge for AI agents. " +
	"Compare the tools the agent actually called with the tools it was expected to call " +
	"and grade them against the given criterion. Respond by calling the " + VerdictToolName +
	" tool, or with a JSON object containing \"score\" (float 0-1) and \"reasoning\" (string)."

// buildPrompt renders the user message sent to the judge model.
func buildPrompt(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "CRITERION:\n%s\n\n", req.Criterion)
	if req.Input != "" {
		fmt.Fprintf(&b, "USER INPUT:\n%s\n\n", req.Input)
	}

	b.WriteString("TOOLS CALLED:\n")
	writeRecords(&b, req.Observed)
	b.WriteString("\nEXPECTED TOOLS:\n")
	writeRecords(&b, req.Expected)

	return b.String()
}

func writeRecords(b *strings.Builder, records []toolcall.Record) {
	if len(records) == 0 {
		b.WriteString("(none)\n")
		return
	}
	for i, r := range records {
		fmt.Fprintf(b, "TOOL CALL %d:\n", i+1)
		fmt.Fprintf(b, "  Name: %s\n", r.Name())
		if r.Description() != "" {
			fmt.Fprintf(b, "  Description: %s\n", r.Description())
		}
		if r.Reasoning() != "" {
			fmt.Fprintf(b, "  Reasoning: %s\n", r.Reasoning())
		}
		fmt.Fprintf(b, "  Input Parameters: %s\n", toolcall.Object(r.InputParameters()))
		fmt.Fprintf(b, "  Output: %s\n", r.Output())
	}
}
