package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatDecisionOrg renders a DecisionRecord as an Org-mode block suitable
// for pasting into a trading journal. Structured facts live in a PROPERTIES
// drawer for easy search; a Review placeholder is left for the narrative.
func FormatDecisionOrg(d DecisionRecord) string {
	verdict := "ADMITTED"
	if !d.Admitted {
		verdict = "REJECTED"
	}
	heading := fmt.Sprintf("** Order: %s %s %s (%s)", d.Symbol, d.Side, verdict, shortID(d.DecisionID))
	when := d.Time.UTC().Format(time.RFC3339)

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":DECISION_ID: %s\n", d.DecisionID))
	b.WriteString(fmt.Sprintf(":ID: %s\n", d.DecisionID))
	b.WriteString(fmt.Sprintf(":TIME: %s\n", when))
	b.WriteString(fmt.Sprintf(":SYMBOL: %s\n", d.Symbol))
	b.WriteString(fmt.Sprintf(":SIDE: %s\n", d.Side))
	b.WriteString(fmt.Sprintf(":EST_MAX_LOSS: %.2f\n", d.EstMaxLoss))
	b.WriteString(fmt.Sprintf(":EST_VALUE: %.2f\n", d.EstValue))
	b.WriteString(fmt.Sprintf(":ADMITTED: %t\n", d.Admitted))
	if d.Reasons != "" {
		b.WriteString(fmt.Sprintf(":REASONS: %s\n", d.Reasons))
	}
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Review\n- \n")

	return b.String()
}

// FormatDecisionsOrg renders multiple decisions separated by blank lines.
func FormatDecisionsOrg(recs []DecisionRecord) string {
	var b strings.Builder
	for i, d := range recs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatDecisionOrg(d))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
