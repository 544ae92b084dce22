package question

import "strings"

// conditionSeparator is the literal delimiter between a question's two
// conditions.
const conditionSeparator = " + "

// splitConditions splits a question into its two trimmed conditions. Any
// other part count makes the question unmatchable for every handler.
func splitConditions(q string) (first, second string, ok bool) {
	parts := strings.Split(q, conditionSeparator)
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}
