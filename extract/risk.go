package extract

import (
	"regexp"
	"strings"

	"github.com/caresuite/answerkit/core"
)

var (
	riskValue  = regexp.MustCompile(`(?i)RISK\s*=\s*(YES|NO)`)
	riskReason = regexp.MustCompile(`(?i)REASON\s*=[ \t]*(.*)`)
)

// RiskCheck parses a risk-check response in the fixed two-line key/value
// shape. A response without a recognizable RISK token is treated as no
// risk, and a missing REASON yields an empty reason.
func RiskCheck(text string) core.RiskCheck {
	result := core.RiskCheck{}

	if m := riskValue.FindStringSubmatch(text); m != nil {
		result.HasRisk = strings.EqualFold(m[1], "YES")
	}
	if m := riskReason.FindStringSubmatch(text); m != nil {
		result.Reason = strings.TrimSpace(m[1])
	}
	return result
}
