package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caresuite/answerkit/core"
)

func TestRiskCheck(t *testing.T) {
	tests := []struct {
		name string
		text string
		want core.RiskCheck
	}{
		{
			name: "risk with reason",
			text: "RISK = YES\nREASON = 含有敏感词",
			want: core.RiskCheck{HasRisk: true, Reason: "含有敏感词"},
		},
		{
			name: "no risk",
			text: "RISK = NO\nREASON = 无",
			want: core.RiskCheck{HasRisk: false, Reason: "无"},
		},
		{
			name: "compact form without spaces",
			text: "RISK=YES\nREASON=夸大功效",
			want: core.RiskCheck{HasRisk: true, Reason: "夸大功效"},
		},
		{
			name: "case-insensitive keys and values",
			text: "risk = yes\nreason = 绝对化用语",
			want: core.RiskCheck{HasRisk: true, Reason: "绝对化用语"},
		},
		{
			name: "reason captures to end of line only",
			text: "RISK = YES\nREASON = 涉及医疗声明\n以上是判断依据。",
			want: core.RiskCheck{HasRisk: true, Reason: "涉及医疗声明"},
		},
		{
			name: "risk without reason",
			text: "RISK = YES",
			want: core.RiskCheck{HasRisk: true},
		},
		{
			name: "unstructured text treated as no risk",
			text: "no structured content",
			want: core.RiskCheck{},
		},
		{
			name: "empty input",
			text: "",
			want: core.RiskCheck{},
		},
		{
			name: "surrounding prose ignored",
			text: "经过检查，结论如下：\nRISK = NO\nREASON = 表述客观，无违规内容",
			want: core.RiskCheck{HasRisk: false, Reason: "表述客观，无违规内容"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RiskCheck(tt.text))
		})
	}
}
