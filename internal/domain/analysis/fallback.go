package analysis

import "fmt"

const totalResponsesKey = "총 응답 수"

// Empty is returned when a form has no responses yet.
func Empty() Result {
	return Result{
		Analysis: Analysis{
			Summary:         "아직 응답이 없습니다.",
			Insights:        []string{},
			Statistics:      map[string]any{},
			Recommendations: []string{},
		}.Map(),
		TotalResponses: 0,
	}
}

// Fallback stands in for model output that could not be parsed.
func Fallback(total int) Analysis {
	return Analysis{
		Summary: fmt.Sprintf("총 %d개의 응답을 받았습니다.", total),
		Insights: []string{
			"응답 데이터가 수집되었습니다.",
			"상세한 분석을 위해 더 많은 응답이 필요할 수 있습니다.",
		},
		Statistics: map[string]any{
			totalResponsesKey: total,
		},
		Recommendations: []string{
			"더 많은 응답을 수집해보세요.",
			"구체적인 피드백을 요청해보세요.",
		},
	}
}

// Map renders the analysis with the same keys its JSON form carries.
func (a Analysis) Map() map[string]any {
	out := map[string]any{
		"summary":         a.Summary,
		"insights":        a.Insights,
		"statistics":      a.Statistics,
		"recommendations": a.Recommendations,
	}
	if a.Insights == nil {
		out["insights"] = []string{}
	}
	if a.Statistics == nil {
		out["statistics"] = map[string]any{}
	}
	if a.Recommendations == nil {
		out["recommendations"] = []string{}
	}
	if a.DetailedAnalysis != nil {
		out["detailedAnalysis"] = a.DetailedAnalysis
	}
	return out
}
