package analysis

type AnalyzeResponsesInput struct {
	FormID   string `json:"formId"`
	Password string `json:"password"`
}

// Analysis is the summary shape the model is asked to produce. The model's own
// JSON object is returned as-is, so this type only backs the canned results.
type Analysis struct {
	Summary          string         `json:"summary"`
	Insights         []string       `json:"insights"`
	Statistics       map[string]any `json:"statistics"`
	Recommendations  []string       `json:"recommendations"`
	DetailedAnalysis map[string]any `json:"detailedAnalysis,omitempty"`
}

type Result struct {
	Analysis       map[string]any `json:"analysis" swaggertype:"object"`
	TotalResponses int            `json:"totalResponses"`
	FormTitle      string         `json:"formTitle,omitempty"`
	ReportKey      string         `json:"reportKey,omitempty"`
}

// AdHocInput asks for an analysis of responses that are not stored.
type AdHocInput struct {
	FormTitle    *string          `json:"formTitle" binding:"required"`
	Responses    []map[string]any `json:"responses" binding:"required"`
	Instructions string           `json:"instructions"`
}
