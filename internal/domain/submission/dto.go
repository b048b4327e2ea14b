package submission

type SubmitResponseInput struct {
	FormID  string         `json:"form_id" binding:"required"`
	Answers map[string]any `json:"answers" binding:"required"`
}

type SubmitResult struct {
	OK bool `json:"ok"`
}

type ListResponsesInput struct {
	Password string `json:"password"`
}

type ResponseList struct {
	FormID    string     `json:"formId"`
	Total     int        `json:"total"`
	Responses []Response `json:"responses"`
}
