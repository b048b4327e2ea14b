package form

type GenerateFormInput struct {
	Prompt string `json:"prompt"`
}

// GeneratedForm is the builder payload returned by form generation.
type GeneratedForm struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

type CounselingForm struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Fields      []Question `json:"fields"`
}

type SaveFormInput struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Fields      []map[string]any `json:"fields"`
	Type        string           `json:"type"`
	Password    string           `json:"password"`
}

type SaveFormResult struct {
	FormID  string `json:"formId"`
	URL     string `json:"url"`
	Message string `json:"message"`
}

type FetchFormInput struct {
	Password string `json:"password"`
}

type FormView struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Schema      SchemaView `json:"schema"`
	Protected   bool       `json:"protected"`
	AccessToken string     `json:"accessToken,omitempty"`
}

type PublishFormInput struct {
	Password string `json:"password"`
}

type PublishResult struct {
	GoogleFormID string `json:"googleFormId"`
	ResponderURI string `json:"responderUri"`
}
