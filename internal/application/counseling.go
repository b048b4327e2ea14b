package application

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/linskybing/survey-platform/internal/domain/form"
	"gopkg.in/yaml.v2"
)

//go:embed templates/counseling.yaml
var counselingYAML []byte

// CounselingScript is the interview script counseling forms are derived from.
type CounselingScript struct {
	Title       string              `yaml:"title"`
	Description string              `yaml:"description"`
	Heading     string              `yaml:"heading"`
	Sections    []CounselingSection `yaml:"sections"`
}

type CounselingSection struct {
	Name      string   `yaml:"name"`
	Questions []string `yaml:"questions"`
}

var defaultCounselingScript = mustParseCounselingScript(counselingYAML)

func ParseCounselingScript(data []byte) (*CounselingScript, error) {
	var script CounselingScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse counseling script: %w", err)
	}
	if len(script.Sections) == 0 {
		return nil, fmt.Errorf("parse counseling script: no sections")
	}
	return &script, nil
}

func mustParseCounselingScript(data []byte) *CounselingScript {
	script, err := ParseCounselingScript(data)
	if err != nil {
		panic(err)
	}
	return script
}

// Text renders the script as the numbered outline handed to the model.
func (s *CounselingScript) Text() string {
	var b strings.Builder
	b.WriteString(s.Heading)
	b.WriteString("\n")
	for i, sec := range s.Sections {
		fmt.Fprintf(&b, "%d. %s\n", i+1, sec.Name)
		for _, q := range sec.Questions {
			fmt.Fprintf(&b, "- %s\n", q)
		}
	}
	return b.String()
}

// FallbackForm turns every script question into an optional textarea.
func (s *CounselingScript) FallbackForm() *form.CounselingForm {
	fields := make([]form.Question, 0)
	for i, sec := range s.Sections {
		for j, q := range sec.Questions {
			fields = append(fields, form.Question{
				ID:    fmt.Sprintf("s%d_q%d", i+1, j+1),
				Label: q,
				Type:  form.TypeTextarea,
			})
		}
	}
	return &form.CounselingForm{
		Title:       s.Title,
		Description: s.Description,
		Fields:      fields,
	}
}
