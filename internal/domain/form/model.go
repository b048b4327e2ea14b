package form

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Kind string

const (
	KindGeneral    Kind = "general"
	KindCounseling Kind = "counseling"
)

// Question is one input of a survey form.
type Question struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// Schema is the JSON blob kept in forms.schema.
type Schema struct {
	Type         Kind       `json:"type"`
	Fields       []Question `json:"fields"`
	Protected    bool       `json:"protected"`
	PasswordHash *string    `json:"passwordHash"`
}

// View strips the password digest.
func (s Schema) View() SchemaView {
	return SchemaView{
		Type:      s.Type,
		Fields:    s.Fields,
		Protected: s.Protected,
	}
}

type SchemaView struct {
	Type      Kind       `json:"type"`
	Fields    []Question `json:"fields"`
	Protected bool       `json:"protected"`
}

type Form struct {
	ID          string                     `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string                     `json:"title" gorm:"not null"`
	Description string                     `json:"description" gorm:"type:text"`
	Schema      datatypes.JSONType[Schema] `json:"schema" gorm:"type:jsonb"`
	CreatedAt   time.Time                  `json:"created_at"`
}

func (f *Form) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
