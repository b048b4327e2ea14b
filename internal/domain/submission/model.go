package submission

import (
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/survey-platform/internal/domain/form"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Response is one submitted set of answers for a form.
type Response struct {
	ID        string         `json:"id" gorm:"type:uuid;primaryKey"`
	FormID    string         `json:"form_id" gorm:"type:uuid;not null;index"`
	Answers   datatypes.JSON `json:"answers" gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `json:"created_at"`
	Form      form.Form      `json:"-" gorm:"foreignKey:FormID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (r *Response) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
