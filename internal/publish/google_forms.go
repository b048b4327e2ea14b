// Package publish mirrors saved surveys to Google Forms.
package publish

import (
	"context"
	"errors"
	"fmt"

	"github.com/linskybing/survey-platform/internal/domain/form"
	"google.golang.org/api/forms/v1"
	"google.golang.org/api/option"
)

var ErrNotConfigured = errors.New("publishing is not configured")

type Result struct {
	FormID       string
	ResponderURI string
}

type Publisher interface {
	Publish(ctx context.Context, title, description string, questions []form.Question) (*Result, error)
}

type GoogleFormsPublisher struct {
	service *forms.Service
}

// NewGoogleFormsPublisher authenticates with a service account credentials file.
func NewGoogleFormsPublisher(ctx context.Context, credentialsFile string) (*GoogleFormsPublisher, error) {
	if credentialsFile == "" {
		return nil, ErrNotConfigured
	}
	svc, err := forms.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(forms.FormsBodyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create forms service: %w", err)
	}
	return &GoogleFormsPublisher{service: svc}, nil
}

// Publish creates the form and then adds the description and items in one
// batch; the create call only accepts a title.
func (p *GoogleFormsPublisher) Publish(ctx context.Context, title, description string, questions []form.Question) (*Result, error) {
	created, err := p.service.Forms.Create(&forms.Form{
		Info: &forms.Info{
			Title:         title,
			DocumentTitle: title,
		},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create form: %w", err)
	}

	requests := BuildRequests(description, questions)
	if len(requests) > 0 {
		_, err = p.service.Forms.BatchUpdate(created.FormId, &forms.BatchUpdateFormRequest{
			Requests: requests,
		}).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("failed to update form %s: %w", created.FormId, err)
		}
	}

	return &Result{FormID: created.FormId, ResponderURI: created.ResponderUri}, nil
}

func BuildRequests(description string, questions []form.Question) []*forms.Request {
	var requests []*forms.Request
	if description != "" {
		requests = append(requests, &forms.Request{
			UpdateFormInfo: &forms.UpdateFormInfoRequest{
				Info:       &forms.Info{Description: description},
				UpdateMask: "description",
			},
		})
	}
	for i, q := range questions {
		requests = append(requests, &forms.Request{
			CreateItem: &forms.CreateItemRequest{
				Item: toItem(q),
				Location: &forms.Location{
					Index:           int64(i),
					ForceSendFields: []string{"Index"},
				},
			},
		})
	}
	return requests
}

func toItem(q form.Question) *forms.Item {
	question := &forms.Question{Required: q.Required}

	switch choice := choiceType(q.Type); {
	case choice != "" && len(q.Options) > 0:
		options := make([]*forms.Option, 0, len(q.Options))
		for _, o := range q.Options {
			options = append(options, &forms.Option{Value: o})
		}
		question.ChoiceQuestion = &forms.ChoiceQuestion{Type: choice, Options: options}
	case q.Type == form.TypeTextarea:
		question.TextQuestion = &forms.TextQuestion{Paragraph: true}
	default:
		question.TextQuestion = &forms.TextQuestion{}
	}

	return &forms.Item{
		Title:        q.Label,
		QuestionItem: &forms.QuestionItem{Question: question},
	}
}

func choiceType(t string) string {
	switch t {
	case form.TypeRadio:
		return "RADIO"
	case form.TypeCheckbox:
		return "CHECKBOX"
	case form.TypeSelect:
		return "DROP_DOWN"
	}
	return ""
}
