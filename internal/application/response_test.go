package application

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/survey-platform/internal/domain/form"
	"github.com/linskybing/survey-platform/internal/domain/submission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSubmitResponse_Invalid(t *testing.T) {
	env := setupServices(t, Deps{})

	_, err := env.svc.Response.SubmitResponse(context.Background(), submission.SubmitResponseInput{
		Answers: map[string]any{"q1": "a"},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.svc.Response.SubmitResponse(context.Background(), submission.SubmitResponseInput{
		FormID: testFormID,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSubmitResponse_FormNotFound(t *testing.T) {
	env := setupServices(t, Deps{})
	env.forms.EXPECT().GetFormByID(gomock.Any(), testFormID).Return(nil, gorm.ErrRecordNotFound)

	_, err := env.svc.Response.SubmitResponse(context.Background(), submission.SubmitResponseInput{
		FormID:  testFormID,
		Answers: map[string]any{},
	})

	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestSubmitResponse_RequiredMissing(t *testing.T) {
	fields := []form.Question{
		{ID: "name", Label: "이름", Type: "text", Required: true},
		{ID: "hobby", Label: "취미", Type: "checkbox", Required: true, Options: []string{"a"}},
	}
	tests := []struct {
		name    string
		answers map[string]any
	}{
		{"absent", map[string]any{"hobby": []any{"a"}}},
		{"blank string", map[string]any{"name": "  ", "hobby": []any{"a"}}},
		{"empty selection", map[string]any{"name": "kim", "hobby": []any{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupServices(t, Deps{})
			env.forms.EXPECT().GetFormByID(gomock.Any(), testFormID).Return(openForm(fields...), nil)

			_, err := env.svc.Response.SubmitResponse(context.Background(), submission.SubmitResponseInput{
				FormID:  testFormID,
				Answers: tt.answers,
			})

			assert.ErrorIs(t, err, ErrRequiredAnswerMissing)
		})
	}
}

func TestSubmitResponse_Success(t *testing.T) {
	env := setupServices(t, Deps{})
	env.forms.EXPECT().GetFormByID(gomock.Any(), testFormID).
		Return(openForm(form.Question{ID: "q1", Label: "L", Type: "number", Required: true}), nil)
	env.responses.EXPECT().CreateResponse(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, r *submission.Response) error {
			assert.Equal(t, testFormID, r.FormID)
			var got map[string]any
			require.NoError(t, json.Unmarshal(r.Answers, &got))
			assert.Equal(t, map[string]any{"q1": float64(3), "extra": "x"}, got)
			return nil
		})

	res, err := env.svc.Response.SubmitResponse(context.Background(), submission.SubmitResponseInput{
		FormID:  testFormID,
		Answers: map[string]any{"q1": 3, "extra": "x"},
	})

	require.NoError(t, err)
	assert.True(t, res.OK)
}

func TestSubmitResponse_ProtectedFormAcceptsAnonymous(t *testing.T) {
	env := setupServices(t, Deps{})
	env.forms.EXPECT().GetFormByID(gomock.Any(), testFormID).Return(protectedForm("1234"), nil)
	env.responses.EXPECT().CreateResponse(gomock.Any(), gomock.Any()).Return(nil)

	_, err := env.svc.Response.SubmitResponse(context.Background(), submission.SubmitResponseInput{
		FormID:  testFormID,
		Answers: map[string]any{},
	})

	assert.NoError(t, err)
}

func TestSubmitResponse_StoreError(t *testing.T) {
	env := setupServices(t, Deps{})
	env.forms.EXPECT().GetFormByID(gomock.Any(), testFormID).Return(openForm(), nil)
	env.responses.EXPECT().CreateResponse(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

	_, err := env.svc.Response.SubmitResponse(context.Background(), submission.SubmitResponseInput{
		FormID:  testFormID,
		Answers: map[string]any{},
	})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestListResponses(t *testing.T) {
	env := setupServices(t, Deps{})
	env.forms.EXPECT().GetFormByID(gomock.Any(), testFormID).Return(protectedForm("1234"), nil)
	env.responses.EXPECT().ListResponsesByFormID(gomock.Any(), testFormID).
		Return([]submission.Response{{ID: "r1", FormID: testFormID}}, nil)

	list, err := env.svc.Response.ListResponses(context.Background(), testFormID, Access{Password: "1234"})

	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, "r1", list.Responses[0].ID)
}

func TestListResponses_WrongPassword(t *testing.T) {
	env := setupServices(t, Deps{})
	env.forms.EXPECT().GetFormByID(gomock.Any(), testFormID).Return(protectedForm("1234"), nil)

	_, err := env.svc.Response.ListResponses(context.Background(), testFormID, Access{Password: "4321"})

	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestListResponses_Empty(t *testing.T) {
	env := setupServices(t, Deps{})
	env.forms.EXPECT().GetFormByID(gomock.Any(), testFormID).Return(openForm(), nil)
	env.responses.EXPECT().ListResponsesByFormID(gomock.Any(), testFormID).Return(nil, nil)

	list, err := env.svc.Response.ListResponses(context.Background(), testFormID, Access{})

	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
	assert.NotNil(t, list.Responses)
}
