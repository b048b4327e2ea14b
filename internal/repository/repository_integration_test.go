//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/linskybing/survey-platform/internal/domain/form"
	"github.com/linskybing/survey-platform/internal/domain/submission"
	"github.com/linskybing/survey-platform/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var testRepos *Repos

func TestMain(m *testing.M) {
	gormDB, cleanup := testutils.SetupPostgres()
	testRepos = New(gormDB)
	code := m.Run()
	cleanup()
	os.Exit(code)
}

func createTestForm(t *testing.T) *form.Form {
	t.Helper()
	f := &form.Form{
		Title:       "만족도 조사",
		Description: "테스트",
		Schema: datatypes.NewJSONType(form.Schema{
			Type:   form.KindGeneral,
			Fields: []form.Question{{ID: "q1", Label: "이름", Type: form.TypeText, Required: true}},
		}),
	}
	require.NoError(t, testRepos.Form.CreateForm(context.Background(), f))
	return f
}

func TestFormRepo_CreateAndGet(t *testing.T) {
	f := createTestForm(t)
	assert.NotEmpty(t, f.ID)
	assert.False(t, f.CreatedAt.IsZero())

	got, err := testRepos.Form.GetFormByID(context.Background(), f.ID)
	require.NoError(t, err)
	assert.Equal(t, f.Title, got.Title)
	assert.Equal(t, "q1", got.Schema.Data().Fields[0].ID)
}

func TestFormRepo_GetMissing(t *testing.T) {
	_, err := testRepos.Form.GetFormByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = testRepos.Form.GetFormByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestResponseRepo_CreateAndList(t *testing.T) {
	ctx := context.Background()
	f := createTestForm(t)

	for _, name := range []string{"kim", "lee"} {
		r := &submission.Response{FormID: f.ID, Answers: datatypes.JSON(`{"q1":"` + name + `"}`)}
		require.NoError(t, testRepos.Response.CreateResponse(ctx, r))
		assert.NotEmpty(t, r.ID)
	}

	list, err := testRepos.Response.ListResponsesByFormID(ctx, f.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestResponseRepo_ForeignKey(t *testing.T) {
	r := &submission.Response{FormID: uuid.NewString(), Answers: datatypes.JSON(`{}`)}
	assert.Error(t, testRepos.Response.CreateResponse(context.Background(), r))
}
