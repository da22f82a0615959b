//go:build !integration
// +build !integration

package usecase_recommendation

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/humanbelnik/cineverse/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	repo_mocks "github.com/humanbelnik/cineverse/internal/usecase/recommendation/mocks/recommendation/repository"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type UsecaseRecommendationUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase    *Usecase
	repository *repo_mocks.Repository
	ctx        context.Context
	now        time.Time
	logs       *bytes.Buffer
}

func initResources(t provider.T) *resources {
	repository := repo_mocks.NewRepository(t)
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	logs := &bytes.Buffer{}
	uc := New(repository,
		WithClock(func() time.Time { return now }),
		WithLogger(slog.New(slog.NewTextHandler(logs, nil))),
	)
	return &resources{
		usecase:    uc,
		repository: repository,
		ctx:        context.Background(),
		now:        now,
		logs:       logs,
	}
}

func (s *UsecaseRecommendationUnitSuite) TestSend(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		req        SendRequest
		setupMocks func(r *resources)
		expectErr  error
	}{
		{
			name: "Should store recommendation with copied movie fields",
			req: SendRequest{
				SenderID:    "u1",
				RecipientID: "u2",
				MovieID:     603,
				Message:     "you will like it",
				MovieTitle:  "The Matrix",
				MovieYear:   1999,
			},
			setupMocks: func(r *resources) {
				r.repository.On("Create", r.ctx, mock.MatchedBy(func(rec model.Recommendation) bool {
					return rec.MovieTitle == "The Matrix" && rec.MovieYear == 1999 && !rec.IsRead && rec.CreatedAt.Equal(r.now)
				})).Return(nil).Once()
			},
		},
		{
			name:       "Should reject missing movie",
			req:        SendRequest{SenderID: "u1", RecipientID: "u2"},
			setupMocks: func(r *resources) {},
			expectErr:  ErrInvalidRecommendation,
		},
		{
			name: "Should wrap store failure",
			req:  SendRequest{SenderID: "u1", RecipientID: "u2", MovieID: 1},
			setupMocks: func(r *resources) {
				r.repository.On("Create", r.ctx, mock.Anything).Return(errors.New("disk full")).Once()
			},
			expectErr: model.ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			rec, err := r.usecase.Send(r.ctx, tc.req)

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, rec.ID)
			assert.Equal(t, tc.req.Message, rec.Message)
		})
	}
}

func (s *UsecaseRecommendationUnitSuite) TestDelete(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		storeErr  error
		expectErr error
	}{
		{name: "Should delete existing recommendation"},
		{name: "Should report missing recommendation", storeErr: model.ErrNotFound, expectErr: ErrRecommendationNotFound},
		{name: "Should wrap store failure", storeErr: errors.New("boom"), expectErr: model.ErrInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			r.repository.On("Delete", r.ctx, "r1").Return(tc.storeErr).Once()

			err := r.usecase.Delete(r.ctx, "r1")

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func (s *UsecaseRecommendationUnitSuite) TestMarkRead(t provider.T) {
	r := initResources(t)
	r.repository.On("MarkRead", r.ctx, "r1", r.now).Return(model.Recommendation{ID: "r1", IsRead: true}, nil).Once()
	r.repository.On("MarkRead", r.ctx, "r2", r.now).Return(model.Recommendation{}, model.ErrNotFound).Once()

	rec, err := r.usecase.MarkRead(r.ctx, "r1")
	require.NoError(t, err)
	assert.True(t, rec.IsRead)

	_, err = r.usecase.MarkRead(r.ctx, "r2")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func (s *UsecaseRecommendationUnitSuite) TestList(t provider.T) {
	r := initResources(t)
	feed := []model.Recommendation{{ID: "r2"}, {ID: "r1"}}
	r.repository.On("ListByRecipient", r.ctx, "u2").Return(feed, nil).Once()

	got, err := r.usecase.List(r.ctx, "u2")

	require.NoError(t, err)
	assert.Equal(t, feed, got)
}

func (s *UsecaseRecommendationUnitSuite) TestDeleteIsLogged(t provider.T) {
	r := initResources(t)
	r.repository.On("Delete", r.ctx, "r1").Return(nil).Once()

	require.NoError(t, r.usecase.Delete(r.ctx, "r1"))
	assert.Contains(t, r.logs.String(), "recommendation deleted")
	assert.Contains(t, r.logs.String(), "recommendation_id=r1")
}

func TestUsecaseRecommendationUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseRecommendationUnitSuite))
}
