//go:build !integration
// +build !integration

package http_common

import (
	"errors"
	"net/http"
	"testing"

	"github.com/humanbelnik/cineverse/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type CommonUnitSuite struct {
	suite.Suite
}

func (s *CommonUnitSuite) TestStatusAndMessage(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation",
			err:        errors.Join(model.ErrValidation, errors.New("Query is required")),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Query is required",
		},
		{
			name:       "not found",
			err:        errors.Join(model.ErrNotFound, errors.New("Notification not found")),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Notification not found",
		},
		{
			name:       "upstream",
			err:        errors.Join(model.ErrUnavailable, errors.New("catalog down")),
			wantStatus: http.StatusBadGateway,
			wantMsg:    "catalog down",
		},
		{
			name:       "internal passes store text",
			err:        errors.Join(model.ErrInternal, errors.Join(errors.New("wrap"), errors.New("connection refused"))),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "connection refused",
		},
		{
			name:       "plain",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "boom",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			assert.Equal(t, tc.wantStatus, Status(tc.err))
			assert.Equal(t, tc.wantMsg, Message(tc.err))
		})
	}
}

func TestCommonUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(CommonUnitSuite))
}
