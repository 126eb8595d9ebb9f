//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/query"
	"hotel-booking/internal/infra/repository"
	repositorymock "hotel-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	runAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.CreateNotificationJobParams) error {
			assert.Equal(t, "booking.confirmed", arg.Topic)
			assert.Equal(t, repository.JobStatusQueued, arg.Status)
			assert.Equal(t, runAt, arg.RunAt.Time)
			return nil
		})

	err := repository.NewNotificationRepository(mockQueries, mockDB).CreateJob(ctx, "email", "booking.confirmed", []byte(`{"id":"1"}`), runAt)
	require.NoError(t, err)
}

func TestNotificationRepository_MarkFailed(t *testing.T) {
	ctx := context.Background()
	jobID := uuid.New()
	retryAt := time.Date(2025, 1, 1, 0, 5, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		retryAt      *time.Time
		expectStatus string
	}{
		{name: "requeued with a retry time", retryAt: &retryAt, expectStatus: repository.JobStatusQueued},
		{name: "parked without a retry time", expectStatus: repository.JobStatusFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
			mockDB := &mockDBTX{}

			mockQueries.EXPECT().UpdateNotificationJobStatus(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.UpdateNotificationJobStatusParams) error {
					assert.Equal(t, jobID, arg.ID)
					assert.Equal(t, tc.expectStatus, arg.Status)
					assert.Equal(t, "broker down", arg.LastError.String)
					assert.Equal(t, tc.retryAt != nil, arg.RunAt.Valid)
					return nil
				})

			err := repository.NewNotificationRepository(mockQueries, mockDB).MarkFailed(ctx, jobID, "broker down", tc.retryAt)
			require.NoError(t, err)
		})
	}
}

func TestNotificationRepository_ClaimDueError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	mockQueries.EXPECT().ClaimNotificationJobs(ctx, mockDB, int32(10)).Return(nil, errors.New("timeout"))

	_, err := repository.NewNotificationRepository(mockQueries, mockDB).ClaimDue(ctx, 10)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
