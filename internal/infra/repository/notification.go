package repository

import (
	"context"
	"time"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/query"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db query.DBTX, arg query.CreateNotificationJobParams) error
	ClaimNotificationJobs(ctx context.Context, db query.DBTX, limit int32) ([]query.NotificationJob, error)
	UpdateNotificationJobStatus(ctx context.Context, db query.DBTX, arg query.UpdateNotificationJobStatusParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      query.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db query.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	params := query.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
		Status:  JobStatusQueued,
	}

	if err := r.queries.CreateNotificationJob(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// ClaimDue row-locks up to limit queued jobs whose run_at has passed.
func (r *NotificationRepository) ClaimDue(ctx context.Context, limit int32) ([]query.NotificationJob, error) {
	jobs, err := r.queries.ClaimNotificationJobs(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, jobID uuid.UUID) error {
	return r.updateStatus(ctx, jobID, JobStatusSent, nil, nil)
}

// MarkFailed requeues the job at retryAt, or parks it as failed when retryAt is nil.
func (r *NotificationRepository) MarkFailed(ctx context.Context, jobID uuid.UUID, lastError string, retryAt *time.Time) error {
	status := JobStatusFailed
	if retryAt != nil {
		status = JobStatusQueued
	}
	return r.updateStatus(ctx, jobID, status, &lastError, retryAt)
}

func (r *NotificationRepository) updateStatus(ctx context.Context, jobID uuid.UUID, status string, lastError *string, runAt *time.Time) error {
	params := query.UpdateNotificationJobStatusParams{
		ID:     jobID,
		Status: status,
		RunAt:  pgconv.TimePtrToPgtype(runAt),
	}
	if lastError != nil {
		params.LastError = pgtype.Text{String: *lastError, Valid: true}
	}

	if err := r.queries.UpdateNotificationJobStatus(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}
	return nil
}
