package repository

import (
	"context"

	"hotel-booking/internal/domain/billing"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/query"
	"hotel-booking/internal/infra/repository/converter"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	InsertPayment(ctx context.Context, db query.DBTX, arg query.Payment) error
	UpdatePaymentRefund(ctx context.Context, db query.DBTX, arg query.UpdatePaymentRefundParams) (int64, error)
	ListPaymentsByBooking(ctx context.Context, db query.DBTX, bookingID uuid.UUID) ([]query.Payment, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      query.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db query.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *billing.Payment) error {
	if err := r.queries.InsertPayment(ctx, r.db, converter.PaymentToInfra(p)); err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) UpdateRefund(ctx context.Context, p *billing.Payment) error {
	affected, err := r.queries.UpdatePaymentRefund(ctx, r.db, query.UpdatePaymentRefundParams{
		ID:            p.ID(),
		Status:        string(p.Status()),
		RefundedCents: p.Refunded().Cents(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update payment", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PaymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*billing.Payment, error) {
	rows, err := r.queries.ListPaymentsByBooking(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}
	result := make([]*billing.Payment, 0, len(rows))
	for _, row := range rows {
		result = append(result, converter.PaymentToDomain(row))
	}
	return result, nil
}

type InvoiceWriteQueries interface {
	InsertInvoice(ctx context.Context, db query.DBTX, arg query.Invoice) error
	UpdateInvoiceStatus(ctx context.Context, db query.DBTX, arg query.UpdateInvoiceStatusParams) (int64, error)
	GetInvoiceByBooking(ctx context.Context, db query.DBTX, bookingID uuid.UUID) (query.Invoice, error)
}

type InvoiceRepository struct {
	queries InvoiceWriteQueries
	db      query.DBTX
}

func NewInvoiceRepository(queries InvoiceWriteQueries, db query.DBTX) *InvoiceRepository {
	return &InvoiceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *billing.Invoice) error {
	if err := r.queries.InsertInvoice(ctx, r.db, converter.InvoiceToInfra(inv)); err != nil {
		wrapped := infra.WrapRepoErr("failed to create invoice", err)
		if infra.IsKind(wrapped, infra.KindDuplicateKey) {
			return errs.Mark(wrapped, billing.ErrInvoiceExists)
		}
		return wrapped
	}
	return nil
}

func (r *InvoiceRepository) UpdateStatus(ctx context.Context, inv *billing.Invoice) error {
	affected, err := r.queries.UpdateInvoiceStatus(ctx, r.db, query.UpdateInvoiceStatusParams{
		ID:            inv.ID(),
		Status:        string(inv.Status()),
		RefundedCents: inv.Refunded().Cents(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update invoice", err)
	}
	if affected == 0 {
		return errs.Mark(infra.WrapRepoErr("invoice not found", nil, infra.KindNotFound), billing.ErrInvoiceNotFound)
	}
	return nil
}

func (r *InvoiceRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*billing.Invoice, error) {
	row, err := r.queries.GetInvoiceByBooking(ctx, r.db, bookingID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("invoice not found", err, infra.KindNotFound), billing.ErrInvoiceNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find invoice", err)
	}
	return converter.InvoiceToDomain(row), nil
}
