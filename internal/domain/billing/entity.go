package billing

import (
	"strings"
	"time"

	"hotel-booking/internal/domain/shared/money"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNonPositivePayment = errs.Mark(errs.New("payment amount must be positive"), errs.ErrValidation)
	ErrEmptyPaymentMethod = errs.Mark(errs.New("payment method cannot be empty"), errs.ErrValidation)
	ErrInvoiceExists      = errs.Mark(errs.New("booking already has an invoice"), errs.ErrValidation)
	ErrInvoiceNotFound    = errs.Mark(errs.New("invoice not found"), errs.ErrNotFound)
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentPartial  PaymentStatus = "PARTIAL"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

type InvoiceStatus string

const (
	InvoiceIssued   InvoiceStatus = "ISSUED"
	InvoicePaid     InvoiceStatus = "PAID"
	InvoicePartial  InvoiceStatus = "PARTIAL"
	InvoiceRefunded InvoiceStatus = "REFUNDED"
)

type Payment struct {
	id        uuid.UUID
	bookingID uuid.UUID
	amount    money.Money
	refunded  money.Money
	status    PaymentStatus
	method    string
	paidAt    *time.Time
}

// NewPaidPayment records money already collected for a booking.
func NewPaidPayment(bookingID uuid.UUID, amount money.Money, method string, at time.Time) (*Payment, error) {
	if amount.IsNegative() || amount.IsZero() {
		return nil, ErrNonPositivePayment
	}
	method = strings.TrimSpace(method)
	if method == "" {
		return nil, ErrEmptyPaymentMethod
	}
	paidAt := at
	return &Payment{
		id:        uuid.New(),
		bookingID: bookingID,
		amount:    amount,
		status:    PaymentPaid,
		method:    method,
		paidAt:    &paidAt,
	}, nil
}

func ReconstructPayment(id, bookingID uuid.UUID, amount, refunded money.Money, status PaymentStatus, method string, paidAt *time.Time) *Payment {
	return &Payment{
		id:        id,
		bookingID: bookingID,
		amount:    amount,
		refunded:  refunded,
		status:    status,
		method:    method,
		paidAt:    paidAt,
	}
}

func (p *Payment) ID() uuid.UUID         { return p.id }
func (p *Payment) BookingID() uuid.UUID  { return p.bookingID }
func (p *Payment) Amount() money.Money   { return p.amount }
func (p *Payment) Refunded() money.Money { return p.refunded }
func (p *Payment) Status() PaymentStatus { return p.status }
func (p *Payment) Method() string        { return p.method }
func (p *Payment) PaidAt() *time.Time    { return p.paidAt }

// ApplyRefund only touches PAID payments and reports whether anything changed.
func (p *Payment) ApplyRefund(refund money.Money) bool {
	if p.status != PaymentPaid {
		return false
	}
	if refund.LessThan(p.amount) {
		p.status = PaymentPartial
		p.refunded = refund
	} else {
		p.status = PaymentRefunded
		p.refunded = p.amount
	}
	return true
}

type Invoice struct {
	id        uuid.UUID
	bookingID uuid.UUID
	number    string
	amount    money.Money
	refunded  money.Money
	status    InvoiceStatus
	issuedAt  time.Time
}

func NewInvoice(bookingID uuid.UUID, number string, amount money.Money, at time.Time) (*Invoice, error) {
	if amount.IsNegative() {
		return nil, money.ErrNegativeAmount
	}
	return &Invoice{
		id:        uuid.New(),
		bookingID: bookingID,
		number:    number,
		amount:    amount,
		status:    InvoiceIssued,
		issuedAt:  at,
	}, nil
}

func ReconstructInvoice(id, bookingID uuid.UUID, number string, amount, refunded money.Money, status InvoiceStatus, issuedAt time.Time) *Invoice {
	return &Invoice{
		id:        id,
		bookingID: bookingID,
		number:    number,
		amount:    amount,
		refunded:  refunded,
		status:    status,
		issuedAt:  issuedAt,
	}
}

// InvoiceNumber mirrors the booking number it was issued for.
func InvoiceNumber(bookingNumber string) string {
	return "INV-" + bookingNumber
}

func (i *Invoice) ID() uuid.UUID         { return i.id }
func (i *Invoice) BookingID() uuid.UUID  { return i.bookingID }
func (i *Invoice) Number() string        { return i.number }
func (i *Invoice) Amount() money.Money   { return i.amount }
func (i *Invoice) Refunded() money.Money { return i.refunded }
func (i *Invoice) Status() InvoiceStatus { return i.status }
func (i *Invoice) IssuedAt() time.Time   { return i.issuedAt }

func (i *Invoice) MarkPaid() {
	if i.status == InvoiceIssued {
		i.status = InvoicePaid
	}
}

func (i *Invoice) ApplyRefund(refund money.Money) {
	if refund.LessThan(i.amount) {
		i.status = InvoicePartial
		i.refunded = refund
		return
	}
	i.status = InvoiceRefunded
	i.refunded = i.amount
}

// Reconcile applies a cancellation refund to every PAID payment and to the invoice,
// returning the payments that changed.
func Reconcile(payments []*Payment, invoice *Invoice, refund money.Money) []*Payment {
	var changed []*Payment
	for _, p := range payments {
		if p.ApplyRefund(refund) {
			changed = append(changed, p)
		}
	}
	if invoice != nil {
		invoice.ApplyRefund(refund)
	}
	return changed
}
