//go:build e2e

package booking_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/shared/money"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/dbtest"
	"hotel-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type fixture struct {
	categoryID uuid.UUID
	roomIDs    []uuid.UUID
	breakfast  uuid.UUID
}

func (s *BookingSuite) seed(t *testing.T, rooms int) fixture {
	t.Helper()
	categoryID := dbtest.CreateTestCategory(t, s.DB, "Double", 5000, 3)
	ids := builder.RoomIDs(rooms)
	for i, id := range ids {
		dbtest.CreateTestRoom(t, s.DB, id, categoryID, string(rune('A'+i))+"01")
	}
	return fixture{
		categoryID: categoryID,
		roomIDs:    ids,
		breakfast:  dbtest.CreateTestExtra(t, s.DB, "Breakfast", 1000, true),
	}
}

// day returns a calendar date n days from today, far enough out for a free cancellation.
func day(n int) time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 60+n)
}

func (s *BookingSuite) TestCreateAndRead() {
	s.Run("Normal case: booking is priced, assigned and queued for notification", func() {
		t := s.T()
		ctx := context.Background()
		f := s.seed(t, 2)

		created, err := s.Commands.Create(ctx, commands.CreateBookingRequest{
			GuestID:    uuid.New(),
			CategoryID: f.categoryID,
			CheckIn:    day(0),
			CheckOut:   day(1),
			Occupancy:  2,
			ExtraIDs:   []uuid.UUID{f.breakfast},
		})
		require.NoError(t, err)
		require.Equal(t, "70.00", created.TotalPrice().String())
		require.Equal(t, f.roomIDs[0], *created.RoomID())

		view, err := s.Queries.GetBooking(ctx, created.ID())
		require.NoError(t, err)
		require.Equal(t, "Double", view.CategoryName)
		require.Equal(t, int64(7000), view.TotalPriceCents)
		require.Equal(t, booking.StatusPending.String(), view.Status)

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "booking_extras", "booking_id = $1", created.ID()))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "notification_jobs", "topic = $1", "booking.confirmed"))
	})
}

func (s *BookingSuite) TestConcurrentCreate() {
	s.Run("Edge case: concurrent requests never double-book a room", func() {
		t := s.T()
		ctx := context.Background()
		f := s.seed(t, 2)

		const workers = 6
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded []*booking.Booking
			failures  []error
		)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				b, err := s.Commands.Create(ctx, commands.CreateBookingRequest{
					GuestID:    uuid.New(),
					CategoryID: f.categoryID,
					CheckIn:    day(0),
					CheckOut:   day(3),
					Occupancy:  1,
				})
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					failures = append(failures, err)
					return
				}
				succeeded = append(succeeded, b)
			}()
		}
		wg.Wait()

		require.Len(t, succeeded, 2)
		require.NotEqual(t, *succeeded[0].RoomID(), *succeeded[1].RoomID())
		for _, err := range failures {
			require.True(t, errs.Is(err, errs.ErrNoAvailability) || errs.Is(err, errs.ErrConcurrencyConflict), "unexpected error: %v", err)
		}
		require.Equal(t, 2, dbtest.CountRows(t, s.DB, "bookings", ""))
	})
}

func (s *BookingSuite) TestOverlapConstraint() {
	s.Run("Edge case: the exclusion constraint rejects an overlapping row", func() {
		t := s.T()
		ctx := context.Background()
		f := s.seed(t, 1)

		first, err := s.Commands.Create(ctx, commands.CreateBookingRequest{
			GuestID: uuid.New(), CategoryID: f.categoryID, CheckIn: day(0), CheckOut: day(2), Occupancy: 1,
		})
		require.NoError(t, err)

		_, err = s.DB.Exec(ctx, `
			INSERT INTO bookings (id, booking_number, guest_id, category_id, room_id, check_in, check_out, occupancy, status, total_price_cents)
			VALUES ($1, 'BK-MANUAL', $2, $3, $4, $5, $6, 1, 'PENDING', 0)`,
			uuid.New(), uuid.New(), f.categoryID, *first.RoomID(), day(1), day(3))

		var pgErr *pgconn.PgError
		require.ErrorAs(t, err, &pgErr)
		require.Equal(t, "23P01", pgErr.Code)
	})
}

func (s *BookingSuite) TestUpdateWritesAudit() {
	s.Run("Normal case: an update persists one row per changed field", func() {
		t := s.T()
		ctx := context.Background()
		f := s.seed(t, 1)

		created, err := s.Commands.Create(ctx, commands.CreateBookingRequest{
			GuestID: uuid.New(), CategoryID: f.categoryID, CheckIn: day(0), CheckOut: day(2), Occupancy: 1,
		})
		require.NoError(t, err)

		occupancy := 2
		extras := []uuid.UUID{f.breakfast}
		updated, err := s.Commands.Update(ctx, created.ID(), commands.UpdateBookingRequest{
			Occupancy: &occupancy,
			ExtraIDs:  &extras,
		}, uuid.New(), "guest called")
		require.NoError(t, err)
		require.Equal(t, "120.00", updated.TotalPrice().String())
		require.Equal(t, created.Version()+1, updated.Version())

		mods, err := s.Queries.ListModifications(ctx, created.ID())
		require.NoError(t, err)
		fields := make([]string, 0, len(mods))
		for _, m := range mods {
			fields = append(fields, m.FieldChanged)
			require.Equal(t, mods[0].ModifiedAt, m.ModifiedAt)
		}
		require.Equal(t, []string{booking.FieldAmount, booking.FieldTotalPrice, booking.FieldExtras}, fields)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "notification_jobs", "topic = $1", "booking.modified"))
	})
}

func (s *BookingSuite) TestCancelReconcilesBilling() {
	s.Run("Normal case: early cancellation refunds the payment in full", func() {
		t := s.T()
		ctx := context.Background()
		f := s.seed(t, 1)

		created, err := s.Commands.Create(ctx, commands.CreateBookingRequest{
			GuestID: uuid.New(), CategoryID: f.categoryID, CheckIn: day(0), CheckOut: day(2), Occupancy: 1,
		})
		require.NoError(t, err)
		_, err = s.Commands.RecordPayment(ctx, created.ID(), money.NewMoney(10000), "card")
		require.NoError(t, err)
		_, err = s.Commands.IssueInvoice(ctx, created.ID())
		require.NoError(t, err)

		c, err := s.Commands.Cancel(ctx, created.ID(), "plans changed", uuid.New())
		require.NoError(t, err)
		require.True(t, c.Fee().IsZero())
		require.Equal(t, "100.00", c.Refunded().String())

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "booking_cancellations", "booking_id = $1", created.ID()))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "payments", "booking_id = $1 AND status = 'REFUNDED'", created.ID()))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "invoices", "booking_id = $1 AND status = 'REFUNDED'", created.ID()))

		available, err := s.Commands.IsRoomAvailable(ctx, f.categoryID, day(0), day(2), nil)
		require.NoError(t, err)
		require.True(t, available)
	})
}
