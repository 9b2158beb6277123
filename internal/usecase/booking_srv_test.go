package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"surf-booking/internal/data/entity"
	"surf-booking/internal/dto/request"
	"surf-booking/pkg/utils"
)

func newBookingServiceForTest(repo *fakeBookingRepo, now time.Time) *bookingService {
	return &bookingService{
		repo: repo,
		log:  zap.NewNop(),
		now:  func() time.Time { return now },
	}
}

func paymentNotification(paymentRef string, items int) *request.PaymentNotificationRequest {
	start := time.Date(2026, 7, 20, 9, 0, 0, 0, time.UTC)
	req := &request.PaymentNotificationRequest{
		PaymentRef: paymentRef,
		Amount:     decimal.NewFromInt(int64(items) * 90),
		Customer: request.CustomerInfo{
			Name:  "Kai Moana",
			Email: "kai@example.com",
			Phone: "+1-808-555-0101",
		},
	}
	for i := 0; i < items; i++ {
		req.Items = append(req.Items, request.BookingItem{
			Beach:      "Pacifica",
			LessonDate: "2026-07-20",
			StartTime:  start.Add(time.Duration(i) * 2 * time.Hour),
			EndTime:    start.Add(time.Duration(i)*2*time.Hour + 90*time.Minute),
			Price:      decimal.NewFromInt(90),
		})
	}
	return req
}

func TestUpsertByPaymentReference_CreatesBookings(t *testing.T) {
	now := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo()
	svc := newBookingServiceForTest(repo, now)

	bookings, err := svc.UpsertByPaymentReference(context.Background(), paymentNotification("pay_001", 3))
	require.NoError(t, err)
	require.Len(t, bookings, 3)

	// One confirmation number spans the whole payment.
	confirmation := bookings[0].ConfirmationNumber
	assert.NotEmpty(t, confirmation)
	for i, b := range bookings {
		assert.Equal(t, confirmation, b.ConfirmationNumber)
		assert.Equal(t, i, b.ItemIndex)
		assert.Equal(t, string(entity.BookingStatusConfirmed), string(b.Status))
		assert.Equal(t, 1, b.LessonsBooked)
	}
}

func TestUpsertByPaymentReference_DuplicateNotificationReturnsOriginal(t *testing.T) {
	now := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo()
	svc := newBookingServiceForTest(repo, now)

	first, err := svc.UpsertByPaymentReference(context.Background(), paymentNotification("pay_dup", 2))
	require.NoError(t, err)

	second, err := svc.UpsertByPaymentReference(context.Background(), paymentNotification("pay_dup", 2))
	require.NoError(t, err)

	require.Len(t, second, 2)
	assert.Equal(t, first[0].ConfirmationNumber, second[0].ConfirmationNumber)
	assert.Equal(t, first[0].ID, second[0].ID)

	// No extra rows landed.
	all, err := repo.FindByPaymentRef(context.Background(), "pay_dup")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpsertByPaymentReference_LostInsertRaceReturnsWinner(t *testing.T) {
	now := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo()
	svc := newBookingServiceForTest(repo, now)

	// Simulate the winner's rows landing between our duplicate check and
	// our insert.
	winner := &entity.Booking{
		Base:               entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		ConfirmationNumber: "SURF-20260715-WINNER",
		PaymentRef:         "pay_race",
		ItemIndex:          0,
		Status:             entity.BookingStatusConfirmed,
	}

	raced := false
	svc.now = func() time.Time {
		// buildBookings stamps timestamps after the duplicate check; use
		// that hook to inject the concurrent insert exactly once.
		if !raced {
			raced = true
			require.NoError(t, repo.CreateAll(context.Background(), []*entity.Booking{winner}))
		}
		return now
	}

	bookings, err := svc.UpsertByPaymentReference(context.Background(), paymentNotification("pay_race", 1))
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "SURF-20260715-WINNER", bookings[0].ConfirmationNumber)
}

func TestUpsertByPaymentReference_RejectsInvalidPayload(t *testing.T) {
	now := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	svc := newBookingServiceForTest(newFakeBookingRepo(), now)

	req := paymentNotification("", 1)
	_, err := svc.UpsertByPaymentReference(context.Background(), req)

	var validationErr *utils.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestGetByPaymentRef_NotFound(t *testing.T) {
	now := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	svc := newBookingServiceForTest(newFakeBookingRepo(), now)

	_, err := svc.GetByPaymentRef(context.Background(), "pay_missing")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestGetByConfirmationNumber(t *testing.T) {
	now := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo()
	svc := newBookingServiceForTest(repo, now)

	created, err := svc.UpsertByPaymentReference(context.Background(), paymentNotification("pay_conf", 2))
	require.NoError(t, err)

	found, err := svc.GetByConfirmationNumber(context.Background(), created[0].ConfirmationNumber)
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestListForDateRange(t *testing.T) {
	now := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo()
	svc := newBookingServiceForTest(repo, now)

	_, err := svc.UpsertByPaymentReference(context.Background(), paymentNotification("pay_range", 3))
	require.NoError(t, err)

	t.Run("range covering the lessons", func(t *testing.T) {
		page, err := svc.ListForDateRange(context.Background(), "2026-07-01", "2026-07-31", 1, 10)
		require.NoError(t, err)
		assert.Len(t, page.Items, 3)
		assert.EqualValues(t, 3, page.Total)
	})

	t.Run("range outside the lessons", func(t *testing.T) {
		page, err := svc.ListForDateRange(context.Background(), "2026-08-01", "2026-08-31", 1, 10)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
	})

	t.Run("end before start rejected", func(t *testing.T) {
		_, err := svc.ListForDateRange(context.Background(), "2026-07-31", "2026-07-01", 1, 10)
		var validationErr *utils.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestUpdateStatus(t *testing.T) {
	now := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)

	setup := func(t *testing.T) (*bookingService, string) {
		repo := newFakeBookingRepo()
		svc := newBookingServiceForTest(repo, now)
		created, err := svc.UpsertByPaymentReference(context.Background(), paymentNotification("pay_status", 1))
		require.NoError(t, err)
		return svc, created[0].ID
	}

	t.Run("confirmed to completed", func(t *testing.T) {
		svc, id := setup(t)
		updated, err := svc.UpdateStatus(context.Background(), id, "completed")
		require.NoError(t, err)
		assert.Equal(t, string(entity.BookingStatusCompleted), string(updated.Status))
	})

	t.Run("confirmed to cancelled", func(t *testing.T) {
		svc, id := setup(t)
		updated, err := svc.UpdateStatus(context.Background(), id, "cancelled")
		require.NoError(t, err)
		assert.Equal(t, string(entity.BookingStatusCancelled), string(updated.Status))
	})

	t.Run("completed is terminal", func(t *testing.T) {
		svc, id := setup(t)
		_, err := svc.UpdateStatus(context.Background(), id, "completed")
		require.NoError(t, err)

		_, err = svc.UpdateStatus(context.Background(), id, "cancelled")
		assert.ErrorIs(t, err, utils.ErrInvalidTransition)
	})

	t.Run("unknown target status rejected", func(t *testing.T) {
		svc, id := setup(t)
		_, err := svc.UpdateStatus(context.Background(), id, "confirmed")
		var validationErr *utils.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("missing booking", func(t *testing.T) {
		svc, _ := setup(t)
		_, err := svc.UpdateStatus(context.Background(), uuid.NewString(), "completed")
		assert.ErrorIs(t, err, utils.ErrNotFound)
	})
}
