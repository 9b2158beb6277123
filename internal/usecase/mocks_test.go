package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"surf-booking/internal/data/entity"
	"surf-booking/internal/payments"
	"surf-booking/pkg/utils"
)

// fakeDiscountRepo is an in-memory stand-in whose Redeem mirrors the
// guarded UPDATE: active, not expired, uses below the cap, all checked
// under one lock.
type fakeDiscountRepo struct {
	mu    sync.Mutex
	codes map[string]*entity.DiscountCode
	now   func() time.Time
}

func newFakeDiscountRepo() *fakeDiscountRepo {
	return &fakeDiscountRepo{
		codes: make(map[string]*entity.DiscountCode),
		now:   time.Now,
	}
}

func (f *fakeDiscountRepo) Create(_ context.Context, code *entity.DiscountCode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.codes[code.Code]; exists {
		return utils.ErrConflict
	}
	cp := *code
	f.codes[code.Code] = &cp
	return nil
}

func (f *fakeDiscountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.DiscountCode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.codes {
		if d.ID == id {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeDiscountRepo) FindByCode(_ context.Context, code string) (*entity.DiscountCode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if d, ok := f.codes[code]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeDiscountRepo) FindAll(_ context.Context) ([]*entity.DiscountCode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.DiscountCode, 0, len(f.codes))
	for _, d := range f.codes {
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeDiscountRepo) Update(_ context.Context, code *entity.DiscountCode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *code
	f.codes[code.Code] = &cp
	return nil
}

func (f *fakeDiscountRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for code, d := range f.codes {
		if d.ID == id {
			delete(f.codes, code)
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakeDiscountRepo) Redeem(_ context.Context, code string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.codes[code]
	if !ok || !d.Active {
		return false, nil
	}
	if d.ExpiresAt != nil && !f.now().Before(*d.ExpiresAt) {
		return false, nil
	}
	if d.MaxUses != nil && d.CurrentUses >= *d.MaxUses {
		return false, nil
	}
	d.CurrentUses++
	return true, nil
}

// fakeBookingRepo enforces the same uniqueness the database does: one set
// of rows per payment reference.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{}
}

func (f *fakeBookingRepo) CreateAll(_ context.Context, bookings []*entity.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		for _, candidate := range bookings {
			if b.PaymentRef == candidate.PaymentRef && b.ItemIndex == candidate.ItemIndex {
				return utils.ErrConflict
			}
		}
	}
	for _, b := range bookings {
		cp := *b
		f.bookings = append(f.bookings, &cp)
	}
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByPaymentRef(_ context.Context, paymentRef string) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.PaymentRef == paymentRef {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindByConfirmationNumber(_ context.Context, confirmation string) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.ConfirmationNumber == confirmation {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindByDateRange(_ context.Context, start, end time.Time, limit, offset int) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*entity.Booking
	for _, b := range f.bookings {
		if !b.LessonDate.Before(start) && !b.LessonDate.After(end) {
			cp := *b
			matched = append(matched, &cp)
		}
	}
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (f *fakeBookingRepo) CountByDateRange(_ context.Context, start, end time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, b := range f.bookings {
		if !b.LessonDate.Before(start) && !b.LessonDate.After(end) {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) UpdateStatusIf(_ context.Context, id uuid.UUID, from, to entity.BookingStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id && b.Status == from {
			b.Status = to
			return true, nil
		}
	}
	return false, nil
}

// fakeWaiverRepo keeps signatures in memory; bookedRefs plays the role of
// the bookings table for the orphan check.
type fakeWaiverRepo struct {
	mu         sync.Mutex
	waivers    []*entity.WaiverSignature
	bookedRefs map[string]bool
}

func newFakeWaiverRepo() *fakeWaiverRepo {
	return &fakeWaiverRepo{bookedRefs: make(map[string]bool)}
}

func (f *fakeWaiverRepo) Create(_ context.Context, waiver *entity.WaiverSignature) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *waiver
	f.waivers = append(f.waivers, &cp)
	return nil
}

func (f *fakeWaiverRepo) FindByPaymentRef(_ context.Context, paymentRef string) ([]*entity.WaiverSignature, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.WaiverSignature
	for _, w := range f.waivers {
		if w.PaymentRef == paymentRef {
			cp := *w
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeWaiverRepo) DeleteOrphanedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []*entity.WaiverSignature
	var deleted int64
	for _, w := range f.waivers {
		if w.CreatedAt.Before(cutoff) && !f.bookedRefs[w.PaymentRef] {
			deleted++
			continue
		}
		kept = append(kept, w)
	}
	f.waivers = kept
	return deleted, nil
}

// fakePaymentProvider records the checkout requests it sees.
type fakePaymentProvider struct {
	mu       sync.Mutex
	sessions int
	lastItem payments.CheckoutItem
	err      error
}

func (f *fakePaymentProvider) CreateCheckout(_ context.Context, customerEmail string, items []payments.CheckoutItem) (*payments.CheckoutSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.sessions++
	if len(items) > 0 {
		f.lastItem = items[0]
	}
	return &payments.CheckoutSession{
		PaymentRef:  "cs_test_ref",
		RedirectURL: "https://pay.example.com/cs_test_ref",
	}, nil
}
