package repository

import (
	"context"
	"fmt"
	"time"

	"surf-booking/internal/data/entity"
	"surf-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type WaiverRepository interface {
	Create(ctx context.Context, waiver *entity.WaiverSignature) error
	FindByPaymentRef(ctx context.Context, paymentRef string) ([]*entity.WaiverSignature, error)

	// DeleteOrphanedBefore removes signatures created before the cutoff
	// that have no booking sharing their payment reference. Returns the
	// number of rows removed.
	DeleteOrphanedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type waiverRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWaiverRepository(db database.PgxIface, log *zap.Logger) WaiverRepository {
	return &waiverRepository{
		db:  db,
		log: log.With(zap.String("repository", "waiver")),
	}
}

const waiverColumns = `id, slot_id, payment_ref, signer_name, participant_name, is_minor, guardian_name, email, phone, emergency_name, emergency_phone, medical_notes, ip_address, user_agent, created_at`

func (r *waiverRepository) Create(ctx context.Context, waiver *entity.WaiverSignature) error {
	query := `
		INSERT INTO waiver_signatures (` + waiverColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.Exec(ctx, query,
		waiver.ID,
		waiver.SlotID,
		waiver.PaymentRef,
		waiver.SignerName,
		waiver.ParticipantName,
		waiver.IsMinor,
		waiver.GuardianName,
		waiver.Email,
		waiver.Phone,
		waiver.EmergencyName,
		waiver.EmergencyPhone,
		waiver.MedicalNotes,
		waiver.IPAddress,
		waiver.UserAgent,
		waiver.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create waiver signature",
			zap.Error(err),
			zap.String("payment_ref", waiver.PaymentRef),
			zap.String("slot_id", waiver.SlotID),
		)
		return fmt.Errorf("create waiver for payment %s: %w", waiver.PaymentRef, err)
	}

	return nil
}

func (r *waiverRepository) FindByPaymentRef(ctx context.Context, paymentRef string) ([]*entity.WaiverSignature, error) {
	query := `
		SELECT ` + waiverColumns + `
		FROM waiver_signatures
		WHERE payment_ref = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, paymentRef)
	if err != nil {
		r.log.Error("Failed to find waivers by payment ref",
			zap.Error(err),
			zap.String("payment_ref", paymentRef),
		)
		return nil, fmt.Errorf("find waivers by payment ref %s: %w", paymentRef, err)
	}
	defer rows.Close()

	var waivers []*entity.WaiverSignature
	for rows.Next() {
		w, err := scanWaiver(rows)
		if err != nil {
			r.log.Error("Failed to scan waiver row", zap.Error(err))
			return nil, fmt.Errorf("scan waiver row: %w", err)
		}
		waivers = append(waivers, w)
	}

	return waivers, nil
}

func scanWaiver(row pgx.Row) (*entity.WaiverSignature, error) {
	var w entity.WaiverSignature
	err := row.Scan(
		&w.ID,
		&w.SlotID,
		&w.PaymentRef,
		&w.SignerName,
		&w.ParticipantName,
		&w.IsMinor,
		&w.GuardianName,
		&w.Email,
		&w.Phone,
		&w.EmergencyName,
		&w.EmergencyPhone,
		&w.MedicalNotes,
		&w.IPAddress,
		&w.UserAgent,
		&w.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *waiverRepository) DeleteOrphanedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	// The age filter alone makes this safe against freshly created
	// signatures; the NOT EXISTS keeps signatures whose payment completed.
	query := `
		DELETE FROM waiver_signatures w
		WHERE w.created_at < $1
		  AND NOT EXISTS (
			SELECT 1 FROM bookings b WHERE b.payment_ref = w.payment_ref
		  )
	`

	result, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		r.log.Error("Failed to delete orphaned waivers",
			zap.Error(err),
			zap.Time("cutoff", cutoff),
		)
		return 0, fmt.Errorf("delete orphaned waivers before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	return result.RowsAffected(), nil
}
