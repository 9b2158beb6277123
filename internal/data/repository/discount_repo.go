package repository

import (
	"context"
	"fmt"

	"surf-booking/internal/data/entity"
	"surf-booking/pkg/database"
	"surf-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type DiscountRepository interface {
	Create(ctx context.Context, code *entity.DiscountCode) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DiscountCode, error)
	FindByCode(ctx context.Context, code string) (*entity.DiscountCode, error)
	FindAll(ctx context.Context) ([]*entity.DiscountCode, error)
	Update(ctx context.Context, code *entity.DiscountCode) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Redeem increments current_uses by exactly one, guarded by the
	// exhaustion and expiry checks inside a single conditional UPDATE.
	// Returns false when the guard rejected the increment.
	Redeem(ctx context.Context, code string) (bool, error)
}

type discountRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDiscountRepository(db database.PgxIface, log *zap.Logger) DiscountRepository {
	return &discountRepository{
		db:  db,
		log: log.With(zap.String("repository", "discount")),
	}
}

const discountColumns = `id, code, type, amount, description, min_order, max_uses, current_uses, expires_at, active, created_at, updated_at`

func scanDiscount(row pgx.Row) (*entity.DiscountCode, error) {
	var d entity.DiscountCode
	err := row.Scan(
		&d.ID,
		&d.Code,
		&d.Type,
		&d.Amount,
		&d.Description,
		&d.MinOrder,
		&d.MaxUses,
		&d.CurrentUses,
		&d.ExpiresAt,
		&d.Active,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *discountRepository) Create(ctx context.Context, code *entity.DiscountCode) error {
	query := `
		INSERT INTO discount_codes (` + discountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		code.ID,
		code.Code,
		code.Type,
		code.Amount,
		code.Description,
		code.MinOrder,
		code.MaxUses,
		code.CurrentUses,
		code.ExpiresAt,
		code.Active,
		code.CreatedAt,
		code.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("discount code %s: %w", code.Code, utils.ErrConflict)
		}
		r.log.Error("Failed to create discount code",
			zap.Error(err),
			zap.String("code", code.Code),
		)
		return fmt.Errorf("create discount code %s: %w", code.Code, err)
	}

	return nil
}

func (r *discountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DiscountCode, error) {
	query := `SELECT ` + discountColumns + ` FROM discount_codes WHERE id = $1`

	d, err := scanDiscount(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find discount code by ID",
			zap.Error(err),
			zap.String("discount_id", id.String()),
		)
		return nil, fmt.Errorf("find discount code by ID %s: %w", id.String(), err)
	}

	return d, nil
}

func (r *discountRepository) FindByCode(ctx context.Context, code string) (*entity.DiscountCode, error) {
	query := `SELECT ` + discountColumns + ` FROM discount_codes WHERE code = $1`

	d, err := scanDiscount(r.db.QueryRow(ctx, query, code))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find discount code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find discount code %s: %w", code, err)
	}

	return d, nil
}

func (r *discountRepository) FindAll(ctx context.Context) ([]*entity.DiscountCode, error) {
	query := `SELECT ` + discountColumns + ` FROM discount_codes ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list discount codes", zap.Error(err))
		return nil, fmt.Errorf("list discount codes: %w", err)
	}
	defer rows.Close()

	var codes []*entity.DiscountCode
	for rows.Next() {
		d, err := scanDiscount(rows)
		if err != nil {
			r.log.Error("Failed to scan discount code row", zap.Error(err))
			return nil, fmt.Errorf("scan discount code row: %w", err)
		}
		codes = append(codes, d)
	}

	return codes, nil
}

func (r *discountRepository) Update(ctx context.Context, code *entity.DiscountCode) error {
	query := `
		UPDATE discount_codes
		SET type = $2, amount = $3, description = $4, min_order = $5,
		    max_uses = $6, expires_at = $7, active = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		code.ID,
		code.Type,
		code.Amount,
		code.Description,
		code.MinOrder,
		code.MaxUses,
		code.ExpiresAt,
		code.Active,
		code.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update discount code",
			zap.Error(err),
			zap.String("discount_id", code.ID.String()),
		)
		return fmt.Errorf("update discount code %s: %w", code.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("discount code %s: %w", code.ID.String(), utils.ErrNotFound)
	}

	return nil
}

func (r *discountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM discount_codes WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete discount code",
			zap.Error(err),
			zap.String("discount_id", id.String()),
		)
		return fmt.Errorf("delete discount code %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("discount code %s: %w", id.String(), utils.ErrNotFound)
	}

	r.log.Info("Discount code deleted", zap.String("discount_id", id.String()))
	return nil
}

func (r *discountRepository) Redeem(ctx context.Context, code string) (bool, error) {
	// Single conditional UPDATE so two concurrent redemptions of the last
	// remaining use cannot both succeed.
	query := `
		UPDATE discount_codes
		SET current_uses = current_uses + 1, updated_at = NOW()
		WHERE code = $1
		  AND active
		  AND (expires_at IS NULL OR expires_at > NOW())
		  AND (max_uses IS NULL OR current_uses < max_uses)
	`

	result, err := r.db.Exec(ctx, query, code)
	if err != nil {
		r.log.Error("Failed to redeem discount code",
			zap.Error(err),
			zap.String("code", code),
		)
		return false, fmt.Errorf("redeem discount code %s: %w", code, err)
	}

	return result.RowsAffected() == 1, nil
}
