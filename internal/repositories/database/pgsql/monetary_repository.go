package pgsql

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/simpshopy/simpshopy_backend/internal/apperrors"
	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
	portsrepo "github.com/simpshopy/simpshopy_backend/internal/core/ports/repositories"
	"github.com/simpshopy/simpshopy_backend/internal/models"
	"github.com/simpshopy/simpshopy_backend/internal/utils/mapping"
)

// PgxMonetaryRecordRepository reads and writes product prices and order totals.
type PgxMonetaryRecordRepository struct {
	BaseRepository
}

func newPgxMonetaryRecordRepository(pool *pgxpool.Pool) *PgxMonetaryRecordRepository {
	return &PgxMonetaryRecordRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MonetaryRecordRepository = (*PgxMonetaryRecordRepository)(nil)

const (
	updateProductPriceQuery = `UPDATE products SET price = $1, last_updated_at = NOW() WHERE store_id = $2 AND product_id = $3;`
	updateOrderTotalQuery   = `UPDATE orders SET total_amount = $1, last_updated_at = NOW() WHERE store_id = $2 AND order_id = $3;`
)

func updateQueryFor(kind domain.RecordKind) (string, error) {
	switch kind {
	case domain.RecordProduct:
		return updateProductPriceQuery, nil
	case domain.RecordOrder:
		return updateOrderTotalQuery, nil
	default:
		return "", fmt.Errorf("%w: unknown record kind %q", apperrors.ErrValidation, kind)
	}
}

// ListStoreAmounts returns every product price and order total of the store.
func (r *PgxMonetaryRecordRepository) ListStoreAmounts(ctx context.Context, storeID string) ([]domain.MonetaryRecord, error) {
	query := `
		SELECT product_id AS record_id, 'product' AS kind, price AS amount
		FROM products WHERE store_id = $1
		UNION ALL
		SELECT order_id AS record_id, 'order' AS kind, total_amount AS amount
		FROM orders WHERE store_id = $1
		ORDER BY kind DESC, record_id;
	`
	rows, err := r.Pool.Query(ctx, query, storeID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query store amounts", err)
	}
	defer rows.Close()

	modelRecords, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.MonetaryRecord])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect store amounts", err)
	}

	records := make([]domain.MonetaryRecord, len(modelRecords))
	for i, m := range modelRecords {
		records[i] = mapping.ToDomainMonetaryRecord(m)
	}
	return records, nil
}

// UpdateAmount writes a single record's amount.
func (r *PgxMonetaryRecordRepository) UpdateAmount(ctx context.Context, storeID string, record domain.MonetaryRecord) error {
	query, err := updateQueryFor(record.Kind)
	if err != nil {
		return err
	}
	tag, err := r.Pool.Exec(ctx, query, record.Amount, storeID, record.ID)
	if err != nil {
		return apperrors.FromContext(fmt.Errorf("update %s %s: %w", record.Kind, record.ID, err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(string(record.Kind) + " " + record.ID + " not found")
	}
	return nil
}

// UpdateAmountsAtomically writes every record in one transaction. Any failed or
// missing row rolls the whole batch back.
func (r *PgxMonetaryRecordRepository) UpdateAmountsAtomically(ctx context.Context, storeID string, records []domain.MonetaryRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	batch := &pgx.Batch{}
	for _, record := range records {
		query, err := updateQueryFor(record.Kind)
		if err != nil {
			return err
		}
		batch.Queue(query, record.Amount, storeID, record.ID)
	}

	results := tx.SendBatch(ctx, batch)
	for _, record := range records {
		tag, err := results.Exec()
		if err != nil {
			_ = results.Close()
			return apperrors.FromContext(fmt.Errorf("update %s %s: %w", record.Kind, record.ID, err))
		}
		if tag.RowsAffected() == 0 {
			_ = results.Close()
			return apperrors.NewNotFoundError(string(record.Kind) + " " + record.ID + " not found")
		}
	}
	if err := results.Close(); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to update store amounts", err)
	}

	return r.Commit(ctx, tx)
}
