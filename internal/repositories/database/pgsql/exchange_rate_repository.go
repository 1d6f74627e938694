package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fintrackio/fintrack_backend/internal/apperrors"
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackio/fintrack_backend/internal/models"
	"github.com/fintrackio/fintrack_backend/internal/utils/mapping"
)

type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new repository for exchange rate data.
func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

const exchangeRateColumns = `exchange_rate_id, currency_code, rate, date_effective, created_at, last_updated_at`

func scanExchangeRate(row pgx.Row) (*models.ExchangeRate, error) {
	var m models.ExchangeRate
	if err := row.Scan(&m.ExchangeRateID, &m.CurrencyCode, &m.Rate, &m.DateEffective, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	m := mapping.ToModelExchangeRate(rate)

	query := `
		INSERT INTO exchange_rates (exchange_rate_id, currency_code, rate, date_effective, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.ExchangeRateID, m.CurrencyCode, m.Rate, m.DateEffective, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: rate for %s effective %s already exists",
				apperrors.ErrDuplicate, m.CurrencyCode, m.DateEffective.Format("2006-01-02"))
		}
		return apperrors.NewAppError(500, "failed to save exchange rate "+m.ExchangeRateID, err)
	}
	return nil
}

// FindRateForDate returns the most recent rate whose effective date is on
// or before the given date.
func (r *PgxExchangeRateRepository) FindRateForDate(ctx context.Context, currencyCode string, date time.Time) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE currency_code = $1 AND date_effective <= $2
		ORDER BY date_effective DESC
		LIMIT 1;
	`
	m, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, currencyCode, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find rate for "+currencyCode, err)
	}

	rate := mapping.ToDomainExchangeRate(*m)
	return &rate, nil
}

func (r *PgxExchangeRateRepository) ListRatesByCurrency(ctx context.Context, currencyCode string) ([]domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + ` FROM exchange_rates WHERE currency_code = $1 ORDER BY date_effective DESC;`
	rows, err := r.Pool.Query(ctx, query, currencyCode)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query rates for "+currencyCode, err)
	}
	defer rows.Close()

	rates := []domain.ExchangeRate{}
	for rows.Next() {
		m, err := scanExchangeRate(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan rate row", err)
		}
		rates = append(rates, mapping.ToDomainExchangeRate(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating rate rows", err)
	}
	return rates, nil
}
