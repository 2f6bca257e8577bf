package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/infrastructure/database/postgres"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/domain"
)

const (
	healthDigestsTable = "health_digests"
)

// HealthDigestEntry é o registro diário de saúde financeira gerado pelo
// sincronizador agendado.
type HealthDigestEntry struct {
	BusinessID string              `json:"business_id"`
	Period     string              `json:"period"`
	DigestDate time.Time           `json:"digest_date"`
	Score      *domain.HealthScore `json:"score"`
	KPIs       *domain.KPISet      `json:"kpis"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

type HealthDigestRepository interface {
	SaveOrUpdate(entry *HealthDigestEntry) error
	GetLatestByBusiness(businessID string) (*HealthDigestEntry, error)
	ListByBusiness(businessID string, limit uint64) ([]*HealthDigestEntry, error)
}

type healthDigestRepository struct {
	conn *postgres.Connection
}

func NewHealthDigestRepository(conn *postgres.Connection) HealthDigestRepository {
	return &healthDigestRepository{
		conn: conn,
	}
}

// digestPayload é a carga JSONB com o detalhamento do dia.
type digestPayload struct {
	Score *domain.HealthScore `json:"score"`
	KPIs  *domain.KPISet      `json:"kpis"`
}

func (r *healthDigestRepository) SaveOrUpdate(entry *HealthDigestEntry) error {
	payloadJSON, err := json.Marshal(&digestPayload{
		Score: entry.Score,
		KPIs:  entry.KPIs,
	})
	if err != nil {
		return fmt.Errorf("erro ao serializar resumo para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert(healthDigestsTable).
		Columns("business_id", "period", "digest_date", "payload").
		Values(entry.BusinessID, entry.Period, entry.DigestDate.Format("2006-01-02"), payloadJSON).
		Suffix(`
			ON CONFLICT (business_id, digest_date) DO UPDATE SET
				period = EXCLUDED.period,
				payload = EXCLUDED.payload,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *healthDigestRepository) GetLatestByBusiness(businessID string) (*HealthDigestEntry, error) {
	entries, err := r.ListByBusiness(businessID, 1)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, nil
	}

	return entries[0], nil
}

func (r *healthDigestRepository) ListByBusiness(businessID string, limit uint64) ([]*HealthDigestEntry, error) {
	builder := squirrel.
		Select("business_id", "period", "digest_date", "payload", "created_at", "updated_at").
		From(healthDigestsTable).
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("digest_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*HealthDigestEntry, 0)
	for rows.Next() {
		entry := &HealthDigestEntry{}
		var payloadJSON []byte

		err := rows.Scan(
			&entry.BusinessID,
			&entry.Period,
			&entry.DigestDate,
			&payloadJSON,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo de saúde: %w", err)
		}

		if payloadJSON != nil {
			payload := &digestPayload{}
			if err := json.Unmarshal(payloadJSON, payload); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de payload: %w", err)
			}
			entry.Score = payload.Score
			entry.KPIs = payload.KPIs
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
