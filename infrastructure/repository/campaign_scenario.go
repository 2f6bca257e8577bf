package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/infrastructure/database/postgres"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/domain"
)

const (
	campaignScenariosTable = "campaign_scenarios"
)

// CampaignScenarioEntry é um conjunto de entradas de projetor salvo com nome
// para reuso posterior.
type CampaignScenarioEntry struct {
	ID         string                    `json:"id"`
	BusinessID string                    `json:"business_id"`
	Name       string                    `json:"name"`
	Kind       string                    `json:"kind"`
	Marketing  *domain.MarketingROIInput `json:"marketing,omitempty"`
	Email      *domain.EmailROIInput     `json:"email,omitempty"`
	Social     *domain.SocialROIInput    `json:"social,omitempty"`
	CreatedAt  time.Time                 `json:"created_at"`
	UpdatedAt  time.Time                 `json:"updated_at"`
}

// Tipos de cenário de campanha persistidos.
const (
	ScenarioKindMarketing = "marketing"
	ScenarioKindEmail     = "email"
	ScenarioKindSocial    = "social"
)

type CampaignScenarioRepository interface {
	SaveOrUpdate(entry *CampaignScenarioEntry) error
	GetByID(scenarioID string) (*CampaignScenarioEntry, error)
	ListByBusiness(businessID string, kind string) ([]*CampaignScenarioEntry, error)
	Delete(scenarioID string) error
}

type campaignScenarioRepository struct {
	conn *postgres.Connection
}

func NewCampaignScenarioRepository(conn *postgres.Connection) CampaignScenarioRepository {
	return &campaignScenarioRepository{
		conn: conn,
	}
}

// scenarioPayload é a carga JSONB com as entradas do projetor.
type scenarioPayload struct {
	Marketing *domain.MarketingROIInput `json:"marketing,omitempty"`
	Email     *domain.EmailROIInput     `json:"email,omitempty"`
	Social    *domain.SocialROIInput    `json:"social,omitempty"`
}

func (r *campaignScenarioRepository) SaveOrUpdate(entry *CampaignScenarioEntry) error {
	payloadJSON, err := json.Marshal(&scenarioPayload{
		Marketing: entry.Marketing,
		Email:     entry.Email,
		Social:    entry.Social,
	})
	if err != nil {
		return fmt.Errorf("erro ao serializar cenário para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert(campaignScenariosTable).
		Columns("id", "business_id", "name", "kind", "payload").
		Values(entry.ID, entry.BusinessID, entry.Name, entry.Kind, payloadJSON).
		Suffix(`
			ON CONFLICT (business_id, kind, name) DO UPDATE SET
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

func (r *campaignScenarioRepository) GetByID(scenarioID string) (*CampaignScenarioEntry, error) {
	query, args, err := squirrel.
		Select("id", "business_id", "name", "kind", "payload", "created_at", "updated_at").
		From(campaignScenariosTable).
		Where(squirrel.Eq{"id": scenarioID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	entry := &CampaignScenarioEntry{}
	var payloadJSON []byte

	err = r.conn.QueryRow(query, args...).Scan(
		&entry.ID,
		&entry.BusinessID,
		&entry.Name,
		&entry.Kind,
		&payloadJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar cenário: %w", err)
	}

	if err := applyScenarioPayload(entry, payloadJSON); err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *campaignScenarioRepository) ListByBusiness(businessID string, kind string) ([]*CampaignScenarioEntry, error) {
	builder := squirrel.
		Select("id", "business_id", "name", "kind", "payload", "created_at", "updated_at").
		From(campaignScenariosTable).
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if kind != "" {
		builder = builder.Where(squirrel.Eq{"kind": kind})
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

	entries := make([]*CampaignScenarioEntry, 0)
	for rows.Next() {
		entry := &CampaignScenarioEntry{}
		var payloadJSON []byte

		err := rows.Scan(
			&entry.ID,
			&entry.BusinessID,
			&entry.Name,
			&entry.Kind,
			&payloadJSON,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cenário: %w", err)
		}

		if err := applyScenarioPayload(entry, payloadJSON); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *campaignScenarioRepository) Delete(scenarioID string) error {
	query, args, err := squirrel.
		Delete(campaignScenariosTable).
		Where(squirrel.Eq{"id": scenarioID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover cenário: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func applyScenarioPayload(entry *CampaignScenarioEntry, payloadJSON []byte) error {
	if payloadJSON == nil {
		return nil
	}

	payload := &scenarioPayload{}
	if err := json.Unmarshal(payloadJSON, payload); err != nil {
		return fmt.Errorf("erro ao deserializar JSON de payload: %w", err)
	}

	entry.Marketing = payload.Marketing
	entry.Email = payload.Email
	entry.Social = payload.Social

	return nil
}
