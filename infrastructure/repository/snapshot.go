package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/infrastructure/database/postgres"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/domain"
)

const (
	snapshotsTable = "financial_snapshots fs"
)

type SnapshotRepository interface {
	GetByID(snapshotID string) (*domain.FinancialSnapshot, error)
	GetByBusinessAndPeriod(businessID, period string) (*domain.FinancialSnapshot, error)
	GetLatestByBusiness(businessID string) (*domain.FinancialSnapshot, error)
	ListByBusiness(businessID string) ([]*domain.FinancialSnapshot, error)
	SaveOrUpdate(snapshot *domain.FinancialSnapshot) error
	Delete(snapshotID string) error
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

func (r *snapshotRepository) GetByID(snapshotID string) (*domain.FinancialSnapshot, error) {
	query, args, err := squirrel.
		Select("fs.id, fs.business_id, fs.period, fs.industry, fs.figures, fs.created_at, fs.updated_at").
		From(snapshotsTable).
		Where(squirrel.Eq{"fs.id": snapshotID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot, err := r.scanSnapshot(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *snapshotRepository) GetByBusinessAndPeriod(businessID, period string) (*domain.FinancialSnapshot, error) {
	query, args, err := squirrel.
		Select("fs.id, fs.business_id, fs.period, fs.industry, fs.figures, fs.created_at, fs.updated_at").
		From(snapshotsTable).
		Where(squirrel.Eq{"fs.business_id": businessID, "fs.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot, err := r.scanSnapshot(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *snapshotRepository) GetLatestByBusiness(businessID string) (*domain.FinancialSnapshot, error) {
	query, args, err := squirrel.
		Select("fs.id, fs.business_id, fs.period, fs.industry, fs.figures, fs.created_at, fs.updated_at").
		From(snapshotsTable).
		Where(squirrel.Eq{"fs.business_id": businessID}).
		OrderBy("fs.created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot, err := r.scanSnapshot(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *snapshotRepository) ListByBusiness(businessID string) ([]*domain.FinancialSnapshot, error) {
	query, args, err := squirrel.
		Select("fs.id, fs.business_id, fs.period, fs.industry, fs.figures, fs.created_at, fs.updated_at").
		From(snapshotsTable).
		Where(squirrel.Eq{"fs.business_id": businessID}).
		OrderBy("fs.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.FinancialSnapshot, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshotRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshots: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *snapshotRepository) SaveOrUpdate(snapshot *domain.FinancialSnapshot) error {
	figuresJSON, err := json.Marshal(snapshotFigures(snapshot))
	if err != nil {
		return fmt.Errorf("erro ao serializar valores do snapshot para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("financial_snapshots").
		Columns("id", "business_id", "period", "industry", "figures").
		Values(
			snapshot.ID,
			snapshot.BusinessID,
			snapshot.Period,
			snapshot.Industry,
			figuresJSON,
		).
		Suffix(`
			ON CONFLICT (business_id, period) DO UPDATE SET
				industry = EXCLUDED.industry,
				figures = EXCLUDED.figures,
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

func (r *snapshotRepository) Delete(snapshotID string) error {
	query, args, err := squirrel.
		Delete("financial_snapshots").
		Where(squirrel.Eq{"id": snapshotID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover snapshot: %w", err)
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

// snapshotFigures é a carga JSONB com os valores monetários do período.
type snapshotFiguresPayload struct {
	Revenue            float64 `json:"revenue"`
	NetCreditSales     float64 `json:"net_credit_sales"`
	COGS               float64 `json:"cogs"`
	OperatingExpenses  float64 `json:"operating_expenses"`
	InterestExpense    float64 `json:"interest_expense"`
	TaxExpense         float64 `json:"tax_expense"`
	CurrentAssets      float64 `json:"current_assets"`
	Inventory          float64 `json:"inventory"`
	AccountsReceivable float64 `json:"accounts_receivable"`
	CurrentLiabilities float64 `json:"current_liabilities"`
	TotalAssets        float64 `json:"total_assets"`
	TotalLiabilities   float64 `json:"total_liabilities"`
	TotalEquity        float64 `json:"total_equity"`
	CashInflow         float64 `json:"cash_inflow"`
	CashOutflow        float64 `json:"cash_outflow"`
	MarketingSpend     float64 `json:"marketing_spend"`
	LeadsGenerated     float64 `json:"leads_generated"`
	Conversions        float64 `json:"conversions"`
}

func snapshotFigures(snapshot *domain.FinancialSnapshot) *snapshotFiguresPayload {
	return &snapshotFiguresPayload{
		Revenue:            snapshot.Revenue,
		NetCreditSales:     snapshot.NetCreditSales,
		COGS:               snapshot.COGS,
		OperatingExpenses:  snapshot.OperatingExpenses,
		InterestExpense:    snapshot.InterestExpense,
		TaxExpense:         snapshot.TaxExpense,
		CurrentAssets:      snapshot.CurrentAssets,
		Inventory:          snapshot.Inventory,
		AccountsReceivable: snapshot.AccountsReceivable,
		CurrentLiabilities: snapshot.CurrentLiabilities,
		TotalAssets:        snapshot.TotalAssets,
		TotalLiabilities:   snapshot.TotalLiabilities,
		TotalEquity:        snapshot.TotalEquity,
		CashInflow:         snapshot.CashInflow,
		CashOutflow:        snapshot.CashOutflow,
		MarketingSpend:     snapshot.MarketingSpend,
		LeadsGenerated:     snapshot.LeadsGenerated,
		Conversions:        snapshot.Conversions,
	}
}

func applyFigures(snapshot *domain.FinancialSnapshot, figures *snapshotFiguresPayload) {
	snapshot.Revenue = figures.Revenue
	snapshot.NetCreditSales = figures.NetCreditSales
	snapshot.COGS = figures.COGS
	snapshot.OperatingExpenses = figures.OperatingExpenses
	snapshot.InterestExpense = figures.InterestExpense
	snapshot.TaxExpense = figures.TaxExpense
	snapshot.CurrentAssets = figures.CurrentAssets
	snapshot.Inventory = figures.Inventory
	snapshot.AccountsReceivable = figures.AccountsReceivable
	snapshot.CurrentLiabilities = figures.CurrentLiabilities
	snapshot.TotalAssets = figures.TotalAssets
	snapshot.TotalLiabilities = figures.TotalLiabilities
	snapshot.TotalEquity = figures.TotalEquity
	snapshot.CashInflow = figures.CashInflow
	snapshot.CashOutflow = figures.CashOutflow
	snapshot.MarketingSpend = figures.MarketingSpend
	snapshot.LeadsGenerated = figures.LeadsGenerated
	snapshot.Conversions = figures.Conversions
}

func (r *snapshotRepository) scanSnapshot(row *sql.Row) (*domain.FinancialSnapshot, error) {
	snapshot := &domain.FinancialSnapshot{}
	var figuresJSON []byte

	err := row.Scan(
		&snapshot.ID,
		&snapshot.BusinessID,
		&snapshot.Period,
		&snapshot.Industry,
		&figuresJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if figuresJSON != nil {
		figures := &snapshotFiguresPayload{}
		if err := json.Unmarshal(figuresJSON, figures); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de figures: %w", err)
		}
		applyFigures(snapshot, figures)
	}

	return snapshot, nil
}

func (r *snapshotRepository) scanSnapshotRows(rows *sql.Rows) (*domain.FinancialSnapshot, error) {
	snapshot := &domain.FinancialSnapshot{}
	var figuresJSON []byte

	err := rows.Scan(
		&snapshot.ID,
		&snapshot.BusinessID,
		&snapshot.Period,
		&snapshot.Industry,
		&figuresJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if figuresJSON != nil {
		figures := &snapshotFiguresPayload{}
		if err := json.Unmarshal(figuresJSON, figures); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de figures: %w", err)
		}
		applyFigures(snapshot, figures)
	}

	return snapshot, nil
}
