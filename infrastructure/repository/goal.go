package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/infrastructure/database/postgres"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/domain"
)

const (
	goalsTable = "financial_goals"
)

type GoalRepository interface {
	Create(goal *domain.FinancialGoal) (*domain.FinancialGoal, error)
	GetByID(goalID string) (*domain.FinancialGoal, error)
	ListByBusiness(businessID string) ([]*domain.FinancialGoal, error)
	ListByStatus(status string) ([]*domain.FinancialGoal, error)
	Update(goal *domain.FinancialGoal) error
	UpdateStatus(goalID string, status string) error
	Delete(goalID string) error
}

type goalRepository struct {
	conn *postgres.Connection
}

func NewGoalRepository(conn *postgres.Connection) GoalRepository {
	return &goalRepository{
		conn: conn,
	}
}

func (r *goalRepository) Create(goal *domain.FinancialGoal) (*domain.FinancialGoal, error) {
	queryBuilder := squirrel.
		Insert(goalsTable).
		Columns("id", "business_id", "name", "metric", "target_value", "deadline", "status").
		Values(goal.ID, goal.BusinessID, goal.Name, goal.Metric, goal.TargetValue, goal.Deadline, goal.Status).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&goal.CreatedAt, &goal.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar meta: %w", err)
	}

	return goal, nil
}

func (r *goalRepository) GetByID(goalID string) (*domain.FinancialGoal, error) {
	query, args, err := squirrel.
		Select("id", "business_id", "name", "metric", "target_value", "deadline", "status", "created_at", "updated_at").
		From(goalsTable).
		Where(squirrel.Eq{"id": goalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	goal := &domain.FinancialGoal{}
	err = r.conn.QueryRow(query, args...).Scan(
		&goal.ID,
		&goal.BusinessID,
		&goal.Name,
		&goal.Metric,
		&goal.TargetValue,
		&goal.Deadline,
		&goal.Status,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar meta: %w", err)
	}

	return goal, nil
}

func (r *goalRepository) ListByBusiness(businessID string) ([]*domain.FinancialGoal, error) {
	query, args, err := squirrel.
		Select("id", "business_id", "name", "metric", "target_value", "deadline", "status", "created_at", "updated_at").
		From(goalsTable).
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryGoals(query, args...)
}

func (r *goalRepository) ListByStatus(status string) ([]*domain.FinancialGoal, error) {
	query, args, err := squirrel.
		Select("id", "business_id", "name", "metric", "target_value", "deadline", "status", "created_at", "updated_at").
		From(goalsTable).
		Where(squirrel.Eq{"status": status}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryGoals(query, args...)
}

func (r *goalRepository) Update(goal *domain.FinancialGoal) error {
	query, args, err := squirrel.
		Update(goalsTable).
		Set("name", goal.Name).
		Set("metric", goal.Metric).
		Set("target_value", goal.TargetValue).
		Set("deadline", goal.Deadline).
		Set("status", goal.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": goal.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar meta: %w", err)
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

func (r *goalRepository) UpdateStatus(goalID string, status string) error {
	query, args, err := squirrel.
		Update(goalsTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": goalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status da meta: %w", err)
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

func (r *goalRepository) Delete(goalID string) error {
	query, args, err := squirrel.
		Delete(goalsTable).
		Where(squirrel.Eq{"id": goalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover meta: %w", err)
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

func (r *goalRepository) queryGoals(query string, args ...interface{}) ([]*domain.FinancialGoal, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	goals := make([]*domain.FinancialGoal, 0)
	for rows.Next() {
		goal := &domain.FinancialGoal{}
		err := rows.Scan(
			&goal.ID,
			&goal.BusinessID,
			&goal.Name,
			&goal.Metric,
			&goal.TargetValue,
			&goal.Deadline,
			&goal.Status,
			&goal.CreatedAt,
			&goal.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear meta: %w", err)
		}
		goals = append(goals, goal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return goals, nil
}
