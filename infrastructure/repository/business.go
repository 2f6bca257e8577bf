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
	businessesTable = "businesses"
)

type BusinessRepository interface {
	Create(business *domain.BusinessProfile) (*domain.BusinessProfile, error)
	Update(business *domain.BusinessProfile) error
	GetByID(businessID string) (*domain.BusinessProfile, error)
	ListByOwner(ownerID int) ([]*domain.BusinessProfile, error)
	List() ([]*domain.BusinessProfile, error)
	Delete(businessID string) error
}

type businessRepository struct {
	conn *postgres.Connection
}

func NewBusinessRepository(conn *postgres.Connection) BusinessRepository {
	return &businessRepository{
		conn: conn,
	}
}

func (r *businessRepository) Create(business *domain.BusinessProfile) (*domain.BusinessProfile, error) {
	queryBuilder := squirrel.
		Insert(businessesTable).
		Columns("id", "owner_id", "name", "industry", "currency").
		Values(business.ID, business.OwnerID, business.Name, business.Industry, business.Currency).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&business.CreatedAt, &business.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar negócio: %w", err)
	}

	return business, nil
}

func (r *businessRepository) Update(business *domain.BusinessProfile) error {
	queryBuilder := squirrel.
		Update(businessesTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": business.ID, "deleted": false})

	if business.Name != "" {
		queryBuilder = queryBuilder.Set("name", business.Name)
	}

	if business.Industry != "" {
		queryBuilder = queryBuilder.Set("industry", business.Industry)
	}

	if business.Currency != "" {
		queryBuilder = queryBuilder.Set("currency", business.Currency)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar negócio: %w", err)
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

func (r *businessRepository) GetByID(businessID string) (*domain.BusinessProfile, error) {
	query, args, err := squirrel.
		Select("id", "owner_id", "name", "industry", "currency", "deleted", "deleted_at", "created_at", "updated_at").
		From(businessesTable).
		Where(squirrel.Eq{"id": businessID, "deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	business := &domain.BusinessProfile{}
	err = r.conn.QueryRow(query, args...).Scan(
		&business.ID,
		&business.OwnerID,
		&business.Name,
		&business.Industry,
		&business.Currency,
		&business.Deleted,
		&business.DeletedAt,
		&business.CreatedAt,
		&business.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar negócio: %w", err)
	}

	return business, nil
}

func (r *businessRepository) ListByOwner(ownerID int) ([]*domain.BusinessProfile, error) {
	query, args, err := squirrel.
		Select("id", "owner_id", "name", "industry", "currency", "deleted", "deleted_at", "created_at", "updated_at").
		From(businessesTable).
		Where(squirrel.Eq{"owner_id": ownerID, "deleted": false}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryBusinesses(query, args...)
}

func (r *businessRepository) List() ([]*domain.BusinessProfile, error) {
	query, args, err := squirrel.
		Select("id", "owner_id", "name", "industry", "currency", "deleted", "deleted_at", "created_at", "updated_at").
		From(businessesTable).
		Where(squirrel.Eq{"deleted": false}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryBusinesses(query, args...)
}

func (r *businessRepository) Delete(businessID string) error {
	query, args, err := squirrel.
		Update(businessesTable).
		Set("deleted", true).
		Set("deleted_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": businessID, "deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover negócio: %w", err)
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

func (r *businessRepository) queryBusinesses(query string, args ...interface{}) ([]*domain.BusinessProfile, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	businesses := make([]*domain.BusinessProfile, 0)
	for rows.Next() {
		business := &domain.BusinessProfile{}
		err := rows.Scan(
			&business.ID,
			&business.OwnerID,
			&business.Name,
			&business.Industry,
			&business.Currency,
			&business.Deleted,
			&business.DeletedAt,
			&business.CreatedAt,
			&business.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear negócio: %w", err)
		}
		businesses = append(businesses, business)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return businesses, nil
}
