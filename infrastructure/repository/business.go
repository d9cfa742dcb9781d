package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/guia-local-api/infrastructure/database/postgres"
	"github.com/vfg2006/guia-local-api/internal/domain"
)

//go:generate mockgen -source=business.go -destination=mocks/business.go -package=mocks

const businessTable = "businesses b"

var businessColumns = []string{
	"b.id",
	"b.name",
	"b.slug",
	"b.image",
	"b.category",
	"b.rating",
	"b.status",
	"b.owner_id",
}

// BusinessRepository lê o cadastro de empresas, mantido por outro módulo
type BusinessRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Business, error)
	ListApproved(ctx context.Context, filters domain.BusinessFilters) ([]*domain.Business, error)
}

type businessRepository struct {
	conn postgres.Queryer
	psql squirrel.StatementBuilderType
}

func NewBusinessRepository(conn postgres.Queryer) BusinessRepository {
	return &businessRepository{
		conn: conn,
		psql: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *businessRepository) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	query, args, err := r.psql.
		Select(businessColumns...).
		From(businessTable).
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, storeError(err, "business: build get")
	}

	b, err := scanBusiness(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeError(err, "business: get")
	}

	return b, nil
}

// ListApproved lista empresas aprovadas em ordem alfabética, que é a ordem de
// entrada do ranking para empates
func (r *businessRepository) ListApproved(ctx context.Context, filters domain.BusinessFilters) ([]*domain.Business, error) {
	builder := r.psql.
		Select(businessColumns...).
		From(businessTable).
		Where(squirrel.Eq{"b.status": string(domain.BusinessStatusApproved)}).
		OrderBy("b.name ASC", "b.id ASC")

	if category := strings.TrimSpace(filters.Category); category != "" {
		builder = builder.Where(squirrel.Eq{"b.category": category})
	}
	if search := strings.TrimSpace(filters.Search); search != "" {
		like := "%" + search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"b.name": like},
			squirrel.ILike{"b.category": like},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, storeError(err, "business: build list")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeError(err, "business: list")
	}
	defer rows.Close()

	businesses := make([]*domain.Business, 0)
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, storeError(err, "business: scan")
		}
		businesses = append(businesses, b)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError(err, "business: iterate")
	}

	return businesses, nil
}

func scanBusiness(s scanner) (*domain.Business, error) {
	b := &domain.Business{}
	var (
		rating sql.NullFloat64
		status string
	)

	err := s.Scan(
		&b.ID,
		&b.Name,
		&b.Slug,
		&b.Image,
		&b.Category,
		&rating,
		&status,
		&b.OwnerID,
	)
	if err != nil {
		return nil, err
	}

	b.Status = domain.BusinessStatus(status)
	if rating.Valid {
		value := rating.Float64
		b.Rating = &value
	}

	return b, nil
}
