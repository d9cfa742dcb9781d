// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/vfg2006/guia-local-api/infrastructure/database/postgres"
	"github.com/vfg2006/guia-local-api/internal/domain"
)

//go:generate mockgen -source=highlight.go -destination=mocks/highlight.go -package=mocks

const (
	highlightTable = "ads_highlight h"

	// holdingHighlightIndex é o índice parcial da migration 00002
	holdingHighlightIndex = "ads_highlight_one_holding_per_business"
)

var highlightColumns = []string{
	"h.id",
	"h.business_id",
	"h.level",
	"h.status",
	"h.start_date",
	"h.end_date",
	"h.manual_order",
	"h.pin_to_top",
	"h.badge_color",
	"h.border_color",
	"h.request_notes",
	"h.notes",
	"h.created_by",
	"h.created_at",
	"h.updated_at",
}

var businessSummaryColumns = []string{
	"b.id",
	"b.name",
	"b.image",
	"b.category",
}

type HighlightRepository interface {
	Create(ctx context.Context, h *domain.Highlight) error
	GetByID(ctx context.Context, id string) (*domain.Highlight, error)
	ListByBusiness(ctx context.Context, businessID string, statuses ...domain.HighlightStatus) ([]*domain.Highlight, error)
	ListActiveOn(ctx context.Context, day domain.Date) ([]*domain.Highlight, error)
	ListActiveWithBusiness(ctx context.Context, day domain.Date) ([]*domain.HighlightWithBusiness, error)
	ListPastDue(ctx context.Context, today domain.Date) ([]*domain.Highlight, error)
	List(ctx context.Context, filters domain.HighlightFilters) ([]*domain.HighlightWithBusiness, error)
	CountByStatus(ctx context.Context) (map[domain.HighlightStatus]int, error)
	UpdateIfStatus(ctx context.Context, h *domain.Highlight, expected domain.HighlightStatus) (bool, error)
	ExpireIfPastDue(ctx context.Context, id string, today domain.Date) (bool, error)
	ExpireAllPastDue(ctx context.Context, today domain.Date) (int, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type highlightRepository struct {
	conn postgres.Queryer
	psql squirrel.StatementBuilderType
}

func NewHighlightRepository(conn postgres.Queryer) HighlightRepository {
	return &highlightRepository{
		conn: conn,
		psql: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *highlightRepository) Create(ctx context.Context, h *domain.Highlight) error {
	query, args, err := r.psql.
		Insert("ads_highlight").
		Columns(
			"id",
			"business_id",
			"level",
			"status",
			"start_date",
			"end_date",
			"manual_order",
			"pin_to_top",
			"badge_color",
			"border_color",
			"request_notes",
			"notes",
			"created_by",
		).
		Values(
			h.ID,
			h.BusinessID,
			h.Level,
			h.Status,
			h.StartDate,
			h.EndDate,
			h.ManualOrder,
			h.PinToTop,
			nullableString(h.BadgeColor),
			nullableString(h.BorderColor),
			h.RequestNotes,
			h.Notes,
			h.CreatedBy,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return storeError(err, "highlight: build insert")
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err, holdingHighlightIndex) {
			return ErrHoldingHighlightExists
		}
		return storeError(err, "highlight: insert")
	}

	return nil
}

func (r *highlightRepository) GetByID(ctx context.Context, id string) (*domain.Highlight, error) {
	// IDs fora do formato UUID nunca existem; evita erro de cast no Postgres
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	query, args, err := r.psql.
		Select(highlightColumns...).
		From(highlightTable).
		Where(squirrel.Eq{"h.id": id}).
		ToSql()
	if err != nil {
		return nil, storeError(err, "highlight: build get")
	}

	h, err := scanHighlight(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeError(err, "highlight: get")
	}

	return h, nil
}

func (r *highlightRepository) ListByBusiness(ctx context.Context, businessID string, statuses ...domain.HighlightStatus) ([]*domain.Highlight, error) {
	builder := r.psql.
		Select(highlightColumns...).
		From(highlightTable).
		Where(squirrel.Eq{"h.business_id": businessID}).
		OrderBy("h.created_at DESC")

	if len(statuses) > 0 {
		builder = builder.Where(squirrel.Eq{"h.status": statusStrings(statuses)})
	}

	return r.queryHighlights(ctx, builder, "highlight: list by business")
}

func (r *highlightRepository) ListActiveOn(ctx context.Context, day domain.Date) ([]*domain.Highlight, error) {
	builder := r.psql.
		Select(highlightColumns...).
		From(highlightTable).
		Where(activeOn(day)).
		OrderBy("h.created_at ASC")

	return r.queryHighlights(ctx, builder, "highlight: list active")
}

func (r *highlightRepository) ListActiveWithBusiness(ctx context.Context, day domain.Date) ([]*domain.HighlightWithBusiness, error) {
	builder := r.psql.
		Select(append(append([]string{}, highlightColumns...), businessSummaryColumns...)...).
		From(highlightTable).
		Join("businesses b ON b.id = h.business_id").
		Where(activeOn(day)).
		OrderBy("h.created_at ASC")

	return r.queryHighlightsWithBusiness(ctx, builder, "highlight: list active with business")
}

func (r *highlightRepository) ListPastDue(ctx context.Context, today domain.Date) ([]*domain.Highlight, error) {
	builder := r.psql.
		Select(highlightColumns...).
		From(highlightTable).
		Where(squirrel.Eq{"h.status": string(domain.HighlightStatusActive)}).
		Where(squirrel.Lt{"h.end_date": today}).
		OrderBy("h.end_date ASC", "h.id ASC")

	return r.queryHighlights(ctx, builder, "highlight: list past due")
}

func (r *highlightRepository) List(ctx context.Context, filters domain.HighlightFilters) ([]*domain.HighlightWithBusiness, error) {
	builder := r.psql.
		Select(append(append([]string{}, highlightColumns...), businessSummaryColumns...)...).
		From(highlightTable).
		LeftJoin("businesses b ON b.id = h.business_id").
		OrderBy("h.created_at DESC")

	if filters.Status != nil {
		builder = builder.Where(squirrel.Eq{"h.status": string(*filters.Status)})
	}
	if search := strings.TrimSpace(filters.Search); search != "" {
		builder = builder.Where(squirrel.ILike{"b.name": "%" + search + "%"})
	}

	return r.queryHighlightsWithBusiness(ctx, builder, "highlight: list")
}

func (r *highlightRepository) CountByStatus(ctx context.Context) (map[domain.HighlightStatus]int, error) {
	query, args, err := r.psql.
		Select("h.status", "COUNT(*)").
		From(highlightTable).
		GroupBy("h.status").
		ToSql()
	if err != nil {
		return nil, storeError(err, "highlight: build count")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeError(err, "highlight: count")
	}
	defer rows.Close()

	counts := make(map[domain.HighlightStatus]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, storeError(err, "highlight: scan count")
		}
		counts[domain.HighlightStatus(status)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, storeError(err, "highlight: iterate count")
	}

	return counts, nil
}

// UpdateIfStatus grava o destaque somente se o status no banco ainda for o
// esperado. Retorna false quando outra operação alterou o registro antes.
func (r *highlightRepository) UpdateIfStatus(ctx context.Context, h *domain.Highlight, expected domain.HighlightStatus) (bool, error) {
	query, args, err := r.psql.
		Update("ads_highlight").
		SetMap(map[string]interface{}{
			"level":        h.Level,
			"status":       h.Status,
			"start_date":   h.StartDate,
			"end_date":     h.EndDate,
			"manual_order": h.ManualOrder,
			"pin_to_top":   h.PinToTop,
			"badge_color":  nullableString(h.BadgeColor),
			"border_color": nullableString(h.BorderColor),
			"notes":        h.Notes,
			"updated_at":   squirrel.Expr("now()"),
		}).
		Where(squirrel.Eq{"id": h.ID, "status": string(expected)}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return false, storeError(err, "highlight: build update")
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&h.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		if postgres.IsUniqueViolation(err, holdingHighlightIndex) {
			return false, ErrHoldingHighlightExists
		}
		return false, storeError(err, "highlight: update")
	}

	return true, nil
}

// ExpireIfPastDue expira um único destaque, repetindo a condição no UPDATE.
// Um destaque pausado ou já expirado por outra execução não é afetado.
func (r *highlightRepository) ExpireIfPastDue(ctx context.Context, id string, today domain.Date) (bool, error) {
	query, args, err := r.psql.
		Update("ads_highlight").
		Set("status", string(domain.HighlightStatusExpired)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "status": string(domain.HighlightStatusActive)}).
		Where(squirrel.Lt{"end_date": today}).
		ToSql()
	if err != nil {
		return false, storeError(err, "highlight: build expire")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, storeError(err, "highlight: expire")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, storeError(err, "highlight: expire rows affected")
	}

	return affected == 1, nil
}

// ExpireAllPastDue chama a procedure expire_old_highlights em uma única instrução
func (r *highlightRepository) ExpireAllPastDue(ctx context.Context, today domain.Date) (int, error) {
	var expired int
	err := r.conn.QueryRowContext(ctx, "SELECT expire_old_highlights($1)", today).Scan(&expired)
	if err != nil {
		return 0, storeError(err, "highlight: expire_old_highlights")
	}
	return expired, nil
}

func (r *highlightRepository) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}

	query, args, err := r.psql.
		Delete("ads_highlight").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, storeError(err, "highlight: build delete")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, storeError(err, "highlight: delete")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, storeError(err, "highlight: delete rows affected")
	}

	return affected > 0, nil
}

func (r *highlightRepository) queryHighlights(ctx context.Context, builder squirrel.SelectBuilder, op string) ([]*domain.Highlight, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, storeError(err, op)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeError(err, op)
	}
	defer rows.Close()

	highlights := make([]*domain.Highlight, 0)
	for rows.Next() {
		h, err := scanHighlight(rows)
		if err != nil {
			return nil, storeError(err, op)
		}
		highlights = append(highlights, h)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError(err, op)
	}

	return highlights, nil
}

func (r *highlightRepository) queryHighlightsWithBusiness(ctx context.Context, builder squirrel.SelectBuilder, op string) ([]*domain.HighlightWithBusiness, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, storeError(err, op)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeError(err, op)
	}
	defer rows.Close()

	result := make([]*domain.HighlightWithBusiness, 0)
	for rows.Next() {
		item, err := scanHighlightWithBusiness(rows)
		if err != nil {
			return nil, storeError(err, op)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError(err, op)
	}

	return result, nil
}

// activeOn filtra destaques ativos cujo período contém o dia (inclusivo)
func activeOn(day domain.Date) squirrel.And {
	return squirrel.And{
		squirrel.Eq{"h.status": string(domain.HighlightStatusActive)},
		squirrel.LtOrEq{"h.start_date": day},
		squirrel.GtOrEq{"h.end_date": day},
	}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

type highlightRow struct {
	h           domain.Highlight
	level       string
	status      string
	manualOrder sql.NullInt64
	badgeColor  sql.NullString
	borderColor sql.NullString
}

func (row *highlightRow) targets() []interface{} {
	return []interface{}{
		&row.h.ID,
		&row.h.BusinessID,
		&row.level,
		&row.status,
		&row.h.StartDate,
		&row.h.EndDate,
		&row.manualOrder,
		&row.h.PinToTop,
		&row.badgeColor,
		&row.borderColor,
		&row.h.RequestNotes,
		&row.h.Notes,
		&row.h.CreatedBy,
		&row.h.CreatedAt,
		&row.h.UpdatedAt,
	}
}

func (row *highlightRow) highlight() *domain.Highlight {
	h := row.h
	h.Level = domain.HighlightLevel(row.level)
	h.Status = domain.HighlightStatus(row.status)
	h.BadgeColor = row.badgeColor.String
	h.BorderColor = row.borderColor.String
	if row.manualOrder.Valid {
		order := int(row.manualOrder.Int64)
		h.ManualOrder = &order
	}
	return &h
}

func scanHighlight(s scanner) (*domain.Highlight, error) {
	row := &highlightRow{}
	if err := s.Scan(row.targets()...); err != nil {
		return nil, err
	}
	return row.highlight(), nil
}

func scanHighlightWithBusiness(s scanner) (*domain.HighlightWithBusiness, error) {
	row := &highlightRow{}
	var (
		businessID   sql.NullString
		businessName sql.NullString
		image        sql.NullString
		category     sql.NullString
	)

	targets := append(row.targets(), &businessID, &businessName, &image, &category)
	if err := s.Scan(targets...); err != nil {
		return nil, err
	}

	item := &domain.HighlightWithBusiness{Highlight: *row.highlight()}
	if businessID.Valid {
		item.Business = &domain.BusinessSummary{
			ID:       businessID.String,
			Name:     businessName.String,
			Category: category.String,
		}
		if image.Valid {
			img := image.String
			item.Business.Image = &img
		}
	}

	return item, nil
}

func statusStrings(statuses []domain.HighlightStatus) []string {
	result := make([]string, 0, len(statuses))
	for _, s := range statuses {
		result = append(result, string(s))
	}
	return result
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
