package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/guia-local-api/infrastructure/database/postgres"
	"github.com/vfg2006/guia-local-api/internal/domain"
)

//go:generate mockgen -source=settings.go -destination=mocks/settings.go -package=mocks

const settingsTable = "ads_settings"

type SettingsRepository interface {
	Get(ctx context.Context) (*domain.HighlightSettings, error)
	Update(ctx context.Context, settings *domain.HighlightSettings) (*domain.HighlightSettings, error)
}

type settingsRepository struct {
	conn postgres.Queryer
	psql squirrel.StatementBuilderType
}

func NewSettingsRepository(conn postgres.Queryer) SettingsRepository {
	return &settingsRepository{
		conn: conn,
		psql: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Get retorna a linha de configuração. Sem linha cadastrada, usa os valores padrão.
func (r *settingsRepository) Get(ctx context.Context) (*domain.HighlightSettings, error) {
	query, args, err := r.psql.
		Select(
			"id",
			"default_duration_days",
			"max_active_highlights",
			"auto_expire_enabled",
			"premium_color",
			"alto_color",
			"padrao_color",
			"updated_at",
		).
		From(settingsTable).
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, storeError(err, "settings: build get")
	}

	s := &domain.HighlightSettings{}
	var maxActive sql.NullInt64
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.DefaultDurationDays,
		&maxActive,
		&s.AutoExpireEnabled,
		&s.PremiumColor,
		&s.AltoColor,
		&s.PadraoColor,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DefaultHighlightSettings(), nil
		}
		return nil, storeError(err, "settings: get")
	}

	if maxActive.Valid {
		value := int(maxActive.Int64)
		s.MaxActiveHighlights = &value
	}

	return s, nil
}

// Update grava a configuração, criando a linha se ainda não existir
func (r *settingsRepository) Update(ctx context.Context, settings *domain.HighlightSettings) (*domain.HighlightSettings, error) {
	values := map[string]interface{}{
		"default_duration_days": settings.DefaultDurationDays,
		"max_active_highlights": settings.MaxActiveHighlights,
		"auto_expire_enabled":   settings.AutoExpireEnabled,
		"premium_color":         settings.PremiumColor,
		"alto_color":            settings.AltoColor,
		"padrao_color":          settings.PadraoColor,
	}

	var (
		query string
		args  []interface{}
		err   error
	)
	if settings.ID == "" {
		query, args, err = r.psql.
			Insert(settingsTable).
			SetMap(values).
			Suffix("RETURNING id, updated_at").
			ToSql()
	} else {
		values["updated_at"] = squirrel.Expr("now()")
		query, args, err = r.psql.
			Update(settingsTable).
			SetMap(values).
			Where(squirrel.Eq{"id": settings.ID}).
			Suffix("RETURNING id, updated_at").
			ToSql()
	}
	if err != nil {
		return nil, storeError(err, "settings: build update")
	}

	updated := *settings
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&updated.ID, &updated.UpdatedAt); err != nil {
		return nil, storeError(err, "settings: update")
	}

	return &updated, nil
}
