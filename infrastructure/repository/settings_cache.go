package repository

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/vfg2006/guia-local-api/internal/domain"
)

const settingsCacheKey = "ads_settings"

// cachedSettingsRepository guarda a configuração em memória por um TTL curto.
// As escritas passam direto e atualizam o cache.
type cachedSettingsRepository struct {
	next  SettingsRepository
	cache *cache.Cache
}

// WithSettingsCache envolve o repositório com cache em memória. TTL zero ou
// negativo desabilita o cache.
func WithSettingsCache(next SettingsRepository, ttl time.Duration) SettingsRepository {
	if ttl <= 0 {
		return next
	}
	return &cachedSettingsRepository{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (r *cachedSettingsRepository) Get(ctx context.Context) (*domain.HighlightSettings, error) {
	if cached, found := r.cache.Get(settingsCacheKey); found {
		settings := *cached.(*domain.HighlightSettings)
		return &settings, nil
	}

	settings, err := r.next.Get(ctx)
	if err != nil {
		return nil, err
	}

	stored := *settings
	r.cache.SetDefault(settingsCacheKey, &stored)
	return settings, nil
}

func (r *cachedSettingsRepository) Update(ctx context.Context, settings *domain.HighlightSettings) (*domain.HighlightSettings, error) {
	updated, err := r.next.Update(ctx, settings)
	if err != nil {
		r.cache.Delete(settingsCacheKey)
		return nil, err
	}

	stored := *updated
	r.cache.SetDefault(settingsCacheKey, &stored)
	return updated, nil
}
