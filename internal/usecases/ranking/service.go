package ranking

import (
	"context"

	"github.com/vfg2006/guia-local-api/infrastructure/repository"
	"github.com/vfg2006/guia-local-api/internal/domain"
)

type RankingService interface {
	ListBusinesses(ctx context.Context, filters domain.BusinessFilters, today domain.Date) ([]*domain.RankedBusiness, error)
}

type BusinessRankingService struct {
	BusinessRepository  repository.BusinessRepository
	HighlightRepository repository.HighlightRepository
}

func NewBusinessRankingService(
	businessRepository repository.BusinessRepository,
	highlightRepository repository.HighlightRepository,
) RankingService {
	return &BusinessRankingService{
		BusinessRepository:  businessRepository,
		HighlightRepository: highlightRepository,
	}
}

// ListBusinesses busca as empresas aprovadas e os destaques vigentes no dia
// e devolve a listagem já ordenada. Os filtros não interferem no ranking.
func (s *BusinessRankingService) ListBusinesses(ctx context.Context, filters domain.BusinessFilters, today domain.Date) ([]*domain.RankedBusiness, error) {
	businesses, err := s.BusinessRepository.ListApproved(ctx, filters)
	if err != nil {
		return nil, err
	}

	if len(businesses) == 0 {
		return []*domain.RankedBusiness{}, nil
	}

	highlights, err := s.HighlightRepository.ListActiveOn(ctx, today)
	if err != nil {
		return nil, err
	}

	return Rank(businesses, highlights, today), nil
}
