package ranking

import (
	"sort"

	"github.com/vfg2006/guia-local-api/internal/domain"
)

const (
	RulePinToTop    = "pin_to_top"
	RuleHighlighted = "highlighted"
	RuleLevel       = "level"
	RuleManualOrder = "manual_order"
	RuleRating      = "rating"
)

// Rule compara duas empresas: negativo quando a vem antes, positivo quando b
// vem antes e zero quando a regra não as distingue
type Rule struct {
	Name    string
	Compare func(a, b *domain.RankedBusiness) int
}

// Rules é a ordem oficial de desempate da listagem. A primeira regra que
// distinguir as empresas decide.
var Rules = []Rule{
	{Name: RulePinToTop, Compare: comparePinToTop},
	{Name: RuleHighlighted, Compare: compareHighlighted},
	{Name: RuleLevel, Compare: compareLevel},
	{Name: RuleManualOrder, Compare: compareManualOrder},
	{Name: RuleRating, Compare: compareRating},
}

// Rank anexa a cada empresa o destaque ativo que cobre o dia informado e
// ordena a lista de forma estável. Empresas empatadas mantêm a ordem de entrada.
func Rank(businesses []*domain.Business, highlights []*domain.Highlight, today domain.Date) []*domain.RankedBusiness {
	byBusiness := make(map[string]*domain.Highlight, len(highlights))
	for _, h := range highlights {
		if h == nil || !h.IsRankable(today) {
			continue
		}
		if _, exists := byBusiness[h.BusinessID]; !exists {
			byBusiness[h.BusinessID] = h
		}
	}

	ranked := make([]*domain.RankedBusiness, 0, len(businesses))
	for _, b := range businesses {
		if b == nil {
			continue
		}
		ranked = append(ranked, &domain.RankedBusiness{
			Business:  *b,
			Highlight: byBusiness[b.ID],
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return Compare(ranked[i], ranked[j]) < 0
	})

	for i := range ranked {
		ranked[i].Position = i + 1
	}

	return ranked
}

// Compare aplica as regras em ordem e devolve o primeiro resultado diferente de zero
func Compare(a, b *domain.RankedBusiness) int {
	for _, rule := range Rules {
		if result := rule.Compare(a, b); result != 0 {
			return result
		}
	}
	return 0
}

// DecidingRule retorna o nome da regra que ordenou o par, ou "" em caso de empate
func DecidingRule(a, b *domain.RankedBusiness) string {
	for _, rule := range Rules {
		if rule.Compare(a, b) != 0 {
			return rule.Name
		}
	}
	return ""
}

func comparePinToTop(a, b *domain.RankedBusiness) int {
	return compareBool(isPinned(a), isPinned(b))
}

func compareHighlighted(a, b *domain.RankedBusiness) int {
	return compareBool(a.Highlight != nil, b.Highlight != nil)
}

func compareLevel(a, b *domain.RankedBusiness) int {
	if a.Highlight == nil || b.Highlight == nil {
		return 0
	}
	return compareInt(a.Highlight.Level.Ordinal(), b.Highlight.Level.Ordinal())
}

// compareManualOrder: quem tem ordem manual vem antes de quem não tem;
// entre dois valores, o menor vem antes
func compareManualOrder(a, b *domain.RankedBusiness) int {
	if a.Highlight == nil || b.Highlight == nil {
		return 0
	}

	orderA, orderB := a.Highlight.ManualOrder, b.Highlight.ManualOrder
	switch {
	case orderA != nil && orderB != nil:
		return compareInt(*orderA, *orderB)
	case orderA != nil:
		return -1
	case orderB != nil:
		return 1
	default:
		return 0
	}
}

// compareRating ordena pela maior nota; nota ausente vale zero
func compareRating(a, b *domain.RankedBusiness) int {
	ratingA, ratingB := a.Business.RatingOrZero(), b.Business.RatingOrZero()
	switch {
	case ratingA > ratingB:
		return -1
	case ratingA < ratingB:
		return 1
	default:
		return 0
	}
}

func isPinned(r *domain.RankedBusiness) bool {
	return r.Highlight != nil && r.Highlight.PinToTop
}

// compareBool coloca true antes de false
func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return -1
	default:
		return 1
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
