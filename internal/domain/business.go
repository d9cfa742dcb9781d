package domain

type BusinessStatus string

const (
	BusinessStatusPending  BusinessStatus = "pending"
	BusinessStatusApproved BusinessStatus = "approved"
	BusinessStatusRejected BusinessStatus = "rejected"
)

// Business é a empresa do diretório. O cadastro é mantido fora deste serviço;
// aqui só interessam os campos usados na listagem e no ranking.
type Business struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Slug     *string        `json:"slug"`
	Image    *string        `json:"image"`
	Category string         `json:"category"`
	Rating   *float64       `json:"rating"`
	Status   BusinessStatus `json:"status"`
	OwnerID  *string        `json:"owner_id"`
}

// RatingOrZero trata nota ausente como zero
func (b *Business) RatingOrZero() float64 {
	if b == nil || b.Rating == nil {
		return 0
	}
	return *b.Rating
}

type BusinessSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Image    *string `json:"image"`
	Category string  `json:"category"`
}

type BusinessFilters struct {
	Category string
	Search   string
}

// RankedBusiness é uma empresa da listagem com o destaque que a posicionou
type RankedBusiness struct {
	Business
	Position  int        `json:"position"`
	Highlight *Highlight `json:"highlight"`
}
