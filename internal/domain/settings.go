package domain

import "time"

const DefaultHighlightDurationDays = 30

// HighlightSettings são as configurações globais dos anúncios em destaque
type HighlightSettings struct {
	ID                  string    `json:"id"`
	DefaultDurationDays int       `json:"default_duration_days" validate:"min=1,max=365"`
	MaxActiveHighlights *int      `json:"max_active_highlights" validate:"omitempty,min=1"`
	AutoExpireEnabled   bool      `json:"auto_expire_enabled"`
	PremiumColor        string    `json:"premium_color" validate:"omitempty,hexcolor"`
	AltoColor           string    `json:"alto_color" validate:"omitempty,hexcolor"`
	PadraoColor         string    `json:"padrao_color" validate:"omitempty,hexcolor"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func DefaultHighlightSettings() *HighlightSettings {
	return &HighlightSettings{
		DefaultDurationDays: DefaultHighlightDurationDays,
		AutoExpireEnabled:   true,
		PremiumColor:        HighlightLevelPremium.DefaultColor(),
		AltoColor:           HighlightLevelAlto.DefaultColor(),
		PadraoColor:         HighlightLevelPadrao.DefaultColor(),
	}
}

// ColorFor retorna a cor configurada para o nível, caindo na cor padrão
func (s *HighlightSettings) ColorFor(level HighlightLevel) string {
	var color string
	if s != nil {
		switch level {
		case HighlightLevelPremium:
			color = s.PremiumColor
		case HighlightLevelAlto:
			color = s.AltoColor
		case HighlightLevelPadrao:
			color = s.PadraoColor
		}
	}
	if color == "" {
		color = level.DefaultColor()
	}
	return color
}
