// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"
)

type HighlightLevel string

const (
	HighlightLevelPremium HighlightLevel = "premium"
	HighlightLevelAlto    HighlightLevel = "alto"
	HighlightLevelPadrao  HighlightLevel = "padrao"
)

// highlightLevels é a ordem oficial dos níveis, do mais forte para o mais fraco.
// A posição na lista é o ordinal usado pelo ranking e pelos badges.
var highlightLevels = []HighlightLevel{
	HighlightLevelPremium,
	HighlightLevelAlto,
	HighlightLevelPadrao,
}

var highlightLevelLabels = map[HighlightLevel]string{
	HighlightLevelPremium: "Premium",
	HighlightLevelAlto:    "Alto",
	HighlightLevelPadrao:  "Padrão",
}

var highlightLevelColors = map[HighlightLevel]string{
	HighlightLevelPremium: "#FFD700",
	HighlightLevelAlto:    "#3B82F6",
	HighlightLevelPadrao:  "#10B981",
}

// HighlightLevels retorna os níveis conhecidos em ordem de prioridade
func HighlightLevels() []HighlightLevel {
	levels := make([]HighlightLevel, len(highlightLevels))
	copy(levels, highlightLevels)
	return levels
}

// Ordinal retorna a posição do nível (premium=0). Níveis desconhecidos ficam
// abaixo de todos os conhecidos.
func (l HighlightLevel) Ordinal() int {
	for i, level := range highlightLevels {
		if level == l {
			return i
		}
	}
	return len(highlightLevels)
}

func (l HighlightLevel) IsValid() bool {
	return l.Ordinal() < len(highlightLevels)
}

func (l HighlightLevel) Label() string {
	if label, ok := highlightLevelLabels[l]; ok {
		return label
	}
	return string(l)
}

// DefaultColor é a cor padrão de badge/borda para o nível
func (l HighlightLevel) DefaultColor() string {
	return highlightLevelColors[l]
}

type HighlightStatus string

const (
	HighlightStatusPending  HighlightStatus = "aguardando_aprovacao"
	HighlightStatusActive   HighlightStatus = "ativo"
	HighlightStatusPaused   HighlightStatus = "pausado"
	HighlightStatusExpired  HighlightStatus = "expirado"
	HighlightStatusRejected HighlightStatus = "rejeitado"
)

var highlightStatusLabels = map[HighlightStatus]string{
	HighlightStatusPending:  "Aguardando",
	HighlightStatusActive:   "Ativo",
	HighlightStatusPaused:   "Pausado",
	HighlightStatusExpired:  "Expirado",
	HighlightStatusRejected: "Rejeitado",
}

// HoldingHighlightStatuses são os status que ocupam a vaga única de destaque da empresa
var HoldingHighlightStatuses = []HighlightStatus{
	HighlightStatusPending,
	HighlightStatusActive,
	HighlightStatusPaused,
}

func (s HighlightStatus) IsValid() bool {
	_, ok := highlightStatusLabels[s]
	return ok
}

func (s HighlightStatus) Label() string {
	if label, ok := highlightStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s HighlightStatus) IsTerminal() bool {
	return s == HighlightStatusExpired || s == HighlightStatusRejected
}

// IsHolding indica se o status bloqueia um novo destaque para a mesma empresa
func (s HighlightStatus) IsHolding() bool {
	for _, status := range HoldingHighlightStatuses {
		if status == s {
			return true
		}
	}
	return false
}

type Highlight struct {
	ID           string          `json:"id"`
	BusinessID   string          `json:"business_id"`
	Level        HighlightLevel  `json:"level"`
	Status       HighlightStatus `json:"status"`
	StartDate    Date            `json:"start_date"`
	EndDate      Date            `json:"end_date"`
	ManualOrder  *int            `json:"manual_order"`
	PinToTop     bool            `json:"pin_to_top"`
	BadgeColor   string          `json:"badge_color"`
	BorderColor  string          `json:"border_color"`
	RequestNotes *string         `json:"request_notes"`
	Notes        *string         `json:"notes"`
	CreatedBy    *string         `json:"created_by"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Covers indica se o período do destaque contém o dia informado (inclusivo)
func (h *Highlight) Covers(day Date) bool {
	return !day.Before(h.StartDate) && !day.After(h.EndDate)
}

// IsRankable indica se o destaque participa do ranking no dia informado
func (h *Highlight) IsRankable(today Date) bool {
	return h.Status == HighlightStatusActive && h.Covers(today)
}

// HighlightWithBusiness é a projeção usada pela listagem e pelo painel do admin
type HighlightWithBusiness struct {
	Highlight
	Business *BusinessSummary `json:"business"`
}

type HighlightRequest struct {
	BusinessID   string         `json:"business_id"`
	Level        HighlightLevel `json:"level" validate:"required,oneof=premium alto padrao"`
	DurationDays int            `json:"duration_days" validate:"required,min=1,max=365"`
	Notes        *string        `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// HighlightOverrides são os campos que o admin pode definir ao aprovar ou editar
type HighlightOverrides struct {
	Level       *HighlightLevel `json:"level,omitempty" validate:"omitempty,oneof=premium alto padrao"`
	StartDate   *Date           `json:"start_date,omitempty"`
	EndDate     *Date           `json:"end_date,omitempty"`
	ManualOrder *int            `json:"manual_order,omitempty" validate:"omitempty,min=0"`
	PinToTop    *bool           `json:"pin_to_top,omitempty"`
	BadgeColor  *string         `json:"badge_color,omitempty" validate:"omitempty,hexcolor"`
	BorderColor *string         `json:"border_color,omitempty" validate:"omitempty,hexcolor"`
	Notes       *string         `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type RejectHighlightRequest struct {
	Reason string `json:"reason"`
}

// NewHighlightInput é a criação direta feita pelo admin, sem passar pela solicitação
type NewHighlightInput struct {
	BusinessID  string          `json:"business_id" validate:"required"`
	Level       HighlightLevel  `json:"level" validate:"required,oneof=premium alto padrao"`
	Status      HighlightStatus `json:"status,omitempty"`
	StartDate   Date            `json:"start_date"`
	EndDate     Date            `json:"end_date"`
	ManualOrder *int            `json:"manual_order,omitempty" validate:"omitempty,min=0"`
	PinToTop    bool            `json:"pin_to_top"`
	BadgeColor  string          `json:"badge_color,omitempty" validate:"omitempty,hexcolor"`
	BorderColor string          `json:"border_color,omitempty" validate:"omitempty,hexcolor"`
	Notes       *string         `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type HighlightFilters struct {
	Status *HighlightStatus
	Search string
}

type HighlightStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Pending  int `json:"pending"`
	Paused   int `json:"paused"`
	Expired  int `json:"expired"`
	Rejected int `json:"rejected"`
}
