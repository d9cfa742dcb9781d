package domain

import "time"

// SweepResult resume uma execução da expiração de destaques.
// SkippedInProgress indica que outra varredura já rodava nesta instância e
// Interrupted indica cancelamento no meio da varredura (contadores parciais).
type SweepResult struct {
	RunID             string    `json:"run_id"`
	Today             Date      `json:"today"`
	ExpiredCount      int       `json:"expired_count"`
	SkippedCount      int       `json:"skipped_count"`
	FailedCount       int       `json:"failed_count"`
	SkippedLock       bool      `json:"skipped_lock"`
	SkippedInProgress bool      `json:"skipped_in_progress"`
	Interrupted       bool      `json:"interrupted"`
	StartedAt         time.Time `json:"started_at"`
	FinishedAt        time.Time `json:"finished_at"`
}
