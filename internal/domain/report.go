package domain

import "time"

// IngestSummary resume o resultado de uma ingestão de relatório
type IngestSummary struct {
	JobID     string `json:"job_id"`
	RunID     string `json:"run_id"`
	Processed int    `json:"processed"`
	Inserted  int    `json:"inserted"`
	Updated   int    `json:"updated"`
	Skipped   int    `json:"skipped"`
}

// ReportRequest descreve uma solicitação de relatório já resolvida em datas
type ReportRequest struct {
	EntityType   EntityType
	StartDate    time.Time
	EndDate      time.Time
	LookbackDays int
}
