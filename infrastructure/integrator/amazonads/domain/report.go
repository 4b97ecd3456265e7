package domain

import "time"

// Status externos do job de relatório. Estados terminais são apenas
// observados, nunca mutados localmente.
const (
	ReportStatusPending    = "PENDING"
	ReportStatusProcessing = "PROCESSING"
	ReportStatusSuccess    = "SUCCESS"
	ReportStatusCompleted  = "COMPLETED"
	ReportStatusFailure    = "FAILURE"
	ReportStatusCancelled  = "CANCELLED"
)

// IsReportDone indica que o relatório está pronto para download
func IsReportDone(status string) bool {
	return status == ReportStatusSuccess || status == ReportStatusCompleted
}

// IsReportDead indica que o job nunca vai completar e não deve ser re-consultado
func IsReportDead(status string) bool {
	return status == ReportStatusFailure || status == ReportStatusCancelled
}

// ReportConfiguration é o bloco de configuração do POST /reporting/reports
type ReportConfiguration struct {
	AdProduct    string   `json:"adProduct"`
	GroupBy      []string `json:"groupBy"`
	Columns      []string `json:"columns"`
	ReportTypeID string   `json:"reportTypeId"`
	TimeUnit     string   `json:"timeUnit"`
	Format       string   `json:"format"`
}

// CreateReportRequest é o corpo de criação de um job de relatório
type CreateReportRequest struct {
	Name          string              `json:"name"`
	StartDate     string              `json:"startDate"`
	EndDate       string              `json:"endDate"`
	Configuration ReportConfiguration `json:"configuration"`
}

// CreateReportResponse é a resposta de criação bem-sucedida
type CreateReportResponse struct {
	ReportID string `json:"reportId"`
	Status   string `json:"status"`
}

// ReportStatusResponse é a resposta do GET /reporting/reports/{id}
type ReportStatusResponse struct {
	ReportID      string     `json:"reportId"`
	Status        string     `json:"status"`
	URL           string     `json:"url,omitempty"`
	FailureReason string     `json:"failureReason,omitempty"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// ReportJob é o resultado da criação de um job, com a flag de recuperação
// de duplicata (HTTP 425)
type ReportJob struct {
	ReportID  string `json:"report_id"`
	Duplicate bool   `json:"duplicate"`
}

// TokenResponse representa a resposta da troca de refresh token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
