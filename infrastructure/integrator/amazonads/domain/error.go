package domain

import (
	"errors"
	"fmt"
)

// Estágios do pipeline, usados para etiquetar falhas de upstream.
// Permitem distinguir "bug nosso" de "indisponibilidade deles".
const (
	StageTokenExchange = "refresh_token_exchange"
	StageCreateReport  = "create_report"
	StageCheckReport   = "check_report"
	StageDownload      = "download_report"
	StageParse         = "parse"
)

// ErrReportTimeout indica que o job não terminou dentro do prazo.
// Diferente de uma falha terminal: o job ainda pode completar no lado
// do servidor e a consulta de status pode ser repetida depois.
var ErrReportTimeout = errors.New("relatório não ficou pronto dentro do prazo de espera")

// ErrReportTerminal indica que o provedor reportou o job em FAILURE ou
// CANCELLED. O mesmo id nunca produzirá payload; é preciso criar um
// novo job.
var ErrReportTerminal = errors.New("relatório terminou em estado terminal no provedor")

// PipelineError é uma falha etiquetada por estágio, carregando o status
// e o corpo retornados pelo upstream quando disponíveis
type PipelineError struct {
	Stage      string
	StatusCode int
	Body       string
	Err        error
}

func (e *PipelineError) Error() string {
	msg := fmt.Sprintf("pipeline falhou no estágio %s", e.Stage)
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s. Status: %d, Corpo: %s", msg, e.StatusCode, e.Body)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Body != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Body)
	}
	return msg
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// NewPipelineError cria uma falha de upstream etiquetada por estágio
func NewPipelineError(stage string, statusCode int, body string) *PipelineError {
	return &PipelineError{Stage: stage, StatusCode: statusCode, Body: body}
}

// WrapPipelineError etiqueta um erro interno com o estágio em que ocorreu
func WrapPipelineError(stage string, err error) *PipelineError {
	return &PipelineError{Stage: stage, Err: err}
}

// NewTerminalReportError etiqueta a falha terminal reportada pelo
// provedor, preservando o estado e o motivo no corpo
func NewTerminalReportError(body string) *PipelineError {
	return &PipelineError{Stage: StageCheckReport, Body: body, Err: ErrReportTerminal}
}

// IsTimeout indica se o erro é a classificação de timeout (retriável)
func IsTimeout(err error) bool {
	return errors.Is(err, ErrReportTimeout)
}

// IsTerminal indica se o erro é a falha terminal do job, que não deve
// ser repetida com o mesmo id
func IsTerminal(err error) bool {
	return errors.Is(err, ErrReportTerminal)
}

// StageOf devolve o estágio de um PipelineError, ou vazio
func StageOf(err error) string {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Stage
	}
	return ""
}
