package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipelineError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *PipelineError
		expected string
	}{
		{
			name:     "Status e corpo do upstream",
			err:      NewPipelineError(StageCreateReport, 400, `{"detail":"invalid column"}`),
			expected: `pipeline falhou no estágio create_report. Status: 400, Corpo: {"detail":"invalid column"}`,
		},
		{
			name:     "Erro interno embrulhado",
			err:      WrapPipelineError(StageDownload, fmt.Errorf("connection refused")),
			expected: "pipeline falhou no estágio download_report: connection refused",
		},
		{
			name:     "Corpo de diagnóstico sem status",
			err:      NewPipelineError(StageParse, 0, "prefixo do payload bruto"),
			expected: "pipeline falhou no estágio parse: prefixo do payload bruto",
		},
		{
			name:     "Somente o estágio",
			err:      &PipelineError{Stage: StageTokenExchange},
			expected: "pipeline falhou no estágio refresh_token_exchange",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestNewTerminalReportError(t *testing.T) {
	err := NewTerminalReportError("job terminou em FAILURE: internal error")

	assert.True(t, IsTerminal(err))
	assert.False(t, IsTimeout(err))
	assert.Equal(t, StageCheckReport, StageOf(err))
	assert.Contains(t, err.Error(), "FAILURE")
	assert.Contains(t, err.Error(), "internal error")
}

func TestIsTerminal_FalhaDaConsultaDeStatusNaoEhTerminal(t *testing.T) {
	err := NewPipelineError(StageCheckReport, 502, "bad gateway")

	assert.False(t, IsTerminal(err))
	assert.Equal(t, StageCheckReport, StageOf(err))
}
