package amazonads

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	adsdomain "github.com/vfg2006/ads-pull-api/infrastructure/integrator/amazonads/domain"
)

func TestExtractRecords_NDJSON(t *testing.T) {
	payload := `{"date":"2024-05-01","clicks":1}
{"date":"2024-05-02","clicks":2}
{"date":"2024-05-03","clicks":3}`

	records, err := ExtractRecords(payload)

	require.NoError(t, err)
	require.Len(t, records, 3)
	// A ordem do payload é preservada
	assert.Equal(t, "2024-05-01", records[0]["date"])
	assert.Equal(t, "2024-05-02", records[1]["date"])
	assert.Equal(t, "2024-05-03", records[2]["date"])
}

func TestExtractRecords_NDJSONEquivalenteAoArray(t *testing.T) {
	// O mesmo conteúdo como NDJSON e como array JSON deve produzir a
	// mesma sequência de registros
	ndjson := `{"keywordId":"1"}
{"keywordId":"2"}`
	array := `[{"keywordId":"1"},{"keywordId":"2"}]`

	fromLines, err := ExtractRecords(ndjson)
	require.NoError(t, err)

	fromArray, err := ExtractRecords(array)
	require.NoError(t, err)

	assert.Equal(t, fromLines, fromArray)
}

func TestExtractRecords_Envelopes(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected []map[string]any
	}{
		{
			name:    "Objeto com envelope records",
			payload: `{"records":[{"clicks":1.0},{"clicks":2.0}]}`,
			expected: []map[string]any{
				{"clicks": 1.0},
				{"clicks": 2.0},
			},
		},
		{
			name:    "records vence rows quando ambos presentes",
			payload: `{"rows":[{"origem":"rows"}],"records":[{"origem":"records"}]}`,
			expected: []map[string]any{
				{"origem": "records"},
			},
		},
		{
			name:    "Envelope aninhado um nível",
			payload: `{"report":{"rows":[{"clicks":7.0}]}}`,
			expected: []map[string]any{
				{"clicks": 7.0},
			},
		},
		{
			name:    "Objeto sem envelope é um registro único",
			payload: `{"date":"2024-05-01","clicks":5.0}`,
			expected: []map[string]any{
				{"date": "2024-05-01", "clicks": 5.0},
			},
		},
		{
			name:    "Elementos não-objeto do array são ignorados",
			payload: `[{"clicks":1.0},"texto",42]`,
			expected: []map[string]any{
				{"clicks": 1.0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ExtractRecords(tt.payload)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, records)
		})
	}
}

func TestExtractRecords_PayloadIrrecuperavel(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "Texto não-JSON", payload: "isto não é um relatório"},
		{name: "Payload vazio", payload: ""},
		{name: "Array vazio", payload: "[]"},
		{name: "Envelope com array vazio", payload: `{"records":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ExtractRecords(tt.payload)

			require.Error(t, err)
			assert.Nil(t, records)
			assert.Equal(t, adsdomain.StageParse, adsdomain.StageOf(err))
		})
	}
}

func TestExtractRecords_ErroDeParseTruncaDiagnostico(t *testing.T) {
	payload := strings.Repeat("x", 2000)

	_, err := ExtractRecords(payload)

	require.Error(t, err)
	// O erro carrega um prefixo do payload para diagnóstico, nunca o
	// corpo inteiro
	assert.Contains(t, err.Error(), strings.Repeat("x", 512))
	assert.Less(t, len(err.Error()), 1000)
}

func TestExtractRecords_LinhaInvalidaDescartaCaminhoNDJSON(t *testing.T) {
	// Uma linha inválida no meio faz o payload inteiro ser reinterpretado
	// como documento único; como ele não é JSON válido, o parse falha
	payload := `{"clicks":1}
linha inválida
{"clicks":2}`

	_, err := ExtractRecords(payload)

	require.Error(t, err)
	assert.Equal(t, adsdomain.StageParse, adsdomain.StageOf(err))
}
