package amazonads

import (
	"encoding/json"
	"strings"

	adsdomain "github.com/vfg2006/ads-pull-api/infrastructure/integrator/amazonads/domain"
	"github.com/vfg2006/ads-pull-api/pkg/utils"
)

// Chaves convencionais de envelope, avaliadas em ordem: a primeira
// presente vence, envelopes seguintes são ignorados (nunca mesclados)
var wrapperKeys = []string{"records", "rows", "data", "report", "result", "items"}

// Sub-chaves consultadas quando um envelope contém outro objeto
var nestedWrapperKeys = []string{"records", "rows", "data", "items"}

// Prefixo do payload bruto incluído no erro de parse para diagnóstico
const parseDiagnosticBytes = 512

// ExtractRecords interpreta um payload de relatório de formato
// desconhecido como uma sequência plana de registros. Tenta primeiro o
// caminho NDJSON (uma linha JSON por registro); se qualquer linha não
// for JSON válido, o payload inteiro é reinterpretado como um único
// documento JSON. Resultado vazio após todas as estratégias é uma falha
// fatal de parse.
func ExtractRecords(payload string) ([]map[string]any, error) {
	records, ok := extractFromLines(payload)
	if !ok {
		records = extractFromDocument(payload)
	}

	if len(records) == 0 {
		return nil, adsdomain.NewPipelineError(adsdomain.StageParse, 0, utils.Truncate(payload, parseDiagnosticBytes))
	}

	return records, nil
}

// extractFromLines tenta o caminho NDJSON. O caminho é tudo-ou-nada:
// qualquer linha inválida descarta o que já foi coletado.
func extractFromLines(payload string) ([]map[string]any, bool) {
	lines := strings.Split(payload, "\n")

	records := make([]map[string]any, 0, len(lines))
	sawLine := false

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sawLine = true

		var value any
		if err := json.Unmarshal([]byte(line), &value); err != nil {
			return nil, false
		}

		lineRecords := collectRecords(value)
		if len(lineRecords) == 0 {
			return nil, false
		}

		records = append(records, lineRecords...)
	}

	if !sawLine {
		return nil, false
	}

	return records, true
}

// extractFromDocument trata o payload inteiro como um único documento JSON
func extractFromDocument(payload string) []map[string]any {
	var value any
	if err := json.Unmarshal([]byte(strings.TrimSpace(payload)), &value); err != nil {
		return nil
	}

	return collectRecords(value)
}

// collectRecords desembrulha um valor JSON já decodificado em registros.
// Sequências contribuem seus elementos-objeto; objetos são inspecionados
// pelas chaves de envelope na ordem fixa; um objeto sem envelope é ele
// próprio um registro.
func collectRecords(value any) []map[string]any {
	switch v := value.(type) {
	case []any:
		return mappingElements(v)

	case map[string]any:
		for _, key := range wrapperKeys {
			inner, present := v[key]
			if !present {
				continue
			}

			switch innerValue := inner.(type) {
			case []any:
				return mappingElements(innerValue)
			case map[string]any:
				// Envelope dentro de envelope: desce exatamente um nível
				for _, nestedKey := range nestedWrapperKeys {
					if seq, ok := innerValue[nestedKey].([]any); ok {
						return mappingElements(seq)
					}
				}
			}
		}

		return []map[string]any{v}
	}

	return nil
}

func mappingElements(seq []any) []map[string]any {
	records := make([]map[string]any, 0, len(seq))
	for _, element := range seq {
		if record, ok := element.(map[string]any); ok {
			records = append(records, record)
		}
	}
	return records
}
