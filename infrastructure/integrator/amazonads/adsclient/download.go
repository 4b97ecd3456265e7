package adsclient

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/ads-pull-api/infrastructure/integrator/amazonads/domain"
	"github.com/vfg2006/ads-pull-api/pkg/utils"
)

// DownloadReport baixa o payload do relatório de uma URL pré-assinada e
// devolve o texto decodificado. A URL é temporária e NÃO aceita headers
// de autorização; anexá-los faz o storage rejeitar a requisição.
func (c *AdsClient) DownloadReport(url string) (string, error) {
	raw, err := utils.MakeRequest(url)
	if err != nil {
		return "", adsdomain.WrapPipelineError(adsdomain.StageDownload, err)
	}

	return decodePayload(raw), nil
}

// decodePayload tenta descomprimir o payload como gzip; se o conteúdo não
// for um container gzip válido, trata os bytes como texto já decodificado,
// descartando sequências UTF-8 inválidas.
func decodePayload(raw []byte) string {
	reader, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		logrus.Debug("Payload do relatório não é gzip, tratando como texto puro")
		return strings.ToValidUTF8(string(raw), "")
	}
	defer reader.Close()

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		// Container gzip truncado ou corrompido: melhor aproveitar o que
		// veio cru do que perder o payload inteiro
		logrus.WithError(err).Warn("Falha ao descomprimir payload gzip, usando bytes crus")
		return strings.ToValidUTF8(string(raw), "")
	}

	return strings.ToValidUTF8(string(decompressed), "")
}
