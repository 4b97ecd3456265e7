package utils

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// MakeRequest faz um GET simples, sem nenhum header de autenticação.
// Usado para URLs pré-assinadas, que rejeitam headers de autorização.
func MakeRequest(url string) ([]byte, error) {
	client := &http.Client{
		Timeout: 60 * time.Second,
	}

	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Error on Request: %s status: %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return data, nil
}
