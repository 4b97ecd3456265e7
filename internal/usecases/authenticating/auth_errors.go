package authenticating

import "errors"

var (
	// ErrInvalidCredentials indica email ou senha incorretos
	ErrInvalidCredentials = errors.New("credenciais inválidas")

	// ErrInvalidToken indica um token JWT inválido ou expirado
	ErrInvalidToken = errors.New("token inválido")

	// ErrAuthNotConfigured indica que o operador não foi configurado no ambiente
	ErrAuthNotConfigured = errors.New("autenticação não configurada: defina OPERATOR_EMAIL e OPERATOR_PASSWORD_HASH")
)
