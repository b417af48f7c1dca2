package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound     = errors.New("recurso não encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflito com o estado atual")
)
