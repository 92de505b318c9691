package domain

import "errors"

// Errori di dominio (senza dipendenze esterne).
var (
	ErrNotFound              = errors.New("risorsa non trovata")
	ErrUserNotFound          = errors.New("utente non trovato")
	ErrUsernameAlreadyExists = errors.New("username o email già registrati")
	ErrInvalidInput          = errors.New("input non valido")
	ErrDuplicate             = errors.New("risorsa duplicata")
	ErrUnauthorized          = errors.New("non autorizzato")
	ErrForbidden             = errors.New("accesso negato")
	ErrConflict              = errors.New("conflitto con lo stato attuale")
)
