package services

import (
	"errors"
	"fmt"
)

var (
	ErrPedidoNoEncontrado    = errors.New("pedido no encontrado")
	ErrPlatoNoEncontrado     = errors.New("plato no encontrado")
	ErrUsuarioNoEncontrado   = errors.New("usuario no encontrado")
	ErrEmailRegistrado       = errors.New("el email ya está registrado")
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
)

// ValidationError reports a business-rule violation in a request payload.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// PlatoInexistenteError reports an order line referencing a plato that is
// not in the catalog. It names the offending id.
type PlatoInexistenteError struct {
	ID int
}

func (e *PlatoInexistenteError) Error() string {
	return fmt.Sprintf("el plato con id %d no existe", e.ID)
}

// TransicionInvalidaError reports a state-machine precondition failure:
// the pedido is not in the estado the requested transition expects.
type TransicionInvalidaError struct {
	EstadoActual    string
	EstadoRequerido string
}

func (e *TransicionInvalidaError) Error() string {
	return fmt.Sprintf("el pedido está en estado '%s', se requiere '%s'", e.EstadoActual, e.EstadoRequerido)
}
