package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound  = errors.New("recurso no encontrado")
	ErrDuplicate = errors.New("recurso duplicado")
)

// ValidationKind clasifica los rechazos del validador de movimientos.
// Cada validación fallida produce exactamente un kind (gana la primera regla
// violada); la capa HTTP los traduce a códigos y mensajes sin re-derivarlos.
type ValidationKind string

const (
	KindMissingField             ValidationKind = "MISSING_FIELD"
	KindDuplicateIdentifier      ValidationKind = "DUPLICATE_ID"
	KindUnknownProduct           ValidationKind = "UNKNOWN_PRODUCT"
	KindUnknownLocation          ValidationKind = "UNKNOWN_LOCATION"
	KindNoRouteSpecified         ValidationKind = "NO_ROUTE"
	KindSameSourceAndDestination ValidationKind = "SAME_ROUTE"
	KindNotAnInteger             ValidationKind = "NOT_AN_INTEGER"
	KindNonPositiveQuantity      ValidationKind = "NON_POSITIVE_QTY"
	KindInsufficientStock        ValidationKind = "INSUFFICIENT_STOCK"
	KindReferencedByMovement     ValidationKind = "REFERENCED_BY_MOVEMENT"
)

// ValidationError rechazo recuperable del validador. Lleva el kind, el campo
// implicado y, para stock insuficiente, la cantidad disponible reportada.
// Nunca deja estado parcial: un rechazo significa que nada se escribió.
type ValidationError struct {
	Kind      ValidationKind
	Field     string // campo que disparó el rechazo (cuando aplica)
	Available int    // solo para INSUFFICIENT_STOCK
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindMissingField:
		return fmt.Sprintf("el campo %s es requerido", e.Field)
	case KindDuplicateIdentifier:
		return fmt.Sprintf("el identificador %s ya existe", e.Field)
	case KindUnknownProduct:
		return "el producto no existe"
	case KindUnknownLocation:
		return fmt.Sprintf("la ubicación de %s no existe", e.Field)
	case KindNoRouteSpecified:
		return "debe indicar ubicación de origen o de destino"
	case KindSameSourceAndDestination:
		return "origen y destino no pueden ser la misma ubicación"
	case KindNotAnInteger:
		return "la cantidad debe ser un número entero"
	case KindNonPositiveQuantity:
		return "la cantidad debe ser positiva"
	case KindInsufficientStock:
		return fmt.Sprintf("stock insuficiente en la ubicación de origen; disponible: %d", e.Available)
	case KindReferencedByMovement:
		return "no se puede eliminar: existen movimientos que lo referencian"
	}
	return string(e.Kind)
}

// NewValidationError construye un rechazo por kind y campo.
func NewValidationError(kind ValidationKind, field string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field}
}

// NewInsufficientStockError construye el rechazo por stock insuficiente
// reportando la cantidad disponible en la ubicación de origen.
func NewInsufficientStockError(available int) *ValidationError {
	return &ValidationError{Kind: KindInsufficientStock, Available: available}
}

// AsValidationError devuelve el *ValidationError envuelto en err, si lo hay.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
