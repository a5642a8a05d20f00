package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de error del núcleo financiero
const (
	// Autenticación y permisos
	ErrInvalidToken          = "AUTH_001" // Token inválido
	ErrExpiredToken          = "AUTH_002" // Token expirado
	ErrInsufficientPrivilege = "AUTH_003" // Privilegios insuficientes
	ErrInvalidAdminKey       = "AUTH_004" // Clave administrativa inválida

	// Validación
	ErrInvalidRequest      = "VAL_001" // Solicitud inválida
	ErrMissingRequiredData = "VAL_002" // Datos obligatorios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de datos inválido

	// Tasas de cambio
	ErrRateSourceFailure = "RATE_001" // Falla de la fuente externa de tasas
	ErrInvalidRateKind   = "RATE_002" // Tipo de tasa desconocido
	ErrInvalidRateValue  = "RATE_003" // Valor de tasa manual inválido

	// Facturación
	ErrPaymentExceedsBalance = "INV_001" // El pago excede el saldo pendiente
	ErrInvalidPaymentMethod  = "INV_002" // Método de pago desconocido
	ErrInvoiceNotPayable     = "INV_003" // La factura no admite más pagos
	ErrNegativeDiscount      = "INV_004" // Descuento negativo

	// Comisiones
	ErrCommissionNotFound = "COM_001" // Comisión no encontrada
	ErrInvalidDebit       = "COM_002" // Débito inválido
	ErrOrderNotFound      = "COM_003" // Orden no encontrada

	// Metas
	ErrInvalidMarginConfig = "TGT_001" // Margen deseado mal configurado
	ErrStoreNotFound       = "TGT_002" // Tienda no encontrada

	// Servidor
	ErrInternalServer    = "SRV_001" // Error interno del servidor
	ErrDatabaseOperation = "SRV_002" // Error de operación de base de datos
	ErrExternalService   = "SRV_003" // Error en servicio externo
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidAdminKey:       http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrRateSourceFailure:     http.StatusBadGateway,
	ErrInvalidRateKind:       http.StatusBadRequest,
	ErrInvalidRateValue:      http.StatusBadRequest,
	ErrPaymentExceedsBalance: http.StatusUnprocessableEntity,
	ErrInvalidPaymentMethod:  http.StatusBadRequest,
	ErrInvoiceNotPayable:     http.StatusConflict,
	ErrNegativeDiscount:      http.StatusBadRequest,
	ErrCommissionNotFound:    http.StatusNotFound,
	ErrInvalidDebit:          http.StatusBadRequest,
	ErrOrderNotFound:         http.StatusNotFound,
	ErrInvalidMarginConfig:   http.StatusInternalServerError,
	ErrStoreNotFound:         http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
}

// APIError es la envoltura de error estandarizada de la API. Details debe
// traer suficiente contexto (qué restricción, por cuánto) para que el
// consumidor corrija la entrada.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError escribe el error estandarizado en la respuesta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError crea un error de API a partir de un error Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Error desconocido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
