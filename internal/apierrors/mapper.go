package apierrors

import (
	"errors"
	"fmt"
	"strings"

	cartProcessor "gepe-server/internal/cart/processor"
	catalogProcessor "gepe-server/internal/catalog/processor"
	contactProcessor "gepe-server/internal/contact/processor"
	contentProcessor "gepe-server/internal/content/processor"
	newsletterProcessor "gepe-server/internal/newsletter/processor"
	ordersProcessor "gepe-server/internal/orders/processor"
	paymentsProcessor "gepe-server/internal/payments/processor"
	settingsProcessor "gepe-server/internal/settings/processor"
	"gepe-server/internal/store"
	usersProcessor "gepe-server/internal/users/processor"
)

// MapError converts domain/processor errors to APIErrors.
// This function centralizes all error mapping logic to ensure consistent
// error responses across the entire API.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
//
// Messages are in Spanish: they go straight to the storefront and the admin
// panel. Logs stay in English.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	// Check if already an APIError
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var (
		categoryExists    catalogProcessor.CategoryExistsError
		categoryInUse     catalogProcessor.CategoryInUseError
		orderNotFound     ordersProcessor.OrderNotFoundError
		productionBlocked ordersProcessor.ProductionUpdateBlockedError
		finishBlocked     ordersProcessor.FinishProductionBlockedError
		paymentNotFound   paymentsProcessor.PaymentNotFoundError
		mpPaymentNotFound paymentsProcessor.ProviderPaymentNotFoundError
		refundBlocked     paymentsProcessor.RefundBlockedError
		refundExceeds     paymentsProcessor.RefundExceedsAvailableError
		recoverBlocked    paymentsProcessor.RecoverOrderBlockedError
	)

	switch {
	// Map catalog processor errors
	case errors.Is(err, catalogProcessor.ErrProductNotFound):
		return NotFound(CodeProductNotFound, "Producto no encontrado")

	case errors.Is(err, catalogProcessor.ErrCategoryNotFound):
		return NotFound(CodeNotFound, "Categoría no encontrada")

	case errors.As(err, &categoryExists):
		return BadRequest(CodeNameExists,
			fmt.Sprintf("Ya existe una categoría con el nombre '%s' o slug '%s'", categoryExists.Name, categoryExists.Slug))

	case errors.Is(err, catalogProcessor.ErrCategoryConflict):
		return BadRequest(CodeNameExists, "Ya existe otra categoría con ese nombre o slug")

	case errors.As(err, &categoryInUse):
		return BadRequest(CodeCategoryInUse,
			fmt.Sprintf("No se puede eliminar la categoría porque tiene %d producto(s) asociado(s). Primero debes cambiar o eliminar esos productos.", categoryInUse.Products))

	case errors.Is(err, catalogProcessor.ErrClubNotFound):
		return NotFound(CodeNotFound, "Club no encontrado")

	case errors.Is(err, catalogProcessor.ErrClubConflict):
		return BadRequest(CodeNameExists, "Ya existe otro club con ese nombre o slug")

	case errors.Is(err, catalogProcessor.ErrUploadsDisabled),
		errors.Is(err, contentProcessor.ErrUploadsDisabled):
		return ServiceUnavailable(CodeUploadsDisabled,
			"La subida de archivos no está configurada. Revisar las credenciales de Cloudinary.", err)

	// Map content processor errors
	case errors.Is(err, contentProcessor.ErrHeroMediaNotFound):
		return NotFound(CodeNotFound, "HeroMedia no encontrado")

	case errors.Is(err, contentProcessor.ErrBannerNotFound):
		return NotFound(CodeNotFound, "PromoBanner no encontrado")

	case errors.Is(err, contentProcessor.ErrImageURLRequired):
		return BadRequest(CodeInvalidInput, "image_url es requerido")

	case errors.Is(err, contentProcessor.ErrIntervalTooShort):
		return BadRequest(CodeInvalidInput, "El intervalo debe ser al menos 1 segundo")

	case errors.Is(err, contentProcessor.ErrIntervalTooLong):
		return BadRequest(CodeInvalidInput, "El intervalo no puede ser mayor a 60 segundos")

	case errors.Is(err, contentProcessor.ErrUnsupportedMediaType):
		return BadRequest(CodeInvalidInput, "El archivo debe ser una imagen o video")

	// Map settings processor errors
	case errors.Is(err, settingsProcessor.ErrEmailAlreadyRegistered):
		return BadRequest(CodeEmailExists, "Este correo electrónico ya está registrado")

	case errors.Is(err, settingsProcessor.ErrNotificationEmailNotFound):
		return NotFound(CodeEmailNotFound, "Correo de notificación no encontrado")

	// Map orders processor errors
	case errors.As(err, &orderNotFound):
		return NotFound(CodeOrderNotFound, fmt.Sprintf("Orden %s no encontrada", orderNotFound.Ref))

	case errors.Is(err, ordersProcessor.ErrOrderAccessDenied):
		return Forbidden("No tienes permiso para ver este pedido. Solo puedes ver tus propios pedidos.")

	case errors.As(err, &productionBlocked):
		return BadRequest(CodeInvalidStatus,
			fmt.Sprintf("Solo se puede actualizar el estado de producción de órdenes pagadas. Estado actual: %s", productionBlocked.Status))

	case errors.As(err, &finishBlocked):
		return BadRequest(CodeInvalidStatus,
			fmt.Sprintf("Solo se puede terminar producción de órdenes pagadas. Estado actual: %s", finishBlocked.Status))

	case errors.Is(err, ordersProcessor.ErrInvalidProductionStage):
		return BadRequest(CodeInvalidStage,
			"Estado de producción inválido. Estados válidos: WAITING_FABRIC, CUTTING, SEWING, PRINTING, FINISHED")

	case errors.Is(err, ordersProcessor.ErrEmptyOrder):
		return BadRequest(CodeEmptyOrder, "La orden debe tener al menos un ítem")

	// Map payments processor errors
	case errors.As(err, &paymentNotFound):
		return NotFound(CodePaymentNotFound, fmt.Sprintf("Pago %d no encontrado", paymentNotFound.ID))

	case errors.As(err, &mpPaymentNotFound):
		return NotFound(CodePaymentNotFound, fmt.Sprintf("Pago con ID %s no encontrado", mpPaymentNotFound.MPPaymentID))

	case errors.As(err, &refundBlocked):
		return BadRequest(CodeRefundNotAllowed,
			fmt.Sprintf("No se puede reembolsar un pago con estado '%s'. Solo se pueden reembolsar pagos aprobados.", refundBlocked.Status))

	case errors.Is(err, paymentsProcessor.ErrFullyRefunded):
		return BadRequest(CodeRefundNotAllowed, "El pago ya ha sido reembolsado completamente")

	case errors.Is(err, paymentsProcessor.ErrInvalidRefundAmount):
		return BadRequest(CodeInvalidInput, "El monto a reembolsar debe ser mayor a 0")

	case errors.As(err, &refundExceeds):
		return BadRequest(CodeRefundTooLarge,
			fmt.Sprintf("El monto a reembolsar ($%.2f) excede el disponible ($%.2f)", refundExceeds.Amount, refundExceeds.Available))

	case errors.As(err, &recoverBlocked):
		return BadRequest(CodeInvalidStatus,
			fmt.Sprintf("Solo se pueden recuperar órdenes de pagos aprobados. Estado actual: %s", recoverBlocked.Status))

	case errors.Is(err, paymentsProcessor.ErrNoPaymentData):
		return BadRequest(CodeInvalidInput, "El pago no tiene datos raw de MercadoPago para recuperar")

	case errors.Is(err, paymentsProcessor.ErrNoPayerEmail):
		return BadRequest(CodeInvalidInput, "No se pudo extraer el email del cliente de los datos del pago")

	case errors.Is(err, paymentsProcessor.ErrNoPaymentItems):
		return BadRequest(CodeInvalidInput, "No se encontraron items en los datos del pago")

	case errors.Is(err, paymentsProcessor.ErrGatewayNotConfigured):
		return ServiceUnavailable(CodePaymentsDisabled, "MP_ACCESS_TOKEN no configurado. Revisar archivo .env", err)

	// Map cart processor errors
	case errors.Is(err, cartProcessor.ErrProductNotFound):
		return NotFound(CodeProductNotFound, "Producto no encontrado")

	// Map users processor errors
	case errors.Is(err, usersProcessor.ErrAddressNotFound):
		return NotFound(CodeAddressNotFound, "Dirección no encontrada")

	// Map contact processor errors
	case errors.Is(err, contactProcessor.ErrNoRecipients):
		return BadRequest(CodeEmailNotConfigured, "No hay correos de notificación configurados")

	case errors.Is(err, contactProcessor.ErrNoRegretRecipients):
		return ServiceUnavailable(CodeEmailNotConfigured, "No hay emails configurados para notificaciones", err)

	case errors.Is(err, contactProcessor.ErrSendFailed):
		return ServiceUnavailable(CodeEmailServiceError, "No se pudo enviar el mensaje", err)

	case errors.Is(err, contactProcessor.ErrRegretSendFailed):
		return ServiceUnavailable(CodeEmailServiceError, "No se pudo enviar el email de notificación", err)

	// Map newsletter processor errors
	case errors.Is(err, newsletterProcessor.ErrSubscriberNotFound):
		return NotFound(CodeNotFound, "Suscriptor no encontrado")

	// Map store errors
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Recurso no encontrado")

	// Check for common external service errors by message content
	default:
		return mapExternalServiceError(err)
	}
}

// mapExternalServiceError attempts to identify external service errors
// and map them to appropriate service-specific error responses.
func mapExternalServiceError(err error) *APIError {
	errMsg := strings.ToLower(err.Error())

	// MercadoPago errors
	if strings.Contains(errMsg, "mercadopago") {
		return ServiceUnavailable(
			CodePaymentProviderError,
			"El proveedor de pagos no está disponible en este momento. Intentá de nuevo más tarde.",
			err,
		)
	}

	// Email service errors (Resend)
	if strings.Contains(errMsg, "resend") || strings.Contains(errMsg, "send email") {
		return ServiceUnavailable(
			CodeEmailServiceError,
			"El servicio de email no está disponible en este momento. Intentá de nuevo más tarde.",
			err,
		)
	}

	// Image/video upload errors (Cloudinary)
	if strings.Contains(errMsg, "cloudinary") {
		return ServiceUnavailable(
			CodeUploadServiceError,
			"El servicio de archivos no está disponible en este momento. Intentá de nuevo más tarde.",
			err,
		)
	}

	// Default: Unknown error - return sanitized 500
	return InternalError(err)
}
