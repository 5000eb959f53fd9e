package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"gepe-server/internal/clients/mail"
	"gepe-server/internal/observability"
)

var (
	ErrNotConfigured       = errors.New("email service is not configured")
	ErrInvalidEmailAddress = errors.New("invalid email address")
	ErrSendingEmail        = errors.New("error sending email")
	ErrEmptyTemplate       = errors.New("email template is empty")
)

// OrderItem is one line of an order as the templates render it.
type OrderItem struct {
	ProductName string
	ProductSize string
	Quantity    int64
	UnitPrice   float64
}

// OrderEmail is the order snapshot the customer and admin emails are built
// from. Processors map their store rows into this shape so the email package
// stays decoupled from persistence.
type OrderEmail struct {
	OrderNumber           string
	CustomerName          string
	CustomerEmail         string
	CustomerPhone         string
	TotalAmount           float64
	ShippingMethod        string
	ShippingAddress       string
	ShippingCity          string
	TrackingCode          string
	TrackingCompany       string
	TrackingBranchAddress string
	Items                 []OrderItem
}

// ContactForm carries a storefront contact message.
type ContactForm struct {
	Name    string
	Email   string
	Message string
}

// RegretForm carries a purchase-regret (statutory return) request. Order is
// filled when the quoted order number resolved to a real order.
type RegretForm struct {
	FirstName      string
	LastName       string
	DNI            string
	City           string
	OrderNumber    string
	PurchasedItems string
	Phone          string
	Email          string
	Reason         string
	Order          *OrderEmail
}

// TemplateData represents the data that can be used in templates
type TemplateData struct {
	OrderNumber      string
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	TotalAmount      string
	ShippingHTML     string
	ProductsHTML     string
	TrackingHTML     string
	OrderSummaryHTML string
	Name             string
	Email            string
	Message          string
	FirstName        string
	LastName         string
	DNI              string
	City             string
	Phone            string
	PurchasedItems   string
	Reason           string
}

// EmailService handles sending emails
type EmailService struct {
	mailClient    *mail.ResendClient
	logger        *observability.Logger
	defaultSender string
	templates     map[string]string
}

// New creates a new EmailService
func New(mailClient *mail.ResendClient, defaultSender string, logger *observability.Logger) *EmailService {
	return &EmailService{
		mailClient:    mailClient,
		logger:        logger,
		defaultSender: defaultSender,
		templates: map[string]string{
			"sale_notification": `
			<!DOCTYPE html>
			<html>
			<head><meta charset="utf-8"></head>
			<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
				<div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 30px; border-radius: 12px 12px 0 0; text-align: center;">
					<h1 style="color: white; margin: 0; font-size: 24px;">¡Nueva venta! 💰</h1>
				</div>
				<div style="background: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 12px 12px;">
					<p>Se registró un nuevo pedido <strong style="color: #667eea;">{{.OrderNumber}}</strong> por un total de <strong>{{.TotalAmount}}</strong>.</p>
					<div style="background: #f9fafb; border-radius: 8px; padding: 20px; margin: 20px 0;">
						<h3 style="margin-top: 0; color: #374151;">Datos del cliente:</h3>
						<p style="margin: 4px 0;"><strong>Nombre:</strong> {{.CustomerName}}</p>
						<p style="margin: 4px 0;"><strong>Email:</strong> {{.CustomerEmail}}</p>
						{{if .CustomerPhone}}<p style="margin: 4px 0;"><strong>Teléfono:</strong> {{.CustomerPhone}}</p>{{end}}
					</div>
					{{.ShippingHTML}}
					<div style="background: #f9fafb; border-radius: 8px; padding: 20px; margin: 20px 0;">
						<h3 style="margin-top: 0; color: #374151;">Productos:</h3>
						<table style="width: 100%; border-collapse: collapse;">
							<thead>
								<tr style="background: #e5e7eb;">
									<th style="padding: 10px; text-align: left;">Producto</th>
									<th style="padding: 10px; text-align: center;">Cantidad</th>
									<th style="padding: 10px; text-align: right;">Precio</th>
								</tr>
							</thead>
							<tbody>
								{{.ProductsHTML}}
							</tbody>
						</table>
						<p style="text-align: right; font-size: 16px; margin-bottom: 0;"><strong>Total: {{.TotalAmount}}</strong></p>
					</div>
				</div>
				<p style="text-align: center; font-size: 12px; color: #9ca3af; margin-top: 20px;">
					© 2024 GEPE - Indumentaria Deportiva
				</p>
			</body>
			</html>
			`,
			"order_confirmation": `
			<!DOCTYPE html>
			<html>
			<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"></head>
			<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
				<div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 30px; border-radius: 12px 12px 0 0; text-align: center;">
					<h1 style="color: white; margin: 0; font-size: 24px;">¡Gracias por tu compra! ✅</h1>
				</div>
				<div style="background: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 12px 12px;">
					<p style="font-size: 16px;">Hola <strong>{{.CustomerName}}</strong>,</p>
					<p>Recibimos tu pago y tu pedido <strong style="color: #667eea;">{{.OrderNumber}}</strong> ya está confirmado. Guardá este número para consultar el estado de tu compra.</p>
					<div style="background: #f9fafb; border-radius: 8px; padding: 20px; margin: 20px 0;">
						<h3 style="margin-top: 0; color: #374151;">Detalle de tu pedido:</h3>
						<table style="width: 100%; border-collapse: collapse;">
							<thead>
								<tr style="background: #e5e7eb;">
									<th style="padding: 10px; text-align: left;">Producto</th>
									<th style="padding: 10px; text-align: center;">Cantidad</th>
									<th style="padding: 10px; text-align: right;">Precio</th>
								</tr>
							</thead>
							<tbody>
								{{.ProductsHTML}}
							</tbody>
						</table>
						<p style="text-align: right; font-size: 16px; margin-bottom: 0;"><strong>Total: {{.TotalAmount}}</strong></p>
					</div>
					{{.ShippingHTML}}
					<p style="font-size: 14px; color: #6b7280;">
						Tu pedido entra ahora en producción. Te avisaremos por este medio cuando esté listo y cuando sea despachado.
					</p>
					<hr style="border: none; border-top: 1px solid #e5e7eb; margin: 20px 0;">
					<p style="font-size: 12px; color: #9ca3af; text-align: center;">
						¿Tenés alguna pregunta? Respondé a este correo o contactanos por WhatsApp.
					</p>
				</div>
				<p style="text-align: center; font-size: 12px; color: #9ca3af; margin-top: 20px;">
					© 2024 GEPE - Indumentaria Deportiva
				</p>
			</body>
			</html>
			`,
			"production_complete": `
			<!DOCTYPE html>
			<html>
			<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"></head>
			<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
				<div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 30px; border-radius: 12px 12px 0 0; text-align: center;">
					<h1 style="color: white; margin: 0; font-size: 24px;">¡Tu pedido está listo! 🎉</h1>
				</div>
				<div style="background: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 12px 12px;">
					<p style="font-size: 16px;">Hola <strong>{{.CustomerName}}</strong>,</p>
					<p>¡Excelentes noticias! Tu pedido <strong style="color: #667eea;">{{.OrderNumber}}</strong> ya está terminado y listo para ser enviado.</p>
					<div style="background: #f9fafb; border-radius: 8px; padding: 20px; margin: 20px 0;">
						<h3 style="margin-top: 0; color: #374151;">Productos en tu pedido:</h3>
						<table style="width: 100%; border-collapse: collapse;">
							<thead>
								<tr style="background: #e5e7eb;">
									<th style="padding: 10px; text-align: left;">Producto</th>
									<th style="padding: 10px; text-align: center;">Cantidad</th>
								</tr>
							</thead>
							<tbody>
								{{.ProductsHTML}}
							</tbody>
						</table>
					</div>
					<p style="font-size: 14px; color: #6b7280;">
						Te enviaremos otro correo con la información de seguimiento cuando tu pedido sea despachado.
					</p>
					<hr style="border: none; border-top: 1px solid #e5e7eb; margin: 20px 0;">
					<p style="font-size: 12px; color: #9ca3af; text-align: center;">
						¿Tenés alguna pregunta? Respondé a este correo o contactanos por WhatsApp.
					</p>
				</div>
				<p style="text-align: center; font-size: 12px; color: #9ca3af; margin-top: 20px;">
					© 2024 GEPE - Indumentaria Deportiva
				</p>
			</body>
			</html>
			`,
			"order_shipped": `
			<!DOCTYPE html>
			<html>
			<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"></head>
			<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
				<div style="background: linear-gradient(135deg, #10b981 0%, #059669 100%); padding: 30px; border-radius: 12px 12px 0 0; text-align: center;">
					<h1 style="color: white; margin: 0; font-size: 24px;">¡Tu pedido está en camino! 📦</h1>
				</div>
				<div style="background: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 12px 12px;">
					<p style="font-size: 16px;">Hola <strong>{{.CustomerName}}</strong>,</p>
					<p>Tu pedido <strong style="color: #10b981;">{{.OrderNumber}}</strong> ya fue despachado y está en camino.</p>
					{{.TrackingHTML}}
					<p style="font-size: 14px; color: #6b7280;">
						Podés seguir el estado de tu envío con el código de seguimiento.
					</p>
					<hr style="border: none; border-top: 1px solid #e5e7eb; margin: 20px 0;">
					<p style="font-size: 12px; color: #9ca3af; text-align: center;">
						¿Tenés alguna pregunta? Respondé a este correo o contactanos por WhatsApp.
					</p>
				</div>
				<p style="text-align: center; font-size: 12px; color: #9ca3af; margin-top: 20px;">
					© 2024 GEPE - Indumentaria Deportiva
				</p>
			</body>
			</html>
			`,
			"contact": `
			<!DOCTYPE html>
			<html>
			<head><meta charset="utf-8"></head>
			<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
				<div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 30px; border-radius: 12px 12px 0 0; text-align: center;">
					<h1 style="color: white; margin: 0; font-size: 24px;">Nuevo mensaje de contacto 📩</h1>
				</div>
				<div style="background: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 12px 12px;">
					<p style="margin: 4px 0;"><strong>Nombre:</strong> {{.Name}}</p>
					<p style="margin: 4px 0;"><strong>Email:</strong> {{.Email}}</p>
					<div style="background: #f9fafb; border-radius: 8px; padding: 20px; margin: 20px 0;">
						<h3 style="margin-top: 0; color: #374151;">Mensaje:</h3>
						<p style="white-space: pre-line; margin-bottom: 0;">{{.Message}}</p>
					</div>
					<p style="font-size: 12px; color: #9ca3af;">Podés responder directamente a este correo para contactar al cliente.</p>
				</div>
				<p style="text-align: center; font-size: 12px; color: #9ca3af; margin-top: 20px;">
					© 2024 GEPE - Indumentaria Deportiva
				</p>
			</body>
			</html>
			`,
			"regret": `
			<!DOCTYPE html>
			<html>
			<head><meta charset="utf-8"></head>
			<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
				<div style="background: linear-gradient(135deg, #f59e0b 0%, #d97706 100%); padding: 30px; border-radius: 12px 12px 0 0; text-align: center;">
					<h1 style="color: white; margin: 0; font-size: 24px;">Solicitud de arrepentimiento 🔁</h1>
				</div>
				<div style="background: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 12px 12px;">
					<p>Se recibió una nueva solicitud de arrepentimiento de compra para el pedido <strong>{{.OrderNumber}}</strong>.</p>
					<div style="background: #f9fafb; border-radius: 8px; padding: 20px; margin: 20px 0;">
						<h3 style="margin-top: 0; color: #374151;">Datos del cliente:</h3>
						<p style="margin: 4px 0;"><strong>Nombre:</strong> {{.FirstName}} {{.LastName}}</p>
						<p style="margin: 4px 0;"><strong>DNI:</strong> {{.DNI}}</p>
						<p style="margin: 4px 0;"><strong>Ciudad:</strong> {{.City}}</p>
						<p style="margin: 4px 0;"><strong>Teléfono:</strong> {{.Phone}}</p>
						<p style="margin: 4px 0;"><strong>Email:</strong> {{.Email}}</p>
					</div>
					<div style="background: #f9fafb; border-radius: 8px; padding: 20px; margin: 20px 0;">
						<h3 style="margin-top: 0; color: #374151;">Artículos comprados según el cliente:</h3>
						<p style="white-space: pre-line; margin-bottom: 0;">{{.PurchasedItems}}</p>
					</div>
					<div style="background: #fffbeb; border: 1px solid #f59e0b; border-radius: 8px; padding: 20px; margin: 20px 0;">
						<h3 style="margin-top: 0; color: #92400e;">Motivo:</h3>
						<p style="white-space: pre-line; margin-bottom: 0;">{{.Reason}}</p>
					</div>
					{{.OrderSummaryHTML}}
				</div>
				<p style="text-align: center; font-size: 12px; color: #9ca3af; margin-top: 20px;">
					© 2024 GEPE - Indumentaria Deportiva
				</p>
			</body>
			</html>
			`,
			"test": `
			<!DOCTYPE html>
			<html>
			<head><meta charset="utf-8"></head>
			<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
				<div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 30px; border-radius: 12px 12px 0 0; text-align: center;">
					<h1 style="color: white; margin: 0; font-size: 24px;">Correo de prueba ✉️</h1>
				</div>
				<div style="background: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 12px 12px;">
					<p>Este es un correo de prueba de <strong>GEPE</strong>.</p>
					<p>Si lo estás leyendo, la dirección <strong>{{.Email}}</strong> quedó verificada y va a recibir las notificaciones de ventas, contactos y arrepentimientos de la tienda.</p>
					<p style="font-size: 12px; color: #9ca3af;">No es necesario responder este correo.</p>
				</div>
				<p style="text-align: center; font-size: 12px; color: #9ca3af; margin-top: 20px;">
					© 2024 GEPE - Indumentaria Deportiva
				</p>
			</body>
			</html>
			`,
		},
	}
}

// IsEnabled reports whether the underlying mail client has credentials
func (s *EmailService) IsEnabled() bool {
	return s.mailClient.IsEnabled()
}

// renderTemplate renders a template with the provided data
func (s *EmailService) renderTemplate(templateName string, data TemplateData) (string, error) {
	tmplStr, ok := s.templates[templateName]
	if !ok {
		return "", fmt.Errorf("template %s not found", templateName)
	}

	tmpl, err := template.New(templateName).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

func (s *EmailService) send(ctx context.Context, to []string, subject, templateName string, data TemplateData) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: templateName},
		observability.Field{Key: "recipient", Value: to},
	)

	if !s.IsEnabled() {
		s.logger.Warn(ctx, "email service not configured, skipping send")
		return ErrNotConfigured
	}

	htmlContent, err := s.renderTemplate(templateName, data)
	if err != nil {
		s.logger.Error(ctx, fmt.Sprintf("failed to render %s template", templateName), err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	if _, err := s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent); err != nil {
		s.logger.Error(ctx, fmt.Sprintf("failed to send %s email", templateName), err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}

// SendSaleNotificationEmail notifies the shop owners that a new order came in
func (s *EmailService) SendSaleNotificationEmail(ctx context.Context, to []string, order OrderEmail) error {
	if len(to) == 0 {
		return ErrInvalidEmailAddress
	}

	subject := fmt.Sprintf("💰 Nueva venta - Pedido %s", order.OrderNumber)

	data := TemplateData{
		OrderNumber:   order.OrderNumber,
		CustomerName:  displayName(order.CustomerName),
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		TotalAmount:   formatAmount(order.TotalAmount),
		ShippingHTML:  shippingSectionHTML(order),
		ProductsHTML:  productRowsHTML(order.Items, true),
	}

	return s.send(ctx, to, subject, "sale_notification", data)
}

// SendOrderConfirmationEmail confirms a paid order to the customer
func (s *EmailService) SendOrderConfirmationEmail(ctx context.Context, order OrderEmail) error {
	if order.CustomerEmail == "" {
		return ErrInvalidEmailAddress
	}

	subject := fmt.Sprintf("✅ Confirmamos tu pedido %s", order.OrderNumber)

	data := TemplateData{
		OrderNumber:  order.OrderNumber,
		CustomerName: displayName(order.CustomerName),
		TotalAmount:  formatAmount(order.TotalAmount),
		ShippingHTML: shippingSectionHTML(order),
		ProductsHTML: productRowsHTML(order.Items, true),
	}

	return s.send(ctx, []string{order.CustomerEmail}, subject, "order_confirmation", data)
}

// SendProductionCompleteEmail tells the customer the order finished
// production and is ready to ship
func (s *EmailService) SendProductionCompleteEmail(ctx context.Context, order OrderEmail) error {
	if order.CustomerEmail == "" {
		return ErrInvalidEmailAddress
	}

	subject := fmt.Sprintf("🎉 ¡Tu pedido %s está listo!", order.OrderNumber)

	data := TemplateData{
		OrderNumber:  order.OrderNumber,
		CustomerName: displayName(order.CustomerName),
		ProductsHTML: productRowsHTML(order.Items, false),
	}

	return s.send(ctx, []string{order.CustomerEmail}, subject, "production_complete", data)
}

// SendOrderShippedEmail tells the customer the order was dispatched,
// including tracking details when available
func (s *EmailService) SendOrderShippedEmail(ctx context.Context, order OrderEmail) error {
	if order.CustomerEmail == "" {
		return ErrInvalidEmailAddress
	}

	subject := fmt.Sprintf("📦 Tu pedido %s está en camino", order.OrderNumber)

	data := TemplateData{
		OrderNumber:  order.OrderNumber,
		CustomerName: displayName(order.CustomerName),
		TrackingHTML: trackingSectionHTML(order),
	}

	return s.send(ctx, []string{order.CustomerEmail}, subject, "order_shipped", data)
}

// SendContactEmail forwards a contact form message to the shop owners
func (s *EmailService) SendContactEmail(ctx context.Context, to []string, form ContactForm) error {
	if len(to) == 0 {
		return ErrInvalidEmailAddress
	}

	subject := fmt.Sprintf("📩 Nuevo mensaje de contacto de %s", form.Name)

	data := TemplateData{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	}

	return s.send(ctx, to, subject, "contact", data)
}

// SendRegretNotificationEmail forwards a purchase-regret request to the shop
// owners, attaching the matched order when the quoted number resolved
func (s *EmailService) SendRegretNotificationEmail(ctx context.Context, to []string, form RegretForm) error {
	if len(to) == 0 {
		return ErrInvalidEmailAddress
	}

	subject := fmt.Sprintf("🔁 Solicitud de arrepentimiento - Pedido %s", form.OrderNumber)

	data := TemplateData{
		OrderNumber:      form.OrderNumber,
		FirstName:        form.FirstName,
		LastName:         form.LastName,
		DNI:              form.DNI,
		City:             form.City,
		Phone:            form.Phone,
		Email:            form.Email,
		PurchasedItems:   form.PurchasedItems,
		Reason:           form.Reason,
		OrderSummaryHTML: regretOrderSummaryHTML(form.Order),
	}

	return s.send(ctx, to, subject, "regret", data)
}

// SendTestEmail sends the verification email for a notification address
func (s *EmailService) SendTestEmail(ctx context.Context, to string) error {
	if to == "" {
		return ErrInvalidEmailAddress
	}

	data := TemplateData{Email: to}

	return s.send(ctx, []string{to}, "✉️ Correo de prueba - GEPE", "test", data)
}

func displayName(name string) string {
	if name == "" {
		return "Cliente"
	}
	return name
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// productRowsHTML builds the <tr> rows for an order's product table. The
// production-facing emails omit prices.
func productRowsHTML(items []OrderItem, withPrices bool) string {
	var b strings.Builder
	for _, item := range items {
		sizeText := ""
		if item.ProductSize != "" {
			sizeText = fmt.Sprintf(" (Talle: %s)", item.ProductSize)
		}
		b.WriteString(`<tr><td style="padding: 8px; border-bottom: 1px solid #eee;">`)
		b.WriteString(item.ProductName)
		b.WriteString(sizeText)
		b.WriteString(`</td><td style="padding: 8px; border-bottom: 1px solid #eee; text-align: center;">`)
		b.WriteString(fmt.Sprintf("%d", item.Quantity))
		b.WriteString(`</td>`)
		if withPrices {
			b.WriteString(`<td style="padding: 8px; border-bottom: 1px solid #eee; text-align: right;">`)
			b.WriteString(formatAmount(item.UnitPrice))
			b.WriteString(`</td>`)
		}
		b.WriteString("</tr>\n")
	}
	return b.String()
}

func shippingSectionHTML(order OrderEmail) string {
	if order.ShippingMethod == "" && order.ShippingAddress == "" && order.ShippingCity == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div style="background: #f9fafb; border-radius: 8px; padding: 20px; margin: 20px 0;">`)
	b.WriteString(`<h3 style="margin-top: 0; color: #374151;">Envío:</h3>`)
	if order.ShippingMethod != "" {
		b.WriteString(fmt.Sprintf(`<p style="margin: 4px 0;"><strong>Método:</strong> %s</p>`, order.ShippingMethod))
	}
	if order.ShippingAddress != "" {
		b.WriteString(fmt.Sprintf(`<p style="margin: 4px 0;"><strong>Dirección:</strong> %s</p>`, order.ShippingAddress))
	}
	if order.ShippingCity != "" {
		b.WriteString(fmt.Sprintf(`<p style="margin: 4px 0;"><strong>Ciudad:</strong> %s</p>`, order.ShippingCity))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func trackingSectionHTML(order OrderEmail) string {
	if order.TrackingCode == "" && order.TrackingCompany == "" && order.TrackingBranchAddress == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div style="background: #ecfdf5; border: 1px solid #10b981; border-radius: 8px; padding: 15px; margin: 20px 0; text-align: center;">`)
	if order.TrackingCompany != "" {
		b.WriteString(fmt.Sprintf(`<p style="margin: 0 0 8px 0; color: #065f46;"><strong>Empresa de envío:</strong> %s</p>`, order.TrackingCompany))
	}
	if order.TrackingCode != "" {
		b.WriteString(`<p style="margin: 0; color: #065f46;"><strong>Código de seguimiento:</strong><br>`)
		b.WriteString(fmt.Sprintf(`<span style="font-size: 18px; font-weight: bold; color: #10b981;">%s</span></p>`, order.TrackingCode))
	}
	if order.TrackingBranchAddress != "" {
		b.WriteString(fmt.Sprintf(`<p style="margin: 8px 0 0 0; color: #065f46;"><strong>Sucursal de retiro:</strong> %s</p>`, order.TrackingBranchAddress))
	}
	b.WriteString(`</div>`)
	return b.String()
}

// regretOrderSummaryHTML renders the matched order block for regret
// notifications, or a warning when the quoted number matched nothing.
func regretOrderSummaryHTML(order *OrderEmail) string {
	if order == nil {
		return `<div style="background: #fef2f2; border: 1px solid #ef4444; border-radius: 8px; padding: 15px; margin: 20px 0;"><p style="margin: 0; color: #991b1b;">⚠️ El número de pedido informado no coincide con ningún pedido registrado.</p></div>`
	}
	var b strings.Builder
	b.WriteString(`<div style="background: #ecfdf5; border: 1px solid #10b981; border-radius: 8px; padding: 20px; margin: 20px 0;">`)
	b.WriteString(`<h3 style="margin-top: 0; color: #065f46;">Pedido encontrado en el sistema:</h3>`)
	b.WriteString(fmt.Sprintf(`<p style="margin: 4px 0;"><strong>Número:</strong> %s</p>`, order.OrderNumber))
	b.WriteString(fmt.Sprintf(`<p style="margin: 4px 0;"><strong>Cliente:</strong> %s (%s)</p>`, displayName(order.CustomerName), order.CustomerEmail))
	b.WriteString(fmt.Sprintf(`<p style="margin: 4px 0;"><strong>Total:</strong> %s</p>`, formatAmount(order.TotalAmount)))
	b.WriteString(`<table style="width: 100%; border-collapse: collapse; margin-top: 10px;"><tbody>`)
	b.WriteString(productRowsHTML(order.Items, true))
	b.WriteString(`</tbody></table>`)
	b.WriteString(`</div>`)
	return b.String()
}
