package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type Payment struct {
	ID                 int64   `db:"id" json:"id"`
	OrderID            *int64  `db:"order_id" json:"order_id"`
	MPPaymentID        string  `db:"mp_payment_id" json:"mp_payment_id"`
	TransactionAmount  float64 `db:"transaction_amount" json:"transaction_amount"`
	CurrencyID         string  `db:"currency_id" json:"currency_id"`
	PaymentMethodID    *string `db:"payment_method_id" json:"payment_method_id"`
	PaymentTypeID      *string `db:"payment_type_id" json:"payment_type_id"`
	CardLastFourDigits *string `db:"card_last_four_digits" json:"card_last_four_digits"`
	CardHolderName     *string `db:"card_holder_name" json:"card_holder_name"`
	Status             string  `db:"status" json:"status"`
	StatusDetail       *string `db:"status_detail" json:"status_detail"`
	RefundedAmount     float64 `db:"refunded_amount" json:"refunded_amount"`
	RefundedCount      int64   `db:"refunded_count" json:"refunded_count"`
	HasChargeback      bool    `db:"has_chargeback" json:"has_chargeback"`
	DateCreated        *string `db:"date_created" json:"date_created"`
	DateApproved       *string `db:"date_approved" json:"date_approved"`
	DateLastUpdated    *string `db:"date_last_updated" json:"date_last_updated"`
	MPRawData          *string `db:"mp_raw_data" json:"-"`
	CreatedAt          string  `db:"created_at" json:"created_at"`
	UpdatedAt          string  `db:"updated_at" json:"updated_at"`
}

// PaymentWithOrder is a payment joined with its order's identifying fields.
type PaymentWithOrder struct {
	Payment
	OrderNumber   *string `db:"order_number" json:"order_number"`
	CustomerEmail *string `db:"customer_email" json:"customer_email"`
	CustomerName  *string `db:"customer_name" json:"customer_name"`
}

const paymentColumns = `id, order_id, mp_payment_id, transaction_amount, currency_id,
	payment_method_id, payment_type_id, card_last_four_digits, card_holder_name,
	status, status_detail, refunded_amount, refunded_count, has_chargeback,
	date_created, date_approved, date_last_updated, mp_raw_data, created_at, updated_at`

const paymentJoinedColumns = `p.id, p.order_id, p.mp_payment_id, p.transaction_amount, p.currency_id,
	p.payment_method_id, p.payment_type_id, p.card_last_four_digits, p.card_holder_name,
	p.status, p.status_detail, p.refunded_amount, p.refunded_count, p.has_chargeback,
	p.date_created, p.date_approved, p.date_last_updated, p.mp_raw_data, p.created_at, p.updated_at,
	o.order_number, o.customer_email, o.customer_name`

// UpsertPaymentParams mirrors the payment fields pulled from the processor's
// API, keyed by the processor-side payment id.
type UpsertPaymentParams struct {
	OrderID            *int64
	MPPaymentID        string
	TransactionAmount  float64
	CurrencyID         string
	PaymentMethodID    *string
	PaymentTypeID      *string
	CardLastFourDigits *string
	CardHolderName     *string
	Status             string
	StatusDetail       *string
	RefundedAmount     float64
	RefundedCount      int64
	HasChargeback      bool
	DateCreated        *string
	DateApproved       *string
	DateLastUpdated    *string
	MPRawData          *string
}

const sqlUpsertPayment = `
INSERT INTO payments (order_id, mp_payment_id, transaction_amount, currency_id,
	payment_method_id, payment_type_id, card_last_four_digits, card_holder_name,
	status, status_detail, refunded_amount, refunded_count, has_chargeback,
	date_created, date_approved, date_last_updated, mp_raw_data)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
ON CONFLICT (mp_payment_id) DO UPDATE SET
	order_id = COALESCE(excluded.order_id, payments.order_id),
	transaction_amount = excluded.transaction_amount,
	currency_id = excluded.currency_id,
	payment_method_id = excluded.payment_method_id,
	payment_type_id = excluded.payment_type_id,
	card_last_four_digits = excluded.card_last_four_digits,
	card_holder_name = excluded.card_holder_name,
	status = excluded.status,
	status_detail = excluded.status_detail,
	refunded_amount = excluded.refunded_amount,
	refunded_count = excluded.refunded_count,
	has_chargeback = excluded.has_chargeback,
	date_created = excluded.date_created,
	date_approved = excluded.date_approved,
	date_last_updated = excluded.date_last_updated,
	mp_raw_data = excluded.mp_raw_data,
	updated_at = CURRENT_TIMESTAMP
RETURNING ` + paymentColumns + `
`

// UpsertPayment inserts or refreshes the payment identified by its processor
// payment id. A stored order link is never cleared by an upsert without one.
func (s *Store) UpsertPayment(ctx context.Context, params UpsertPaymentParams) (Payment, error) {
	var payment Payment
	err := s.db.GetContext(ctx, &payment, sqlUpsertPayment,
		params.OrderID, params.MPPaymentID, params.TransactionAmount, params.CurrencyID,
		params.PaymentMethodID, params.PaymentTypeID, params.CardLastFourDigits, params.CardHolderName,
		params.Status, params.StatusDetail, params.RefundedAmount, params.RefundedCount, params.HasChargeback,
		params.DateCreated, params.DateApproved, params.DateLastUpdated, params.MPRawData)
	if err != nil {
		return Payment{}, fmt.Errorf("failed to upsert payment: %w", err)
	}
	return payment, nil
}

const sqlGetPayment = `
SELECT ` + paymentJoinedColumns + `
FROM payments p
LEFT JOIN orders o ON o.id = p.order_id
WHERE p.id = $1
`

func (s *Store) GetPayment(ctx context.Context, id int64) (PaymentWithOrder, error) {
	var payment PaymentWithOrder
	err := s.db.GetContext(ctx, &payment, sqlGetPayment, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PaymentWithOrder{}, ErrNotFound
		}
		return PaymentWithOrder{}, fmt.Errorf("failed to get payment: %w", err)
	}
	return payment, nil
}

const sqlGetPaymentByMPPaymentID = `
SELECT ` + paymentColumns + `
FROM payments
WHERE mp_payment_id = $1
`

func (s *Store) GetPaymentByMPPaymentID(ctx context.Context, mpPaymentID string) (Payment, error) {
	var payment Payment
	err := s.db.GetContext(ctx, &payment, sqlGetPaymentByMPPaymentID, mpPaymentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Payment{}, ErrNotFound
		}
		return Payment{}, fmt.Errorf("failed to get payment by processor id: %w", err)
	}
	return payment, nil
}

// ListPaymentsParams filters the admin payment listing.
type ListPaymentsParams struct {
	Status *string
	Limit  int
	Offset int
}

func (s *Store) ListPayments(ctx context.Context, params ListPaymentsParams) ([]PaymentWithOrder, error) {
	query := `SELECT ` + paymentJoinedColumns + `
FROM payments p
LEFT JOIN orders o ON o.id = p.order_id
WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if params.Status != nil {
		argCount++
		query += fmt.Sprintf(" AND p.status = $%d", argCount)
		args = append(args, *params.Status)
	}

	query += " ORDER BY COALESCE(p.date_created, p.created_at) DESC, p.id DESC"
	if params.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount+1, argCount+2)
		args = append(args, params.Limit, params.Offset)
	}

	payments := []PaymentWithOrder{}
	err := s.db.SelectContext(ctx, &payments, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

const sqlLinkPaymentOrder = `
UPDATE payments
SET order_id = $1, updated_at = CURRENT_TIMESTAMP
WHERE id = $2
`

// LinkPaymentOrder attaches a payment to the order it settled, used when the
// order is created after the payment notification arrived.
func (s *Store) LinkPaymentOrder(ctx context.Context, id, orderID int64) error {
	if _, err := s.db.ExecContext(ctx, sqlLinkPaymentOrder, orderID, id); err != nil {
		return fmt.Errorf("failed to link payment to order: %w", err)
	}
	return nil
}

const sqlUpdatePaymentRefund = `
UPDATE payments
SET refunded_amount = $1, refunded_count = $2, status = $3, updated_at = CURRENT_TIMESTAMP
WHERE id = $4
RETURNING ` + paymentColumns + `
`

// UpdatePaymentRefund records the new refund totals after a refund call
// succeeds against the processor.
func (s *Store) UpdatePaymentRefund(ctx context.Context, id int64, refundedAmount float64, refundedCount int64, status string) (Payment, error) {
	var payment Payment
	err := s.db.GetContext(ctx, &payment, sqlUpdatePaymentRefund, refundedAmount, refundedCount, status, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Payment{}, ErrNotFound
		}
		return Payment{}, fmt.Errorf("failed to update payment refund: %w", err)
	}
	return payment, nil
}
