package database

import (
	"context"

	"careerportal-api/models"
)

const insertPaymentQuery = `
	INSERT INTO payments (full_name, email, phone, card_name, card_number, cvv)
	VALUES (?, ?, ?, ?, ?, ?)
`

// InsertPayment stores a validated payment and returns its generated id.
// Identical submissions are not deduplicated.
func (c *Connection) InsertPayment(ctx context.Context, p *models.PaymentRequest) (int64, error) {
	return c.insert(ctx, "payment", insertPaymentQuery,
		p.FullName, p.Email, p.Phone, p.CardName, p.CardNumber, p.CVV)
}
