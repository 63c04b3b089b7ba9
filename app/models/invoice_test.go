package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "£", CurrencySymbol(CurrencyGBP))
	assert.Equal(t, "€", CurrencySymbol(CurrencyEUR))
	// Unknown codes fall back to pound
	assert.Equal(t, "£", CurrencySymbol("USD"))
	assert.Equal(t, "£", CurrencySymbol(""))
}

func TestFormattedAmount(t *testing.T) {
	i := &Invoice{Amount: decimal.NewFromFloat(312.5), Currency: CurrencyGBP}
	assert.Equal(t, "£312.50", i.FormattedAmount())

	i = &Invoice{Amount: decimal.NewFromInt(50), Currency: CurrencyEUR}
	assert.Equal(t, "€50.00", i.FormattedAmount())
}

func TestInvoiceTypePredicates(t *testing.T) {
	payout := &Invoice{Type: InvoiceTypeReferralPayout}
	assert.True(t, payout.IsReferralPayout())
	assert.False(t, payout.IsFoodExpense())

	expense := &Invoice{Type: InvoiceTypeFoodExpense}
	assert.True(t, expense.IsFoodExpense())
	assert.False(t, expense.IsReferralPayout())
}
