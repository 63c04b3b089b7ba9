package viewmodel

import (
	"github.com/shopspring/decimal"

	"github.com/neotaste/creator-portal/app/models"
	"github.com/neotaste/creator-portal/internal/pkg/env"
)

// Dashboard is the view data for the creator dashboard
type Dashboard struct {
	Creator          *models.Creator
	ReferralLink     string
	MonthlyReferrals []MonthlyReferrals
	PaymentHistory   []Payment
	InvoiceFAQ       []FAQItem
	Videos           []models.Video
	Invoices         []models.Invoice
	EligibleVideos   []models.Video
	CanSubmitVideo   bool
	SubmitBlocked    string
}

// MonthlyReferrals is one bar of the referral chart
type MonthlyReferrals struct {
	Month string
	Count int
}

// Payment is one row of the payout history table
type Payment struct {
	Date      string
	Referrals int
	Amount    decimal.Decimal
	Status    string
}

// ReferralLink builds the trackable signup link for a voucher code.
func ReferralLink(voucherCode string) string {
	base := env.GetEnv("REFERRAL_LINK_BASE", "https://neotaste.com/gb")
	return base + "?code=" + voucherCode + "&a=3"
}

// SampleMonthlyReferrals returns chart data until the referral feed is wired
// to the attribution backend.
func SampleMonthlyReferrals() []MonthlyReferrals {
	return []MonthlyReferrals{
		{Month: "Sep", Count: 4},
		{Month: "Oct", Count: 8},
		{Month: "Nov", Count: 5},
		{Month: "Dec", Count: 12},
		{Month: "Jan", Count: 6},
		{Month: "Feb", Count: 12},
	}
}

// SamplePaymentHistory returns payout rows until the payouts feed is wired
// to the attribution backend.
func SamplePaymentHistory() []Payment {
	return []Payment{
		{Date: "Feb 2024", Referrals: 12, Amount: decimal.NewFromInt(300), Status: "pending"},
		{Date: "Jan 2024", Referrals: 6, Amount: decimal.NewFromInt(150), Status: "pending"},
		{Date: "Dec 2023", Referrals: 12, Amount: decimal.NewFromInt(300), Status: "paid"},
		{Date: "Nov 2023", Referrals: 5, Amount: decimal.NewFromInt(125), Status: "paid"},
		{Date: "Oct 2023", Referrals: 8, Amount: decimal.NewFromInt(200), Status: "paid"},
		{Date: "Sep 2023", Referrals: 4, Amount: decimal.NewFromInt(100), Status: "paid"},
	}
}

// InvoiceFAQ returns the invoicing help entries on the dashboard
func InvoiceFAQ() []FAQItem {
	return []FAQItem{
		{
			Question: "How to invoice referral payouts",
			Answer:   "Send a separate invoice for your referral earnings each month to Modash. Include your creator code, the billing period, and total amount due.",
		},
		{
			Question: "How to invoice food expenses",
			Answer:   "Send a separate invoice for food expenses with receipts attached. Include photos of your receipts and the content you created.",
		},
		{
			Question: "Can I combine referral and expense invoices?",
			Answer:   "No, referral payouts and food expense reimbursements must be submitted as separate invoices.",
		},
	}
}

// TotalByStatus sums payment amounts with the given status.
func TotalByStatus(payments []Payment, status string) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.Status == status {
			total = total.Add(p.Amount)
		}
	}
	return total
}
