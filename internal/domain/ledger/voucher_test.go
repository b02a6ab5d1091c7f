package ledger

import (
	"testing"

	"github.com/sangkips/vendor-ledger-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(desc, amount string) Item {
	return Item{Description: desc, Amount: ParseAmount(amount)}
}

func TestValidItems(t *testing.T) {
	got := ValidItems([]Item{item("", "100"), item("Cement", "500")})
	require.Len(t, got, 1)
	assert.Equal(t, "Cement", got[0].Description)
	assertAmount(t, "500", got[0].Amount)

	got = ValidItems([]Item{
		item("   ", "100"),
		item("Sand", "0"),
		item("Refund", "-20"),
		item("Steel", "250"),
		item("Bricks", "80"),
	})
	require.Len(t, got, 2)
	assert.Equal(t, "Steel", got[0].Description)
	assert.Equal(t, "Bricks", got[1].Description)

	assert.Empty(t, ValidItems(nil))
}

func TestComputeVoucher(t *testing.T) {
	v := ComputeVoucher([]Item{item("Labour", "1000")}, AmountFromInt(18))
	assertAmount(t, "1000", v.ItemsTotal)
	assertAmount(t, "180", v.GST.Amount)
	assertAmount(t, "18", v.GST.Percentage)
	assertAmount(t, "1000", v.GrandTotal)

	v = ComputeVoucher([]Item{item("A", "333.33"), item("", "50"), item("B", "0.67")}, ParseAmount("12.5"))
	assertAmount(t, "334", v.ItemsTotal)
	assertAmount(t, "41.75", v.GST.Amount)
	assert.True(t, v.ItemsTotal.Eq(v.GrandTotal))
	assert.Len(t, v.Items, 2)
}

func TestComputeVoucherRoundsToPaise(t *testing.T) {
	v := ComputeVoucher([]Item{item("Tiles", "333.33")}, AmountFromInt(18))
	assert.Equal(t, "60", v.GST.Amount.String())

	v = ComputeVoucher([]Item{item("A", "10.005"), item("B", "0.004"), item("C", "-0.001")}, ParseAmount("5.555"))
	require.Len(t, v.Items, 1)
	assert.Equal(t, "10.01", v.Items[0].Amount.String())
	assert.Equal(t, "10.01", v.ItemsTotal.String())
	assert.Equal(t, "5.56", v.GST.Percentage.String())
	assert.Equal(t, "0.56", v.GST.Amount.String())
	assert.True(t, v.ItemsTotal.Eq(v.GrandTotal))
}

func TestVoucherFields(t *testing.T) {
	assert.Equal(t, []string{"items"}, VoucherFields(ErrNoValidItems))
	assert.Equal(t, []string{"paymentSummary.bankName", "paymentSummary.chequeNumber"}, VoucherFields(ErrChequeDetailsRequired))
	assert.Equal(t, []string{"gst.percentage"}, VoucherFields(ErrNegativeGST))
	assert.Nil(t, VoucherFields(assert.AnError))
}

func TestNewChequeDetails(t *testing.T) {
	_, err := NewChequeDetails("", "000123")
	assert.ErrorIs(t, err, ErrChequeDetailsRequired)

	_, err = NewChequeDetails("HDFC", "  ")
	assert.ErrorIs(t, err, ErrChequeDetailsRequired)

	d, err := NewChequeDetails("HDFC", "000123")
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentModeCheque, d.Mode())
	require.NotNil(t, d.BankName())
	assert.Equal(t, "HDFC", *d.BankName())
	assert.Equal(t, "000123", *d.ChequeNumber())

	info, ok := d.Cheque()
	assert.True(t, ok)
	assert.Equal(t, "HDFC", info.BankName)
}

func TestNewPaymentDetails(t *testing.T) {
	_, err := NewPaymentDetails(enum.PaymentModeCheque)
	assert.ErrorIs(t, err, ErrChequeNeedsDetails)

	_, err = NewPaymentDetails(enum.PaymentMode("Barter"))
	assert.ErrorIs(t, err, ErrUnknownPaymentMode)

	d, err := NewPaymentDetails(enum.PaymentModeUPI)
	require.NoError(t, err)
	assert.Nil(t, d.BankName())
	assert.Nil(t, d.ChequeNumber())
	_, ok := d.Cheque()
	assert.False(t, ok)
}

func TestPrepareVoucher(t *testing.T) {
	base := Draft{
		Items:      []Item{item("Cement", "1000")},
		GSTPercent: AmountFromInt(18),
		Mode:       enum.PaymentModeCheque,
	}

	t.Run("cheque without bank is rejected", func(t *testing.T) {
		d := base
		d.ChequeNumber = "000123"
		_, err := PrepareVoucher(d)
		assert.ErrorIs(t, err, ErrChequeDetailsRequired)
		assert.Equal(t, "Bank Name and Cheque Number are required for Cheque payments", err.Error())
	})

	t.Run("cheque with details is accepted", func(t *testing.T) {
		d := base
		d.BankName, d.ChequeNumber = "HDFC", "000123"
		p, err := PrepareVoucher(d)
		require.NoError(t, err)
		assert.Equal(t, enum.PaymentModeCheque, p.Details.Mode())
		assertAmount(t, "1000", p.GrandTotal)
		assertAmount(t, "180", p.GST.Amount)
	})

	t.Run("stale cheque fields are dropped for other modes", func(t *testing.T) {
		d := base
		d.Mode = enum.PaymentModeCash
		d.BankName, d.ChequeNumber = "HDFC", "000123"
		p, err := PrepareVoucher(d)
		require.NoError(t, err)
		assert.Nil(t, p.Details.BankName())
		assert.Nil(t, p.Details.ChequeNumber())
	})

	t.Run("no valid items", func(t *testing.T) {
		d := base
		d.Items = []Item{item("", "100"), item("Sand", "0")}
		_, err := PrepareVoucher(d)
		assert.ErrorIs(t, err, ErrNoValidItems)
	})

	t.Run("missing mode", func(t *testing.T) {
		d := base
		d.Mode = ""
		_, err := PrepareVoucher(d)
		assert.ErrorIs(t, err, ErrPaymentModeRequired)
		assert.Equal(t, []string{"paymentSummary.mode"}, VoucherFields(err))
	})

	t.Run("unknown mode", func(t *testing.T) {
		d := base
		d.Mode = "Barter"
		_, err := PrepareVoucher(d)
		assert.ErrorIs(t, err, ErrUnknownPaymentMode)
	})

	t.Run("gst must fit two integer digits and two places", func(t *testing.T) {
		d := base
		d.Mode = enum.PaymentModeUPI
		d.GSTPercent = AmountFromInt(1000)
		_, err := PrepareVoucher(d)
		assert.ErrorIs(t, err, ErrGSTTooHigh)
		assert.Equal(t, []string{"gst.percentage"}, VoucherFields(err))

		d.GSTPercent = ParseAmount("999.99")
		_, err = PrepareVoucher(d)
		assert.NoError(t, err)
	})

	t.Run("negative gst", func(t *testing.T) {
		d := base
		d.Mode = enum.PaymentModeUPI
		d.GSTPercent = AmountFromInt(-5)
		_, err := PrepareVoucher(d)
		assert.ErrorIs(t, err, ErrNegativeGST)
	})
}
