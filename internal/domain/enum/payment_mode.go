package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PaymentMode is how a voucher was settled.
type PaymentMode string

const (
	PaymentModeBankTransfer PaymentMode = "Bank Transfer"
	PaymentModeCheque       PaymentMode = "Cheque"
	PaymentModeUPI          PaymentMode = "UPI"
	PaymentModeCash         PaymentMode = "Cash"
	PaymentModeDemandDraft  PaymentMode = "Demand Draft"
	PaymentModeOthers       PaymentMode = "Others"
)

// DefaultPaymentMode is preselected on new vouchers.
const DefaultPaymentMode = PaymentModeCash

// PaymentModes lists every accepted mode in display order.
var PaymentModes = []PaymentMode{
	PaymentModeBankTransfer,
	PaymentModeCheque,
	PaymentModeUPI,
	PaymentModeCash,
	PaymentModeDemandDraft,
	PaymentModeOthers,
}

func (m PaymentMode) String() string {
	return string(m)
}

// IsValid reports whether m is one of PaymentModes.
func (m PaymentMode) IsValid() bool {
	for _, known := range PaymentModes {
		if m == known {
			return true
		}
	}
	return false
}

// ParsePaymentMode validates s against the known modes.
func ParsePaymentMode(s string) (PaymentMode, error) {
	m := PaymentMode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("unknown payment mode %q", s)
	}
	return m, nil
}

func (m PaymentMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(m))
}

func (m *PaymentMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*m = PaymentMode(str)
	return nil
}

func (m PaymentMode) Value() (driver.Value, error) {
	return string(m), nil
}

func (m *PaymentMode) Scan(value interface{}) error {
	if value == nil {
		*m = DefaultPaymentMode
		return nil
	}
	switch v := value.(type) {
	case string:
		*m = PaymentMode(v)
	case []byte:
		*m = PaymentMode(string(v))
	}
	return nil
}
