package utils

import (
	"strings"

	"github.com/google/uuid"
)

// VoucherPrefix starts every payment voucher number.
const VoucherPrefix = "PV"

// GenerateVoucherNo returns a voucher number such as "PV-1A2B3C4D".
func GenerateVoucherNo() string {
	return VoucherPrefix + "-" + strings.ToUpper(uuid.New().String()[:8])
}
