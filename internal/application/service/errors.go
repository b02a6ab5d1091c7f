package service

import (
	"net/http"

	"github.com/sangkips/vendor-ledger-api/internal/domain/ledger"
	"github.com/sangkips/vendor-ledger-api/pkg/apperror"
)

// voucherError maps voucher precondition failures to validation errors the
// client can show next to the offending field.
func voucherError(err error) error {
	fields := ledger.VoucherFields(err)
	if len(fields) == 0 {
		return err
	}
	errs := make([]apperror.FieldError, len(fields))
	for i, f := range fields {
		errs[i] = apperror.FieldError{Field: f, Message: err.Error()}
	}
	return &apperror.AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: err.Error(),
		Errors:  errs,
	}
}

// validation collects field errors before any write.
type validation []apperror.FieldError

func (v *validation) check(ok bool, field, message string) {
	if !ok {
		*v = append(*v, apperror.FieldError{Field: field, Message: message})
	}
}

func (v validation) err() error {
	if len(v) == 0 {
		return nil
	}
	return apperror.NewValidationError(v)
}
