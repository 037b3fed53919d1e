package service

import (
	"errors"

	apperrors "capacity-planner-backend/internal/errors"
	"capacity-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// storageError translates a repository error into the API error taxonomy.
// notFound is returned when the row does not exist.
func storageError(op string, err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if notFound != nil {
			return notFound
		}
		return apperrors.NewNotFoundError("record")
	case repository.IsUniqueViolation(err):
		return apperrors.NewConflictError(op, "")
	default:
		return apperrors.NewInternalError(op, err)
	}
}

// transactionError keeps typed errors raised inside a transaction and wraps
// anything else, such as a failed commit.
func transactionError(op string, err error) error {
	if err == nil {
		return nil
	}
	if apperrors.IsValidation(err) || apperrors.IsNotFound(err) || apperrors.IsAccessDenied(err) ||
		apperrors.IsConflict(err) || apperrors.IsInternal(err) || apperrors.IsAuthentication(err) {
		return err
	}
	return storageError(op, err, nil)
}

// validationFailed converts validator output into a coded ValidationError
func validationFailed(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		code := apperrors.CodeValidation
		if fe.Tag() == "required" {
			code = apperrors.CodeMissingFields
		}
		return apperrors.NewValidationError(code, fe.Field(), "failed on '"+fe.Tag()+"' rule")
	}
	return apperrors.NewValidationError(apperrors.CodeValidation, "", err.Error())
}
