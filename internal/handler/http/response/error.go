package response

import (
	"errors"
	"net/http"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/account"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/attendance"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/auth"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/expense"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/notification"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/review"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/sheetsale"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/target"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/user"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/visit"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, "User account is inactive")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager role required")
	case errors.Is(err, user.ErrNotInTeam):
		Forbidden(w, "User is not in your team")

	// Account domain errors
	case errors.Is(err, account.ErrAccountNotFound):
		NotFound(w, "Account not found")
	case errors.Is(err, account.ErrNameExists):
		Conflict(w, "Account with this name already exists")

	// Activity domain errors
	case errors.Is(err, visit.ErrVisitNotFound):
		NotFound(w, "Visit not found")
	case errors.Is(err, sheetsale.ErrSheetSaleNotFound):
		NotFound(w, "Sheet sale not found")
	case errors.Is(err, sheetsale.ErrInvalidSheetCount):
		BadRequest(w, "Sheet count must be positive", nil)
	case errors.Is(err, expense.ErrExpenseNotFound):
		NotFound(w, "Expense not found")
	case errors.Is(err, expense.ErrNoLineItems):
		BadRequest(w, "Expense must have at least one line item", nil)
	case errors.Is(err, expense.ErrNegativeAmount):
		BadRequest(w, "Line item amount must not be negative", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "No open check-in for today")

	// Review domain errors
	case errors.Is(err, review.ErrItemNotFound):
		NotFound(w, "Pending item not found")
	case errors.Is(err, review.ErrAlreadyProcessed):
		Conflict(w, "Item already processed")
	case errors.Is(err, review.ErrUnknownItemType):
		BadRequest(w, "Unknown pending item type", nil)

	// Target domain errors
	case errors.Is(err, target.ErrTargetNotFound):
		NotFound(w, "Target not found")
	case errors.Is(err, target.ErrNegativeTarget):
		BadRequest(w, "Target values must not be negative", nil)
	case errors.Is(err, target.ErrInvalidMonth):
		BadRequest(w, "Month must be in YYYY-MM format", nil)

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
