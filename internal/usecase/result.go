package usecase

import (
	"net/http"

	domainerrors "tasker/internal/domain/errors"
)

const (
	MessageAccountCreated = "Account created"
	MessageLoggedIn       = "Logged in"
)

// Result is the uniform outcome record of every auth operation.
// Status is 200 on success, 400 for caller errors and 500 for internal failures.
type Result struct {
	Error     bool   `json:"error"`
	Status    int    `json:"status"`
	Message   string `json:"message"`
	AccountID string `json:"accountId,omitempty"`
}

// SignupResult folds a Signup outcome into a Result.
func SignupResult(out *SignupOutput, err error) Result {
	if err != nil || out == nil {
		return ErrorResult(err)
	}

	return Result{Status: http.StatusOK, Message: MessageAccountCreated, AccountID: out.AccountID}
}

// LoginResult folds a Login outcome into a Result.
func LoginResult(out *LoginOutput, err error) Result {
	if err != nil || out == nil {
		return ErrorResult(err)
	}

	return Result{Status: http.StatusOK, Message: MessageLoggedIn, AccountID: out.AccountID}
}

// ErrorResult exposes only the user-facing message. Unclassified errors become internal.
func ErrorResult(err error) Result {
	appErr := domainerrors.AsAppError(err)

	return Result{
		Error:   true,
		Status:  appErr.HTTPCode(),
		Message: appErr.Message(),
	}
}
