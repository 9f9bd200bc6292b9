package errs

import (
	"fmt"
	"net/http"
)

// NewNotifierNotConfiguredError reports missing relay credentials. No outbound
// call is attempted in this state.
func NewNotifierNotConfiguredError(message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        fmt.Errorf("%s", message),
		Details:    "Notification credentials are missing from the environment",
	}
}

// NewNotifierDeliveryError reports a rejected or failed outbound notification.
func NewNotifierDeliveryError(message string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        fmt.Errorf("%s", message),
		Cause:      cause,
	}
}
