package errs

import (
	"errors"
	"net/http"
)

var (
	ErrInternalServer     = errors.New("internal server error")
	ErrNotFound           = errors.New("resource not found")
	ErrProductNotFound    = errors.New("Product not found")
	ErrOrderNotFound      = errors.New("Order not found")
	ErrForbidden          = errors.New("You do not have permission to access this resource")
	ErrOrderViewForbidden = errors.New("You do not have permission to view this order")
	ErrOrderEditForbidden = errors.New("You do not have permission to modify this order")
	ErrInvalidRequest     = errors.New("invalid input")
	ErrOnlyCancellation   = errors.New("Only cancellation is supported")
	ErrOrderNotPending    = errors.New("Only pending orders can be cancelled")
	ErrUnknownStatus      = errors.New("Unknown order status")
	ErrUnauthorized       = errors.New("Unauthorized")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrAccountBanned      = errors.New("Account is banned")
	ErrUserAlreadyExists  = errors.New("User already exists")
	ErrCaptchaFailed      = errors.New("reCAPTCHA verification failed")
	ErrNotAnImage         = errors.New("Invalid image content")
	ErrUnsupportedFormat  = errors.New("Unsupported format")
	ErrFileTooLarge       = errors.New("File too large")
)

var errorMap = map[error]int{
	ErrInternalServer:     http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrProductNotFound:    http.StatusNotFound,
	ErrOrderNotFound:      http.StatusNotFound,
	ErrForbidden:          http.StatusForbidden,
	ErrOrderViewForbidden: http.StatusForbidden,
	ErrOrderEditForbidden: http.StatusForbidden,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrOnlyCancellation:   http.StatusBadRequest,
	ErrOrderNotPending:    http.StatusBadRequest,
	ErrUnknownStatus:      http.StatusBadRequest,
	ErrUnauthorized:       http.StatusUnauthorized,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrAccountBanned:      http.StatusForbidden,
	ErrUserAlreadyExists:  http.StatusBadRequest,
	ErrCaptchaFailed:      http.StatusBadRequest,
	ErrNotAnImage:         http.StatusBadRequest,
	ErrUnsupportedFormat:  http.StatusBadRequest,
	ErrFileTooLarge:       http.StatusBadRequest,
}

// GetErrorStatusCode maps a sentinel error to its HTTP status. Unknown
// errors are treated as internal server errors.
func GetErrorStatusCode(err error) int {
	for sentinel, code := range errorMap {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return http.StatusInternalServerError
}
