package httpcache

import (
	"errors"
	"fmt"
)

// StatusError - upstream ответил статусом вне диапазона 2xx
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// IsStatus проверяет, что err содержит StatusError с указанным кодом
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}
