package ui

import (
	"errors"

	"github.com/yourusername/repobrowser/internal/domain"
)

func isRateLimited(err error) bool {
	var respErr *domain.ResponseError
	return errors.As(err, &respErr) && respErr.RateLimited
}
