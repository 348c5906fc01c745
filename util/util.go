package util

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// SuccessResponse sends back a success http response to the client.
func SuccessResponse(ctx *fiber.Ctx, statusCode int, data interface{}) error {
	return ctx.Status(statusCode).JSON(data)
}

// ErrorResponse sends back an error http response to the client. The body
// shape is {error, details}; err is the machine readable part and details the
// human readable one.
func ErrorResponse(ctx *fiber.Ctx, statusCode int, err interface{}, details string) error {
	return ctx.Status(statusCode).JSON(fiber.Map{
		"error":   err,
		"details": details,
	})
}

// GetFormattedDuration returns the duration of a track in ``m:ss`` format,
// seconds zero-padded to two digits. Input is in milliseconds, matching what
// the spotify api reports.
func GetFormattedDuration(durationMilli int) string {
	minutes := durationMilli / 60000
	seconds := (durationMilli % 60000) / 1000
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// Clamp bounds v to the [min, max] range.
func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
