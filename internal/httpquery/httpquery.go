// Package httpquery reads query parameters shared by the HTTP handlers.
package httpquery

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

var ErrRangeIncomplete = errors.New("from and to must be given together")

// UnixRange reads the from/to pair as unix seconds. ok is false when both
// are absent.
func UnixRange(c *fiber.Ctx) (from, to int64, ok bool, err error) {
	fromStr, toStr := c.Query("from", ""), c.Query("to", "")
	if fromStr == "" && toStr == "" {
		return 0, 0, false, nil
	}
	if fromStr == "" || toStr == "" {
		return 0, 0, false, ErrRangeIncomplete
	}

	if from, err = strconv.ParseInt(fromStr, 10, 64); err != nil {
		return 0, 0, false, fmt.Errorf("invalid 'from' parameter %q", fromStr)
	}
	if to, err = strconv.ParseInt(toStr, 10, 64); err != nil {
		return 0, 0, false, fmt.Errorf("invalid 'to' parameter %q", toStr)
	}
	return from, to, true, nil
}

// OptionalString returns nil when key is absent or empty.
func OptionalString(c *fiber.Ctx, key string) *string {
	v := c.Query(key, "")
	if v == "" {
		return nil
	}
	return &v
}
