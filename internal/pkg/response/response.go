package response

import (
	"github.com/gofiber/fiber/v2"
)

// SuccessBody wraps every 2xx payload.
type SuccessBody struct {
	Status   string      `json:"status"`
	Message  string      `json:"message"`
	Data     interface{} `json:"data"`
	Metadata interface{} `json:"metadata"`
}

// ErrorBody wraps every 4xx/5xx payload.
type ErrorBody struct {
	Status string      `json:"status"`
	Error  ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Message    string      `json:"message"`
	StatusCode int         `json:"statusCode"`
	Details    interface{} `json:"details"`
}

// SearchMeta describes a listing search: its outcome, the page served and
// how each origin fared. It goes out on success and on a failed aggregation alike.
type SearchMeta struct {
	State      string      `json:"state"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"totalPages"`
	Sources    interface{} `json:"sources"`
	Filters    interface{} `json:"filters,omitempty"`
}

// CountMeta is the metadata of a plain collection.
type CountMeta struct {
	Total int `json:"total"`
}

// Count returns the metadata of a collection of n items.
func Count(n int) CountMeta {
	return CountMeta{Total: n}
}

const (
	statusSuccess = "success"
	statusError   = "error"
)

func orEmpty(v interface{}) interface{} {
	if v == nil {
		return fiber.Map{}
	}
	return v
}

func send(c *fiber.Ctx, code int, message string, data, metadata interface{}) error {
	return c.Status(code).JSON(SuccessBody{
		Status:   statusSuccess,
		Message:  message,
		Data:     data,
		Metadata: orEmpty(metadata),
	})
}

// Success sends 200. A nil metadata goes out as {}.
func Success(c *fiber.Ctx, message string, data interface{}, metadata interface{}) error {
	return send(c, fiber.StatusOK, message, data, metadata)
}

// SuccessCreated sends 201.
func SuccessCreated(c *fiber.Ctx, message string, data interface{}, metadata interface{}) error {
	return send(c, fiber.StatusCreated, message, data, metadata)
}

// Error sends statusCode with the error envelope. A nil details goes out as {}.
func Error(c *fiber.Ctx, message string, statusCode int, details interface{}) error {
	return c.Status(statusCode).JSON(ErrorBody{
		Status: statusError,
		Error: ErrorDetail{
			Message:    message,
			StatusCode: statusCode,
			Details:    orEmpty(details),
		},
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, message, fiber.StatusBadRequest, nil)
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, message, fiber.StatusNotFound, nil)
}

// Unauthorized is used by the auth middleware.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, message, fiber.StatusUnauthorized, nil)
}
