package utils

import (
	"kobis-search/internal/models"

	"github.com/gofiber/fiber/v2"
)

// StandardResponse is the envelope every API endpoint answers with. Status is
// "success" for 2xx, "error" for client faults and "fail" for server faults.
type StandardResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// PaginationMeta describes where a result page sits in the full result set.
type PaginationMeta struct {
	Page        int   `json:"page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

func statusFor(code int) string {
	switch {
	case code >= fiber.StatusInternalServerError:
		return "fail"
	case code >= fiber.StatusBadRequest:
		return "error"
	default:
		return "success"
	}
}

func send(c *fiber.Ctx, code int, message string, data, meta interface{}) error {
	return c.Status(code).JSON(StandardResponse{
		Status:  statusFor(code),
		Code:    code,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

func SuccessResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return send(c, code, message, data, nil)
}

func SuccessWithMetaResponse(c *fiber.Ctx, code int, message string, data interface{}, meta interface{}) error {
	return send(c, code, message, data, meta)
}

func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return send(c, code, message, nil, nil)
}

// ErrorWithDataResponse is used when a failed request still has a well-formed
// body to return, such as the empty result page of a failed search.
func ErrorWithDataResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return send(c, code, message, data, nil)
}

// NewPaginationMeta derives pagination metadata from a result page. A page
// past the last one has no next page but still has a previous one.
func NewPaginationMeta(page models.ResultPage) PaginationMeta {
	return PaginationMeta{
		Page:        page.Page,
		PerPage:     page.PerPage,
		Total:       page.Total,
		TotalPages:  page.TotalPages,
		HasNext:     page.Page < page.TotalPages,
		HasPrevious: page.Page > 1,
	}
}
