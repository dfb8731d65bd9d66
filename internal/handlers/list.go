package handlers

import (
	"fmt"

	"inventory/internal/query"

	"github.com/gofiber/fiber/v2"
)

// listParams reads the common list query parameters of c.
func listParams(c *fiber.Ctx, columns query.Columns) (query.Params, error) {
	params, errs := query.Parse(query.Raw{
		Sort:  c.Query("sort"),
		Page:  c.Query("page"),
		Limit: c.Query("limit"),
		From:  c.Query("from"),
		To:    c.Query("to"),
	}, columns)
	if errs != nil {
		return query.Params{}, invalidQuery(errs)
	}
	return params, nil
}

// respondList writes one page of rows under key. An empty page is reported
// as a client error.
func respondList(c *fiber.Ctx, key string, rows interface{}, empty bool, count int64, params query.Params) error {
	if empty {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("No %s found", key))
	}
	return c.JSON(fiber.Map{
		key:          rows,
		"pagination": query.NewPagination(params.Page, count),
	})
}

// deleted writes the reply of a successful delete of n rows.
func deleted(c *fiber.Ctx, entity, plural string, n int) error {
	message := entity + " deleted successfully"
	if n > 1 {
		message = fmt.Sprintf("%d %s deleted successfully", n, plural)
	}
	return c.JSON(fiber.Map{"message": message})
}
