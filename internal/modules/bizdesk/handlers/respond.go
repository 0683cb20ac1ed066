package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/auth"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/shared/apperror"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/shared/utils"
)

// respondError maps a service error to its status and {"error": message} body.
// Causes of 5xx errors are logged and never sent to the client.
func respondError(c *fiber.Ctx, err error) error {
	status := apperror.StatusCode(err)
	if status >= fiber.StatusInternalServerError {
		utils.LogError("❌ Request failed", err, map[string]interface{}{
			"method": c.Method(),
			"path":   c.Path(),
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"error": apperror.PublicMessage(err),
	})
}

// ErrorHandler renders errors that escape handlers (unknown routes, panics recovered upstream)
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{
			"error": fe.Message,
		})
	}
	return respondError(c, err)
}

// currentOwner reads the owner id placed by the auth middleware
func currentOwner(c *fiber.Ctx) (uuid.UUID, error) {
	ownerID, ok := auth.OwnerID(c)
	if !ok {
		return uuid.Nil, apperror.Unauthorized("Unauthorized")
	}
	return ownerID, nil
}

func pathID(c *fiber.Ctx, entity string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.Validation("Invalid %s id", entity)
	}
	return id, nil
}

// decodeStrict parses a JSON body, rejecting unknown fields and trailing data
func decodeStrict(c *fiber.Ctx, dst interface{}) error {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return apperror.Validation("Request body is required")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return apperror.Validation("Invalid request body: %s", describeJSONError(err))
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apperror.Validation("Invalid request body: unexpected data after JSON object")
	}
	return nil
}

func describeJSONError(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("field %q must be %s", typeErr.Field, typeErr.Type.String())
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return "malformed JSON"
	}
	// unknown fields arrive as: json: unknown field "x"
	return err.Error()
}

func queryInt(c *fiber.Ctx, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.Validation("%s must be an integer", key)
	}
	return v, nil
}

func pagination(c *fiber.Ctx) (page, pageSize int, err error) {
	if page, err = queryInt(c, "page"); err != nil {
		return 0, 0, err
	}
	if pageSize, err = queryInt(c, "page_size"); err != nil {
		return 0, 0, err
	}
	return page, pageSize, nil
}
