package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/dto"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/operation"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/pkg/validator"
)

// OperationHandler ciclo de vida de operaciones y sus movimientos.
type OperationHandler struct {
	uc *operation.UseCase
}

func NewOperationHandler(uc *operation.UseCase) *OperationHandler {
	return &OperationHandler{uc: uc}
}

func (h *OperationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if errs := validator.Struct(in); errs != nil {
		return validationError(c, validator.Message(errs))
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), GetOrgID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *OperationHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(c.Context(), GetUserID(c), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *OperationHandler) GetDetail(c *fiber.Ctx) error {
	out, err := h.uc.GetDetail(c.Context(), GetUserID(c), GetOrgID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *OperationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), GetOrgID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *OperationHandler) Close(c *fiber.Ctx) error {
	out, err := h.uc.Close(c.Context(), GetUserID(c), GetOrgID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *OperationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), GetOrgID(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *OperationHandler) AddMoneyMovement(c *fiber.Ctx) error {
	var in dto.CreateMoneyMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if errs := validator.Struct(in); errs != nil {
		return validationError(c, validator.Message(errs))
	}
	out, err := h.uc.AddMoneyMovement(c.Context(), GetUserID(c), GetOrgID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *OperationHandler) AddProductMovement(c *fiber.Ctx) error {
	var in dto.CreateProductMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if errs := validator.Struct(in); errs != nil {
		return validationError(c, validator.Message(errs))
	}
	out, err := h.uc.AddProductMovement(c.Context(), GetUserID(c), GetOrgID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Statement descarga el estado de cuenta en PDF.
func (h *OperationHandler) Statement(c *fiber.Ctx) error {
	pdf, err := h.uc.Statement(c.Context(), GetUserID(c), GetOrgID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "estado-de-cuenta.pdf"))
	return c.Send(pdf)
}
