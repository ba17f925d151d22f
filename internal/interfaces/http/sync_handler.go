package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/dto"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/sync"
)

// SyncHandler push, pull y estado de sincronización offline-first.
type SyncHandler struct {
	uc *sync.UseCase
}

func NewSyncHandler(uc *sync.UseCase) *SyncHandler {
	return &SyncHandler{uc: uc}
}

func (h *SyncHandler) Push(c *fiber.Ctx) error {
	var in dto.SyncPushRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Push(c.Context(), GetUserID(c), GetOrgID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Pull acepta ?since=RFC3339; sin since devuelve todo el historial.
func (h *SyncHandler) Pull(c *fiber.Ctx) error {
	var since time.Time
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return validationError(c, "since debe ser RFC3339")
		}
		since = parsed
	}
	out, err := h.uc.Pull(c.Context(), GetUserID(c), since)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *SyncHandler) Status(c *fiber.Ctx) error {
	out, err := h.uc.Status(c.Context(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
