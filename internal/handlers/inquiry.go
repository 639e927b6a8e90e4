package handlers

import (
	"errors"

	"grabbber/internal/services/inquiry"
	"grabbber/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type InquiryHandler struct {
	service inquiry.Service
}

func NewInquiryHandler(service inquiry.Service) *InquiryHandler {
	return &InquiryHandler{service: service}
}

// Submit accepts a contact form submission.
func (h *InquiryHandler) Submit(c *fiber.Ctx) error {
	var input inquiry.Input
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	receipt, err := h.service.Submit(c.UserContext(), input)
	if err != nil {
		var verr *inquiry.ValidationError
		if errors.As(err, &verr) {
			return utils.Error(c, err, fiber.Map{"fields": verr.Fields})
		}
		return utils.Error(c, err, nil)
	}

	return utils.Created(c, receipt)
}
