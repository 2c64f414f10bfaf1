package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/adcopy-studio/backend/internal/http/dto"
	"github.com/adcopy-studio/backend/internal/models"
	"github.com/adcopy-studio/backend/internal/render"
	"github.com/adcopy-studio/backend/internal/services"
)

type CopyHandler struct {
	copyService *services.CopyService
	log         *zap.Logger
}

func NewCopyHandler(copyService *services.CopyService, log *zap.Logger) *CopyHandler {
	return &CopyHandler{copyService: copyService, log: log}
}

func (h *CopyHandler) GenerateCopy(c *fiber.Ctx) error {
	var req dto.GenerateCopyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	brief := models.CampaignBrief{
		BrandName:          req.BrandName,
		ProductDescription: req.ProductDescription,
		TargetAudience:     req.TargetAudience,
	}
	if err := brief.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if req.Tone != "" {
		tone, err := models.ParseTone(req.Tone)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		brief.Tone = &tone
	}

	result, err := h.copyService.Generate(c.Context(), brief)
	if err != nil {
		h.log.Error("generation failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: dto.GenerateCopyResponse{
		Tone:         result.Tone,
		ToneDetected: result.ToneDetected,
		Copy:         result.Copy,
	}})
}

func (h *CopyHandler) ClassifyTone(c *fiber.Ctx) error {
	var req dto.ClassifyToneRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}
	if strings.TrimSpace(req.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "text is required"})
	}

	tone := h.copyService.ClassifyText(req.Text)
	return c.JSON(dto.SuccessResponse{OK: true, Data: dto.ToneResponse{Tone: tone}})
}

func (h *CopyHandler) DownloadCopy(c *fiber.Ctx) error {
	var req dto.DownloadCopyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}
	if strings.TrimSpace(req.BrandName) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "brand_name is required"})
	}

	filename := render.FileName(req.BrandName)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(render.Text(req.Copy))
}
