package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/solenelark/glowlog/internal/services"
)

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	user := currentUser(c)

	summary, err := handler.exportService.BuildSummary(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch history")
	}
	return c.JSON(summary)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	user := currentUser(c)

	rows, err := handler.exportService.BuildHistory(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch history")
	}
	now := time.Now().In(handler.location)

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	for _, row := range rows {
		if err := writer.Write(row.CSVRecord()); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, "text/csv", services.ExportFileName("glowlog-history", "csv", now))
	return c.Send(output.Bytes())
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	user := currentUser(c)

	bundle, err := handler.exportService.BuildBundle(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch history")
	}
	now := time.Now().In(handler.location)

	payload := fiber.Map{
		"exported_at": now.Format(time.RFC3339),
		"steps":       bundle.Steps,
		"products":    bundle.Products,
		"history":     bundle.History,
	}
	serialized, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, fiber.MIMEApplicationJSON, services.ExportFileName("glowlog-export", "json", now))
	return c.Send(serialized)
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
}
