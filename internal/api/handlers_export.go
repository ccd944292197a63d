package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mindmatehq/mindmate/internal/services"
	"go.uber.org/zap"
)

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	data, err := handler.exportService.BuildExport(currentUser(c).ID)
	if err != nil {
		handler.logger.Error("build export", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentDisposition, exportAttachment("json"))
	return c.JSON(data)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	data, err := handler.exportService.BuildExport(currentUser(c).ID)
	if err != nil {
		handler.logger.Error("build export", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	for _, row := range services.BuildCSVRows(data) {
		if err := writer.Write(row); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, exportAttachment("csv"))
	return c.Send(output.Bytes())
}

func exportAttachment(extension string) string {
	return fmt.Sprintf("attachment; filename=mindmate-export-%s.%s",
		time.Now().Format("2006-01-02"), extension)
}
