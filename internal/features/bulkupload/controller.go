package bulkupload

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
)

type BulkUploadController struct {
	Service BulkUploadService
}

func NewBulkUploadController(service BulkUploadService) *BulkUploadController {
	return &BulkUploadController{Service: service}
}

type uploadRequest struct {
	Filename string       `json:"filename"`
	Products []ProductRow `json:"products"`
}

// Preview godoc
// @Summary Preview a product CSV
// @Description Parse and validate an uploaded CSV without persisting anything
// @Tags bulk-upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} ParseResult
// @Failure 400 {object} map[string]interface{}
// @Router /api/admin/bulk-upload/preview [post]
func (ctrl *BulkUploadController) Preview(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to open file"})
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read file"})
	}

	return c.JSON(ParseProductCSV(string(content)))
}

// Upload godoc
// @Summary Bulk upload products
// @Description Persist rows previously validated by the preview step
// @Tags bulk-upload
// @Accept json
// @Produce json
// @Param input body uploadRequest true "Validated product rows"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/admin/bulk-upload [post]
func (ctrl *BulkUploadController) Upload(c *fiber.Ctx) error {
	var req uploadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if len(req.Products) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No products data provided"})
	}

	if validationErrors := ValidateSubmitted(req.Products); len(validationErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": validationErrors,
		})
	}

	outcome := ctrl.Service.Ingest(c.UserContext(), req.Products)
	ctrl.Service.RecordUpload(c.UserContext(), req.Filename, outcome)

	status := fiber.StatusOK
	if outcome.Success == 0 {
		status = fiber.StatusBadRequest
	}

	return c.Status(status).JSON(fiber.Map{
		"message": fmt.Sprintf("Bulk upload completed. %d products created, %d failed.",
			outcome.Success, outcome.Failed),
		"results": outcome,
	})
}

// Template godoc
// @Summary Download the CSV template
// @Tags bulk-upload
// @Produce text/csv
// @Success 200 {string} string
// @Router /api/admin/bulk-upload/template [get]
func (ctrl *BulkUploadController) Template(c *fiber.Ctx) error {
	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="product_upload_template.csv"`)
	return c.SendString(Template())
}

// History godoc
// @Summary List recent bulk uploads
// @Tags bulk-upload
// @Produce json
// @Success 200 {array} UploadRecord
// @Router /api/admin/bulk-upload/history [get]
func (ctrl *BulkUploadController) History(c *fiber.Ctx) error {
	records, err := ctrl.Service.RecentUploads(c.UserContext(), 20)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if records == nil {
		records = []UploadRecord{}
	}
	return c.JSON(records)
}
