package controller

import (
	"fmt"
	"io"
	"strings"

	"college-buddy-be/internal/pkg/serverutils"
	"college-buddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	Reingest(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type documentController struct {
	service service.IDocumentService
}

func NewDocumentController(service service.IDocumentService) IDocumentController {
	return &documentController{service: service}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Upload)
	h.Post(":id/reingest", c.Reingest)
	h.Delete(":id", c.Delete)
}

func (c *documentController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file field is required")
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".docx") {
		return fiber.NewError(fiber.StatusBadRequest, "only .docx files are accepted")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	res, err := c.service.Upload(ctx.Context(), fileHeader.Filename, data)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("upload failed: %v", err))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upload document", res))
}

func (c *documentController) Reingest(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid document id")
	}

	res, err := c.service.Reingest(ctx.Context(), id)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("reingest failed: %v", err))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success schedule re-ingestion", res))
}

func (c *documentController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all documents", res))
}

func (c *documentController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid document id")
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("delete failed: %v", err))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete document", nil))
}
