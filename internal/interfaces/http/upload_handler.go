package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/application/ports"
	"github.com/siges-soporte/siges-api/internal/domain"
)

// UploadHandler proxy de archivos contra el Drive corporativo (protegido).
type UploadHandler struct {
	store ports.DriveStore
}

// NewUploadHandler construye el handler.
func NewUploadHandler(store ports.DriveStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// ListFolders godoc
// @Summary      Listar subcarpetas de la carpeta raíz
// @Tags         upload
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  ports.DriveFile
// @Router       /upload/folders [get]
func (h *UploadHandler) ListFolders(c *fiber.Ctx) error {
	out, err := h.store.ListFolders(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateFolder godoc
// @Summary      Crear subcarpeta
// @Tags         upload
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFolderRequest  true  "Nombre de la carpeta"
// @Success      201   {object}  ports.DriveFile
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /upload/folders [post]
func (h *UploadHandler) CreateFolder(c *fiber.Ctx) error {
	var in dto.CreateFolderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.store.CreateFolder(c.Context(), in.Name)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "Ya existe una carpeta con ese nombre"})
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListFiles godoc
// @Summary      Listar archivos de una carpeta
// @Tags         upload
// @Security     Bearer
// @Produce      json
// @Param        folderId  path  string  true  "ID de la carpeta"
// @Success      200  {array}  ports.DriveFile
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /upload/files/{folderId} [get]
func (h *UploadHandler) ListFiles(c *fiber.Ctx) error {
	out, err := h.store.ListFiles(c.Context(), c.Params("folderId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Upload godoc
// @Summary      Subir archivos (multipart) a una carpeta
// @Description  Cada archivo se valida contra duplicados; los fallos quedan en failed sin cortar el lote.
// @Tags         upload
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        folderId  formData  string  true  "ID de la carpeta destino"
// @Param        files     formData  file    true  "Archivos"
// @Success      200  {object}  dto.UploadResult
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se esperaba multipart/form-data"})
	}
	folderID := ""
	if vs := form.Value["folderId"]; len(vs) > 0 {
		folderID = vs[0]
	}
	if folderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "folderId es requerido"})
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se recibieron archivos"})
	}

	result := dto.UploadResult{Uploaded: []ports.DriveFile{}, Failed: []dto.UploadFailure{}}
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			result.Failed = append(result.Failed, dto.UploadFailure{Name: fh.Filename, Reason: "archivo ilegible"})
			continue
		}
		uploaded, err := h.store.Upload(c.Context(), folderID, fh.Filename, fh.Header.Get("Content-Type"), f)
		f.Close()
		if err != nil {
			reason := "error al subir"
			if errors.Is(err, domain.ErrConflict) {
				reason = "ya existe un archivo con ese nombre"
			}
			result.Failed = append(result.Failed, dto.UploadFailure{Name: fh.Filename, Reason: reason})
			continue
		}
		result.Uploaded = append(result.Uploaded, *uploaded)
	}
	return c.JSON(result)
}

// Download godoc
// @Summary      Descargar o exportar un archivo
// @Description  Los tipos nativos de Google Workspace se exportan (doc a docx, sheet a xlsx, slides a pptx); el resto se transmite tal cual.
// @Tags         upload
// @Security     Bearer
// @Produce      octet-stream
// @Param        fileId  path  string  true  "ID del archivo"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /upload/download/{fileId} [get]
func (h *UploadHandler) Download(c *fiber.Ctx) error {
	dl, err := h.store.Download(c.Context(), c.Params("fileId"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo de archivo no exportable"})
		}
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, dl.MimeType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", dl.Name))
	return c.SendStream(dl.Content)
}

// Delete godoc
// @Summary      Mover un archivo o carpeta a la papelera
// @Tags         upload
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del archivo o carpeta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /upload/files/{id} [delete]
func (h *UploadHandler) Delete(c *fiber.Ctx) error {
	if err := h.store.Trash(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Enviado a la papelera"})
}
