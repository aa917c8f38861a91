package dto

import "github.com/siges-soporte/siges-api/internal/application/ports"

// CreateFolderRequest alta de subcarpeta en el Drive.
type CreateFolderRequest struct {
	Name string `json:"name" validate:"required"`
}

// UploadFailure archivo que no pudo subirse y el motivo.
type UploadFailure struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// UploadResult resultado de una subida por lotes: lo subido y lo fallido.
type UploadResult struct {
	Uploaded []ports.DriveFile `json:"uploaded"`
	Failed   []UploadFailure   `json:"failed"`
}
