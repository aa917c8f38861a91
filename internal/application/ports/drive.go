package ports

import (
	"context"
	"io"
)

// DriveFile metadata de un archivo o carpeta remota.
type DriveFile struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	MimeType       string `json:"mimeType"`
	WebContentLink string `json:"webContentLink,omitempty"`
	Size           int64  `json:"size,omitempty"`
}

// DriveDownload contenido descargado o exportado. Para documentos nativos de
// Google Workspace el MimeType y el Name ya reflejan el formato exportado.
type DriveDownload struct {
	Name     string
	MimeType string
	Content  io.ReadCloser
}

// DriveStore abstrae el almacenamiento de adjuntos en la nube. Los errores se
// mapean a los de dominio: ErrConflict en duplicados, ErrNotFound en ids
// inexistentes, ErrInvalidInput en tipos no exportables.
type DriveStore interface {
	ListFolders(ctx context.Context) ([]DriveFile, error)
	CreateFolder(ctx context.Context, name string) (*DriveFile, error)
	ListFiles(ctx context.Context, folderID string) ([]DriveFile, error)
	Upload(ctx context.Context, folderID, name, mimeType string, content io.Reader) (*DriveFile, error)
	Download(ctx context.Context, fileID string) (*DriveDownload, error)
	Trash(ctx context.Context, fileID string) error
}
