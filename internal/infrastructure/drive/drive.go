package drive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/siges-soporte/siges-api/internal/application/ports"
	"github.com/siges-soporte/siges-api/internal/domain"
	"github.com/siges-soporte/siges-api/pkg/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const folderMimeType = "application/vnd.google-apps.folder"

// exportFormats mapea los tipos nativos de Google Workspace al formato de
// exportación y su extensión. Los formularios no tienen exportación.
var exportFormats = map[string]struct {
	MimeType  string
	Extension string
}{
	"application/vnd.google-apps.document":     {"application/vnd.openxmlformats-officedocument.wordprocessingml.document", ".docx"},
	"application/vnd.google-apps.spreadsheet":  {"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", ".xlsx"},
	"application/vnd.google-apps.presentation": {"application/vnd.openxmlformats-officedocument.presentationml.presentation", ".pptx"},
	"application/vnd.google-apps.drawing":      {"image/png", ".png"},
	"application/vnd.google-apps.script":       {"application/vnd.google-apps.script+json", ".json"},
}

var _ ports.DriveStore = (*Store)(nil)

// Store implementa el proxy de adjuntos sobre Google Drive. Todas las
// operaciones quedan acotadas a la carpeta raíz configurada.
type Store struct {
	svc      *gdrive.Service
	parentID string
}

// NewStore construye el cliente de Drive con las credenciales inyectadas.
func NewStore(ctx context.Context, cfg config.DriveConfig) (*Store, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RefreshToken == "" {
		return nil, fmt.Errorf("drive: credenciales incompletas")
	}
	conf := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gdrive.DriveScope},
	}
	ts := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})
	svc, err := gdrive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("drive: crear servicio: %w", err)
	}
	return &Store{svc: svc, parentID: cfg.ParentFolderID}, nil
}

// ListFolders devuelve las subcarpetas de la raíz, ordenadas con prefijo
// numérico primero y alfabético después.
func (s *Store) ListFolders(ctx context.Context) ([]ports.DriveFile, error) {
	query := fmt.Sprintf("'%s' in parents and mimeType = '%s' and trashed = false", s.parentID, folderMimeType)
	return s.listAll(ctx, query)
}

// CreateFolder crea una subcarpeta; el nombre debe ser único en la raíz.
func (s *Store) CreateFolder(ctx context.Context, name string) (*ports.DriveFile, error) {
	existing, err := s.ListFolders(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range existing {
		if f.Name == name {
			return nil, domain.ErrConflict
		}
	}
	created, err := s.svc.Files.Create(&gdrive.File{
		Name:     name,
		MimeType: folderMimeType,
		Parents:  []string{s.parentID},
	}).Fields("id, name, mimeType").Context(ctx).Do()
	if err != nil {
		return nil, mapError(err, "crear carpeta")
	}
	return toDriveFile(created), nil
}

// ListFiles devuelve los archivos de una carpeta con el mismo ordenamiento
// que las carpetas.
func (s *Store) ListFiles(ctx context.Context, folderID string) ([]ports.DriveFile, error) {
	query := fmt.Sprintf("'%s' in parents and mimeType != '%s' and trashed = false", folderID, folderMimeType)
	return s.listAll(ctx, query)
}

func (s *Store) listAll(ctx context.Context, query string) ([]ports.DriveFile, error) {
	var out []ports.DriveFile
	call := s.svc.Files.List().Q(query).
		Fields("nextPageToken, files(id, name, mimeType, webContentLink, size)").
		PageSize(1000)
	err := call.Pages(ctx, func(page *gdrive.FileList) error {
		for _, f := range page.Files {
			out = append(out, *toDriveFile(f))
		}
		return nil
	})
	if err != nil {
		return nil, mapError(err, "listar")
	}
	sortFiles(out)
	return out, nil
}

// Upload sube un archivo a la carpeta; nombre repetido dentro de la carpeta
// es conflicto.
func (s *Store) Upload(ctx context.Context, folderID, name, mimeType string, content io.Reader) (*ports.DriveFile, error) {
	files, err := s.ListFiles(ctx, folderID)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if f.Name == name {
			return nil, domain.ErrConflict
		}
	}
	created, err := s.svc.Files.Create(&gdrive.File{
		Name:    name,
		Parents: []string{folderID},
	}).Media(content, googleapi.ContentType(mimeType)).
		Fields("id, name, mimeType, webContentLink, size").
		Context(ctx).Do()
	if err != nil {
		return nil, mapError(err, "subir archivo")
	}
	return toDriveFile(created), nil
}

// Download baja un archivo. Los tipos nativos de Workspace se exportan al
// formato de oficina equivalente y el nombre cambia de extensión; el resto se
// transmite tal cual con alt=media.
func (s *Store) Download(ctx context.Context, fileID string) (*ports.DriveDownload, error) {
	meta, err := s.svc.Files.Get(fileID).Fields("id, name, mimeType").Context(ctx).Do()
	if err != nil {
		return nil, mapError(err, "leer metadata")
	}

	if meta.MimeType == "application/vnd.google-apps.form" {
		return nil, domain.ErrInvalidInput
	}
	if isWorkspaceType(meta.MimeType) {
		format, ok := exportFormats[meta.MimeType]
		if !ok {
			format.MimeType = "application/pdf"
			format.Extension = ".pdf"
		}
		resp, err := s.svc.Files.Export(fileID, format.MimeType).Context(ctx).Download()
		if err != nil {
			return nil, mapError(err, "exportar archivo")
		}
		return &ports.DriveDownload{
			Name:     meta.Name + format.Extension,
			MimeType: format.MimeType,
			Content:  resp.Body,
		}, nil
	}

	resp, err := s.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, mapError(err, "descargar archivo")
	}
	return &ports.DriveDownload{
		Name:     meta.Name,
		MimeType: meta.MimeType,
		Content:  resp.Body,
	}, nil
}

// Trash mueve un archivo o carpeta a la papelera.
func (s *Store) Trash(ctx context.Context, fileID string) error {
	_, err := s.svc.Files.Update(fileID, &gdrive.File{Trashed: true}).Context(ctx).Do()
	if err != nil {
		return mapError(err, "mover a papelera")
	}
	return nil
}

func isWorkspaceType(mimeType string) bool {
	return len(mimeType) > 28 && mimeType[:28] == "application/vnd.google-apps."
}

func toDriveFile(f *gdrive.File) *ports.DriveFile {
	return &ports.DriveFile{
		ID:             f.Id,
		Name:           f.Name,
		MimeType:       f.MimeType,
		WebContentLink: f.WebContentLink,
		Size:           f.Size,
	}
}

// sortFiles ordena primero los nombres con prefijo numérico (numéricamente) y
// después el resto alfabéticamente.
func sortFiles(files []ports.DriveFile) {
	sort.SliceStable(files, func(i, j int) bool {
		ni, iOk := numericPrefix(files[i].Name)
		nj, jOk := numericPrefix(files[j].Name)
		switch {
		case iOk && jOk:
			if ni != nj {
				return ni < nj
			}
			return files[i].Name < files[j].Name
		case iOk:
			return true
		case jOk:
			return false
		default:
			return files[i].Name < files[j].Name
		}
	})
}

func numericPrefix(name string) (int, bool) {
	end := 0
	for end < len(name) && name[end] >= '0' && name[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(name[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// mapError traduce los códigos HTTP de la API de Drive a errores de dominio.
func mapError(err error, op string) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 404:
			return domain.ErrNotFound
		case 403:
			return domain.ErrForbidden
		}
	}
	return fmt.Errorf("drive: %s: %w", op, err)
}
