package media

import (
	"context"
	"net/http"
	"somon-ai/internal/adapters/handlers/http/chi/httpx"
	"somon-ai/internal/core/domain"
)

type uploadFunc func(ctx context.Context, file *domain.FileUpload) domain.Result[domain.FileUploadOutcome]

// UploadFileV1 stores the "file" field, its kind is detected from the extension
func (h *HandlerV1) UploadFileV1(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, h.mediaService.Upload)
}

func (h *HandlerV1) UploadImageV1(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, h.mediaService.UploadImage)
}

func (h *HandlerV1) UploadVideoV1(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, h.mediaService.UploadVideo)
}

func (h *HandlerV1) upload(w http.ResponseWriter, r *http.Request, upload uploadFunc) {
	form, err := httpx.ParseForm(r)
	if err != nil {
		h.logger.Warn("invalid upload form", "error", err)
		httpx.WriteError(w, h.logger, httpx.FormError(err))
		return
	}
	defer form.Close()

	file, err := form.File("file")
	if err != nil {
		h.logger.Error("error opening uploaded file", "error", err)
		httpx.WriteError(w, h.logger, domain.InternalServerError("Failed to read uploaded file"))
		return
	}

	// a missing file is reported by the service as an empty file
	httpx.Write(w, h.logger, upload(r.Context(), file))
}

// V1UploadItem is the outcome of one file of a batch upload
type V1UploadItem struct {
	FileName  string                    `json:"fileName"`
	IsSuccess bool                      `json:"isSuccess"`
	Error     domain.ResultError        `json:"error"`
	Data      *domain.FileUploadOutcome `json:"data"`
}

// UploadFilesV1 stores every "files" field independently
func (h *HandlerV1) UploadFilesV1(w http.ResponseWriter, r *http.Request) {
	form, err := httpx.ParseForm(r)
	if err != nil {
		h.logger.Warn("invalid upload form", "error", err)
		httpx.WriteError(w, h.logger, httpx.FormError(err))
		return
	}
	defer form.Close()

	files, err := form.Files("files")
	if err != nil {
		h.logger.Error("error opening uploaded files", "error", err)
		httpx.WriteError(w, h.logger, domain.InternalServerError("Failed to read uploaded files"))
		return
	}
	if len(files) == 0 {
		httpx.WriteError(w, h.logger, domain.BadRequest("No files provided"))
		return
	}

	outcomes := h.mediaService.UploadMany(r.Context(), files)
	items := make([]V1UploadItem, 0, len(outcomes))
	for _, o := range outcomes {
		item := V1UploadItem{FileName: o.FileName, IsSuccess: o.Result.IsSuccess(), Error: o.Result.Err()}
		if o.Result.IsSuccess() {
			v := o.Result.Value()
			item.Data = &v
		}
		items = append(items, item)
	}
	httpx.Write(w, h.logger, domain.Success(items))
}
