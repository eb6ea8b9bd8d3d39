package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/Yulian302/lfusys-services-files/apperror"
	"github.com/Yulian302/lfusys-services-files/auth"
	"github.com/Yulian302/lfusys-services-files/health"
	logger "github.com/Yulian302/lfusys-services-files/logging"
	"github.com/Yulian302/lfusys-services-files/models"
	"github.com/Yulian302/lfusys-services-files/services"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// uploadFormField is the multipart form field that carries the file.
const uploadFormField = "file"

type HttpHandler struct {
	fileService     services.FileService
	transferService services.TransferService
	checks          []health.ReadinessCheck
	logger          logger.Logger
}

func NewHttpHandler(
	fileSvc services.FileService,
	transferSvc services.TransferService,
	checks []health.ReadinessCheck,
	l logger.Logger,
) *HttpHandler {
	return &HttpHandler{
		fileService:     fileSvc,
		transferService: transferSvc,
		checks:          checks,
		logger:          l,
	}
}

type FileJSON struct {
	Id          string `json:"id"`
	UserId      string `json:"user_id"`
	Filename    string `json:"filename"`
	Size        uint64 `json:"size"`
	ContentType string `json:"content_type"`
	CreatedAt   int64  `json:"created_at"`
}

type FileResponse struct {
	File FileJSON `json:"file"`
}

type FilesResponse struct {
	Files []FileJSON `json:"files"`
}

type DeleteResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toFileJSON(f *models.File) FileJSON {
	return FileJSON{
		Id:          f.FileId,
		UserId:      f.OwnerId,
		Filename:    f.Name,
		Size:        f.Size,
		ContentType: f.ContentType,
		CreatedAt:   f.CreatedAt,
	}
}

// Router builds the HTTP mirror of the file service. Everything under /api
// requires a bearer token.
func (h *HttpHandler) Router(resolver *auth.Resolver) http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/healthz", h.healthz).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(resolver.Middleware)
	api.HandleFunc("/files", h.uploadFile).Methods(http.MethodPost)
	api.HandleFunc("/files", h.listFiles).Methods(http.MethodGet)
	api.HandleFunc("/files/{id}", h.getFile).Methods(http.MethodGet)
	api.HandleFunc("/files/{id}/download", h.downloadFile).Methods(http.MethodGet)
	api.HandleFunc("/files/{id}", h.deleteFile).Methods(http.MethodDelete)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With"}),
		handlers.ExposedHeaders([]string{"Content-Disposition"}),
	)

	return otelhttp.NewHandler(cors(h.requestLog(router)), "files-http")
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *HttpHandler) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		h.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

func (h *HttpHandler) writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("failed to encode JSON response", "error", err)
	}
}

func (h *HttpHandler) writeError(w http.ResponseWriter, err error) {
	h.writeJSON(w, apperror.HTTPStatus(err), ErrorResponse{Error: err.Error()})
}

func (h *HttpHandler) healthz(w http.ResponseWriter, r *http.Request) {
	if err := health.CheckAll(r.Context(), 500*time.Millisecond, h.checks...); err != nil {
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HttpHandler) listFiles(w http.ResponseWriter, r *http.Request) {
	owner, _ := auth.OwnerFromContext(r.Context())

	files, err := h.fileService.ListFiles(r.Context(), owner)
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := FilesResponse{Files: make([]FileJSON, len(files))}
	for i := range files {
		out.Files[i] = toFileJSON(&files[i])
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *HttpHandler) getFile(w http.ResponseWriter, r *http.Request) {
	owner, _ := auth.OwnerFromContext(r.Context())

	file, err := h.fileService.GetFile(r.Context(), owner, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, FileResponse{File: toFileJSON(file)})
}

func (h *HttpHandler) deleteFile(w http.ResponseWriter, r *http.Request) {
	owner, _ := auth.OwnerFromContext(r.Context())

	if err := h.fileService.DeleteFile(r.Context(), owner, mux.Vars(r)["id"]); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, DeleteResponse{Success: true})
}

// formUploadStream turns the "file" part of a multipart body into an upload
// stream: metadata first, then fixed size chunks. A malformed or truncated
// body fails with ErrInvalidArgument.
type formUploadStream struct {
	reader *multipart.Reader
	part   *multipart.Part
	buf    []byte
	err    error
}

func (s *formUploadStream) Recv() (*services.UploadMessage, error) {
	if s.part == nil {
		for {
			part, err := s.reader.NextPart()
			if errors.Is(err, io.EOF) {
				// no file field at all
				return nil, err
			}
			if err != nil {
				return nil, fmt.Errorf("%w: %v", apperror.ErrInvalidArgument, err)
			}
			if part.FormName() == uploadFormField {
				s.part = part
				break
			}
			_ = part.Close()
		}

		return &services.UploadMessage{Metadata: &services.UploadMetadata{
			Filename:    s.part.FileName(),
			ContentType: s.part.Header.Get("Content-Type"),
		}}, nil
	}

	if s.err != nil {
		return nil, s.err
	}

	n, err := s.fill()
	if err != nil && !errors.Is(err, io.EOF) {
		err = fmt.Errorf("%w: %v", apperror.ErrInvalidArgument, err)
	}
	if n > 0 {
		s.err = err
		return &services.UploadMessage{Chunk: s.buf[:n]}, nil
	}
	return nil, err
}

// fill reads until buf is full or the part reports an error.
func (s *formUploadStream) fill() (int, error) {
	var (
		n   int
		err error
	)
	for n < len(s.buf) && err == nil {
		var m int
		m, err = s.part.Read(s.buf[n:])
		n += m
	}
	return n, err
}

func (h *HttpHandler) uploadFile(w http.ResponseWriter, r *http.Request) {
	owner, _ := auth.OwnerFromContext(r.Context())

	reader, err := r.MultipartReader()
	if err != nil {
		h.writeError(w, fmt.Errorf("%w: %v", apperror.ErrInvalidArgument, err))
		return
	}

	stream := &formUploadStream{reader: reader, buf: make([]byte, services.DownloadChunkSize)}
	file, err := h.transferService.Upload(r.Context(), owner, stream)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, FileResponse{File: toFileJSON(file)})
}

func (h *HttpHandler) downloadFile(w http.ResponseWriter, r *http.Request) {
	owner, _ := auth.OwnerFromContext(r.Context())

	dl, err := h.transferService.Download(r.Context(), owner, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	defer dl.Close()

	w.Header().Set("Content-Type", dl.File.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": dl.File.Name}))
	w.WriteHeader(http.StatusOK)

	for {
		chunk, err := dl.Next()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			// headers are gone, the client sees a short body
			h.logger.Error("download aborted", "file_id", dl.File.FileId, "error", err)
			return
		}
		if _, err := w.Write(chunk); err != nil {
			return
		}
	}
}
