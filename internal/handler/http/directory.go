package http

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/punchlab/punchclock-backend-go/internal/domain/attendance"
	"github.com/punchlab/punchclock-backend-go/internal/domain/directory"
	"github.com/punchlab/punchclock-backend-go/internal/handler/http/response"
)

type DirectoryHandler interface {
	UploadDirectory(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
}

type directoryHandlerImpl struct {
	attendanceService attendance.AttendanceService
	employeeRepo      directory.Repository
}

func NewDirectoryHandler(attendanceService attendance.AttendanceService, employeeRepo directory.Repository) DirectoryHandler {
	return &directoryHandlerImpl{
		attendanceService: attendanceService,
		employeeRepo:      employeeRepo,
	}
}

// UploadDirectory implements DirectoryHandler. Directory exports are small
// fixed-record files, so the whole blob is read into memory for the
// heuristic scan.
func (h *directoryHandlerImpl) UploadDirectory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Field 'file' is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	blob, err := io.ReadAll(file)
	if err != nil {
		slog.Error("Failed to read directory file", "error", err)
		response.BadRequest(w, "Failed to read uploaded file", nil)
		return
	}

	result, err := h.attendanceService.ImportDirectory(r.Context(), blob)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Directory imported", result)
}

// ListEmployees implements DirectoryHandler.
func (h *directoryHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	entries, err := h.employeeRepo.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
