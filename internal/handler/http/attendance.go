package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/punchlab/punchclock-backend-go/internal/domain/attendance"
	"github.com/punchlab/punchclock-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	UploadPunchLog(w http.ResponseWriter, r *http.Request)
	Recompute(w http.ResponseWriter, r *http.Request)
	MarkCompOff(w http.ResponseWriter, r *http.Request)
	ClearCompOff(w http.ResponseWriter, r *http.Request)
	AddPunch(w http.ResponseWriter, r *http.Request)
	DeletePunch(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// UploadPunchLog implements AttendanceHandler. The punch log arrives as a
// multipart upload and is streamed into the parser without buffering the
// whole file.
func (h *attendanceHandlerImpl) UploadPunchLog(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 32MB in memory)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
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

	result, err := h.attendanceService.ImportPunchLog(r.Context(), file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch log imported", result)
}

// Recompute implements AttendanceHandler.
func (h *attendanceHandlerImpl) Recompute(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDParam(w, r)
	if !ok {
		return
	}

	days, err := h.attendanceService.RecomputeEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance recomputed", days)
}

// MarkCompOff implements AttendanceHandler.
func (h *attendanceHandlerImpl) MarkCompOff(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDParam(w, r)
	if !ok {
		return
	}
	date := chi.URLParam(r, "date")

	day, err := h.attendanceService.MarkCompOff(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Day marked as comp-off", day)
}

// ClearCompOff implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClearCompOff(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDParam(w, r)
	if !ok {
		return
	}
	date := chi.URLParam(r, "date")

	day, err := h.attendanceService.ClearCompOff(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Comp-off cleared", day)
}

// AddPunch implements AttendanceHandler.
func (h *attendanceHandlerImpl) AddPunch(w http.ResponseWriter, r *http.Request) {
	var req attendance.ManualPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode manual punch request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	day, err := h.attendanceService.AddManualPunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch added", day)
}

// DeletePunch implements AttendanceHandler.
func (h *attendanceHandlerImpl) DeletePunch(w http.ResponseWriter, r *http.Request) {
	var req attendance.ManualPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode manual punch request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	day, err := h.attendanceService.DeleteManualPunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch deleted", day)
}

// employeeIDParam reads the employeeID URL parameter. Writes the error
// response itself and returns false when the parameter is unusable.
func employeeIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "employeeID")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		response.BadRequest(w, "employeeID must be a positive integer", nil)
		return 0, false
	}
	return id, true
}
