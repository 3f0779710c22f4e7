package http

import (
	"net/http"
	"strconv"

	"github.com/punchlab/punchclock-backend-go/internal/domain/attendance"
	"github.com/punchlab/punchclock-backend-go/internal/domain/report"
	"github.com/punchlab/punchclock-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	EmployeeMonth(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Monthly implements ReportHandler.
func (h *reportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyReportRequest{
		Month:    r.URL.Query().Get("month"),
		Settings: settingsFromQuery(r),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.MonthlyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EmployeeMonth implements ReportHandler.
func (h *reportHandlerImpl) EmployeeMonth(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDParam(w, r)
	if !ok {
		return
	}

	req := report.MonthlyReportRequest{
		Month:    r.URL.Query().Get("month"),
		Settings: settingsFromQuery(r),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.EmployeeMonth(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// settingsFromQuery reads optional per-request settings overrides. Absent
// parameters keep the configured defaults; validation of supplied values
// happens in the service against the merged settings.
func settingsFromQuery(r *http.Request) attendance.SettingsOverride {
	var override attendance.SettingsOverride
	query := r.URL.Query()

	if v := query.Get("work_start"); v != "" {
		override.WorkStart = &v
	}
	if v := query.Get("work_end"); v != "" {
		override.WorkEnd = &v
	}
	if v := query.Get("late_threshold_minutes"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			override.LateThresholdMinutes = &n
		}
	}
	if v := query.Get("early_out_threshold_minutes"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			override.EarlyOutThresholdMinutes = &n
		}
	}

	return override
}
