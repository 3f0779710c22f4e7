package report

import "context"

// ReportService assembles report objects from stored punches and the name
// directory. All derivation is recomputed per request; nothing is cached.
type ReportService interface {
	// MonthlyReport builds the report for every employee with attendance
	// data covering the requested month.
	MonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)

	// EmployeeMonth builds one employee's report slice for a month.
	EmployeeMonth(ctx context.Context, employeeID int, req MonthlyReportRequest) (UserReport, error)
}
