package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/punchlab/punchclock-backend-go/internal/config"
	appHTTP "github.com/punchlab/punchclock-backend-go/internal/handler/http"
	"github.com/punchlab/punchclock-backend-go/internal/pkg/database"
	"github.com/punchlab/punchclock-backend-go/internal/repository/postgresql"
	attendanceService "github.com/punchlab/punchclock-backend-go/internal/service/attendance"
	dirparser "github.com/punchlab/punchclock-backend-go/internal/service/directory"
	"github.com/punchlab/punchclock-backend-go/internal/service/punchlog"
	reportService "github.com/punchlab/punchclock-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	punchRepo := postgresql.NewPunchRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	dayRepo := postgresql.NewAttendanceDayRepository(db)

	settings := cfg.Attendance.Settings()
	loc := cfg.Attendance.CivilLocation()

	punchParser, err := punchlog.NewParser(cfg.Attendance.CivilOffset, slog.Default())
	if err != nil {
		fmt.Println("Error building punch log parser:", err)
		return
	}
	directoryParser := dirparser.NewParser()

	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		punchRepo,
		employeeRepo,
		dayRepo,
		punchParser,
		directoryParser,
		settings,
		loc,
	)
	reportSvc := reportService.NewReportService(
		punchRepo,
		employeeRepo,
		dayRepo,
		settings,
		loc,
	)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	directoryHandler := appHTTP.NewDirectoryHandler(attendanceSvc, employeeRepo)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		attendanceHandler,
		directoryHandler,
		reportHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
