package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	attendanceHandler AttendanceHandler,
	directoryHandler DirectoryHandler,
	reportHandler ReportHandler,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "punchclock"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/upload", attendanceHandler.UploadPunchLog)

			r.Route("/punches", func(r chi.Router) {
				r.Post("/", attendanceHandler.AddPunch)
				r.Delete("/", attendanceHandler.DeletePunch)
			})

			r.Route("/{employeeID}", func(r chi.Router) {
				r.Post("/recompute", attendanceHandler.Recompute)
				r.Route("/{date}/comp-off", func(r chi.Router) {
					r.Post("/", attendanceHandler.MarkCompOff)
					r.Delete("/", attendanceHandler.ClearCompOff)
				})
			})
		})

		r.Route("/directory", func(r chi.Router) {
			r.Post("/upload", directoryHandler.UploadDirectory)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", directoryHandler.ListEmployees)
			r.Get("/{employeeID}/attendance", reportHandler.EmployeeMonth)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/monthly", reportHandler.Monthly)
		})
	})

	return r
}
