package main

import (
	"io"
	"log/slog"

	"github.com/tetrahub/academic-records/config"
	"github.com/tetrahub/academic-records/internal/application/command"
	"github.com/tetrahub/academic-records/internal/application/query"
	"github.com/tetrahub/academic-records/internal/application/service"
	"github.com/tetrahub/academic-records/internal/domain/academic"
	"github.com/tetrahub/academic-records/internal/infrastructure/messaging"
	"github.com/tetrahub/academic-records/internal/infrastructure/persistence/memory"
	"github.com/tetrahub/academic-records/pkg/logger"
)

// application holds the wired components of one process.
type application struct {
	cfg *config.Config
	log *slog.Logger
	bus *messaging.InMemoryEventBus

	academic *service.AcademicService
	students *service.StudentService
	teachers *service.TeacherService

	record *command.RecordEvaluationHandler
	report *query.StudentReportHandler
}

// newApplication wires the core from configuration. Logs go to logOut.
func newApplication(cfg *config.Config, logOut io.Writer) (*application, error) {
	logOpts := logger.DefaultOptions()
	logOpts.Output = logOut
	logOpts.Level = cfg.Log.Level
	logOpts.Format = logger.Format(cfg.Log.Format)
	logOpts.AddSource = cfg.Log.AddSource
	log := logger.New(logOpts).With("app", cfg.App.Name, "version", cfg.App.Version)

	busCfg := messaging.DefaultInMemoryEventBusConfig()
	busCfg.AsyncMode = cfg.EventBus.Async
	busCfg.WorkerPoolSize = cfg.EventBus.Workers
	busCfg.Logger = log
	bus := messaging.NewInMemoryEventBus(busCfg)
	if cfg.EventBus.Audit {
		if err := bus.SubscribeAll(messaging.AuditHandler(log)); err != nil {
			return nil, err
		}
	}

	// One ledger shared by both services unless the flag asks for the
	// historical two-ledger layout.
	academicLedger := memory.NewLedger()
	var studentLedger academic.Ledger = academicLedger
	if !cfg.Features.SharedLedger() {
		studentLedger = memory.NewLedger()
	}

	academicService := service.NewAcademicService(academicLedger, service.AcademicServiceConfig{
		Publisher:     bus,
		Logger:        log,
		StrictBinding: cfg.Features.StrictBinding(),
	})
	studentService := service.NewStudentService(memory.NewRoster(), studentLedger, service.StudentServiceConfig{
		Publisher: bus,
		Logger:    log,
	})
	teacherService := service.NewTeacherService(service.TeacherServiceConfig{
		Publisher:          bus,
		Logger:             log,
		PublishAssignments: cfg.Features.AssignmentEvents(),
	})

	log.Debug("application wired",
		slog.Bool("shared_ledger", cfg.Features.SharedLedger()),
		slog.Bool("strict_binding", cfg.Features.StrictBinding()),
		slog.Bool("async_bus", cfg.EventBus.Async),
	)

	return &application{
		cfg:      cfg,
		log:      log,
		bus:      bus,
		academic: academicService,
		students: studentService,
		teachers: teacherService,
		record: command.NewRecordEvaluationHandler(academicService, studentService, command.RecordEvaluationHandlerConfig{
			PassingGrade: cfg.Grading.PassingGrade,
		}),
		report: query.NewStudentReportHandler(studentService, cfg.Grading.PassingGrade),
	}, nil
}

// Close flushes the event bus and logs its counters.
func (a *application) Close() error {
	err := a.bus.Close()
	snap := a.bus.Metrics().Snapshot()
	a.log.Debug("event bus stats",
		slog.Int64("published", snap.TotalPublished),
		slog.Int64("handler_runs", snap.TotalHandlerExecs),
		slog.Int64("handler_failures", snap.HandlerFailures),
	)
	return err
}
