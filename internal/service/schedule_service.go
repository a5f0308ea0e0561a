package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/campuskit/examsched-backend/internal/config"
	"github.com/campuskit/examsched-backend/internal/model"
	"github.com/campuskit/examsched-backend/internal/repository"
	"github.com/campuskit/examsched-backend/internal/scheduler"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Failure codes stored on FAILED runs. They mirror the API error codes so
// clients see one vocabulary everywhere.
const (
	FailureNoCourses       = "NO_COURSES"
	FailureNoValidDates    = "NO_VALID_DATES"
	FailureUnsatisfiable   = "UNSATISFIABLE_SCHEDULE"
	FailureBudgetExhausted = "SCHEDULE_BUDGET_EXHAUSTED"
	FailureInternal        = "INTERNAL_ERROR"
)

var (
	// ErrRunAlreadyActive rejects a new run while one is queued or executing.
	ErrRunAlreadyActive = errors.New("a schedule run is already active")

	// ErrNoSchedule means no completed run exists yet.
	ErrNoSchedule = errors.New("no completed schedule run")
)

// ScheduleService owns the schedule run lifecycle: enqueueing runs, feeding
// the date assignment engine, and persisting its output. The engine itself
// stays pure; all I/O lives here.
type ScheduleService struct {
	cfg            *config.Config
	scheduleRepo   *repository.ScheduleRepository
	courseRepo     *repository.CourseRepository
	enrollmentRepo *repository.EnrollmentRepository
	holidayRepo    *repository.HolidayRepository
	rdb            *redis.Client
	log            zerolog.Logger
}

func NewScheduleService(
	cfg *config.Config,
	scheduleRepo *repository.ScheduleRepository,
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	holidayRepo *repository.HolidayRepository,
	rdb *redis.Client,
	log zerolog.Logger,
) *ScheduleService {
	return &ScheduleService{
		cfg:            cfg,
		scheduleRepo:   scheduleRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		holidayRepo:    holidayRepo,
		rdb:            rdb,
		log:            log.With().Str("component", "schedule_service").Logger(),
	}
}

// EnqueueRun creates a PENDING run and hands it to the schedule worker.
// Only one run may be queued or executing at a time: concurrent runs would
// race to become "the" published schedule.
func (s *ScheduleService) EnqueueRun(ctx context.Context, adminID int, windowStart, windowEnd time.Time) (*model.ScheduleRun, error) {
	active, err := s.scheduleRepo.HasActiveRun(ctx)
	if err != nil {
		return nil, fmt.Errorf("check active run: %w", err)
	}
	if active {
		return nil, ErrRunAlreadyActive
	}

	run := &model.ScheduleRun{
		ID:          uuid.New(),
		Status:      model.RunStatusPending,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		RequestedBy: adminID,
	}
	if err := s.scheduleRepo.CreateRun(ctx, run); err != nil {
		return nil, fmt.Errorf("create run: %w", err)
	}

	if err := s.rdb.RPush(ctx, config.WorkerKey.ScheduleRunsQueue, run.ID.String()).Err(); err != nil {
		return nil, fmt.Errorf("enqueue run: %w", err)
	}

	s.log.Info().
		Str("run_id", run.ID.String()).
		Time("window_start", windowStart).
		Time("window_end", windowEnd).
		Msg("Schedule run enqueued")

	return run, nil
}

// GetRun returns a run's status document. Clients poll this while the worker
// searches, so it reads through a short-lived Redis cache that the worker
// invalidates on every status change.
func (s *ScheduleService) GetRun(ctx context.Context, id uuid.UUID) (*model.ScheduleRun, error) {
	cacheKey := config.CacheKey.ScheduleRunKey(id.String())
	if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
		var run model.ScheduleRun
		if err := json.Unmarshal([]byte(cached), &run); err == nil {
			return &run, nil
		}
		s.rdb.Del(ctx, cacheKey)
	}

	run, err := s.scheduleRepo.GetRun(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(run); err == nil {
		s.rdb.Set(ctx, cacheKey, payload, 5*time.Second)
	}
	return run, nil
}

// ExecuteRun performs one queued run end to end. Called by the schedule
// worker, never from a request handler: backtracking can take a while.
func (s *ScheduleService) ExecuteRun(ctx context.Context, runID uuid.UUID) error {
	run, err := s.scheduleRepo.GetRun(ctx, runID)
	if err != nil {
		return fmt.Errorf("load run %s: %w", runID, err)
	}

	if err := s.scheduleRepo.UpdateRunStatus(ctx, runID, model.RunStatusRunning, "", ""); err != nil {
		return fmt.Errorf("mark running: %w", err)
	}
	s.invalidateRunCache(ctx, runID)
	s.publishProgress(ctx, model.RunProgressEvent{RunID: runID.String(), Status: model.RunStatusRunning})

	input, err := s.buildInput(ctx, run)
	if err != nil {
		return s.failRun(ctx, runID, FailureInternal, err.Error())
	}

	items, err := scheduler.Schedule(*input)
	if err != nil {
		code, detail := classifyEngineError(err)
		return s.failRun(ctx, runID, code, detail)
	}

	if err := s.scheduleRepo.SaveItems(ctx, runID, toModelItems(runID, items)); err != nil {
		return s.failRun(ctx, runID, FailureInternal, err.Error())
	}
	if err := s.scheduleRepo.UpdateRunStatus(ctx, runID, model.RunStatusCompleted, "", ""); err != nil {
		return fmt.Errorf("mark completed: %w", err)
	}
	s.invalidateRunCache(ctx, runID)

	// Invalidate the cached published schedule; the next read rebuilds it.
	s.rdb.Del(ctx, config.CacheKey.CurrentScheduleKey())

	s.publishProgress(ctx, model.RunProgressEvent{
		RunID:  runID.String(),
		Status: model.RunStatusCompleted,
		Placed: len(items),
		Total:  len(items),
	})

	s.log.Info().
		Str("run_id", runID.String()).
		Int("items", len(items)).
		Msg("Schedule run completed")

	return nil
}

// GetCurrentSchedule returns the latest completed run's calendar, reading
// through a Redis cache.
func (s *ScheduleService) GetCurrentSchedule(ctx context.Context) ([]model.ScheduleItem, error) {
	cacheKey := config.CacheKey.CurrentScheduleKey()
	if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
		var items []model.ScheduleItem
		if err := json.Unmarshal([]byte(cached), &items); err == nil {
			return items, nil
		}
		// Corrupt cache entry: fall through to the database.
		s.rdb.Del(ctx, cacheKey)
	}

	run, err := s.scheduleRepo.GetLatestCompletedRun(ctx)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoSchedule
	}
	if err != nil {
		return nil, err
	}

	items, err := s.scheduleRepo.GetItemsByRun(ctx, run.ID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		s.rdb.Set(ctx, cacheKey, payload, 10*time.Minute)
	}
	return items, nil
}

// GetItemsForDate lists the published schedule's exams on one date.
func (s *ScheduleService) GetItemsForDate(ctx context.Context, examDate time.Time) ([]model.ScheduleItem, error) {
	run, err := s.scheduleRepo.GetLatestCompletedRun(ctx)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoSchedule
	}
	if err != nil {
		return nil, err
	}
	return s.scheduleRepo.GetItemsForDate(ctx, run.ID, examDate)
}

// ────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ────────────────────────────────────────────────────────────────────────────

func (s *ScheduleService) buildInput(ctx context.Context, run *model.ScheduleRun) (*scheduler.Input, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load courses: %w", err)
	}
	enrollments, err := s.enrollmentRepo.GetEnrollmentMap(ctx)
	if err != nil {
		return nil, fmt.Errorf("load enrollments: %w", err)
	}
	holidays, err := s.holidayRepo.GetDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("load holidays: %w", err)
	}

	input := &scheduler.Input{
		Courses:       make([]scheduler.Course, 0, len(courses)),
		Enrollments:   enrollments,
		WindowStart:   run.WindowStart,
		WindowEnd:     run.WindowEnd,
		Holidays:      holidays,
		ShortDay:      s.cfg.ScheduleShortWeekday,
		MaxBacktracks: s.cfg.ScheduleMaxBacktracks,
	}
	for _, c := range courses {
		input.Courses = append(input.Courses, scheduler.Course{
			Code:     c.Code,
			Name:     c.Name,
			Semester: c.Semester,
			Program:  string(c.Program),
			GapDays:  c.GapDays,
			IsLab:    c.IsLab,
			Teacher:  c.Teacher,
		})
	}
	return input, nil
}

func (s *ScheduleService) failRun(ctx context.Context, runID uuid.UUID, code, detail string) error {
	if err := s.scheduleRepo.UpdateRunStatus(ctx, runID, model.RunStatusFailed, code, detail); err != nil {
		return fmt.Errorf("mark failed: %w", err)
	}
	s.invalidateRunCache(ctx, runID)
	s.publishProgress(ctx, model.RunProgressEvent{
		RunID:  runID.String(),
		Status: model.RunStatusFailed,
		Error:  detail,
	})
	s.log.Warn().
		Str("run_id", runID.String()).
		Str("failure_code", code).
		Str("detail", detail).
		Msg("Schedule run failed")
	return nil
}

// invalidateRunCache drops the cached status document after a status
// transition so pollers never read a stale state.
func (s *ScheduleService) invalidateRunCache(ctx context.Context, runID uuid.UUID) {
	s.rdb.Del(ctx, config.CacheKey.ScheduleRunKey(runID.String()))
}

func (s *ScheduleService) publishProgress(ctx context.Context, event model.RunProgressEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := s.rdb.Publish(ctx, config.CacheKey.ScheduleRunChannel(event.RunID), payload).Err(); err != nil {
		s.log.Warn().Err(err).Str("run_id", event.RunID).Msg("Progress publish failed")
	}
}

func classifyEngineError(err error) (code, detail string) {
	var unsat *scheduler.UnsatisfiableError
	switch {
	case errors.Is(err, scheduler.ErrNoCourses):
		return FailureNoCourses, err.Error()
	case errors.Is(err, scheduler.ErrNoValidDates):
		return FailureNoValidDates, err.Error()
	case errors.As(err, &unsat):
		if unsat.BudgetExhausted {
			return FailureBudgetExhausted, err.Error()
		}
		return FailureUnsatisfiable, err.Error()
	default:
		return FailureInternal, err.Error()
	}
}

func toModelItems(runID uuid.UUID, items []scheduler.Item) []model.ScheduleItem {
	out := make([]model.ScheduleItem, 0, len(items))
	for _, it := range items {
		out = append(out, model.ScheduleItem{
			RunID:        runID,
			CourseKey:    it.CourseKey,
			CourseCodes:  it.CourseCodes,
			CourseName:   it.CourseName,
			Teachers:     it.Teachers,
			ExamDate:     it.Date,
			Weekday:      it.Weekday.String(),
			Slot:         it.Slot,
			Semester:     it.Semester,
			Program:      model.ProgramType(it.Program),
			GapDays:      it.GapDays,
			IsFirstPaper: it.IsFirstPaper,
		})
	}
	return out
}
