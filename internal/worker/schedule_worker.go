package worker

import (
	"context"
	"time"

	"github.com/campuskit/examsched-backend/internal/config"
	"github.com/campuskit/examsched-backend/internal/service"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const SchedulePollTimeout = 1 * time.Second

// ScheduleWorker drains the schedule run queue and executes runs one at a
// time. Runs are serialized on purpose: the enqueue side already rejects a
// second run while one is active, and a single consumer keeps it that way.
type ScheduleWorker struct {
	scheduleService *service.ScheduleService
	rdb             *redis.Client
	log             zerolog.Logger
}

func NewScheduleWorker(scheduleService *service.ScheduleService, rdb *redis.Client, log zerolog.Logger) *ScheduleWorker {
	return &ScheduleWorker{
		scheduleService: scheduleService,
		rdb:             rdb,
		log:             log.With().Str("component", "schedule_worker").Logger(),
	}
}

// ----------------------------------------------------------------
// Worker loop
// ----------------------------------------------------------------

func (w *ScheduleWorker) Start(ctx context.Context) {
	w.log.Info().Msg("ScheduleWorker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Shutdown requested. ScheduleWorker stopping...")
			return

		default:
			item, err := w.rdb.BLPop(ctx, SchedulePollTimeout, config.WorkerKey.ScheduleRunsQueue).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}

			if len(item) < 2 {
				continue
			}

			runID, err := uuid.Parse(item[1])
			if err != nil {
				w.log.Error().Err(err).Str("payload", item[1]).Msg("Invalid run ID on queue")
				continue
			}

			w.execute(ctx, runID)
		}
	}
}

func (w *ScheduleWorker) execute(ctx context.Context, runID uuid.UUID) {
	start := time.Now()
	w.log.Info().Str("run_id", runID.String()).Msg("Executing schedule run")

	if err := w.scheduleService.ExecuteRun(ctx, runID); err != nil {
		// ExecuteRun absorbs engine failures into the run record; an error
		// here means the run's own bookkeeping failed.
		w.log.Error().Err(err).Str("run_id", runID.String()).Msg("Schedule run execution error")
		return
	}

	w.log.Info().
		Str("run_id", runID.String()).
		Dur("elapsed", time.Since(start)).
		Msg("Schedule run processed")
}
