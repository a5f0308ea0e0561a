package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/campuskit/examsched-backend/internal/config"
	"github.com/campuskit/examsched-backend/internal/model"
	"github.com/campuskit/examsched-backend/internal/service"
	ws "github.com/campuskit/examsched-backend/internal/websocket"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams schedule run progress to admin clients.
type WSHandler struct {
	rdb             *redis.Client
	scheduleService *service.ScheduleService
	log             zerolog.Logger
	upgrader        websocket.Upgrader
}

func NewWSHandler(rdb *redis.Client, scheduleService *service.ScheduleService, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		rdb:             rdb,
		scheduleService: scheduleService,
		log:             log.With().Str("component", "ws_handler").Logger(),
		upgrader:        buildUpgrader(allowedOrigins),
	}
}

// RunProgressStream godoc
// WS /ws/v1/admin/schedule/runs/:run_id/stream
// Upgrades to WebSocket and forwards the run's progress events until it
// reaches a terminal state or the client disconnects.
func (h *WSHandler) RunProgressStream(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("run_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid run ID"})
		return
	}

	run, err := h.scheduleService.GetRun(c.Request.Context(), runID)
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	wsLog := h.log.With().Str("run_id", runID.String()).Logger()
	wsLog.Info().Msg("Run progress stream connected")

	// The run may already be over; send its final state and stop.
	if run.Status == model.RunStatusCompleted || run.Status == model.RunStatusFailed {
		ws.WriteTyped(conn, ws.ProgressResponse{
			Event: ws.EventProgress,
			Progress: model.RunProgressEvent{
				RunID:  run.ID.String(),
				Status: run.Status,
				Error:  run.FailureDetail,
			},
		})
		return
	}

	ctx := c.Request.Context()
	sub := h.rdb.Subscribe(ctx, config.CacheKey.ScheduleRunChannel(runID.String()))
	defer sub.Close()

	// Drain client frames so pings are answered and closes are noticed.
	clientGone := make(chan struct{})
	go func() {
		defer close(clientGone)
		for {
			var msg ws.RequestEnvelope
			if err := ws.ReadJSON(conn, &msg); err != nil {
				return
			}
			if msg.Action == ws.ActionPing {
				ws.WriteTyped(conn, ws.PongResponse{Event: ws.EventPong})
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-clientGone:
			wsLog.Debug().Msg("Client disconnected")
			return
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			var event model.RunProgressEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				wsLog.Warn().Err(err).Msg("Malformed progress event")
				continue
			}
			if err := ws.WriteTyped(conn, ws.ProgressResponse{Event: ws.EventProgress, Progress: event}); err != nil {
				return
			}
			if event.Status == model.RunStatusCompleted || event.Status == model.RunStatusFailed {
				wsLog.Info().Str("status", string(event.Status)).Msg("Run reached terminal state")
				return
			}
		}
	}
}
