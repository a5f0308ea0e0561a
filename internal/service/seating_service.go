package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/campuskit/examsched-backend/internal/config"
	"github.com/campuskit/examsched-backend/internal/model"
	"github.com/campuskit/examsched-backend/internal/repository"
	"github.com/campuskit/examsched-backend/internal/seating"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

var (
	// ErrNoExamsOnDate means the published schedule has no exam on the
	// requested date, so there is nothing to seat.
	ErrNoExamsOnDate = errors.New("no exams scheduled on this date")

	// ErrNoSeating means no seating plan has been generated for the date.
	ErrNoSeating = errors.New("no seating plan for this date")

	// ErrInvalidSwap wraps seat swap rejections (out of range, both empty,
	// same seat).
	ErrInvalidSwap = errors.New("invalid seat swap")
)

// SeatingService orchestrates the seat assignment engine: it gathers the
// sittings for an exam date, runs the planner, and persists the resulting
// grids. The engine works on its own plain types; the int<->string ID
// conversion at this boundary keeps it decoupled from the database schema.
type SeatingService struct {
	scheduleService *ScheduleService
	enrollmentRepo  *repository.EnrollmentRepository
	venueRepo       *repository.VenueRepository
	seatingRepo     *repository.SeatingRepository
	rdb             *redis.Client
	log             zerolog.Logger
}

func NewSeatingService(
	scheduleService *ScheduleService,
	enrollmentRepo *repository.EnrollmentRepository,
	venueRepo *repository.VenueRepository,
	seatingRepo *repository.SeatingRepository,
	rdb *redis.Client,
	log zerolog.Logger,
) *SeatingService {
	return &SeatingService{
		scheduleService: scheduleService,
		enrollmentRepo:  enrollmentRepo,
		venueRepo:       venueRepo,
		seatingRepo:     seatingRepo,
		rdb:             rdb,
		log:             log.With().Str("component", "seating_service").Logger(),
	}
}

// Generate builds and stores the seating plan for one exam date, replacing
// any previous plan for that date.
func (s *SeatingService) Generate(ctx context.Context, examDate time.Time) (*model.SeatingResult, error) {
	items, err := s.scheduleService.GetItemsForDate(ctx, examDate)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoExamsOnDate
	}

	var codes []string
	for _, it := range items {
		codes = append(codes, it.CourseCodes...)
	}

	sittings, err := s.enrollmentRepo.GetSittingsForCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("load sittings: %w", err)
	}
	sittings = dedupeSittings(sittings, unitKeyByCode(items))

	venues, err := s.venueRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load venues: %w", err)
	}

	plans, unassigned, err := seating.AssignSeats(examDate, sittings, toEngineVenues(venues))
	if err != nil {
		return nil, err
	}

	assignments, err := toSeatAssignments(examDate, plans)
	if err != nil {
		return nil, err
	}
	if err := s.seatingRepo.ReplaceForDate(ctx, examDate, assignments); err != nil {
		return nil, fmt.Errorf("store seating: %w", err)
	}
	s.rdb.Del(ctx, config.CacheKey.SeatingPlanKey(examDate))

	result := buildResult(examDate, plans, unassigned)

	s.log.Info().
		Time("exam_date", examDate).
		Int("venues", len(result.Plans)).
		Int("seated", len(assignments)).
		Int("unassigned", len(result.Unassigned)).
		Msg("Seating plan generated")

	return result, nil
}

// Get returns the stored seating plan for one exam date, reading through a
// Redis cache. Unassigned students are not persisted, so a reloaded result
// carries seated students only.
func (s *SeatingService) Get(ctx context.Context, examDate time.Time) (*model.SeatingResult, error) {
	cacheKey := config.CacheKey.SeatingPlanKey(examDate)
	if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
		var result model.SeatingResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return &result, nil
		}
		s.rdb.Del(ctx, cacheKey)
	}

	plans, err := s.loadPlans(ctx, examDate)
	if err != nil {
		return nil, err
	}

	result := buildResult(examDate, plans, nil)
	if payload, err := json.Marshal(result); err == nil {
		s.rdb.Set(ctx, cacheKey, payload, 10*time.Minute)
	}
	return result, nil
}

// Swap exchanges the occupants of two seats in the stored plan, possibly
// across venues, and persists the updated grids.
func (s *SeatingService) Swap(ctx context.Context, examDate time.Time, req *model.SwapSeatsRequest) (*model.SeatingResult, error) {
	plans, err := s.loadPlans(ctx, examDate)
	if err != nil {
		return nil, err
	}

	planA := findPlan(plans, req.VenueA)
	if planA == nil {
		return nil, fmt.Errorf("%w: venue %d has no seating on this date", ErrInvalidSwap, req.VenueA)
	}
	planB := findPlan(plans, req.VenueB)
	if planB == nil {
		return nil, fmt.Errorf("%w: venue %d has no seating on this date", ErrInvalidSwap, req.VenueB)
	}

	if err := seating.SwapSeats(planA, req.RowA, req.ColA, planB, req.RowB, req.ColB); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSwap, err.Error())
	}

	assignments, err := toSeatAssignments(examDate, plans)
	if err != nil {
		return nil, err
	}
	if err := s.seatingRepo.ReplaceForDate(ctx, examDate, assignments); err != nil {
		return nil, fmt.Errorf("store seating: %w", err)
	}
	s.rdb.Del(ctx, config.CacheKey.SeatingPlanKey(examDate))

	s.log.Info().
		Time("exam_date", examDate).
		Int("venue_a", req.VenueA).
		Int("venue_b", req.VenueB).
		Msg("Seats swapped")

	return buildResult(examDate, plans, nil), nil
}

// DeletePlan discards the stored seating for one exam date.
func (s *SeatingService) DeletePlan(ctx context.Context, examDate time.Time) error {
	if err := s.seatingRepo.DeleteForDate(ctx, examDate); err != nil {
		return err
	}
	s.rdb.Del(ctx, config.CacheKey.SeatingPlanKey(examDate))
	return nil
}

// loadPlans rebuilds engine plans from the persisted seat rows.
func (s *SeatingService) loadPlans(ctx context.Context, examDate time.Time) ([]*seating.Plan, error) {
	rows, err := s.seatingRepo.GetByDate(ctx, examDate)
	if err != nil {
		return nil, fmt.Errorf("load seating: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoSeating
	}

	venues, err := s.venueRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load venues: %w", err)
	}
	venueByID := make(map[int]model.Venue, len(venues))
	for _, v := range venues {
		venueByID[v.ID] = v
	}

	var plans []*seating.Plan
	planByVenue := make(map[int]*seating.Plan)
	for _, row := range rows {
		plan, ok := planByVenue[row.VenueID]
		if !ok {
			v, found := venueByID[row.VenueID]
			if !found {
				return nil, fmt.Errorf("venue %d referenced by seating no longer exists", row.VenueID)
			}
			plan = seating.NewPlan(toEngineVenue(v), examDate)
			planByVenue[row.VenueID] = plan
			plans = append(plans, plan)
		}
		occ := &seating.Occupant{
			StudentID:   strconv.Itoa(row.StudentID),
			StudentName: row.StudentName,
			RegNumber:   row.RegNumber,
			CourseCode:  row.CourseCode,
		}
		if err := plan.Place(row.Row, row.Col, occ); err != nil {
			return nil, fmt.Errorf("rebuild seating: %w", err)
		}
	}
	return plans, nil
}

// ────────────────────────────────────────────────────────────────────────────
// Engine boundary conversions
// ────────────────────────────────────────────────────────────────────────────

// unitKeyByCode maps every raw course code of the day's schedule items to
// the merged unit key the code belongs to.
func unitKeyByCode(items []model.ScheduleItem) map[string]string {
	keys := make(map[string]string)
	for _, it := range items {
		for _, code := range it.CourseCodes {
			keys[code] = it.CourseKey
		}
	}
	return keys
}

// dedupeSittings keeps one sitting per student per merged unit. A student
// enrolled under two code variants of the same course (e.g. the UG and PG
// codes) produces one exam and must hold one seat, but the enrollment join
// returns one row per matching code.
func dedupeSittings(sittings []seating.Sitting, keyByCode map[string]string) []seating.Sitting {
	type sittingKey struct {
		studentID string
		unitKey   string
	}
	seen := make(map[sittingKey]bool, len(sittings))
	out := make([]seating.Sitting, 0, len(sittings))
	for _, s := range sittings {
		unitKey, ok := keyByCode[s.CourseCode]
		if !ok {
			unitKey = s.CourseCode
		}
		k := sittingKey{studentID: s.StudentID, unitKey: unitKey}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, s)
	}
	return out
}

func toEngineVenue(v model.Venue) seating.Venue {
	return seating.Venue{
		ID:         strconv.Itoa(v.ID),
		Name:       v.Name,
		Department: v.Department,
		Rows:       v.Rows,
		Cols:       v.Cols,
	}
}

func toEngineVenues(venues []model.Venue) []seating.Venue {
	out := make([]seating.Venue, 0, len(venues))
	for _, v := range venues {
		out = append(out, toEngineVenue(v))
	}
	return out
}

func findPlan(plans []*seating.Plan, venueID int) *seating.Plan {
	id := strconv.Itoa(venueID)
	for _, p := range plans {
		if p.VenueID == id {
			return p
		}
	}
	return nil
}

func toSeatAssignments(examDate time.Time, plans []*seating.Plan) ([]model.SeatAssignment, error) {
	var out []model.SeatAssignment
	for _, p := range plans {
		venueID, err := strconv.Atoi(p.VenueID)
		if err != nil {
			return nil, fmt.Errorf("venue id %q: %w", p.VenueID, err)
		}
		for _, seat := range p.Seats() {
			if seat.Occupant == nil {
				continue
			}
			studentID, err := strconv.Atoi(seat.Occupant.StudentID)
			if err != nil {
				return nil, fmt.Errorf("student id %q: %w", seat.Occupant.StudentID, err)
			}
			out = append(out, model.SeatAssignment{
				ExamDate:   examDate,
				VenueID:    venueID,
				Row:        seat.Row,
				Col:        seat.Col,
				Label:      seat.Label,
				StudentID:  studentID,
				CourseCode: seat.Occupant.CourseCode,
			})
		}
	}
	return out, nil
}

func buildResult(examDate time.Time, plans []*seating.Plan, unassigned []seating.Unassigned) *model.SeatingResult {
	result := &model.SeatingResult{
		ExamDate:   examDate,
		Plans:      make([]model.VenuePlan, 0, len(plans)),
		Unassigned: make([]model.UnassignedStudent, 0, len(unassigned)),
	}
	for _, p := range plans {
		venueID, _ := strconv.Atoi(p.VenueID)
		result.Plans = append(result.Plans, model.VenuePlan{
			VenueID:    venueID,
			VenueName:  p.VenueName,
			Department: p.Department,
			Rows:       p.Rows,
			Cols:       p.Cols,
			Capacity:   p.Capacity,
			Seats:      p.Seats(),
		})
	}
	for _, u := range unassigned {
		studentID, _ := strconv.Atoi(u.StudentID)
		result.Unassigned = append(result.Unassigned, model.UnassignedStudent{
			StudentID:   studentID,
			StudentName: u.StudentName,
			RegNumber:   u.RegNumber,
			Department:  u.Department,
			CourseCode:  u.CourseCode,
			Reason:      u.Reason,
		})
	}
	return result
}
