package config

import (
	"fmt"
	"time"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// ScheduleRunKey returns the cache key holding a run's status document.
func (r *CacheKeyStruct) ScheduleRunKey(runID string) string {
	return fmt.Sprintf("schedule:run:%s", runID)
}

// ScheduleRunChannel returns the Redis PubSub channel for a run's progress events.
func (r *CacheKeyStruct) ScheduleRunChannel(runID string) string {
	return fmt.Sprintf("schedule:run:%s:progress", runID)
}

// CurrentScheduleKey returns the cache key for the most recent published schedule.
func (r *CacheKeyStruct) CurrentScheduleKey() string {
	return "schedule:current"
}

// SeatingPlanKey returns the cache key for one exam date's seating plans.
func (r *CacheKeyStruct) SeatingPlanKey(examDate time.Time) string {
	return fmt.Sprintf("seating:%s", examDate.Format("2006-01-02"))
}

var CacheKey = NewCacheKeyStruct()
