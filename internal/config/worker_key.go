package config

type WorkerKeyStruct struct {
	ScheduleRunsQueue string
}

var WorkerKey = &WorkerKeyStruct{
	ScheduleRunsQueue: "schedule_runs_queue",
}
