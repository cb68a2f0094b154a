package shared

// Asynq task types and queue names.
const (
	TypeSweepOrphans = "media:sweep_orphans"

	QueueMaintenance = "low"
)
