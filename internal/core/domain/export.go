package domain

type ExportStatus string

const (
	ExportQueued    ExportStatus = "QUEUED"
	ExportRunning   ExportStatus = "RUNNING"
	ExportCompleted ExportStatus = "COMPLETED"
	ExportFailed    ExportStatus = "FAILED"

	// ExportNotFound is reported for job ids that never existed or whose
	// record has been purged. Clients treat it like a failed job.
	ExportNotFound ExportStatus = "NOT_FOUND"
)

// ExportJob is the requester-visible view of an asynchronous export.
// Artifact is set only once Status is COMPLETED.
type ExportJob struct {
	ID       string
	Status   ExportStatus
	Progress int
	Artifact string
	Error    string
}
