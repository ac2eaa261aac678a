package provider

import "context"

// FileProvider covers the files endpoint as far as fine-tuning needs it:
// upload a training file and poll its processing status.
type FileProvider interface {
	UploadFile(ctx context.Context, req UploadFileRequest) (File, error)
	RetrieveFile(ctx context.Context, id string) (File, error)
}

type UploadFileRequest struct {
	Filename string
	Purpose  string
	Contents []byte
}

type File struct {
	ID       string
	Filename string
	Purpose  string
	Status   string
	Bytes    int64
}

// FineTuneProvider manages fine-tuning jobs.
type FineTuneProvider interface {
	CreateJob(ctx context.Context, req CreateJobRequest) (Job, error)
	RetrieveJob(ctx context.Context, id string) (Job, error)
	ListJobs(ctx context.Context, limit int) ([]Job, error)
	ListJobEvents(ctx context.Context, id string, limit int) ([]JobEvent, error)
}

type CreateJobRequest struct {
	TrainingFileID string
	Model          string
	Epochs         *int
}

type Job struct {
	ID             string
	Model          string
	Status         string
	TrainingFileID string
	FineTunedModel string
	TrainedTokens  int64
	Epochs         int
	CreatedAt      int64
	FinishedAt     int64
	Error          string
}

type JobEvent struct {
	CreatedAt int64
	Level     string
	Message   string
}
