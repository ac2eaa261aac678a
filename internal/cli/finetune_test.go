package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harisaicharan3/openaictl/internal/provider"
)

type stubFiles struct {
	uploaded provider.UploadFileRequest
	statuses []string
	n        int
}

func (s *stubFiles) UploadFile(ctx context.Context, req provider.UploadFileRequest) (provider.File, error) {
	_ = ctx
	s.uploaded = req
	return provider.File{ID: "file-abc", Filename: req.Filename, Purpose: req.Purpose, Status: "uploaded"}, nil
}

func (s *stubFiles) RetrieveFile(ctx context.Context, id string) (provider.File, error) {
	_ = ctx
	status := s.statuses[s.n]
	if s.n < len(s.statuses)-1 {
		s.n++
	}
	return provider.File{ID: id, Status: status}, nil
}

type stubFineTune struct {
	created provider.CreateJobRequest
	job     provider.Job
	jobs    []provider.Job
	events  []provider.JobEvent
}

func (s *stubFineTune) CreateJob(ctx context.Context, req provider.CreateJobRequest) (provider.Job, error) {
	_ = ctx
	s.created = req
	return provider.Job{ID: "ftjob-1", Model: req.Model, Status: "queued", TrainingFileID: req.TrainingFileID, Epochs: 3}, nil
}

func (s *stubFineTune) RetrieveJob(ctx context.Context, id string) (provider.Job, error) {
	_ = ctx
	return s.job, nil
}

func (s *stubFineTune) ListJobs(ctx context.Context, limit int) ([]provider.Job, error) {
	_ = ctx
	if limit < len(s.jobs) {
		return s.jobs[:limit], nil
	}
	return s.jobs, nil
}

func (s *stubFineTune) ListJobEvents(ctx context.Context, id string, limit int) ([]provider.JobEvent, error) {
	_ = ctx
	return s.events, nil
}

const trainingRecord = `{"messages":[{"role":"user","content":"hi"},{"role":"assistant","content":"hello"}]}`

func TestFinetuneCreate_FullFlow(t *testing.T) {
	a, buf := newTestApp(t)
	files := &stubFiles{statuses: []string{"processed"}}
	ft := &stubFineTune{}
	a.files = files
	a.finetune = ft

	training := filepath.Join(t.TempDir(), "training_data.jsonl")
	if err := os.WriteFile(training, []byte(trainingRecord+"\n"+trainingRecord+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	root := a.rootCmd()
	root.SetArgs([]string{"finetune", "create", training})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}

	if files.uploaded.Purpose != "fine-tune" {
		t.Fatalf("purpose=%q", files.uploaded.Purpose)
	}
	if files.uploaded.Filename != "training_data.jsonl" {
		t.Fatalf("filename=%q", files.uploaded.Filename)
	}
	if ft.created.TrainingFileID != "file-abc" || ft.created.Model != "gpt-3.5-turbo" {
		t.Fatalf("created=%#v", ft.created)
	}
	if ft.created.Epochs == nil || *ft.created.Epochs != 3 {
		t.Fatalf("epochs=%v", ft.created.Epochs)
	}
	out := buf.String()
	if !strings.Contains(out, "Validated 2 training records") {
		t.Fatalf("out=%q", out)
	}
	if !strings.Contains(out, "Job ID: ftjob-1") {
		t.Fatalf("out=%q", out)
	}
}

func TestFinetuneCreate_InvalidTrainingData(t *testing.T) {
	a, _ := newTestApp(t)
	files := &stubFiles{statuses: []string{"processed"}}
	a.files = files
	a.finetune = &stubFineTune{}

	training := filepath.Join(t.TempDir(), "bad.jsonl")
	if err := os.WriteFile(training, []byte(`{"prompt":"old format"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	root := a.rootCmd()
	root.SetArgs([]string{"finetune", "create", training})
	err := root.Execute()
	if err == nil {
		t.Fatal("expected error")
	}
	if Classify(err) != ConfigurationFailure {
		t.Fatalf("kind=%v", Classify(err))
	}
	// Nothing may be uploaded when local validation fails.
	if files.uploaded.Purpose != "" {
		t.Fatal("upload happened despite invalid training data")
	}
}

func TestFinetuneCreate_MissingTrainingFileIsConfiguration(t *testing.T) {
	a, _ := newTestApp(t)
	files := &stubFiles{statuses: []string{"processed"}}
	a.files = files
	a.finetune = &stubFineTune{}

	root := a.rootCmd()
	root.SetArgs([]string{"finetune", "create", filepath.Join(t.TempDir(), "nope.jsonl")})
	err := root.Execute()
	if err == nil {
		t.Fatal("expected error")
	}
	if Classify(err) != ConfigurationFailure {
		t.Fatalf("kind=%v", Classify(err))
	}
	if !strings.Contains(err.Error(), "not found!") {
		t.Fatalf("err=%q", err)
	}
	if files.uploaded.Purpose != "" {
		t.Fatal("upload happened despite missing training file")
	}
}

func TestFinetuneStatus_PrintsJobAndEvents(t *testing.T) {
	a, buf := newTestApp(t)
	a.finetune = &stubFineTune{
		job: provider.Job{
			ID: "ftjob-1", Model: "gpt-3.5-turbo", Status: "succeeded",
			TrainingFileID: "file-abc", TrainedTokens: 12345,
			FineTunedModel: "ft:gpt-3.5-turbo:org::abc",
		},
		events: []provider.JobEvent{
			{CreatedAt: 1700000001, Level: "info", Message: "job started"},
			{CreatedAt: 1700000002, Level: "info", Message: "completed"},
		},
	}

	root := a.rootCmd()
	root.SetArgs([]string{"finetune", "status", "ftjob-1"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Fine-tuned model ready: ft:gpt-3.5-turbo:org::abc") {
		t.Fatalf("out=%q", out)
	}
	if !strings.Contains(out, "Trained tokens: 12345") {
		t.Fatalf("out=%q", out)
	}
	if !strings.Contains(out, "job started") || !strings.Contains(out, "completed") {
		t.Fatalf("out=%q", out)
	}
}

func TestFinetuneList_PrintsJobs(t *testing.T) {
	a, buf := newTestApp(t)
	a.finetune = &stubFineTune{
		jobs: []provider.Job{
			{ID: "ftjob-1", Model: "gpt-3.5-turbo", Status: "succeeded", CreatedAt: 1700000000, FinishedAt: 1700003600, FineTunedModel: "ft:gpt-3.5-turbo:org::abc"},
			{ID: "ftjob-2", Model: "gpt-3.5-turbo", Status: "running", CreatedAt: 1700010000},
		},
	}

	root := a.rootCmd()
	root.SetArgs([]string{"finetune", "list"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "ftjob-1") || !strings.Contains(out, "ftjob-2") {
		t.Fatalf("out=%q", out)
	}
	if !strings.Contains(out, "Fine-tuned Model: ft:gpt-3.5-turbo:org::abc") {
		t.Fatalf("out=%q", out)
	}
}

func TestFinetuneStatus_RequiresJobID(t *testing.T) {
	a, _ := newTestApp(t)
	root := a.rootCmd()
	root.SetArgs([]string{"finetune", "status"})
	err := root.Execute()
	if err == nil {
		t.Fatal("expected error")
	}
	if Classify(err) != ConfigurationFailure {
		t.Fatalf("kind=%v", Classify(err))
	}
}
