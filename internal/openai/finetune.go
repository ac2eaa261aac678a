package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/harisaicharan3/openaictl/internal/httpx"
	"github.com/harisaicharan3/openaictl/internal/provider"
)

type createJobRequest struct {
	TrainingFile    string           `json:"training_file"`
	Model           string           `json:"model"`
	Hyperparameters *hyperparameters `json:"hyperparameters,omitempty"`
}

type hyperparameters struct {
	NEpochs int `json:"n_epochs"`
}

type jobObject struct {
	ID              string `json:"id"`
	Model           string `json:"model"`
	Status          string `json:"status"`
	TrainingFile    string `json:"training_file"`
	FineTunedModel  string `json:"fine_tuned_model"`
	TrainedTokens   int64  `json:"trained_tokens"`
	CreatedAt       int64  `json:"created_at"`
	FinishedAt      int64  `json:"finished_at"`
	Hyperparameters *struct {
		NEpochs json.RawMessage `json:"n_epochs"`
	} `json:"hyperparameters"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func fromJobObject(j jobObject) provider.Job {
	job := provider.Job{
		ID:             j.ID,
		Model:          j.Model,
		Status:         j.Status,
		TrainingFileID: j.TrainingFile,
		FineTunedModel: j.FineTunedModel,
		TrainedTokens:  j.TrainedTokens,
		CreatedAt:      j.CreatedAt,
		FinishedAt:     j.FinishedAt,
	}
	if j.Hyperparameters != nil {
		// n_epochs is either a number or the string "auto".
		var n int
		if json.Unmarshal(j.Hyperparameters.NEpochs, &n) == nil {
			job.Epochs = n
		}
	}
	if j.Error != nil {
		job.Error = j.Error.Message
	}
	return job
}

func decodeJob(resp *http.Response) (provider.Job, error) {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return provider.Job{}, readStatusError(resp)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return provider.Job{}, requestError("read_error", err)
	}
	var out jobObject
	if err := json.Unmarshal(raw, &out); err != nil {
		return provider.Job{}, requestError("decode_error", err)
	}
	return fromJobObject(out), nil
}

func (c *Client) CreateJob(ctx context.Context, req provider.CreateJobRequest) (provider.Job, error) {
	if req.TrainingFileID == "" {
		return provider.Job{}, invalidRequest("training file id is required")
	}
	if req.Model == "" {
		return provider.Job{}, invalidRequest("model is required")
	}

	payload := createJobRequest{
		TrainingFile: req.TrainingFileID,
		Model:        req.Model,
	}
	if req.Epochs != nil {
		payload.Hyperparameters = &hyperparameters{NEpochs: *req.Epochs}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return provider.Job{}, requestError("marshal_error", err)
	}

	u, err := c.endpointURL("/fine_tuning/jobs")
	if err != nil {
		return provider.Job{}, requestError("url_error", err)
	}

	resp, err := httpx.DoJSON(ctx, c.cfg.HTTPClient, http.MethodPost, u, body, c.headers())
	if err != nil {
		return provider.Job{}, networkError(err)
	}
	defer resp.Body.Close()

	return decodeJob(resp)
}

func (c *Client) RetrieveJob(ctx context.Context, id string) (provider.Job, error) {
	if id == "" {
		return provider.Job{}, invalidRequest("job id is required")
	}
	u, err := c.endpointURL("/fine_tuning/jobs/" + id)
	if err != nil {
		return provider.Job{}, requestError("url_error", err)
	}

	resp, err := httpx.DoJSON(ctx, c.cfg.HTTPClient, http.MethodGet, u, nil, c.headers())
	if err != nil {
		return provider.Job{}, networkError(err)
	}
	defer resp.Body.Close()

	return decodeJob(resp)
}

func (c *Client) ListJobs(ctx context.Context, limit int) ([]provider.Job, error) {
	u, err := c.endpointURL("/fine_tuning/jobs")
	if err != nil {
		return nil, requestError("url_error", err)
	}
	if limit > 0 {
		u += "?limit=" + strconv.Itoa(limit)
	}

	resp, err := httpx.DoJSON(ctx, c.cfg.HTTPClient, http.MethodGet, u, nil, c.headers())
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, readStatusError(resp)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, requestError("read_error", err)
	}
	var out struct {
		Data []jobObject `json:"data"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, requestError("decode_error", err)
	}
	jobs := make([]provider.Job, 0, len(out.Data))
	for _, j := range out.Data {
		jobs = append(jobs, fromJobObject(j))
	}
	return jobs, nil
}

func (c *Client) ListJobEvents(ctx context.Context, id string, limit int) ([]provider.JobEvent, error) {
	if id == "" {
		return nil, invalidRequest("job id is required")
	}
	u, err := c.endpointURL("/fine_tuning/jobs/" + id + "/events")
	if err != nil {
		return nil, requestError("url_error", err)
	}
	if limit > 0 {
		u += "?limit=" + strconv.Itoa(limit)
	}

	resp, err := httpx.DoJSON(ctx, c.cfg.HTTPClient, http.MethodGet, u, nil, c.headers())
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, readStatusError(resp)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, requestError("read_error", err)
	}
	var out struct {
		Data []struct {
			CreatedAt int64  `json:"created_at"`
			Level     string `json:"level"`
			Message   string `json:"message"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, requestError("decode_error", err)
	}
	events := make([]provider.JobEvent, 0, len(out.Data))
	for _, e := range out.Data {
		events = append(events, provider.JobEvent{CreatedAt: e.CreatedAt, Level: e.Level, Message: e.Message})
	}
	return events, nil
}

var _ provider.FineTuneProvider = (*Client)(nil)
