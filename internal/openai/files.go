package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/harisaicharan3/openaictl/internal/httpx"
	"github.com/harisaicharan3/openaictl/internal/provider"
)

type fileObject struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Purpose  string `json:"purpose"`
	Status   string `json:"status"`
	Bytes    int64  `json:"bytes"`
}

func fromFileObject(f fileObject) provider.File {
	return provider.File{
		ID:       f.ID,
		Filename: f.Filename,
		Purpose:  f.Purpose,
		Status:   f.Status,
		Bytes:    f.Bytes,
	}
}

func (c *Client) UploadFile(ctx context.Context, req provider.UploadFileRequest) (provider.File, error) {
	if req.Filename == "" {
		return provider.File{}, invalidRequest("filename is required")
	}
	if req.Purpose == "" {
		return provider.File{}, invalidRequest("purpose is required")
	}
	if len(req.Contents) == 0 {
		return provider.File{}, invalidRequest("file contents are required")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("purpose", req.Purpose); err != nil {
		return provider.File{}, requestError("request_error", err)
	}
	fw, err := mw.CreateFormFile("file", req.Filename)
	if err != nil {
		return provider.File{}, requestError("request_error", err)
	}
	if _, err := fw.Write(req.Contents); err != nil {
		return provider.File{}, requestError("request_error", err)
	}
	if err := mw.Close(); err != nil {
		return provider.File{}, requestError("request_error", err)
	}

	u, err := c.endpointURL("/files")
	if err != nil {
		return provider.File{}, requestError("url_error", err)
	}

	h := c.headers()
	h.Set("Content-Type", mw.FormDataContentType())

	resp, err := httpx.Do(ctx, c.cfg.HTTPClient, http.MethodPost, u, buf.Bytes(), h)
	if err != nil {
		return provider.File{}, networkError(err)
	}
	defer resp.Body.Close()

	return decodeFile(resp)
}

func (c *Client) RetrieveFile(ctx context.Context, id string) (provider.File, error) {
	if id == "" {
		return provider.File{}, invalidRequest("file id is required")
	}
	u, err := c.endpointURL("/files/" + id)
	if err != nil {
		return provider.File{}, requestError("url_error", err)
	}

	resp, err := httpx.DoJSON(ctx, c.cfg.HTTPClient, http.MethodGet, u, nil, c.headers())
	if err != nil {
		return provider.File{}, networkError(err)
	}
	defer resp.Body.Close()

	return decodeFile(resp)
}

func decodeFile(resp *http.Response) (provider.File, error) {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return provider.File{}, readStatusError(resp)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return provider.File{}, requestError("read_error", err)
	}
	var out fileObject
	if err := json.Unmarshal(raw, &out); err != nil {
		return provider.File{}, requestError("decode_error", err)
	}
	return fromFileObject(out), nil
}

var _ provider.FileProvider = (*Client)(nil)
