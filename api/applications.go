package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/hireloop/intake/internal/audit"
	"github.com/hireloop/intake/internal/extract"
	"github.com/hireloop/intake/internal/pipeline"
)

const maxUploadSize = 32 << 20 // 32 MiB

type ApplicationsHandler struct {
	pipe      *pipeline.Pipeline
	matcher   *pipeline.Matcher
	audit     *audit.Trail
	uploadDir string
}

func NewApplicationsHandler(pipe *pipeline.Pipeline, matcher *pipeline.Matcher, trail *audit.Trail, uploadDir string) *ApplicationsHandler {
	return &ApplicationsHandler{pipe: pipe, matcher: matcher, audit: trail, uploadDir: uploadDir}
}

// ProcessApplication accepts a multipart resume upload plus the job
// description text and runs the intake pipeline. Client faults map to 400,
// anything unexpected to a generic 500.
func (h *ApplicationsHandler) ProcessApplication(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "Invalid multipart request", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Resume file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	jobDescription := r.FormValue("job_description_text")
	if strings.TrimSpace(jobDescription) == "" {
		http.Error(w, "Job description is required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	// extension gate runs before the upload is even written to disk
	if !extract.Supported(header.Filename) {
		h.audit.Recordf(ctx, "invalid file format: %s", header.Filename)
		http.Error(w, "Invalid file format. Only PDF and DOCX are supported.", http.StatusBadRequest)
		return
	}

	path, err := h.saveUpload(file, header.Filename)
	if err != nil {
		h.audit.Recordf(ctx, "error saving upload: %v", err)
		http.Error(w, "Internal server error.", http.StatusInternalServerError)
		return
	}

	outcome, err := h.pipe.Process(ctx, path, jobDescription)
	if err != nil {
		switch {
		case errors.Is(err, pipeline.ErrUnsupportedFormat):
			http.Error(w, "Invalid file format. Only PDF and DOCX are supported.", http.StatusBadRequest)
		case errors.Is(err, pipeline.ErrNotResume):
			http.Error(w, "Uploaded document is not a resume.", http.StatusBadRequest)
		case errors.Is(err, pipeline.ErrNoEmail):
			http.Error(w, "No email address found in resume.", http.StatusBadRequest)
		default:
			http.Error(w, "Internal server error.", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, outcome, http.StatusOK)
}

type lookupRequest struct {
	ResumeText string `json:"resume_text"`
}

type lookupResponse struct {
	Email       string  `json:"email"`
	Score       float64 `json:"score"`
	EmailStatus bool    `json:"email_status"`
}

// LookupByResume answers whether a resume has ever been seen, independent of
// job description.
func (h *ApplicationsHandler) LookupByResume(w http.ResponseWriter, r *http.Request) {
	var req lookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.ResumeText == "" {
		http.Error(w, "resume_text is required", http.StatusBadRequest)
		return
	}

	app := h.matcher.FindByResume(r.Context(), req.ResumeText)
	if app == nil {
		http.Error(w, "No application found", http.StatusNotFound)
		return
	}

	writeJSON(w, lookupResponse{Email: app.Email, Score: app.Score, EmailStatus: app.EmailStatus}, http.StatusOK)
}

func (h *ApplicationsHandler) saveUpload(file io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	path := filepath.Join(h.uploadDir, uuid.NewString()+ext)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return path, nil
}
