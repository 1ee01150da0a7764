package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/hireloop/intake/internal/audit"
	"github.com/hireloop/intake/internal/extract"
	"github.com/hireloop/intake/internal/models"
	"github.com/hireloop/intake/pkg/repository"
)

// Client-fault errors: the run is aborted and no record is created. The HTTP
// layer maps these to 400 responses, distinct from unexpected server faults.
var (
	ErrUnsupportedFormat = extract.ErrUnsupportedFormat
	ErrNotResume         = errors.New("uploaded document is not a resume")
	ErrNoEmail           = errors.New("no email address found in resume")
)

const msgExisting = "Existing application retrieved."

// best-effort first-match pattern, no RFC validation
var emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+`)

// TextExtractor converts an uploaded document into plain text.
type TextExtractor interface {
	Extract(path string) (string, error)
}

// ResumeValidator judges whether a text reads like a resume.
type ResumeValidator interface {
	IsResume(ctx context.Context, text string) (bool, error)
}

// Summarizer condenses a job description before embedding.
type Summarizer interface {
	Summarize(ctx context.Context, jobDescription string) (string, error)
}

// Outcome is the caller-facing result of one intake run.
type Outcome struct {
	Email       string  `json:"email"`
	Score       float64 `json:"score"`
	EmailStatus bool    `json:"email_status"`
	Message     string  `json:"message"`
}

// Pipeline sequences extraction, validation, dedupe, scoring, decision, and
// persistence for a single application. Each run is a single-threaded
// sequence of blocking collaborator calls with no shared mutable state, so
// many runs can proceed concurrently.
type Pipeline struct {
	extractor  TextExtractor
	validator  ResumeValidator
	summarizer Summarizer
	matcher    *Matcher
	scorer     *Scorer
	decider    *Decider
	apps       repository.ApplicationRepo
	audit      *audit.Trail
	logger     *slog.Logger
}

func New(
	extractor TextExtractor,
	validator ResumeValidator,
	summarizer Summarizer,
	matcher *Matcher,
	scorer *Scorer,
	decider *Decider,
	apps repository.ApplicationRepo,
	trail *audit.Trail,
	logger *slog.Logger,
) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		extractor:  extractor,
		validator:  validator,
		summarizer: summarizer,
		matcher:    matcher,
		scorer:     scorer,
		decider:    decider,
		apps:       apps,
		audit:      trail,
		logger:     logger,
	}
}

// Process runs the intake state machine for one submitted resume. Repeated
// identical submissions of the same (email, resume, job description) triple
// return the stored outcome without rescoring.
func (p *Pipeline) Process(ctx context.Context, filePath, jobDescription string) (*Outcome, error) {
	resumeText, err := p.extractor.Extract(filePath)
	if err != nil {
		p.audit.Recordf(ctx, "error extracting resume text: %v", err)
		if errors.Is(err, ErrUnsupportedFormat) {
			return nil, err
		}
		return nil, fmt.Errorf("extract resume: %w", err)
	}

	isResume, verr := p.validator.IsResume(ctx, resumeText)
	if verr != nil {
		// fail closed: an unverifiable document is never scored or persisted
		p.audit.Recordf(ctx, "error validating resume: %v", verr)
	}
	if !isResume {
		p.audit.Record(ctx, "uploaded document is not a resume")
		return nil, ErrNotResume
	}

	email := emailPattern.FindString(resumeText)
	if email == "" {
		p.audit.Record(ctx, "no email address found in resume")
		return nil, ErrNoEmail
	}

	if existing := p.matcher.FindExact(ctx, email, resumeText, jobDescription); existing != nil {
		p.logger.Info("existing application retrieved", slog.String("email", email), slog.Float64("score", existing.Score))
		return &Outcome{Email: email, Score: existing.Score, EmailStatus: existing.EmailStatus, Message: msgExisting}, nil
	}

	summary, serr := p.summarizer.Summarize(ctx, jobDescription)
	if serr != nil {
		// degrade: an empty summary forces score 0.0 by policy
		p.audit.Recordf(ctx, "error summarizing job description: %v", serr)
		summary = ""
	}

	score := p.scorer.Score(ctx, resumeText, summary)
	emailStatus, message := p.decider.Decide(ctx, email, score)

	app := &models.Application{
		Email:          email,
		ResumeText:     resumeText,
		JobDescription: jobDescription,
		Score:          score,
		EmailStatus:    emailStatus,
	}
	id, err := p.apps.CreateApplication(ctx, app)
	if err != nil {
		p.audit.Recordf(ctx, "error saving application: %v", err)
		return nil, fmt.Errorf("save application: %w", err)
	}
	if id == 0 {
		// lost the insert race to a concurrent identical submission; surface
		// the stored row instead of this run's result
		if existing := p.matcher.FindExact(ctx, email, resumeText, jobDescription); existing != nil {
			return &Outcome{Email: email, Score: existing.Score, EmailStatus: existing.EmailStatus, Message: msgExisting}, nil
		}
	}

	p.logger.Info("application processed", slog.String("email", email), slog.Float64("score", score), slog.Bool("email_status", emailStatus))
	return &Outcome{Email: email, Score: score, EmailStatus: emailStatus, Message: message}, nil
}
