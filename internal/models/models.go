package models

import (
	"crypto/sha256"
	"encoding/hex"
)

// Application is the persisted outcome of one intake run. A given
// (email, resume_text, job_description) triple maps to at most one row.
type Application struct {
	ID             int64   `json:"id" db:"id"`
	Email          string  `json:"email" db:"email" validate:"required"`
	ResumeText     string  `json:"resume_text" db:"resume_text" validate:"required"`
	JobDescription string  `json:"job_description" db:"job_description" validate:"required"`
	Score          float64 `json:"score" db:"score"`
	EmailStatus    bool    `json:"email_status" db:"email_status"`
	Created        int64   `json:"created" db:"created"`
}

// ErrorLog is an append-only audit entry. The core pipeline only writes these.
type ErrorLog struct {
	ID      int64  `json:"id" db:"id"`
	Message string `json:"error_message" db:"error_message"`
	Created int64  `json:"created" db:"created"`
}

type Recruiter struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name" validate:"required"`
	Email        string `json:"email" db:"email" validate:"required,email"`
	Updated      int64  `json:"updated" db:"updated"`
	PasswordHash string `json:"password_hash,omitempty" db:"password_hash"`
}

// TripleHash derives the dedupe key for an application. The three fields are
// hashed byte-for-byte with NUL separators so no concatenation of distinct
// triples can collide.
func TripleHash(email, resumeText, jobDescription string) string {
	h := sha256.New()
	h.Write([]byte(email))
	h.Write([]byte{0})
	h.Write([]byte(resumeText))
	h.Write([]byte{0})
	h.Write([]byte(jobDescription))
	return hex.EncodeToString(h.Sum(nil))
}
