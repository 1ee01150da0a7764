package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/hireloop/intake/internal/models"
	"github.com/hireloop/intake/pkg/repository"
)

type AuthHandler struct {
	recruiterRepo repository.RecruiterRepo
	jwtSecret     string
	tokenDuration time.Duration
}

// NewAuthHandler creates a new AuthHandler with required dependencies.
func NewAuthHandler(rr repository.RecruiterRepo, jwtSecret string, tokenDuration time.Duration) *AuthHandler {
	return &AuthHandler{recruiterRepo: rr, jwtSecret: jwtSecret, tokenDuration: tokenDuration}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	if existing, err := h.recruiterRepo.GetRecruiterByEmail(ctx, req.Email); err == nil && existing != nil {
		http.Error(w, "Account already exists", http.StatusConflict)
		return
	}

	// Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Error hashing password", http.StatusInternalServerError)
		return
	}

	recruiter := models.Recruiter{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if _, err := h.recruiterRepo.CreateRecruiter(ctx, &recruiter); err != nil {
		http.Error(w, "Error creating user", http.StatusInternalServerError)
		return
	}

	tokenStr, err := h.issueToken(req.Email)
	if err != nil {
		http.Error(w, "Error signing token", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(authResponse{Token: tokenStr})
}

func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	recruiter, err := h.recruiterRepo.GetRecruiterByEmail(ctx, req.Email)
	if err != nil || recruiter == nil {
		http.Error(w, "Credentials not found", http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(recruiter.PasswordHash), []byte(req.Password)) != nil {
		http.Error(w, "Credentials not found", http.StatusUnauthorized)
		return
	}

	tokenStr, err := h.issueToken(req.Email)
	if err != nil {
		http.Error(w, "Error signing token", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(authResponse{Token: tokenStr})
}

func (h *AuthHandler) Signout(w http.ResponseWriter, r *http.Request) {
	// For stateless JWT, signout is client-side (just delete token)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, `{"message":"signed out"}`)
}

func (h *AuthHandler) issueToken(email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(h.tokenDuration).Unix(),
	})
	return token.SignedString([]byte(h.jwtSecret))
}
