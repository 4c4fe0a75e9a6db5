package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	models "github.com/wingscafe/inventory/internal/models"
	repo "github.com/wingscafe/inventory/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

// GetUsersHandler godoc
// @Summary List all accounts
// @Description Password hashes are never included
// @Tags users
// @Produce json
// @Success 200 {array} UserResponse
// @Failure 500 {string} string "Internal error"
// @Router /users [get]
func GetUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := userRepo.GetAll()
	if err != nil {
		log.Printf("could not fetch users: %v", err)
		http.Error(w, "could not fetch users", http.StatusInternalServerError)
		return
	}
	response := make([]UserResponse, len(users))
	for i, u := range users {
		response[i] = UserResponse{ID: u.ID, Username: u.Username}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// CreateUserHandler godoc
// @Summary Create a new account
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 201 {object} UserResponse
// @Failure 400 {string} string "Missing credentials"
// @Failure 409 {string} string "Username exists"
// @Router /users [post]
func CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if creds.Username == "" || creds.Password == "" {
		http.Error(w, "username and password are required", http.StatusBadRequest)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcryptCost)
	if err != nil {
		http.Error(w, "failed to hash password", http.StatusInternalServerError)
		return
	}

	user, err := userRepo.CreateUser(models.User{
		Username:     creds.Username,
		PasswordHash: string(hashed),
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateUsername) {
			http.Error(w, "username already exists", http.StatusConflict)
			return
		}
		log.Printf("could not create user: %v", err)
		http.Error(w, "could not create user", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, UserResponse{ID: user.ID, Username: user.Username})
}

// UpdateUserHandler godoc
// @Summary Rename an account
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body UserResponse true "New username"
// @Success 200 {object} UserResponse
// @Failure 400 {string} string "Missing username"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Username exists"
// @Router /users/{id} [put]
func UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Username string `json:"username"`
	}
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Username == "" {
		http.Error(w, "username is required", http.StatusBadRequest)
		return
	}

	user, err := userRepo.UpdateUsername(id, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrDuplicateUsername):
			http.Error(w, "username already exists", http.StatusConflict)
		case errors.Is(err, repo.ErrUserNotFound):
			http.Error(w, "user not found", http.StatusNotFound)
		default:
			log.Printf("could not update user %d: %v", id, err)
			http.Error(w, "could not update user", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, UserResponse{ID: user.ID, Username: user.Username})
}

// DeleteUserHandler godoc
// @Summary Delete an account
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {string} string "Not found"
// @Router /users/{id} [delete]
func DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid user ID", http.StatusBadRequest)
		return
	}
	if err := userRepo.DeleteUser(id); err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Printf("could not delete user %d: %v", id, err)
		http.Error(w, "could not delete user", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "user deleted successfully"})
}

// LoginHandler godoc
// @Summary Verify credentials against the stored bcrypt hash
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} UserResponse
// @Failure 400 {string} string "Missing credentials"
// @Failure 401 {string} string "Unauthorized"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials CredentialsRequest
	if err := readJSON(w, r, &credentials); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if credentials.Username == "" || credentials.Password == "" {
		http.Error(w, "username and password are required", http.StatusBadRequest)
		return
	}

	user, err := userRepo.GetByUsername(credentials.Username)
	if err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)) != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, UserResponse{ID: user.ID, Username: user.Username})
}
