package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/reelbase-dev/reelbase/internal/services"
	"github.com/reelbase-dev/reelbase/internal/types"
)

type UserHandler struct {
	auth  *services.AuthService
	users *services.UserService
}

func NewUserHandler(auth *services.AuthService, users *services.UserService) *UserHandler {
	return &UserHandler{auth: auth, users: users}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

func (h *UserHandler) Register(ctx *gin.Context) {
	var body RegisterRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	user, err := h.auth.Register(strings.TrimSpace(body.Name), body.Email, body.Password, body.Role)

	if err != nil {
		writeError(ctx, err, "User not found", "Error registering user")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    userResponse(user),
	})
}

func (h *UserHandler) Login(ctx *gin.Context) {
	var body LoginRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	token, err := h.auth.Login(body.Email, body.Password)

	if err != nil {
		writeError(ctx, err, "User not found", "Error logging in user")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}

func (h *UserHandler) List(ctx *gin.Context) {
	users, err := h.users.List()

	if err != nil {
		writeError(ctx, err, "User not found", "Error fetching users")
		return
	}

	response := make([]types.UserResponse, 0, len(users))

	for i := range users {
		response = append(response, userResponse(&users[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Users fetched successfully",
		"users":   response,
	})
}

func (h *UserHandler) Get(ctx *gin.Context) {
	id, ok := parseID(ctx)

	if !ok {
		return
	}

	user, err := h.users.Get(id)

	if err != nil {
		writeError(ctx, err, "User not found", "Error fetching user")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "User fetched successfully",
		"user":    userResponse(user),
	})
}

func (h *UserHandler) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)

	if !ok {
		return
	}

	var body UpdateUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	user, err := h.users.Update(id, services.UserUpdate{
		Name:     strings.TrimSpace(body.Name),
		Email:    strings.ToLower(strings.TrimSpace(body.Email)),
		Password: body.Password,
		Role:     body.Role,
		Status:   body.Status,
	})

	if err != nil {
		writeError(ctx, err, "User not found", "Error updating user")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    userResponse(user),
	})
}

func (h *UserHandler) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)

	if !ok {
		return
	}

	if err := h.users.Delete(id); err != nil {
		writeError(ctx, err, "User not found", "Error deleting user")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
