package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"eyetrends-pos/internal/audit"
	"eyetrends-pos/internal/auth"
	"eyetrends-pos/internal/database"
	"eyetrends-pos/internal/middleware"
	"eyetrends-pos/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserInput is the admin-editable account shape. An empty password on
// create falls back to the documented default; on update it means "keep".
type UserInput struct {
	Username    string                 `json:"username" binding:"required"`
	Password    string                 `json:"password"`
	FullName    string                 `json:"fullName" binding:"required"`
	Role        string                 `json:"role" binding:"required"`
	Permissions models.UserPermissions `json:"permissions"`
}

func (in UserInput) validRole() bool {
	return in.Role == models.RoleAdmin || in.Role == models.RoleStaff
}

// ListUsers returns all accounts. Password hashes never serialize.
func ListUsers(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := database.Users(c.Request.Context(), store)
		if err != nil {
			respondError(c, err)
			return
		}
		out := make([]models.User, len(users))
		for i, u := range users {
			out[i] = u.Redacted()
		}
		c.JSON(http.StatusOK, out)
	}
}

// CreateUser adds a staff account. Admin-only route.
func CreateUser(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}
		if !input.validRole() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be ADMIN or STAFF"})
			return
		}

		password := input.Password
		if password == "" {
			password = database.DefaultPassword
		}
		hash, err := auth.HashPassword(password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		actor := middleware.CurrentUser(c)
		ctx := c.Request.Context()
		var created models.User

		err = store.Transact(ctx, func(tx database.Store) error {
			users, err := database.Users(ctx, tx)
			if err != nil {
				return err
			}
			for _, u := range users {
				if strings.EqualFold(u.Username, input.Username) {
					return errUsernameTaken
				}
			}

			created = models.User{
				ID:           "user-" + uuid.NewString()[:8],
				Username:     input.Username,
				PasswordHash: hash,
				Role:         input.Role,
				FullName:     input.FullName,
				Permissions:  input.Permissions,
			}
			if err := database.SaveUsers(ctx, tx, append(users, created)); err != nil {
				return err
			}
			return audit.Append(ctx, tx, actor, models.AuditCreate, models.EntityUser,
				fmt.Sprintf("Created new staff account: %s (@%s)", created.FullName, created.Username))
		})
		if err == errUsernameTaken {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username is already taken"})
			return
		}
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created.Redacted())
	}
}

var errUsernameTaken = fmt.Errorf("username taken")

// UpdateUser edits username, role, name and permissions; a non-empty
// password is re-hashed. The reserved administrator keeps its username.
// Admin-only route.
func UpdateUser(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}
		if !input.validRole() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be ADMIN or STAFF"})
			return
		}

		id := c.Param("id")
		actor := middleware.CurrentUser(c)
		ctx := c.Request.Context()
		var updated models.User

		err := store.Transact(ctx, func(tx database.Store) error {
			users, err := database.Users(ctx, tx)
			if err != nil {
				return err
			}

			idx := -1
			for i := range users {
				if users[i].ID == id {
					idx = i
					break
				}
			}
			if idx < 0 {
				return errUserNotFound
			}

			u := users[idx]
			if u.Username == models.ReservedAdminUsername && input.Username != u.Username {
				return errReservedAccount
			}
			for i := range users {
				if i != idx && strings.EqualFold(users[i].Username, input.Username) {
					return errUsernameTaken
				}
			}
			u.Username = input.Username
			u.FullName = input.FullName
			u.Role = input.Role
			u.Permissions = input.Permissions
			if input.Password != "" {
				hash, err := auth.HashPassword(input.Password)
				if err != nil {
					return err
				}
				u.PasswordHash = hash
			}
			users[idx] = u
			updated = u

			if err := database.SaveUsers(ctx, tx, users); err != nil {
				return err
			}
			return audit.Append(ctx, tx, actor, models.AuditUpdate, models.EntityUser,
				fmt.Sprintf("Updated account: %s (@%s)", u.FullName, u.Username))
		})
		switch err {
		case nil:
			c.JSON(http.StatusOK, updated.Redacted())
		case errUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errUsernameTaken:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username is already taken"})
		case errReservedAccount:
			c.JSON(http.StatusForbidden, gin.H{"error": "The reserved administrator username cannot be changed"})
		default:
			respondError(c, err)
		}
	}
}

var errUserNotFound = fmt.Errorf("user not found")
var errReservedAccount = fmt.Errorf("reserved account")

// DeleteUser removes an account. The reserved administrator account is
// rejected regardless of who asks.
func DeleteUser(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		actor := middleware.CurrentUser(c)
		ctx := c.Request.Context()

		err := store.Transact(ctx, func(tx database.Store) error {
			users, err := database.Users(ctx, tx)
			if err != nil {
				return err
			}

			kept := users[:0]
			var removed *models.User
			for _, u := range users {
				if u.ID == id {
					if u.Username == models.ReservedAdminUsername {
						return errReservedAccount
					}
					removed = &u
					continue
				}
				kept = append(kept, u)
			}
			if removed == nil {
				return errUserNotFound
			}

			if err := database.SaveUsers(ctx, tx, kept); err != nil {
				return err
			}
			return audit.Append(ctx, tx, actor, models.AuditDelete, models.EntityUser,
				fmt.Sprintf("Deleted user account: %s (@%s)", removed.FullName, removed.Username))
		})
		switch err {
		case nil:
			c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
		case errReservedAccount:
			c.JSON(http.StatusForbidden, gin.H{"error": "The reserved administrator account cannot be deleted"})
		case errUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			respondError(c, err)
		}
	}
}

// UpdateProfile lets any user change their own full name and password.
func UpdateProfile(store database.Store) gin.HandlerFunc {
	type profileInput struct {
		FullName string `json:"fullName" binding:"required"`
		Password string `json:"password"`
	}
	return func(c *gin.Context) {
		var input profileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}

		actor := middleware.CurrentUser(c)
		ctx := c.Request.Context()
		var updated models.User

		err := store.Transact(ctx, func(tx database.Store) error {
			users, err := database.Users(ctx, tx)
			if err != nil {
				return err
			}
			for i := range users {
				if users[i].ID != actor.ID {
					continue
				}
				users[i].FullName = input.FullName
				if input.Password != "" {
					hash, err := auth.HashPassword(input.Password)
					if err != nil {
						return err
					}
					users[i].PasswordHash = hash
				}
				updated = users[i]
				if err := database.SaveUsers(ctx, tx, users); err != nil {
					return err
				}
				return audit.Append(ctx, tx, actor, models.AuditUpdate, models.EntityUser,
					fmt.Sprintf("Updated own profile (@%s)", updated.Username))
			}
			return errUserNotFound
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated.Redacted())
	}
}
