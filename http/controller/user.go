package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/jrandrade/datastore-gateway/entity"
	"github.com/jrandrade/datastore-gateway/http/controller/dto"
	"github.com/jrandrade/datastore-gateway/utils"
)

// TestMongoConnection godoc
// @Summary  Document-store health probe
// @Tags     usuarios
// @Produce  json
// @Success  200 {object} map[string]string
// @Failure  500 {object} map[string]string
// @Router   /mongodb/testar-conexao [get]
func (ctrl *Controller) TestMongoConnection(c *gin.Context) {
	ctx := c.Request.Context()

	if err := ctrl.Infra.Mongo.EnsureConnected(ctx); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] MongoDB connection probe failed")
		utils.JSON500(c, "MongoDB connection failed", err)
		return
	}

	_, err := ctrl.Repository.UserRepo.FindFirst(ctx)
	switch {
	case errors.Is(err, entity.ErrNotFound):
		ctrl.Infra.Logger.InfoWithContextf(ctx, "[User] MongoDB reachable, no users stored yet")
		utils.JSON200(c, gin.H{"message": "MongoDB connection succeeded, no users found"})
	case err != nil:
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] MongoDB connection probe failed")
		utils.JSON500(c, "MongoDB connection failed", err)
	default:
		ctrl.Infra.Logger.InfoWithContextf(ctx, "[User] MongoDB connection probe succeeded")
		utils.JSON200(c, gin.H{"message": "MongoDB connection succeeded"})
	}
}

// CreateUser godoc
// @Summary  Create a user
// @Tags     usuarios
// @Accept   json
// @Produce  json
// @Param    user body dto.CreateUserRequest true "user"
// @Success  201 {object} entity.User
// @Failure  400 {object} map[string]string
// @Failure  500 {object} map[string]string
// @Router   /usuarios [post]
func (ctrl *Controller) CreateUser(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[User] Invalid create payload: %v", err)
		utils.JSON400(c, "nome and email are required")
		return
	}

	user, err := ctrl.Repository.UserRepo.Create(ctx, req.Nome, req.Email)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to create user")
		utils.JSON500(c, "Failed to create user", err)
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[User] User created: %s", user.ID.Hex())
	utils.JSON201(c, user)
}

// ListUsers godoc
// @Summary  List all users
// @Tags     usuarios
// @Produce  json
// @Success  200 {array} entity.User
// @Failure  500 {object} map[string]string
// @Router   /usuarios [get]
func (ctrl *Controller) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := ctrl.Repository.UserRepo.FindAll(ctx)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to list users")
		utils.JSON500(c, "Failed to list users", err)
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[User] Listed %d users", len(users))
	utils.JSON200(c, users)
}

// GetUserByID godoc
// @Summary  Get one user
// @Tags     usuarios
// @Produce  json
// @Param    id path string true "user id"
// @Success  200 {object} entity.User
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Failure  500 {object} map[string]string
// @Router   /usuarios/{id} [get]
func (ctrl *Controller) GetUserByID(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	user, err := ctrl.Repository.UserRepo.FindByID(ctx, id)
	switch {
	case errors.Is(err, entity.ErrInvalidInput):
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[User] Malformed user id: %s", id)
		utils.JSON400(c, "invalid user id")
	case errors.Is(err, entity.ErrNotFound):
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[User] User not found: %s", id)
		utils.JSON404(c, "user not found")
	case err != nil:
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to fetch user %s", id)
		utils.JSON500(c, "Failed to fetch user", err)
	default:
		ctrl.Infra.Logger.InfoWithContextf(ctx, "[User] User found: %s", id)
		utils.JSON200(c, user)
	}
}

// UpdateUserByID godoc
// @Summary  Partially update one user
// @Tags     usuarios
// @Accept   json
// @Produce  json
// @Param    id   path string                true "user id"
// @Param    user body dto.UpdateUserRequest true "fields to merge"
// @Success  200 {object} entity.User
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Failure  500 {object} map[string]string
// @Router   /usuarios/{id} [put]
func (ctrl *Controller) UpdateUserByID(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[User] Invalid update payload: %v", err)
		utils.JSON400(c, "invalid request payload")
		return
	}

	user, err := ctrl.Repository.UserRepo.UpdateByID(ctx, id, entity.UserPatch{Nome: req.Nome, Email: req.Email})
	switch {
	case errors.Is(err, entity.ErrInvalidInput):
		utils.JSON400(c, "invalid user id")
	case errors.Is(err, entity.ErrNotFound):
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[User] User not found for update: %s", id)
		utils.JSON404(c, "user not found")
	case err != nil:
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to update user %s", id)
		utils.JSON500(c, "Failed to update user", err)
	default:
		ctrl.Infra.Logger.InfoWithContextf(ctx, "[User] User updated: %s", id)
		utils.JSON200(c, user)
	}
}

// DeleteUserByID godoc
// @Summary  Delete one user
// @Tags     usuarios
// @Produce  json
// @Param    id path string true "user id"
// @Success  200 {object} map[string]string
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Failure  500 {object} map[string]string
// @Router   /usuarios/{id} [delete]
func (ctrl *Controller) DeleteUserByID(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	err := ctrl.Repository.UserRepo.DeleteByID(ctx, id)
	switch {
	case errors.Is(err, entity.ErrInvalidInput):
		utils.JSON400(c, "invalid user id")
	case errors.Is(err, entity.ErrNotFound):
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[User] User not found for delete: %s", id)
		utils.JSON404(c, "user not found")
	case err != nil:
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to delete user %s", id)
		utils.JSON500(c, "Failed to delete user", err)
	default:
		ctrl.Infra.Logger.InfoWithContextf(ctx, "[User] User deleted: %s", id)
		utils.JSON200(c, gin.H{"message": "user deleted"})
	}
}
