package handlers

import (
	"context"
	"errors"

	"liveusers/internal/models"
	"liveusers/internal/repository"
	"liveusers/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Registrar interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
}

type UserQueries interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type Handler struct {
	reg   Registrar
	query UserQueries
	log   *zap.Logger
}

func New(reg Registrar, query UserQueries, log *zap.Logger) *Handler {
	return &Handler{reg: reg, query: query, log: log}
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": "invalid request body",
		})
	}

	_, err := h.reg.Register(c.Context(), &req)
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": ve.Error(),
		})
	case errors.Is(err, repository.ErrDuplicateUser):
		return c.Status(fiber.StatusConflict).SendString("Duplicate email or userId")
	case err != nil:
		h.log.Error("error saving user", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("Error: " + err.Error())
	}
	return c.Status(fiber.StatusCreated).SendString("User Registered Successfully")
}

func (h *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := h.query.ListUsers(c.Context())
	if err != nil {
		h.log.Error("list users failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("Error fetching users")
	}
	return c.JSON(users)
}

func (h *Handler) GetUserByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	u, err := h.query.GetUserByEmail(c.Context(), email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("User not found")
		}
		h.log.Error("get user failed", zap.String("email", email), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("Error fetching user details")
	}
	return c.JSON(u)
}

func (h *Handler) Healthz(c *fiber.Ctx) error {
	return c.SendString("ok")
}
