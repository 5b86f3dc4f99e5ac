package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/adapter/http/mapper"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/adapter/http/validation"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) SignUp(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	input, err := validation.BuildSignUpInput(body)
	if err != nil {
		respondError(c, err, apierrors.MsgFailSignUp)
		return
	}

	user, err := h.userService.SignUp(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailSignUp)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToUserItem(user))
}

func (h *UserHandler) Login(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	credentials, err := validation.BuildCredentials(body)
	if err != nil {
		respondError(c, err, apierrors.MsgFailLogin)
		return
	}

	authToken, err := h.userService.Login(c.Request.Context(), credentials)
	if err != nil {
		respondError(c, err, apierrors.MsgFailLogin)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTokenResponse(authToken))
}

func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), middleware.GetCallerID(c))
	if err != nil {
		respondError(c, err, apierrors.MsgFailGetUser)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}
