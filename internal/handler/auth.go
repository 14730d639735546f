package handler

import (
	"net/http"

	"github.com/ahmadraza103/IMS/internal/apierror"
	"github.com/ahmadraza103/IMS/internal/dto"
	"github.com/ahmadraza103/IMS/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login authenticates a username/password pair and returns a bearer token
// plus the user's role, which the client uses to pick the right panel.
// Unknown user and wrong password produce the same 401.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
