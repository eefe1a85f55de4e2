// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jihoonp/venuevote/auth"
	"github.com/jihoonp/venuevote/cliparse"
	"github.com/jihoonp/venuevote/middleware"
	"github.com/jihoonp/venuevote/models"
)

type AdminHandler struct {
	cfg cliparse.Config
}

func NewAdminHandler(cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{cfg: cfg}
}

// Login handles POST /auth/admin/login
// Exchanges the admin password for the admin token used on admin routes.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.AdminLoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := auth.CheckAdminPassword(req.Password, h.cfg.AdminPassword); err != nil {
		slog.Warn("admin login failed", "client_ip", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	slog.Info("admin logged in", "client_ip", middleware.GetClientIP(r))

	middleware.JSONResponse(w, http.StatusOK, models.AdminLoginResponse{
		AdminToken: auth.AdminToken(h.cfg.AdminTokenSalt),
	})
}
