package httpapi

import (
	"errors"
	"net/http"

	"hoplist.org/internal/audit"
	"hoplist.org/internal/auth"
)

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// updateUserRequest uses a pointer so that a present-but-empty username key
// is still detected and refused.
type updateUserRequest struct {
	Username *string `json:"username"`
	Password string  `json:"password"`
}

func (a *API) handleUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req createUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.authsvc.Signup(r.Context(), req.Username, req.Password); err != nil {
		if auth.IsValidationError(err) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		logServerError(r, err)
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	_ = audit.LogEvent(r.Context(), "user.create", map[string]any{
		"username": req.Username,
	})
	w.WriteHeader(http.StatusOK)
}

func (a *API) handleUserSelf(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPut:
		a.updateSelf(w, r)
	case http.MethodDelete:
		a.deleteSelf(w, r)
	default:
		methodNotAllowed(w, r, http.MethodPut, http.MethodDelete)
	}
}

func (a *API) updateSelf(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		unauthorized(w, r)
		return
	}

	var req updateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.Username != nil {
		writeError(w, r, http.StatusBadRequest, "'username' cannot be changed")
		return
	}

	if err := a.authsvc.ChangePassword(r.Context(), userID, req.Password); err != nil {
		switch {
		case auth.IsValidationError(err):
			writeError(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, auth.ErrNotFound):
			// Token validated but the record is gone; treated as an
			// authentication failure, not a 404.
			writeError(w, r, http.StatusUnauthorized, "logged in user does not exist")
		default:
			logServerError(r, err)
			writeError(w, r, http.StatusInternalServerError, "internal error")
		}
		return
	}

	_ = audit.LogEvent(r.Context(), "user.update", nil)
	w.WriteHeader(http.StatusOK)
}

func (a *API) deleteSelf(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		unauthorized(w, r)
		return
	}

	if err := a.authsvc.DeleteUser(r.Context(), userID); err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			writeError(w, r, http.StatusUnauthorized, "logged in user does not exist")
			return
		}
		logServerError(r, err)
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	_ = audit.LogEvent(r.Context(), "user.delete", nil)
	w.WriteHeader(http.StatusOK)
}
