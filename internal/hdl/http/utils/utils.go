package utils

import (
	"encoding/json"
	"net/http"

	"github.com/RaulAli/Vall-Activa-sub001/internal/config"
	"github.com/RaulAli/Vall-Activa-sub001/internal/hdl"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Response struct {
	Data any `json:"data"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func SuccessResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&Response{
			Data: data,
		},
	)
}

func StatusResponse(w http.ResponseWriter, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
}

func ErrResponse(w http.ResponseWriter, statusCode int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&ErrorResponse{
			Error: err.Error(),
		},
	)
}

// ParseAndValidate decodes the request body into dst and runs struct
// validation. It writes the 400 response itself and reports success.
func ParseAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		ErrResponse(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

// SetRefreshCookie stores the raw refresh token where only the auth
// endpoints can see it.
func SetRefreshCookie(w http.ResponseWriter, raw string, maxAge int) {
	http.SetCookie(
		w, &http.Cookie{
			Name:     config.RefreshCookieName,
			Value:    raw,
			MaxAge:   maxAge,
			HttpOnly: true,
			Secure:   true,
			Path:     config.RefreshCookiePath,
			SameSite: http.SameSiteStrictMode,
		},
	)
}

func ClearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(
		w, &http.Cookie{
			Name:     config.RefreshCookieName,
			Value:    "",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   true,
			Path:     config.RefreshCookiePath,
			SameSite: http.SameSiteStrictMode,
		},
	)
}
