package httpx

import (
	"encoding/json"
	"net/http"
)

// errorBody matches the API's error contract: {"detail": "..."}.
type errorBody struct {
	Detail string `json:"detail"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, detail string) {
	WriteJSON(w, status, errorBody{Detail: detail})
}

func BadRequest(w http.ResponseWriter, detail string) {
	Error(w, http.StatusBadRequest, detail)
}

func Unauthorized(w http.ResponseWriter, detail string) {
	Error(w, http.StatusUnauthorized, detail)
}

func NotFound(w http.ResponseWriter, detail string) {
	Error(w, http.StatusNotFound, detail)
}

// StoreError surfaces the underlying store failure as a 500, per the
// no-retry error model.
func StoreError(w http.ResponseWriter, err error) {
	Error(w, http.StatusInternalServerError, err.Error())
}
