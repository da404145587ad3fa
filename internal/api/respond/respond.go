// Package respond writes JSON responses for the HTTP handlers.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

type errorBody struct {
	Error string `json:"error"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

func OK(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, v)
}

func Created(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusCreated, v)
}

func Accepted(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusAccepted, v)
}

// Fail writes {"error": err} with the given status code.
func Fail(w http.ResponseWriter, status int, err error) {
	JSON(w, status, errorBody{Error: err.Error()})
}
