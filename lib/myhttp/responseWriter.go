package myhttp

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/MarcGrol/shopcart/lib/myerrors"
	"github.com/MarcGrol/shopcart/lib/mylog"
)

type ResponseWriter interface {
	WriteError(c context.Context, w http.ResponseWriter, errorCode int, err error)
	Write(c context.Context, w http.ResponseWriter, httpStatus int, resp any)
}

// userMessager is implemented by errors that carry a message fit for end users
type userMessager interface {
	UserMessage() string
}

type ErrorResponse struct {
	ErrorCode int
	Message   string
	Details   string `json:",omitempty"`
}

type SuccessResponse struct {
	Message string
}

func NewWriter(logger mylog.Logger) ResponseWriter {
	return &responseWriter{
		logger: logger,
	}
}

type responseWriter struct {
	logger mylog.Logger
}

func (rw responseWriter) WriteError(c context.Context, w http.ResponseWriter, errorCode int, err error) {
	httpStatus := myerrors.GetHTTPStatus(err)
	rw.logger.Log(c, "", mylog.SeverityWarn, "Error response: http-status:%d, error-code:%d, error-msg:%s", httpStatus, errorCode, err)

	resp := ErrorResponse{
		ErrorCode: errorCode,
		Message:   err.Error(),
	}
	var um userMessager
	if errors.As(err, &um) {
		resp.Message = um.UserMessage()
		resp.Details = err.Error()
	}
	rw.write(w, httpStatus, resp)
}

func (rw responseWriter) Write(c context.Context, w http.ResponseWriter, httpStatus int, resp any) {
	rw.logger.Log(c, "", mylog.SeverityInfo, "Success response: http-status:%d", httpStatus)
	rw.write(w, httpStatus, resp)
}

func (rw responseWriter) write(w http.ResponseWriter, httpStatus int, resp any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "\t")
	err := encoder.Encode(resp)
	if err != nil {
		log.Printf("Error writing response: %s", err)
		return
	}
}
