package myhttp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/shopcart/lib/myerrors"
	"github.com/MarcGrol/shopcart/lib/mylog"
)

type friendlyError struct{}

func (e friendlyError) Error() string       { return "stock 3 below 4" }
func (e friendlyError) UserMessage() string { return "Requested quantity is out of stock" }

func TestResponseWriter(t *testing.T) {
	writer := NewWriter(mylog.New("test"))

	t.Run("Write success", func(t *testing.T) {
		response := httptest.NewRecorder()

		writer.Write(context.TODO(), response, http.StatusOK, SuccessResponse{Message: "ok"})

		assert.Equal(t, 200, response.Code)
		assert.Equal(t, "application/json", response.Header().Get("Content-Type"))
		got := SuccessResponse{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &got))
		assert.Equal(t, "ok", got.Message)
	})

	t.Run("Write plain error", func(t *testing.T) {
		response := httptest.NewRecorder()

		writer.WriteError(context.TODO(), response, 3, myerrors.NewNotFoundError(fmt.Errorf("cart not found")))

		assert.Equal(t, 404, response.Code)
		got := ErrorResponse{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &got))
		assert.Equal(t, ErrorResponse{ErrorCode: 3, Message: "status: 404, err: cart not found"}, got)
	})

	t.Run("Write error with user message", func(t *testing.T) {
		response := httptest.NewRecorder()

		writer.WriteError(context.TODO(), response, 1, myerrors.NewConflictError(friendlyError{}))

		assert.Equal(t, 409, response.Code)
		got := ErrorResponse{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &got))
		assert.Equal(t, "Requested quantity is out of stock", got.Message)
		assert.Equal(t, "status: 409, err: stock 3 below 4", got.Details)
	})
}
