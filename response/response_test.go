package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cydxin/burnroom/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeOf(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{nil, CodeSuccess},
		{service.ErrNotFound, CodeRoomNotFound},
		{service.ErrExpired, CodeRoomExpired},
		{service.ErrFull, CodeRoomFull},
		{service.ErrBanned, CodeBanned},
		{service.ErrBadPassword, CodeBadPassword},
		{service.ErrPermissionDenied, CodePermissionDeny},
		{service.ErrNotCreator, CodePermissionDeny},
		{service.ErrQuotaExceeded, CodeQuotaExceeded},
		{&service.ValidationError{Field: "text", Reason: "empty"}, CodeValidation},
		{service.ErrRoomInactive, CodeRoomInactive},
		{fmt.Errorf("join: %w", service.ErrFull), CodeRoomFull},
		{errors.New("boom"), CodeInternalError},
	}
	for _, c := range cases {
		assert.Equal(t, c.code, CodeOf(c.err), "%v", c.err)
	}
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	FromError(service.ErrExpired).WriteJSON(w)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var got Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, CodeRoomExpired, got.Code)
	assert.Equal(t, "room expired", got.Msg)

	w = httptest.NewRecorder()
	Success(map[string]string{"room_id": "ab12cd34"}, "ok").WriteJSONWithStatus(w, http.StatusCreated)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"code":0,"msg":"ok","data":{"room_id":"ab12cd34"}}`, w.Body.String())
}
