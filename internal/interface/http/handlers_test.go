package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/ghardekho-api/internal/application"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{application.ErrDuplicateEmail, http.StatusBadRequest, "DuplicateEmail"},
		{fmt.Errorf("%w: price must be a whole number", application.ErrInvalidInput), http.StatusBadRequest, "InvalidInput"},
		{application.ErrInvalidToken, http.StatusUnauthorized, "InvalidToken"},
		{application.ErrForbidden, http.StatusForbidden, "Forbidden"},
		{application.ErrSavedNotFound, http.StatusNotFound, "NotFound"},
		{application.ErrUserNotFound, http.StatusNotFound, "UserNotFound"},
		{errors.New("connection reset"), http.StatusInternalServerError, "Internal"},
	}
	for _, tt := range tests {
		status, code := StatusFor(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
		assert.Equal(t, tt.code, code, tt.err.Error())
	}
}

func TestFlexNumber(t *testing.T) {
	var v struct {
		A FlexNumber `json:"a"`
		B FlexNumber `json:"b"`
		C FlexNumber `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"1200000","b":3.5,"c":null}`), &v))
	assert.Equal(t, FlexNumber("1200000"), v.A)
	assert.Equal(t, FlexNumber("3.5"), v.B)
	assert.Equal(t, FlexNumber(""), v.C)

	assert.Error(t, json.Unmarshal([]byte(`{"a":true}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`{"a":{}}`), &v))
}

func TestFlexStrings(t *testing.T) {
	var v struct {
		F FlexStrings `json:"f"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"f":"Pool"}`), &v))
	assert.Equal(t, FlexStrings{"Pool"}, v.F)

	require.NoError(t, json.Unmarshal([]byte(`{"f":["Pool","Gym"]}`), &v))
	assert.Equal(t, FlexStrings{"Pool", "Gym"}, v.F)

	assert.Error(t, json.Unmarshal([]byte(`{"f":[1]}`), &v))
}
