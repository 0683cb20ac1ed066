package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("customerName is required"), http.StatusBadRequest},
		{"unauthorized", Unauthorized("missing token"), http.StatusUnauthorized},
		{"not found", NotFound("sale"), http.StatusNotFound},
		{"quota", QuotaExceeded("limit reached"), http.StatusTooManyRequests},
		{"persistence", Persistence("failed", errors.New("db down")), http.StatusInternalServerError},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("ctx: %w", NotFound("customer")), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestPublicMessageHidesCause(t *testing.T) {
	err := SaleCreation(errors.New("pq: relation \"sales\" does not exist"))

	assert.Equal(t, "Failed to create sale", PublicMessage(err))
	assert.True(t, errors.Is(err, ErrSaleCreation))
	assert.Contains(t, err.Error(), "relation")
	assert.Equal(t, "Internal server error", PublicMessage(errors.New("secret detail")))
}

func TestNotFoundMessage(t *testing.T) {
	assert.Equal(t, "owner not found", NotFound("owner").Message)
	assert.True(t, Is(NotFound("owner"), KindNotFound))
}
