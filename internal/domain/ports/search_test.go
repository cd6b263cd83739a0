package ports

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusError(t *testing.T) {
	err := StatusError(503)

	assert.Equal(t, 503, err.Status)
	assert.Equal(t, "HTTP error! status: 503", err.Error())
}

func TestFetchError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	wrapped := fmt.Errorf("searching profiles: %w", &FetchError{Message: "requesting search", Err: cause})

	var fetchErr *FetchError
	require.ErrorAs(t, wrapped, &fetchErr)
	assert.Equal(t, 0, fetchErr.Status)
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, "searching profiles: requesting search: connection refused", wrapped.Error())
}
