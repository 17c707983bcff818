package meshmcp_test

import (
	"errors"
	"fmt"
	"testing"

	meshmcp "github.com/lukeylias/MeshMCP"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code from application error", func(t *testing.T) {
		t.Parallel()
		err := meshmcp.Errorf(meshmcp.ENOTFOUND, "no cache entry")
		assert.Equal(t, meshmcp.ENOTFOUND, meshmcp.ErrorCode(err))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", meshmcp.ErrorCode(nil))
	})

	t.Run("returns EINTERNAL for non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, meshmcp.EINTERNAL, meshmcp.ErrorCode(errors.New("boom")))
	})

	t.Run("unwraps wrapped application error", func(t *testing.T) {
		t.Parallel()
		inner := meshmcp.Errorf(meshmcp.EEXTRACTION, "parse broke")
		wrapped := fmt.Errorf("refresh: %w", inner)
		assert.Equal(t, meshmcp.EEXTRACTION, meshmcp.ErrorCode(wrapped))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns message from application error", func(t *testing.T) {
		t.Parallel()
		err := meshmcp.Errorf(meshmcp.EINVALID, "componentName is required")
		assert.Equal(t, "componentName is required", meshmcp.ErrorMessage(err))
	})

	t.Run("masks non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Internal error.", meshmcp.ErrorMessage(errors.New("secret details")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", meshmcp.ErrorMessage(nil))
	})
}
