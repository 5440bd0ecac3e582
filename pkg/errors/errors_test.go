package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrProfileRequired.HTTPStatus)
	assert.Equal(t, http.StatusTooManyRequests, ErrTooManyRequests.HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, ErrLLMProvider.HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, New(CodeDecodeFailed, "x").HTTPStatus)
}

func TestWithErrorDoesNotMutatePredefined(t *testing.T) {
	wrapped := ErrLLMProvider.WithError(stderrors.New("quota exceeded"))

	assert.Nil(t, ErrLLMProvider.Err)
	assert.Equal(t, "quota exceeded", wrapped.Cause())
	assert.Equal(t, "LLM provider call failed", ErrLLMProvider.Cause())
}

func TestAsAppErrorUnwrapsChain(t *testing.T) {
	base := Wrap(stderrors.New("dial tcp: timeout"), CodeLLMProviderError, "upstream")
	err := fmt.Errorf("generate: %w", base)

	assert.True(t, IsAppError(err))
	assert.True(t, HasCode(err, CodeLLMProviderError))
	assert.Same(t, base, AsAppError(err))

	plain := AsAppError(stderrors.New("plain"))
	assert.Equal(t, CodeUnknown, plain.Code)
	assert.False(t, HasCode(stderrors.New("x"), CodeInvalidParam))
}
