package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	// Test creating a new error
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	// Test creating a new formatted error
	err = Newf("formatted %s", "error")
	assert.NotNil(t, err)
	assert.Equal(t, "formatted error", err.Error())

	// Check that the error is an ApplicationError
	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, "formatted error", appErr.Error())
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	// Test wrapping an error
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.NotNil(t, wrappedErr)
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())

	// Test unwrapping
	unwrappedErr := Unwrap(wrappedErr)
	assert.Equal(t, origErr, unwrappedErr)

	// Test wrapped formatted error
	wrappedFormatted := Wrapf(origErr, "formatted %s", "wrapper")
	assert.NotNil(t, wrappedFormatted)
	assert.Equal(t, "formatted wrapper: original error", wrappedFormatted.Error())

	// Test wrapping nil returns nil
	assert.Nil(t, Wrap(nil, "wrapper"))
	assert.Nil(t, Wrapf(nil, "formatted %s", "wrapper"))

	// Test deeper wrapping
	deepWrapped := Wrap(wrappedErr, "deeper")
	assert.Equal(t, "deeper: wrapped: original error", deepWrapped.Error())

	// Test Is function
	assert.True(t, Is(wrappedErr, origErr))
	assert.True(t, Is(deepWrapped, origErr))
}

func TestFileError(t *testing.T) {
	// Test creating a file error
	fileErr := NewFileError("cannot access", "/path/to/file", FileAccessDenied, nil)
	assert.NotNil(t, fileErr)
	assert.Equal(t, "cannot access: /path/to/file", fileErr.Error())
	assert.Equal(t, "/path/to/file", fileErr.Path())
	assert.Equal(t, FileAccessDenied, fileErr.Kind())

	// Test with wrapped error
	origErr := fmt.Errorf("permission denied")
	fileErr = NewFileError("cannot access", "/path/to/file", FileAccessDenied, origErr)
	assert.Equal(t, "cannot access: /path/to/file: permission denied", fileErr.Error())
	assert.Equal(t, origErr, Unwrap(fileErr))

	// Test predefined errors
	assert.Equal(t, "file not found", ErrFileNotFound.Error())
	assert.Equal(t, FileNotFound, ErrFileNotFound.Kind())

	// Test IsFileNotFound predicate
	notFoundErr := NewFileError("file not found", "/missing/file", FileNotFound, nil)
	assert.True(t, IsFileNotFound(notFoundErr))
	assert.False(t, IsFileNotFound(fileErr)) // This is FileAccessDenied

	// Test IsFileAccessDenied predicate
	assert.True(t, IsFileAccessDenied(fileErr))
	assert.False(t, IsFileAccessDenied(notFoundErr))

	// Test As for FileError
	var fe *FileError
	assert.True(t, As(fileErr, &fe))
	assert.Equal(t, "/path/to/file", fe.Path())
}

func TestConfigError(t *testing.T) {
	configErr := NewConfigError("invalid value", "explorer.collision", InvalidConfig, nil)
	assert.Equal(t, "invalid value: explorer.collision", configErr.Error())
	assert.Equal(t, "explorer.collision", configErr.Param())
	assert.True(t, IsInvalidConfig(configErr))

	// Wrapped cause is kept in the message
	origErr := fmt.Errorf("unknown strategy")
	configErr = NewConfigError("invalid value", "explorer.collision", InvalidConfig, origErr)
	assert.Equal(t, "invalid value: explorer.collision: unknown strategy", configErr.Error())
	assert.False(t, IsInvalidConfig(New("plain")))
}

func TestVoiceError(t *testing.T) {
	cause := errors.New("device busy")
	voiceErr := NewVoiceError("capture failed", "record", VoiceUnavailable, cause)
	assert.Equal(t, "capture failed: device busy", voiceErr.Error())
	assert.Equal(t, "record", voiceErr.Stage())
	assert.Equal(t, VoiceUnavailable, KindOf(voiceErr))

	assert.True(t, IsNotUnderstood(ErrNotUnderstood))
	assert.True(t, IsNotRecognized(Wrap(ErrNotRecognized, "parse")))
	assert.False(t, IsNotRecognized(ErrNotUnderstood))
}

func TestSentinelMatching(t *testing.T) {
	// Errors of the same kind match the sentinel even when built separately
	notFound := NewFileError("file not found", "/tmp/x", FileNotFound, nil)
	assert.True(t, Is(notFound, ErrFileNotFound))
	assert.False(t, Is(notFound, ErrFileAccess))

	wrapped := Wrapf(ErrClipboardEmpty, "paste into %s", "/tmp")
	assert.True(t, Is(wrapped, ErrClipboardEmpty))
	assert.Equal(t, ClipboardEmpty, KindOf(wrapped))

	// Unknown kinds only match by identity
	a, b := New("a"), New("a")
	assert.False(t, Is(a, b))
	assert.Equal(t, Unknown, KindOf(fmt.Errorf("stdlib")))
}
