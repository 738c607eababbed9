package util

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEmail     = errors.New("Invalid email format")
	ErrAuthInProgress   = errors.New("authentication already in progress")
	ErrProviderFailed   = errors.New("could not authenticate with provider")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionMismatch  = errors.New("session does not match token")
	ErrSessionNotFound  = errors.New("session not found")
	ErrCourseNotFound   = errors.New("course not found")
	ErrInvalidDeviceID  = errors.New("invalid device id")
)

// ValidationError 本地校验失败（目前只有邮箱格式）
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

// StorageParseError 持久化的会话内容无法解析
type StorageParseError struct {
	Key string
	Err error
}

func (e *StorageParseError) Error() string {
	return fmt.Sprintf("corrupt session under %q: %v", e.Key, e.Err)
}

func (e *StorageParseError) Unwrap() error {
	return e.Err
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsStorageParseError(err error) bool {
	var pe *StorageParseError
	return errors.As(err, &pe)
}
