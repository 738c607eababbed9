package controller

import (
	"ai_edu_navigator/internal/util"
	"ai_edu_navigator/pkg/logger"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const unknownErrorText = "An unknown error occurred"

// statusFor 业务错误到 HTTP 状态码的映射，未知错误为 500
func statusFor(err error) int {
	switch {
	case util.IsValidationError(err), errors.Is(err, util.ErrInvalidDeviceID):
		return http.StatusBadRequest
	case errors.Is(err, util.ErrAuthInProgress):
		return http.StatusConflict
	case errors.Is(err, util.ErrProviderFailed):
		return http.StatusBadGateway
	case errors.Is(err, util.ErrNotAuthenticated),
		errors.Is(err, util.ErrSessionNotFound),
		errors.Is(err, util.ErrSessionMismatch):
		return http.StatusUnauthorized
	case errors.Is(err, util.ErrCourseNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// errorText 校验错误只展示原因，不带字段前缀
func errorText(err error) string {
	var ve *util.ValidationError
	if errors.As(err, &ve) {
		return ve.Err.Error()
	}
	return err.Error()
}

func respondError(ctx *gin.Context, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		util.LogInternalError(ctx, err)
		return
	}
	util.Error(ctx, code, errorText(err))
}

// respondNotice 失败时附带 toast 文案；description 为空时使用错误原因
func respondNotice(ctx *gin.Context, err error, title, description string) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		logger.Log.Error("Internal server error", zap.Error(err), zap.String("path", ctx.FullPath()))
		description = unknownErrorText
	}
	if description == "" {
		description = errorText(err)
	}
	util.ErrorWithNotice(ctx, code, util.Notice{Title: title, Description: description})
}
