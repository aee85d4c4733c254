// Package apperr 提供统一的错误码定义
package apperr

import (
	"errors"
	"fmt"
)

// ErrorCode 错误码类型
type ErrorCode string

const (
	CodeUnknown      ErrorCode = "1000"
	CodeInvalidParam ErrorCode = "1001"
	CodeInternal     ErrorCode = "1007"

	// 解读流程 (4xxx)
	CodeNotConfigured ErrorCode = "4001"
	CodeLLMTransient  ErrorCode = "4002"
	CodeLLMAuth       ErrorCode = "4003"
	CodeLLMSchema     ErrorCode = "4004"
	CodeSuperseded    ErrorCode = "4005"
	CodeRateLimited   ErrorCode = "4006"

	// 外部服务 (5xxx)
	CodeStorage ErrorCode = "5001"
	CodeCache   ErrorCode = "5002"
)

// AppError 应用错误
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Detail  string    `json:"detail,omitempty"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail 返回带详细信息的副本，预定义错误不会被修改
func (e *AppError) WithDetail(detail string) *AppError {
	cp := *e
	cp.Detail = detail
	return &cp
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// As 将任意错误转为 AppError，非 AppError 归为未知错误
func As(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, CodeUnknown, "unknown error")
}

// CodeOf 取错误码，nil 返回空串
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	return As(err).Code
}
