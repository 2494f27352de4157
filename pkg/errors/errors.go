package errors

import (
	"errors"
	"fmt"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code同时承担业务错误码与HTTP状态提示（响应层直接以Code作为HTTP状态）
// 2. Message是面向调用方的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露实现细节）
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码（与HTTP状态一致）
	Message string `json:"message"` // 错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NotFound 创建404错误
func NotFound(message string) *AppError {
	return New(CodeNotFound, message)
}

// NotFoundf 格式化创建404错误
func NotFoundf(format string, args ...interface{}) *AppError {
	return NotFound(fmt.Sprintf(format, args...))
}

// BadRequest 创建400错误
func BadRequest(message string) *AppError {
	return New(CodeBadRequest, message)
}

// Wrap 包装系统错误（如数据库错误、网络错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：错误码与HTTP状态码保持一致
// - 200/201: 成功
// - 400: 请求不合法（参数错误、库存不足等业务规则校验失败）
// - 404: 资源不存在
// - 500: 服务端错误（数据库异常等）

const (
	CodeOK         = 200 // 成功
	CodeCreated    = 201 // 创建成功
	CodeBadRequest = 400 // 参数/业务规则错误
	CodeNotFound   = 404 // 资源不存在
	CodeInternal   = 500 // 内部错误
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// ErrInternal 系统内部错误
	ErrInternal = New(CodeInternal, "Internal server error")

	// ErrInsufficientStock 库存不足（下单/改单时净剩余库存不够覆盖所需数量）
	// 固定文案，客户端按message识别
	ErrInsufficientStock = New(CodeBadRequest, "Insufficient stock")

	// ErrInvalidParams 参数错误（绑定校验失败）
	ErrInvalidParams = New(CodeBadRequest, "Invalid request parameters")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "Internal server error")
}
