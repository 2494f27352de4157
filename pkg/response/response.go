package response

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/luocheng/stockpile/pkg/errors"
)

// Response 统一响应结构（泛型信封）
// 设计说明：
// 1. Code既是业务错误码也是HTTP状态码，HTTP状态与body中的code保持一致
// 2. Message是提示信息，成功时固定为"Success"
// 3. Data是业务数据，失败时为空
type Response[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

// Success 成功响应（200）
func Success[T any](c *gin.Context, data T) {
	write(c, apperrors.CodeOK, "Success", data)
}

// Created 创建成功响应（201）
func Created[T any](c *gin.Context, data T) {
	write(c, apperrors.CodeCreated, "Success", data)
}

// Message 仅消息响应（如删除成功）
func Message(c *gin.Context, message string) {
	c.JSON(apperrors.CodeOK, Response[any]{
		Code:    apperrors.CodeOK,
		Message: message,
	})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	err := itemService.Delete(ctx, id)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	// 内部错误记录到日志，客户端只看到Message
	if appErr.Err != nil {
		zap.L().Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(appErr.Err),
		)
	}

	c.JSON(appErr.Code, Response[any]{
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	c.JSON(code, Response[any]{
		Code:    code,
		Message: message,
	})
}

func write[T any](c *gin.Context, code int, message string, data T) {
	c.JSON(code, Response[T]{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// =========================================
// 分页响应结构
// =========================================

// PageMeta 分页元信息
type PageMeta struct {
	Number        int   `json:"number"`        // 当前页码(从1开始)
	Size          int   `json:"size"`          // 每页大小
	TotalElements int64 `json:"totalElements"` // 总记录数
	TotalPages    int   `json:"totalPages"`    // 总页数
}

// PageData 分页数据封装
type PageData[T any] struct {
	Content []T      `json:"content"` // 数据列表
	Page    PageMeta `json:"page"`    // 分页信息
}

// NewPageData 创建分页数据
func NewPageData[T any](content []T, total int64, page, size int) PageData[T] {
	totalPages := int(total) / size
	if int(total)%size != 0 {
		totalPages++
	}

	return PageData[T]{
		Content: content,
		Page: PageMeta{
			Number:        page,
			Size:          size,
			TotalElements: total,
			TotalPages:    totalPages,
		},
	}
}

// SuccessWithPage 分页成功响应
func SuccessWithPage[T any](c *gin.Context, content []T, total int64, page, size int) {
	Success(c, NewPageData(content, total, page, size))
}
