package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/luocheng/stockpile/pkg/metrics"
)

// Metrics Prometheus指标采集中间件
// 设计说明:
// 1. path标签用FullPath(路由模板,如/api/v1/items/:id),不用真实URL,
//    避免路径参数造成标签基数爆炸
// 2. 未匹配任何路由的请求(404)没有模板,统一归到unmatched
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.HTTPRequestsInProgress.Inc()

		c.Next()

		metrics.HTTPRequestsInProgress.Dec()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
