package order

import (
	"fmt"
	"time"
)

// 订单号设计:
// 1. 格式:yyyyMM + 8位零填充的持久序列号,如 20260901234567 为6位年月+8位序列
// 2. 序列来自数据库的单调计数器(Repository.NextOrderSeq),跨进程全局唯一
// 3. 同一年月内序列单调递增,年月前缀使订单号时间有序、便于归档统计
// 4. 8位零填充宽度是对外契约:下游按固定14位长度解析订单号

// seqWidth 序列号零填充宽度
const seqWidth = 8

// FormatOrderNo 由序列号生成订单号
// 教学要点:订单号的时间部分取"当前年月",序列部分不按月重置,
// 唯一性只依赖序列的单调性,与时间无关
func FormatOrderNo(seq int64, now time.Time) string {
	return fmt.Sprintf("%s%0*d", now.Format("200601"), seqWidth, seq)
}

// ValidateOrderNo 校验订单号格式(6位年月+8位序列,全数字)
func ValidateOrderNo(orderNo string) bool {
	if len(orderNo) != 6+seqWidth {
		return false
	}
	for _, c := range orderNo {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
