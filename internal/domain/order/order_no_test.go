package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatOrderNo(t *testing.T) {
	june := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

	t.Run("年月前缀加8位零填充序列", func(t *testing.T) {
		assert.Equal(t, "20250600000042", FormatOrderNo(42, june))
		assert.Equal(t, "20250600000001", FormatOrderNo(1, june))
	})

	t.Run("固定14位长度", func(t *testing.T) {
		assert.Len(t, FormatOrderNo(1, june), 14)
		assert.Len(t, FormatOrderNo(99999999, june), 14)
	})

	t.Run("同一年月内序列单调则订单号单调", func(t *testing.T) {
		prev := FormatOrderNo(7, june)
		next := FormatOrderNo(8, june)
		assert.Less(t, prev, next)
	})

	t.Run("跨月不重置序列", func(t *testing.T) {
		july := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "20250700000043", FormatOrderNo(43, july))
	})
}

func TestValidateOrderNo(t *testing.T) {
	assert.True(t, ValidateOrderNo("20250600000042"))
	assert.False(t, ValidateOrderNo(""), "空串")
	assert.False(t, ValidateOrderNo("2025060000042"), "13位")
	assert.False(t, ValidateOrderNo("202506000000421"), "15位")
	assert.False(t, ValidateOrderNo("20250600000a42"), "含非数字")
}
