package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemainingStock(t *testing.T) {
	t.Run("入库减出库", func(t *testing.T) {
		entries := []Entry{
			{Quantity: 20, Type: EntryTypeTopUp},
			{Quantity: 5, Type: EntryTypeWithdrawal},
		}
		assert.Equal(t, 15, RemainingStock(entries))
	})

	t.Run("空流水为零", func(t *testing.T) {
		assert.Equal(t, 0, RemainingStock(nil))
		assert.Equal(t, 0, RemainingStock([]Entry{}))
	})

	t.Run("允许为负", func(t *testing.T) {
		// 管理员修正通道可能造成净剩余为负,核算层如实反映
		entries := []Entry{
			{Quantity: 3, Type: EntryTypeTopUp},
			{Quantity: 5, Type: EntryTypeWithdrawal},
		}
		assert.Equal(t, -2, RemainingStock(entries))
	})

	t.Run("顺序无关", func(t *testing.T) {
		a := []Entry{
			{Quantity: 7, Type: EntryTypeWithdrawal},
			{Quantity: 10, Type: EntryTypeTopUp},
			{Quantity: 2, Type: EntryTypeTopUp},
		}
		b := []Entry{
			{Quantity: 10, Type: EntryTypeTopUp},
			{Quantity: 2, Type: EntryTypeTopUp},
			{Quantity: 7, Type: EntryTypeWithdrawal},
		}
		assert.Equal(t, RemainingStock(b), RemainingStock(a))
	})
}

func TestHasSufficientStock(t *testing.T) {
	entries := []Entry{
		{Quantity: 20, Type: EntryTypeTopUp},
		{Quantity: 5, Type: EntryTypeWithdrawal},
	}

	assert.True(t, HasSufficientStock(entries, 15), "恰好相等应通过")
	assert.True(t, HasSufficientStock(entries, 1))
	assert.False(t, HasSufficientStock(entries, 16))
	assert.False(t, HasSufficientStock(nil, 1), "空流水无法覆盖任何数量")
	assert.True(t, HasSufficientStock(nil, 0))
}

func TestEntryType(t *testing.T) {
	t.Run("标签", func(t *testing.T) {
		assert.Equal(t, "Top-Up", EntryTypeTopUp.Label())
		assert.Equal(t, "Withdrawal", EntryTypeWithdrawal.Label())
		assert.Equal(t, "Unknown", EntryType("X").Label())
	})

	t.Run("解析", func(t *testing.T) {
		typ, ok := ParseEntryType("t")
		assert.True(t, ok)
		assert.Equal(t, EntryTypeTopUp, typ)

		typ, ok = ParseEntryType(" W ")
		assert.True(t, ok)
		assert.Equal(t, EntryTypeWithdrawal, typ)

		_, ok = ParseEntryType("topup")
		assert.False(t, ok)
		_, ok = ParseEntryType("")
		assert.False(t, ok)
	})
}

func TestSignedQuantity(t *testing.T) {
	topUp := NewTopUp(1, 4)
	assert.Equal(t, 4, topUp.SignedQuantity())

	withdrawal := NewWithdrawal(1, 4)
	assert.Equal(t, -4, withdrawal.SignedQuantity())
}
