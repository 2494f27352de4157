package inventory

// 库存核算（纯计算，无副作用）
//
// 设计说明:
// 1. 剩余库存是推导值:对流水逐条求带符号和（T加、W减），从不落库
// 2. 刻意用"普通切片→整数"的纯函数表达，不依赖任何对象图遍历或懒加载
// 3. 结果允许为负:直接台账接口是管理员修正通道，不做非负校验，
//    只有下单/改单路径会在写入前用HasSufficientStock拦截

// RemainingStock 计算一个商品的净剩余库存
// 空流水 ⇒ 0
func RemainingStock(entries []Entry) int {
	total := 0
	for i := range entries {
		total += entries[i].SignedQuantity()
	}
	return total
}

// HasSufficientStock 判断净剩余库存能否覆盖所需数量
func HasSufficientStock(entries []Entry, requestedQty int) bool {
	return RemainingStock(entries) >= requestedQty
}
