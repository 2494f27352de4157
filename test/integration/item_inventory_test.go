package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 商品与台账模块集成测试
//
// 场景覆盖:
// 1. 商品CRUD与404文案
// 2. 列表分页信封与名称过滤
// 3. 台账直接增删改(管理员修正通道)
// 4. 汇总接口的"No Inventory Found"

func TestItemCRUD(t *testing.T) {
	RequireServer(t)

	name := uniqueName("crud")
	it := CreateTestItem(t, name, 5900)

	t.Run("查询详情", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/items/%d", BaseURL, it.ID))
		require.Equal(t, 200, resp.Code)

		var data ItemData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, name, data.Name)
		assert.Equal(t, int64(5900), data.Price)
		assert.Equal(t, 0, data.RemainingStock, "没有流水时剩余库存为0")
	})

	t.Run("入库后详情携带剩余库存", func(t *testing.T) {
		TopUpTestItem(t, it.ID, 7)

		resp := GetJSON(t, fmt.Sprintf("%s/items/%d", BaseURL, it.ID))
		require.Equal(t, 200, resp.Code)

		var data ItemData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, 7, data.RemainingStock)
	})

	t.Run("更新名称与价格", func(t *testing.T) {
		newName := uniqueName("renamed")
		resp := PutJSON(t, BaseURL+"/items", map[string]interface{}{
			"id":    it.ID,
			"name":  newName,
			"price": 6100,
		})
		require.Equal(t, 200, resp.Code)

		var data ItemData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, newName, data.Name)
		assert.Equal(t, int64(6100), data.Price)
	})

	t.Run("列表过滤与分页信封", func(t *testing.T) {
		filterName := uniqueName("filterable")
		CreateTestItem(t, filterName, 100)

		resp := GetJSON(t, BaseURL+"/items?page=1&size=10&filter="+filterName)
		require.Equal(t, 200, resp.Code)

		var page PageData
		require.NoError(t, json.Unmarshal(resp.Data, &page))
		assert.Equal(t, 1, page.Page.Number)
		assert.Equal(t, 10, page.Page.Size)
		assert.Equal(t, int64(1), page.Page.TotalElements)
		assert.Equal(t, 1, page.Page.TotalPages)

		var items []ItemData
		require.NoError(t, json.Unmarshal(page.Content, &items))
		require.Len(t, items, 1)
		assert.Equal(t, filterName, items[0].Name)
	})

	t.Run("删除与404", func(t *testing.T) {
		resp := DeleteJSON(t, fmt.Sprintf("%s/items/%d", BaseURL, it.ID))
		require.Equal(t, 200, resp.Code)
		assert.Equal(t, fmt.Sprintf("Item with id %d deleted successfully", it.ID), resp.Message)

		notFound := GetJSON(t, fmt.Sprintf("%s/items/%d", BaseURL, it.ID))
		assert.Equal(t, 404, notFound.Code)
		assert.Equal(t, fmt.Sprintf("Item with id %d not found", it.ID), notFound.Message)
	})
}

func TestInventoryAdminChannel(t *testing.T) {
	RequireServer(t)

	it := CreateTestItem(t, uniqueName("ledger"), 100)

	t.Run("没有流水时汇总404", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/inventories/items/%d/summary", BaseURL, it.ID))
		assert.Equal(t, 404, resp.Code)
		assert.Equal(t, "No Inventory Found", resp.Message)
	})

	var entryID uint

	t.Run("新增流水", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/inventories", map[string]interface{}{
			"itemId":   it.ID,
			"quantity": 20,
			"type":     "t", // 大小写不敏感
		})
		require.Equal(t, 201, resp.Code)

		var data InventoryData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, "T", data.Type)
		assert.Equal(t, "Top-Up", data.TypeLabel)
		entryID = data.ID
	})

	t.Run("商品不存在时新增404", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/inventories", map[string]interface{}{
			"itemId":   99999999,
			"quantity": 1,
			"type":     "T",
		})
		assert.Equal(t, 404, resp.Code)
		assert.Equal(t, "Item not found", resp.Message)
	})

	t.Run("整条替换流水", func(t *testing.T) {
		resp := PutJSON(t, BaseURL+"/inventories", map[string]interface{}{
			"id":       entryID,
			"quantity": 5,
			"type":     "W",
		})
		require.Equal(t, 200, resp.Code)

		var data InventoryData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, 5, data.Quantity)
		assert.Equal(t, "Withdrawal", data.TypeLabel)
		assert.Equal(t, it.ID, data.ItemID, "未传itemId时保持原商品")
	})

	t.Run("按商品查询流水", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/inventories/items/%d?page=1&size=10", BaseURL, it.ID))
		require.Equal(t, 200, resp.Code)

		var page PageData
		require.NoError(t, json.Unmarshal(resp.Data, &page))
		assert.Equal(t, int64(1), page.Page.TotalElements)
	})

	t.Run("删除流水与404文案", func(t *testing.T) {
		resp := DeleteJSON(t, fmt.Sprintf("%s/inventories/%d", BaseURL, entryID))
		require.Equal(t, 200, resp.Code)
		assert.Equal(t, fmt.Sprintf("Inventory with id %d deleted successfully", entryID), resp.Message)

		notFound := GetJSON(t, fmt.Sprintf("%s/inventories/%d", BaseURL, entryID))
		assert.Equal(t, 404, notFound.Code)
		assert.Equal(t, fmt.Sprintf("Inventory with id %d not found", entryID), notFound.Message)
	})
}
