package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 前提:服务已在本机8080端口启动(go run ./cmd/api)
// 服务不可达时测试整体跳过,不算失败

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// PageData 分页响应数据
type PageData struct {
	Content json.RawMessage `json:"content"`
	Page    struct {
		Number        int   `json:"number"`
		Size          int   `json:"size"`
		TotalElements int64 `json:"totalElements"`
		TotalPages    int   `json:"totalPages"`
	} `json:"page"`
}

// ItemData 商品响应数据
type ItemData struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Price          int64  `json:"price"`
	RemainingStock int    `json:"remainingStock"`
}

// InventoryData 台账流水响应数据
type InventoryData struct {
	ID        uint   `json:"id"`
	ItemID    uint   `json:"itemId"`
	ItemName  string `json:"itemName"`
	Quantity  int    `json:"quantity"`
	Type      string `json:"type"`
	TypeLabel string `json:"typeLabel"`
}

// SummaryData 台账汇总响应数据
type SummaryData struct {
	ItemID         uint   `json:"itemId"`
	ItemName       string `json:"itemName"`
	TotalTopUp     int    `json:"totalTopUp"`
	TotalWithdraw  int    `json:"totalWithdraw"`
	TopUpCount     int    `json:"topUpCount"`
	WithdrawCount  int    `json:"withdrawCount"`
	RemainingStock int    `json:"remainingStock"`
}

// OrderData 订单响应数据
type OrderData struct {
	OrderNo  string `json:"orderNo"`
	ItemID   uint   `json:"itemId"`
	ItemName string `json:"itemName"`
	Qty      int    `json:"qty"`
	Price    int64  `json:"price"`
}

// RequireServer 检查服务是否启动,不可达时跳过测试
func RequireServer(t *testing.T) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://localhost:8080/ping")
	if err != nil {
		t.Skipf("服务未启动,跳过集成测试: %v", err)
	}
	resp.Body.Close()
}

// doJSON 发送请求并解析统一响应信封
func doJSON(t *testing.T, method, url string, data interface{}) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(raw, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(raw))

	// HTTP状态必须与信封code一致
	require.Equal(t, result.Code, resp.StatusCode, "HTTP状态与响应code不一致")

	return &result
}

// GetJSON 发送GET请求
func GetJSON(t *testing.T, url string) *Response {
	return doJSON(t, http.MethodGet, url, nil)
}

// PostJSON 发送POST请求
func PostJSON(t *testing.T, url string, data interface{}) *Response {
	return doJSON(t, http.MethodPost, url, data)
}

// PutJSON 发送PUT请求
func PutJSON(t *testing.T, url string, data interface{}) *Response {
	return doJSON(t, http.MethodPut, url, data)
}

// DeleteJSON 发送DELETE请求
func DeleteJSON(t *testing.T, url string) *Response {
	return doJSON(t, http.MethodDelete, url, nil)
}

// CreateTestItem 创建测试商品并返回数据
func CreateTestItem(t *testing.T, name string, price int64) ItemData {
	t.Helper()
	resp := PostJSON(t, BaseURL+"/items", map[string]interface{}{
		"name":  name,
		"price": price,
	})
	require.Equal(t, 201, resp.Code, "创建商品应该成功")

	var data ItemData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data
}

// TopUpTestItem 给测试商品入库
func TopUpTestItem(t *testing.T, itemID uint, qty int) {
	t.Helper()
	resp := PostJSON(t, BaseURL+"/inventories", map[string]interface{}{
		"itemId":   itemID,
		"quantity": qty,
		"type":     "T",
	})
	require.Equal(t, 201, resp.Code, "入库应该成功")
}
