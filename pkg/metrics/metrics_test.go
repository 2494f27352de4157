package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()

	if HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal未初始化")
	}
	if HTTPRequestDuration == nil {
		t.Error("HTTPRequestDuration未初始化")
	}
	if HTTPRequestsInProgress == nil {
		t.Error("HTTPRequestsInProgress未初始化")
	}
	if OrdersCreatedTotal == nil {
		t.Error("OrdersCreatedTotal未初始化")
	}
	if OrdersRejectedTotal == nil {
		t.Error("OrdersRejectedTotal未初始化")
	}
	if LedgerEntriesTotal == nil {
		t.Error("LedgerEntriesTotal未初始化")
	}
}

// TestInitMetricsIdempotent 重复初始化不应panic(promauto重复注册会panic)
func TestInitMetricsIdempotent(t *testing.T) {
	InitMetrics()
	InitMetrics()
}

// TestCounterVec 测试带标签计数器
func TestCounterVec(t *testing.T) {
	InitMetrics()

	before := testutil.ToFloat64(LedgerEntriesTotal.WithLabelValues("W"))

	LedgerEntriesTotal.WithLabelValues("W").Inc()
	LedgerEntriesTotal.WithLabelValues("W").Inc()
	LedgerEntriesTotal.WithLabelValues("T").Inc()

	if got := testutil.ToFloat64(LedgerEntriesTotal.WithLabelValues("W")); got != before+2 {
		t.Errorf("W计数错误: expected=%f, got=%f", before+2, got)
	}
}

// TestGauge 测试瞬时值增减
func TestGauge(t *testing.T) {
	InitMetrics()

	before := testutil.ToFloat64(HTTPRequestsInProgress)
	HTTPRequestsInProgress.Inc()
	HTTPRequestsInProgress.Inc()
	HTTPRequestsInProgress.Dec()

	if got := testutil.ToFloat64(HTTPRequestsInProgress); got != before+1 {
		t.Errorf("Gauge值错误: expected=%f, got=%f", before+1, got)
	}
}
