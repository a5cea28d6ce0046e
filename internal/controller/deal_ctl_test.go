package controller

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"resale_ops_v1_202609/internal/service"
	"resale_ops_v1_202609/internal/store"
)

// ==================== 测试辅助 ====================

func setupDealCtlRouter() (*gin.Engine, *store.Store) {
	gin.SetMode(gin.TestMode)

	st := store.New()
	dealSvc := service.NewDealService(st.Deals, st.Buying, st.Toasts, time.Millisecond)
	dealCtl := NewDealController(st.Deals, dealSvc)
	buyingCtl := NewBuyingController(st.Buying, dealSvc)

	r := gin.New()
	api := r.Group("/api")
	deals := api.Group("/deals")
	{
		deals.GET("", dealCtl.GetDeals)
		deals.GET("/pending", dealCtl.GetPendingDeals)
		deals.PATCH("/filters", dealCtl.SetFilters)
		deals.PUT("/view-mode", dealCtl.SetViewMode)
		deals.POST("/:id/approve", dealCtl.ApproveDeal)
		deals.POST("/:id/reject", dealCtl.RejectDeal)
	}
	buying := api.Group("/buying")
	{
		buying.GET("/purchases", buyingCtl.GetPurchases)
		buying.PUT("/purchases/:id/status", buyingCtl.UpdatePurchaseStatus)
	}
	return r, st
}

// ==================== 审核 ====================

func TestDealCtlApproveCreatesPurchase(t *testing.T) {
	r, st := setupDealCtlRouter()

	w := doJSON(r, http.MethodPost, "/api/deals/3/approve", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(0), resp["code"])

	data := resp["data"].(map[string]any)
	deal := data["deal"].(map[string]any)
	purchase := data["purchase"].(map[string]any)
	assert.Equal(t, "approved", deal["status"])
	assert.Equal(t, "Vintage Band T-Shirt", purchase["title"])
	assert.Equal(t, float64(12), purchase["price"])
	assert.Equal(t, "vintage_collector", purchase["seller"])
	assert.Equal(t, "pending_purchase", purchase["status"])

	assert.Len(t, st.Buying.Purchases(), 1)
}

func TestDealCtlApproveUnknownDeal(t *testing.T) {
	r, _ := setupDealCtlRouter()

	w := doJSON(r, http.MethodPost, "/api/deals/missing/approve", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDealCtlReject(t *testing.T) {
	r, st := setupDealCtlRouter()

	w := doJSON(r, http.MethodPost, "/api/deals/2/reject", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, st.Buying.Purchases())

	w = doJSON(r, http.MethodPost, "/api/deals/missing/reject", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ==================== 采购状态 ====================

func TestDealCtlPurchaseStatusRoundTrip(t *testing.T) {
	r, st := setupDealCtlRouter()

	doJSON(r, http.MethodPost, "/api/deals/1/approve", nil)
	purchase := st.Buying.Purchases()[0]

	w := doJSON(r, http.MethodPut, "/api/buying/purchases/"+purchase.ID+"/status", gin.H{
		"status":   "shipped",
		"tracking": "RM987654321",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	got := st.Buying.Purchases()[0]
	assert.Equal(t, "shipped", string(got.Status))
	assert.Equal(t, "RM987654321", got.TrackingNumber)
}

func TestDealCtlPurchaseStatusRejectsUnknownEnum(t *testing.T) {
	r, _ := setupDealCtlRouter()

	w := doJSON(r, http.MethodPut, "/api/buying/purchases/p1/status", gin.H{"status": "teleported"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ==================== 列表与视图 ====================

func TestDealCtlGetDealsIncludesDerivedFields(t *testing.T) {
	r, _ := setupDealCtlRouter()

	w := doJSON(r, http.MethodGet, "/api/deals", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	deals := data["deals"].([]any)
	assert.Len(t, deals, 3)
	assert.Equal(t, "cards", data["viewMode"])

	// 派生字段随响应返回
	first := deals[0].(map[string]any)
	assert.Contains(t, first, "marginPct")
	assert.Contains(t, first, "estimatedProfit")
}

func TestDealCtlViewModeValidation(t *testing.T) {
	r, st := setupDealCtlRouter()

	w := doJSON(r, http.MethodPut, "/api/deals/view-mode", gin.H{"mode": "table"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "table", st.Deals.ViewMode())

	w = doJSON(r, http.MethodPut, "/api/deals/view-mode", gin.H{"mode": "grid"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "table", st.Deals.ViewMode())
}
