package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"resale_ops_v1_202609/internal/model"
	"resale_ops_v1_202609/internal/service"
	"resale_ops_v1_202609/internal/store"
)

// ==================== 测试辅助 ====================

func setupItemCtlRouter() (*gin.Engine, *store.ItemStore) {
	gin.SetMode(gin.TestMode)

	st := store.NewItemStore()
	svc := service.NewItemService(st, time.Millisecond)
	ctl := NewItemController(st, svc)

	r := gin.New()
	api := r.Group("/api")
	items := api.Group("/items")
	{
		items.GET("", ctl.GetItems)
		items.GET("/stats", ctl.GetStats)
		items.POST("", ctl.CreateItem)
		items.PATCH("/filters", ctl.SetFilters)
		items.GET("/:id", ctl.GetItem)
		items.PATCH("/:id", ctl.UpdateItem)
		items.DELETE("/:id", ctl.DeleteItem)
	}
	return r, st
}

func testCtlItem(title string) model.Item {
	return model.Item{
		Title:     title,
		Condition: model.ConditionGood,
		Source:    model.SourceVinted,
		BuyPrice:  100,
		Status:    model.ItemStatusInStock,
	}
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ==================== 创建 ====================

func TestItemCtlCreate(t *testing.T) {
	r, st := setupItemCtlRouter()

	w := doJSON(r, http.MethodPost, "/api/items", gin.H{
		"title":     "iPhone 13",
		"condition": "good",
		"source":    "vinted",
		"buyPrice":  120.0,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(0), resp["code"])
	assert.Equal(t, "success", resp["message"])

	data := resp["data"].(map[string]any)
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, "in_stock", data["status"]) // 默认状态

	assert.Len(t, st.All(), 1)
}

func TestItemCtlCreateRejectsUnknownEnum(t *testing.T) {
	r, st := setupItemCtlRouter()

	w := doJSON(r, http.MethodPost, "/api/items", gin.H{
		"title":     "iPhone 13",
		"condition": "mint", // 非法成色
		"source":    "vinted",
		"buyPrice":  120.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, st.All())
}

// ==================== 查询 ====================

func TestItemCtlGetListAndFilters(t *testing.T) {
	r, _ := setupItemCtlRouter()

	doJSON(r, http.MethodPost, "/api/items", gin.H{
		"title": "iPhone 13", "condition": "good", "source": "vinted", "buyPrice": 120.0,
	})
	doJSON(r, http.MethodPost, "/api/items", gin.H{
		"title": "Galaxy S21", "condition": "fair", "source": "facebook", "buyPrice": 90.0,
	})

	w := doJSON(r, http.MethodPatch, "/api/items/filters", gin.H{"search": "iphone"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/items", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	assert.Len(t, data["items"].([]any), 1)
	assert.Equal(t, float64(2), data["total"]) // total 不受筛选影响
}

func TestItemCtlGetUnknownItem(t *testing.T) {
	r, _ := setupItemCtlRouter()

	w := doJSON(r, http.MethodGet, "/api/items/item-missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ==================== 更新与删除 ====================

func TestItemCtlUpdate(t *testing.T) {
	r, st := setupItemCtlRouter()
	created := st.Create(testCtlItem("before"))

	w := doJSON(r, http.MethodPatch, "/api/items/"+created.ID, gin.H{"title": "after"})
	assert.Equal(t, http.StatusOK, w.Code)

	got, _ := st.ByID(created.ID)
	assert.Equal(t, "after", got.Title)
}

func TestItemCtlUpdateUnknownItem(t *testing.T) {
	r, _ := setupItemCtlRouter()

	w := doJSON(r, http.MethodPatch, "/api/items/item-missing", gin.H{"title": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItemCtlDeleteIsIdempotent(t *testing.T) {
	r, st := setupItemCtlRouter()
	created := st.Create(testCtlItem("gone"))

	w := doJSON(r, http.MethodDelete, "/api/items/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// 再删一次仍然 200
	w = doJSON(r, http.MethodDelete, "/api/items/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, st.All())
}

// ==================== 统计 ====================

func TestItemCtlStats(t *testing.T) {
	r, st := setupItemCtlRouter()
	st.Create(testCtlItem("a"))
	st.Create(testCtlItem("b"))

	w := doJSON(r, http.MethodGet, "/api/items/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	assert.Equal(t, float64(200), data["totalBuyValue"])
}
