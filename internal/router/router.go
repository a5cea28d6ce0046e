package router

import (
	"github.com/gin-gonic/gin"

	"resale_ops_v1_202609/internal/controller"
	"resale_ops_v1_202609/internal/middleware"
)

// Controllers 路由依赖的全部控制器
type Controllers struct {
	Item     *controller.ItemController
	Deal     *controller.DealController
	Buying   *controller.BuyingController
	Order    *controller.OrderController
	Shipment *controller.ShipmentController
	Listing  *controller.ListingController
	Settings *controller.SettingsController
	Toast    *controller.ToastController
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine, ctls *Controllers) {
	r.Use(middleware.RequestLog())

	api := r.Group("/api")
	{
		// items 库存
		items := api.Group("/items")
		{
			items.GET("", ctls.Item.GetItems)
			items.GET("/stats", ctls.Item.GetStats)
			items.POST("", ctls.Item.CreateItem)
			items.POST("/refresh", middleware.RefreshRateLimit("items", 0), ctls.Item.RefreshItems)
			items.PATCH("/filters", ctls.Item.SetFilters)
			items.PUT("/selection", ctls.Item.SetSelection)
			items.GET("/:id", ctls.Item.GetItem)
			items.PATCH("/:id", ctls.Item.UpdateItem)
			items.DELETE("/:id", ctls.Item.DeleteItem)
			items.POST("/:id/toggle-selection", ctls.Item.ToggleSelection)
		}

		// deals 捡漏
		deals := api.Group("/deals")
		{
			deals.GET("", ctls.Deal.GetDeals)
			deals.GET("/pending", ctls.Deal.GetPendingDeals)
			deals.POST("/refresh", middleware.RefreshRateLimit("deals", 0), ctls.Deal.RefreshDeals)
			deals.PATCH("/filters", ctls.Deal.SetFilters)
			deals.PUT("/view-mode", ctls.Deal.SetViewMode)
			deals.POST("/:id/approve", ctls.Deal.ApproveDeal)
			deals.POST("/:id/reject", ctls.Deal.RejectDeal)
		}

		// buying 采购：监控搜索 + 采购单
		buying := api.Group("/buying")
		{
			buying.GET("/queries", ctls.Buying.GetQueries)
			buying.POST("/queries", ctls.Buying.CreateQuery)
			buying.PATCH("/queries/:id", ctls.Buying.UpdateQuery)
			buying.DELETE("/queries/:id", ctls.Buying.DeleteQuery)
			buying.GET("/purchases", ctls.Buying.GetPurchases)
			buying.PUT("/purchases/:id/status", ctls.Buying.UpdatePurchaseStatus)
		}

		// orders 订单
		orders := api.Group("/orders")
		{
			orders.GET("", ctls.Order.GetOrders)
			orders.POST("", ctls.Order.CreateOrder)
			orders.POST("/refresh", middleware.RefreshRateLimit("orders", 0), ctls.Order.RefreshOrders)
			orders.PATCH("/filters", ctls.Order.SetFilters)
			orders.GET("/:id", ctls.Order.GetOrder)
			orders.PATCH("/:id", ctls.Order.UpdateOrder)
			orders.PUT("/:id/status", ctls.Order.UpdateOrderStatus)
			orders.DELETE("/:id", ctls.Order.DeleteOrder)
		}

		// shipments 发货
		shipments := api.Group("/shipments")
		{
			shipments.GET("", ctls.Shipment.GetShipments)
			shipments.POST("/print", ctls.Shipment.PrintLabel)
			shipments.POST("/refresh", middleware.RefreshRateLimit("shipments", 0), ctls.Shipment.RefreshShipments)
			shipments.PATCH("/filters", ctls.Shipment.SetFilters)
			shipments.PUT("/printer", ctls.Shipment.SelectPrinter)
			shipments.POST("/:id/retry", ctls.Shipment.RetryPrint)
			shipments.DELETE("/:id", ctls.Shipment.DeleteShipment)
		}

		// listings 上架
		listings := api.Group("/listings")
		{
			listings.GET("", ctls.Listing.GetListings)
			listings.POST("/refresh", middleware.RefreshRateLimit("listings", 0), ctls.Listing.RefreshListings)
			listings.POST("/drafts", ctls.Listing.SaveDraft)
			listings.PATCH("/drafts/:id", ctls.Listing.UpdateDraft)
			listings.POST("/drafts/:id/publish", ctls.Listing.PublishDraft)
			listings.DELETE("/drafts/:id", ctls.Listing.DeleteDraft)
		}

		// settings 偏好
		settings := api.Group("/settings")
		{
			settings.GET("", ctls.Settings.GetSettings)
			settings.PUT("/dark-mode", ctls.Settings.SetDarkMode)
			settings.POST("/dark-mode/toggle", ctls.Settings.ToggleDarkMode)
			settings.PUT("/sidebar", ctls.Settings.SetSidebar)
			settings.PATCH("/print", ctls.Settings.SetPrintSettings)
			settings.POST("/views", ctls.Settings.SaveView)
			settings.PUT("/views/:id", ctls.Settings.UpdateView)
			settings.DELETE("/views/:id", ctls.Settings.DeleteView)
		}

		// menus 菜单
		menus := api.Group("/menus")
		{
			menus.GET("/active", ctls.Settings.GetActiveMenu)
			menus.PUT("/active", ctls.Settings.SetActiveMenu)
		}

		// toasts 通知
		toasts := api.Group("/toasts")
		{
			toasts.GET("", ctls.Toast.GetToasts)
			toasts.POST("", ctls.Toast.ShowToast)
			toasts.DELETE("", ctls.Toast.ClearToasts)
			toasts.DELETE("/:id", ctls.Toast.DismissToast)
		}
	}
}
