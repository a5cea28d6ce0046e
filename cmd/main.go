package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"resale_ops_v1_202609/internal/controller"
	"resale_ops_v1_202609/internal/repository"
	"resale_ops_v1_202609/internal/router"
	"resale_ops_v1_202609/internal/service"
	"resale_ops_v1_202609/internal/store"
	"resale_ops_v1_202609/internal/task"
	"resale_ops_v1_202609/pkg/database"
	"resale_ops_v1_202609/pkg/utils"
)

func main() {
	// 1. 加载环境变量
	utils.LoadEnv()

	// 2. 初始化数据库
	db := initDatabase()

	// 3. 初始化依赖
	deps := initDependencies(db)

	// 4. 回放持久化的偏好
	if err := deps.Services.Settings.Initialize(context.Background()); err != nil {
		log.Printf("警告: 偏好回放失败: %v", err)
	}

	// 5. 启动定时任务
	tm := initTasks(deps)
	defer tm.Stop()
	defer deps.Services.Shipment.Close()
	defer deps.Store.Close()

	// 6. 初始化路由
	r := gin.New()
	r.Use(gin.Recovery())
	router.InitRoutes(r, deps.Controllers)

	// 7. 启动服务
	startServer(r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Store       *store.Store
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	Preference repository.PreferenceRepository
	SavedView  repository.SavedViewRepository
}

// Services 服务集合
type Services struct {
	Item     *service.ItemService
	Deal     *service.DealService
	Order    *service.OrderService
	Shipment *service.ShipmentService
	Listing  *service.ListingService
	Settings *service.SettingsService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化偏好数据库
func initDatabase() *gorm.DB {
	return database.InitDB(
		utils.GetEnv("PREFS_DB_PATH", "prefs.db"),
		&repository.Preference{},
		&repository.SavedViewRecord{},
	)
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// -------- 状态树 --------
	st := store.New()

	// -------- Repo 层 --------
	repos := &Repositories{
		Preference: repository.NewPreferenceRepository(db),
		SavedView:  repository.NewSavedViewRepository(db),
	}

	// -------- 业务服务 --------
	services := &Services{
		Item:  service.NewItemService(st.Items, utils.GetEnvMillis("ITEMS_FETCH_DELAY_MS", 1000)),
		Deal:  service.NewDealService(st.Deals, st.Buying, st.Toasts, utils.GetEnvMillis("DEALS_FETCH_DELAY_MS", 800)),
		Order: service.NewOrderService(st.Orders, utils.GetEnvMillis("ORDERS_FETCH_DELAY_MS", 600)),
		Shipment: service.NewShipmentService(
			st.Shipments, st.Toasts,
			utils.GetEnvMillis("SHIPMENTS_FETCH_DELAY_MS", 400),
			utils.GetEnvMillis("LABEL_PRINT_DELAY_MS", 2000),
			utils.GetEnvMillis("LABEL_RETRY_DELAY_MS", 1500),
		),
		Listing:  service.NewListingService(st.Listings, utils.GetEnvMillis("LISTINGS_FETCH_DELAY_MS", 500)),
		Settings: service.NewSettingsService(st.Settings, repos.Preference, repos.SavedView, nil),
	}

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Item:     controller.NewItemController(st.Items, services.Item),
		Deal:     controller.NewDealController(st.Deals, services.Deal),
		Buying:   controller.NewBuyingController(st.Buying, services.Deal),
		Order:    controller.NewOrderController(st.Orders, services.Order),
		Shipment: controller.NewShipmentController(st.Shipments, services.Shipment),
		Listing:  controller.NewListingController(st.Listings, services.Listing),
		Settings: controller.NewSettingsController(services.Settings, st.Menus),
		Toast:    controller.NewToastController(st.Toasts),
	}

	return &Dependencies{
		DB:          db,
		Store:       st,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(deps *Dependencies) *task.TaskManager {
	cfg := task.DefaultConfig()
	cfg.LabelSweepMaxAge = utils.GetEnvMillis("LABEL_SWEEP_MAX_AGE_MS", 60000)

	tm := task.NewTaskManager(&task.TaskManagerDeps{
		Deals:     deps.Store.Deals,
		Buying:    deps.Store.Buying,
		Shipments: deps.Store.Shipments,
		Toasts:    deps.Store.Toasts,
	}, cfg)
	tm.Start()
	return tm
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine) {
	port := utils.GetEnv("SERVER_PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭，最多等待 10 秒
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}
