package router

import (
	"budgetbook/api"
	"budgetbook/config"
	"budgetbook/database"
	_ "budgetbook/docs"
	"budgetbook/middleware"
	"budgetbook/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ledger := service.NewLedger(database.DB)

	v1 := r.Group("/api/v1")
	{
		// 认证相关路由（无需登录）
		authHandler := api.NewAuthHandler(cfg)
		loginLimit := middleware.LoginRateLimit(cfg.Auth.LoginAttempts, cfg.Auth.LoginWindow())
		auth := v1.Group("/auth")
		{
			auth.POST("/register", loginLimit, authHandler.Register)
			auth.POST("/login", loginLimit, authHandler.Login)
			auth.POST("/confirm", authHandler.Confirm)
			auth.POST("/resend-code", authHandler.ResendCode)
		}

		// 支出类别（无需登录）
		v1.GET("/categories", api.NewCategoryHandler().List)

		// 需要 JWT 认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			authorized.GET("/auth/profile", authHandler.GetProfile)
			authorized.POST("/auth/logout", authHandler.Logout)

			incomeHandler := api.NewIncomeHandler(ledger)
			incomes := authorized.Group("/incomes")
			{
				incomes.GET("", incomeHandler.List)
				incomes.POST("", incomeHandler.Create)
				incomes.DELETE("/:id", incomeHandler.Delete)
			}

			expenseHandler := api.NewExpenseHandler(ledger)
			expenses := authorized.Group("/expenses")
			{
				expenses.GET("", expenseHandler.List)
				expenses.POST("", expenseHandler.Create)
				expenses.GET("/summary", expenseHandler.Summary)
				expenses.DELETE("/:id", expenseHandler.Delete)
			}

			budgetHandler := api.NewBudgetHandler(ledger)
			budgets := authorized.Group("/budgets")
			{
				budgets.GET("", budgetHandler.List)
				budgets.POST("", budgetHandler.Create)
				budgets.GET("/report", budgetHandler.Report)
				budgets.GET("/available-categories", budgetHandler.AvailableCategories)
				budgets.DELETE("/:id", budgetHandler.Delete)
			}

			dashboardHandler := api.NewDashboardHandler(ledger, cfg.Dashboard.RecentLimit)
			dashboard := authorized.Group("/dashboard")
			{
				dashboard.GET("/totals", dashboardHandler.Totals)
				dashboard.GET("/recent", dashboardHandler.Recent)
			}

			authorized.POST("/sample-data", api.NewSampleDataHandler(ledger).Seed)

			exportHandler := api.NewExportHandler(ledger)
			export := authorized.Group("/export")
			{
				export.GET("/csv", exportHandler.ExportCSV)
				export.GET("/excel", exportHandler.ExportExcel)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID, Content-Disposition")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
