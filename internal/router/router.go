package router

import (
	"net/http"
	"time"

	"github.com/naraphan13/saijaitham-durian-backend/internal/config"
	"github.com/naraphan13/saijaitham-durian-backend/internal/handler"
	"github.com/naraphan13/saijaitham-durian-backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Setup configures the Gin engine with all v1 route groups.
func Setup(cfg *config.Config, db *gorm.DB, log *zap.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(cfg.Server.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.Server.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	corsCfg.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsCfg))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	v1 := r.Group("/v1")
	assets := cfg.Assets

	authHandler := handler.NewAuthHandler(db, cfg.JWT.Secret, cfg.JWT.ExpireHours, cfg.Security.BcryptCost)
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", middleware.Auth(cfg.JWT.Secret, db), authHandler.Me)

	billHandler := handler.NewBillHandler(db, assets)
	bills := v1.Group("/bills")
	bills.POST("", billHandler.Create)
	bills.GET("", billHandler.List)
	bills.GET("/summary/data", billHandler.Summary)
	bills.GET("/summary/xlsx", billHandler.SummaryXLSX)
	bills.GET("/:id", billHandler.Get)
	bills.PUT("/:id", billHandler.Update)
	bills.DELETE("/:id", billHandler.Delete)
	bills.GET("/:id/pdf", billHandler.PDF)

	sellHandler := handler.NewSellHandler(db, assets)
	sells := v1.Group("/sellbills")
	sells.POST("", sellHandler.Create)
	sells.GET("", sellHandler.List)
	sells.GET("/:id", sellHandler.Get)
	sells.PUT("/:id", sellHandler.Update)
	sells.DELETE("/:id", sellHandler.Delete)
	sells.GET("/:id/pdf", sellHandler.PDF)

	cuttingHandler := handler.NewCuttingHandler(db, assets)
	cuttings := v1.Group("/cuttingbills")
	cuttings.POST("", cuttingHandler.Create)
	cuttings.GET("", cuttingHandler.List)
	cuttings.GET("/:id", cuttingHandler.Get)
	cuttings.PUT("/:id", cuttingHandler.Update)
	cuttings.DELETE("/:id", cuttingHandler.Delete)
	cuttings.GET("/:id/pdf", cuttingHandler.PDF)

	serviceHandler := handler.NewServiceHandler(db, assets)
	dips := v1.Group("/chemicaldip")
	dips.POST("", serviceHandler.CreateChemicalDip)
	dips.GET("", serviceHandler.ListChemicalDips)
	dips.GET("/:id", serviceHandler.GetChemicalDip)
	dips.PUT("/:id", serviceHandler.UpdateChemicalDip)
	dips.DELETE("/:id", serviceHandler.DeleteChemicalDip)
	dips.GET("/:id/pdf", serviceHandler.ChemicalDipPDF)

	loadings := v1.Group("/containerloading")
	loadings.POST("", serviceHandler.CreateContainerLoading)
	loadings.GET("", serviceHandler.ListContainerLoadings)
	loadings.GET("/:id", serviceHandler.GetContainerLoading)
	loadings.PUT("/:id", serviceHandler.UpdateContainerLoading)
	loadings.DELETE("/:id", serviceHandler.DeleteContainerLoading)
	loadings.GET("/:id/pdf", serviceHandler.ContainerLoadingPDF)

	packings := v1.Group("/packing")
	packings.POST("", serviceHandler.CreatePacking)
	packings.GET("", serviceHandler.ListPackings)
	packings.GET("/:id", serviceHandler.GetPacking)
	packings.PUT("/:id", serviceHandler.UpdatePacking)
	packings.DELETE("/:id", serviceHandler.DeletePacking)
	packings.GET("/:id/pdf", serviceHandler.PackingPDF)

	payrollHandler := handler.NewPayrollHandler(db, assets)
	payrolls := v1.Group("/payroll")
	payrolls.POST("", payrollHandler.Create)
	payrolls.GET("", payrollHandler.List)
	payrolls.GET("/:id", payrollHandler.Get)
	payrolls.PUT("/:id", payrollHandler.Update)
	payrolls.DELETE("/:id", payrollHandler.Delete)
	payrolls.GET("/:id/pdf", payrollHandler.PDF)

	financeHandler := handler.NewDailyFinanceHandler(db, assets)
	finance := v1.Group("/dailyfinance")
	finance.POST("", financeHandler.Create)
	finance.GET("", financeHandler.List)
	finance.GET("/monthlypdf", financeHandler.MonthlyPDF)
	finance.GET("/:id", financeHandler.Get)
	finance.PUT("/:id", financeHandler.Update)
	finance.DELETE("/:id", financeHandler.Delete)
	finance.PATCH("/:id/add-income", financeHandler.AddIncome)
	finance.PATCH("/:id/add-expense", financeHandler.AddExpense)
	finance.PATCH("/incomenote/:id", financeHandler.UpdateIncomeNote)
	finance.DELETE("/incomenote/:id", financeHandler.DeleteIncomeNote)
	finance.PATCH("/expensenote/:id", financeHandler.UpdateExpenseNote)
	finance.DELETE("/expensenote/:id", financeHandler.DeleteExpenseNote)
	finance.GET("/:id/pdf", financeHandler.PDF)

	exportHandler := handler.NewExportHandler(db, assets, log)
	exports := v1.Group("/export")
	exports.POST("", exportHandler.Create)
	exports.GET("", exportHandler.List)
	exports.POST("/exportpdf", exportHandler.InvoicePDF)
	exports.GET("/summarypdf", exportHandler.SeasonSummaryPDF)
	exports.GET("/:id", exportHandler.Get)
	exports.PUT("/:id", exportHandler.Update)
	exports.DELETE("/:id", exportHandler.Delete)

	seasonHandler := handler.NewSeasonHandler(db)
	seasons := v1.Group("/seasons")
	seasons.POST("", seasonHandler.Create)
	seasons.GET("", seasonHandler.List)
	seasons.PUT("/:id", seasonHandler.Update)
	seasons.DELETE("/:id", seasonHandler.Delete)

	calcHandler := handler.NewCalculateHandler(db)
	calculate := v1.Group("/calculate")
	calculate.POST("", calcHandler.Calculate)
	calculate.GET("", calcHandler.ListHistory)
	calculate.POST("/history", calcHandler.CreateHistory)
	calculate.GET("/:id", calcHandler.GetHistory)
	calculate.PUT("/:id", calcHandler.UpdateHistory)
	calculate.DELETE("/:id", calcHandler.DeleteHistory)

	return r
}
