package main

import (
	"context"
	"log"

	"github.com/DonIsaac10/Sistema-POS/internal/application/service"
	"github.com/DonIsaac10/Sistema-POS/internal/config"
	"github.com/DonIsaac10/Sistema-POS/internal/infrastructure/database"
	"github.com/DonIsaac10/Sistema-POS/internal/infrastructure/repository"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/handler"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/routes"
	"github.com/DonIsaac10/Sistema-POS/pkg/printer"
	"github.com/DonIsaac10/Sistema-POS/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.SeedDefaultData(db); err != nil {
		log.Fatalf("Failed to seed default data: %v", err)
	}

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	receiptPrinter, err := printer.NewPrinterFromConfig(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		log.Printf("Printer unavailable, receipts will not print: %v", err)
		receiptPrinter = printer.NewNullPrinter()
	}
	defer receiptPrinter.Close()

	// Repositories
	customerRepo := repository.NewCustomerRepository(db)
	stylistRepo := repository.NewStylistRepository(db)
	cashierRepo := repository.NewCashierRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	payrollRepo := repository.NewPayrollRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Services
	authService := service.NewAuthService(cashierRepo, jwtManager)
	posService := service.NewPosService(settingsRepo, couponRepo, customerRepo, catalogRepo, stylistRepo, orderRepo, snapshotRepo)
	orderService := service.NewOrderService(orderRepo, receiptPrinter, cfg.Printer.Width)
	customerService := service.NewCustomerService(customerRepo)
	stylistService := service.NewStylistService(stylistRepo)
	catalogService := service.NewCatalogService(catalogRepo)
	couponService := service.NewCouponService(couponRepo)
	payrollService := service.NewPayrollService(payrollRepo, stylistRepo, orderRepo, settingsRepo)
	reportService := service.NewReportService(orderRepo, expenseRepo, purchaseRepo, payrollRepo)
	expenseService := service.NewExpenseService(expenseRepo)
	purchaseService := service.NewPurchaseService(purchaseRepo, supplierRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	// Recover the open ticket from the last crash, if any
	if err := posService.RestoreSnapshot(context.Background()); err != nil {
		log.Printf("Failed to restore ticket snapshot: %v", err)
	}

	// Periodic snapshot of the open ticket
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Autosave.Spec, func() {
		if err := posService.SaveSnapshot(context.Background()); err != nil {
			log.Printf("Failed to save ticket snapshot: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule ticket autosave: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Pos:      handler.NewPosHandler(posService),
		Order:    handler.NewOrderHandler(orderService),
		Customer: handler.NewCustomerHandler(customerService),
		Stylist:  handler.NewStylistHandler(stylistService),
		Catalog:  handler.NewCatalogHandler(catalogService),
		Coupon:   handler.NewCouponHandler(couponService),
		Payroll:  handler.NewPayrollHandler(payrollService),
		Report:   handler.NewReportHandler(reportService),
		Expense:  handler.NewExpenseHandler(expenseService),
		Purchase: handler.NewPurchaseHandler(purchaseService, supplierService),
		Settings: handler.NewSettingsHandler(settingsService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	log.Printf("Starting %s on port %s", cfg.App.Name, cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
