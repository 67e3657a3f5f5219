package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/cosmedis/backoffice-go/internal/config"
	appHTTP "github.com/cosmedis/backoffice-go/internal/handler/http"
	"github.com/cosmedis/backoffice-go/internal/pkg/database"
	"github.com/cosmedis/backoffice-go/internal/repository/postgresql"
	commissionService "github.com/cosmedis/backoffice-go/internal/service/commission"
	deliveryService "github.com/cosmedis/backoffice-go/internal/service/delivery"
	employeeService "github.com/cosmedis/backoffice-go/internal/service/employee"
	paymentService "github.com/cosmedis/backoffice-go/internal/service/payment"
	presenceService "github.com/cosmedis/backoffice-go/internal/service/presence"
	productService "github.com/cosmedis/backoffice-go/internal/service/product"
	stockService "github.com/cosmedis/backoffice-go/internal/service/stock"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	presenceRepo := postgresql.NewPresenceRepository(db)
	commissionRepo := postgresql.NewCommissionRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	productRepo := postgresql.NewProductRepository(db)
	stockRepo := postgresql.NewStockRepository(db)
	deliveryRepo := postgresql.NewDeliveryRepository(db)

	calc := paymentService.NewCalculator()

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	presenceSvc := presenceService.NewPresenceService(calc, presenceRepo, employeeRepo)
	commissionSvc := commissionService.NewCommissionService(commissionRepo, employeeRepo, productRepo)
	paymentSvc := paymentService.NewPaymentService(calc, paymentRepo, presenceRepo, employeeRepo)
	productSvc := productService.NewProductService(productRepo)
	stockSvc := stockService.NewStockService(stockRepo, productRepo)
	deliverySvc := deliveryService.NewDeliveryService(deliveryRepo, employeeRepo)

	router := appHTTP.NewRouter(
		cfg,
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewPresenceHandler(presenceSvc),
		appHTTP.NewCommissionHandler(commissionSvc),
		appHTTP.NewPaymentHandler(paymentSvc),
		appHTTP.NewProductHandler(productSvc),
		appHTTP.NewStockHandler(stockSvc),
		appHTTP.NewDeliveryHandler(deliverySvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
