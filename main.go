package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	authsvc "github.com/natenaltsega2225/AbeGarage-Backend/auth/service"
	catalogrepo "github.com/natenaltsega2225/AbeGarage-Backend/catalog/repository"
	catalogsvc "github.com/natenaltsega2225/AbeGarage-Backend/catalog/service"
	customerrepo "github.com/natenaltsega2225/AbeGarage-Backend/customer/repository"
	customersvc "github.com/natenaltsega2225/AbeGarage-Backend/customer/service"
	employeerepo "github.com/natenaltsega2225/AbeGarage-Backend/employee/repository"
	employeesvc "github.com/natenaltsega2225/AbeGarage-Backend/employee/service"
	api "github.com/natenaltsega2225/AbeGarage-Backend/handler"
	"github.com/natenaltsega2225/AbeGarage-Backend/middleware"
	orderrepo "github.com/natenaltsega2225/AbeGarage-Backend/order/repository"
	ordersvc "github.com/natenaltsega2225/AbeGarage-Backend/order/service"
	"github.com/natenaltsega2225/AbeGarage-Backend/realtime"
	vehiclerepo "github.com/natenaltsega2225/AbeGarage-Backend/vehicle/repository"
	vehiclesvc "github.com/natenaltsega2225/AbeGarage-Backend/vehicle/service"
)

func newLogger() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if getEnv("APP_ENV", "development") == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func main() {
	_ = godotenv.Load()

	log := newLogger()

	db, err := setupDatabase()
	if err != nil {
		log.Fatal().Err(err).Msg("database setup failed")
	}

	hub := realtime.NewHub(log)

	customerRepo := customerrepo.NewGormCustomerRepo(db)
	customerService := customersvc.NewCustomerService(customerRepo)
	customerHandler := api.NewCustomerHandler(customerService)

	orderRepo := orderrepo.NewGormOrderRepo(db)
	orderService := ordersvc.NewOrderService(orderRepo, customerRepo, hub)
	orderHandler := api.NewOrderHandler(orderService)

	vehicleRepo := vehiclerepo.NewGormVehicleRepo(db)
	vehicleService := vehiclesvc.NewVehicleService(vehicleRepo, customerRepo)
	vehicleHandler := api.NewVehicleHandler(vehicleService)

	catalogRepo := catalogrepo.NewGormCatalogRepo(db)
	catalogService := catalogsvc.NewCatalogService(catalogRepo)
	catalogHandler := api.NewCatalogHandler(catalogService)

	employeeRepo := employeerepo.NewGormEmployeeRepo(db)
	employeeService := employeesvc.NewEmployeeService(employeeRepo)
	employeeHandler := api.NewEmployeeHandler(employeeService)

	authService := authsvc.NewAuthService(employeeRepo)
	authHandler := api.NewAuthHandler(authService)

	wsHandler := api.NewWSHandler(hub)

	if getEnv("APP_ENV", "development") != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/login", authHandler.Login())

		authed := apiGroup.Group("", middleware.RequireAuth())
		{
			authed.POST("/customer", customerHandler.RegisterCustomer())
			authed.GET("/customer/:hash", customerHandler.GetCustomer())
			authed.PUT("/customer/:hash", customerHandler.UpdateCustomer())

			authed.GET("/orders", orderHandler.ListOrders())
			authed.POST("/order", orderHandler.CreateOrder())
			authed.PUT("/order/:id/complete", orderHandler.CompleteOrder())
			authed.PUT("/order/:id/service/:itemID/complete", orderHandler.MarkServiceCompleted())

			authed.POST("/vehicle", vehicleHandler.AddVehicle())
			authed.GET("/vehicles/:hash", vehicleHandler.ListCustomerVehicles())
			authed.GET("/vehicle/:id", vehicleHandler.GetVehicle())
			authed.PUT("/vehicle/:id", vehicleHandler.UpdateVehicle())

			authed.GET("/services", catalogHandler.ListServices())

			authed.GET("/ws/orders", wsHandler.EmployeeSocket())

			admin := authed.Group("", middleware.RequireRoles("admin"))
			{
				admin.GET("/customers", customerHandler.ListCustomers())
				admin.DELETE("/customer/:hash", customerHandler.DeactivateCustomer())

				admin.POST("/service", catalogHandler.AddService())
				admin.PUT("/service/:id", catalogHandler.UpdateService())

				admin.POST("/admin/employee", employeeHandler.RegisterEmployee())
				admin.GET("/employees", employeeHandler.ListEmployees())
				admin.GET("/employee/:id", employeeHandler.GetEmployee())
				admin.PUT("/employee/:id", employeeHandler.UpdateEmployee())
				admin.DELETE("/admin/employee/:id", employeeHandler.DeleteEmployee())
			}
		}
	}

	srv := &http.Server{
		Addr:    ":" + getEnv("PORT", "8080"),
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
