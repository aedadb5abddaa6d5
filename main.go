package main

import (
    "context"
    "fmt"
    "log"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    _ "github.com/go-sql-driver/mysql"
    "github.com/gorilla/mux"

    "payment-authorizenet-api/config"
    "payment-authorizenet-api/database"
    "payment-authorizenet-api/handlers"
    "payment-authorizenet-api/middleware"
    "payment-authorizenet-api/queue"
    "payment-authorizenet-api/services/auth"
    "payment-authorizenet-api/services/email"
    "payment-authorizenet-api/services/payment"
    "payment-authorizenet-api/services/payment/responsecodes"
    "payment-authorizenet-api/worker"
)

func corsMiddleware(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Header().Set("Access-Control-Allow-Origin", "*")
        w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
        w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, X-API-Key")

        if r.Method == "OPTIONS" {
            w.WriteHeader(http.StatusOK)
            return
        }
        next.ServeHTTP(w, r)
    })
}

func main() {
    log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds | log.LUTC)

    cfg, err := config.Load()
    if err != nil {
        log.Fatalf("Failed to load configuration: %v", err)
    }
    log.Printf("Configuration loaded successfully")

    var db *database.Connection
    for retries := 0; retries < 5; retries++ {
        db, err = database.NewConnection(cfg.Database)
        if err == nil {
            break
        }
        retryDelay := time.Duration(retries+1) * time.Second
        log.Printf("Failed to connect to database (attempt %d/5): %v. Retrying in %v...",
            retries+1, err, retryDelay)
        time.Sleep(retryDelay)
    }
    if err != nil {
        log.Fatalf("Failed to connect to database after retries: %v", err)
    }
    defer db.Close()
    log.Println("Successfully connected to database")

    jobQueue, err := queue.NewQueue(cfg.Redis.URL, "payment_jobs")
    if err != nil {
        log.Fatalf("Failed to connect to Redis: %v", err)
    }
    defer jobQueue.Close()
    log.Println("Successfully connected to Redis")

    // The approval code from the public reference table is cached in Redis
    // so every charge does not refetch it.
    codes := responsecodes.NewCachedSource(responsecodes.NewHTTPSource(), jobQueue.Client(), time.Hour)

    paymentService := payment.NewService(
        cfg.AuthNet.APILoginID,
        cfg.AuthNet.TransactionKey,
        cfg.AuthNet.Environment,
        codes,
    )
    emailService := email.NewSMTPService(cfg.SMTP)
    jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.APIKey, cfg.Auth.Issuer)

    workerConcurrency := cfg.Redis.WorkerConcurrency
    if workerConcurrency < 2 {
        workerConcurrency = 2
    } else if workerConcurrency > 8 {
        workerConcurrency = 8
    }

    paymentWorker := worker.NewWorker(jobQueue, db, paymentService, emailService)
    paymentWorker.Start(workerConcurrency)
    defer paymentWorker.Stop()
    log.Printf("Started payment worker with %d threads", workerConcurrency)

    healthHandler := handlers.NewHealthHandler(db, jobQueue.Client())
    authHandler := handlers.NewAuthHandler(jwtService)
    accountHandler := handlers.NewAccountHandler(db)
    profileHandler := handlers.NewCustomerProfileHandler(db, paymentService, jobQueue)
    paymentProfileHandler := handlers.NewPaymentProfileHandler(db, paymentService, cfg)
    chargeHandler := handlers.NewChargeHandler(db, paymentService, jobQueue)
    choicesHandler := handlers.NewChoicesHandler()
    adminHandler := handlers.NewAdminHandler(db, jobQueue)

    rateLimiter := middleware.NewRateLimiter(jobQueue.Client())

    router := mux.NewRouter()
    router.Use(corsMiddleware)
    router.Use(middleware.LoggingMiddleware)
    router.Use(middleware.SecurityHeadersMiddleware)
    router.Use(rateLimiter.RateLimitMiddleware())

    router.HandleFunc("/health", healthHandler.Health).Methods("GET")
    router.HandleFunc("/auth/token", authHandler.Token).Methods("POST", "OPTIONS")

    api := router.PathPrefix("/api/v1").Subrouter()

    api.HandleFunc("/forms/choices", choicesHandler.Choices).Methods("GET", "OPTIONS")
    api.HandleFunc("/forms/token", paymentProfileHandler.NewSubmissionToken).Methods("GET", "OPTIONS")

    api.HandleFunc("/accounts", accountHandler.CreateAccount).Methods("POST", "OPTIONS")
    api.HandleFunc("/accounts/{reference}", accountHandler.GetAccount).Methods("GET", "OPTIONS")

    api.HandleFunc("/accounts/{reference}/profile", profileHandler.CreateProfile).Methods("POST", "OPTIONS")
    api.HandleFunc("/accounts/{reference}/profile", profileHandler.GetProfile).Methods("GET", "OPTIONS")
    api.HandleFunc("/accounts/{reference}/profile", profileHandler.DeleteProfile).Methods("DELETE", "OPTIONS")

    api.HandleFunc("/accounts/{reference}/payment-profiles/card", paymentProfileHandler.CreateCreditCard).Methods("POST", "OPTIONS")
    api.HandleFunc("/accounts/{reference}/payment-profiles/card/{paymentProfileID}", paymentProfileHandler.UpdateCreditCard).Methods("PUT", "OPTIONS")
    api.HandleFunc("/accounts/{reference}/payment-profiles/echeck", paymentProfileHandler.CreateECheck).Methods("POST", "OPTIONS")
    api.HandleFunc("/accounts/{reference}/payment-profiles/echeck/{paymentProfileID}", paymentProfileHandler.UpdateECheck).Methods("PUT", "OPTIONS")
    api.HandleFunc("/accounts/{reference}/payment-profiles/{paymentProfileID}", profileHandler.DeletePaymentProfile).Methods("DELETE", "OPTIONS")

    api.HandleFunc("/accounts/{reference}/charge", chargeHandler.Charge).Methods("POST", "OPTIONS")

    admin := router.PathPrefix("/admin").Subrouter()
    admin.Use(middleware.AuthMiddleware(jwtService))
    admin.HandleFunc("/accounts", adminHandler.ListAccounts).Methods("GET")
    admin.HandleFunc("/accounts/stats", adminHandler.AccountStats).Methods("GET")
    admin.HandleFunc("/jobs/{jobID}/retry", adminHandler.RetryJob).Methods("POST")

    srv := &http.Server{
        Addr:           fmt.Sprintf(":%s", cfg.Server.Port),
        Handler:        router,
        ReadTimeout:    15 * time.Second,
        WriteTimeout:   45 * time.Second,
        IdleTimeout:    120 * time.Second,
        MaxHeaderBytes: 1 << 20,
    }

    go func() {
        log.Printf("Server starting on port %s", cfg.Server.Port)
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            log.Fatalf("Server error: %v", err)
        }
    }()

    stop := make(chan os.Signal, 1)
    signal.Notify(stop, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

    <-stop
    log.Println("Shutdown signal received, gracefully shutting down...")

    shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
    defer shutdownCancel()

    log.Println("Shutting down HTTP server...")
    if err := srv.Shutdown(shutdownCtx); err != nil {
        log.Printf("Server forced to shutdown: %v", err)
    }

    log.Println("Stopping payment worker...")
    paymentWorker.Stop()

    time.Sleep(2 * time.Second)

    log.Println("Closing database connections...")
    db.Close()

    log.Println("Closing Redis connections...")
    jobQueue.Close()

    log.Println("Server exited properly")
}
