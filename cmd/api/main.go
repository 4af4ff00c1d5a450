package main

import (
	"context"
	"log"
	"net/http"

	"github.com/KromaEnergia/api-contracts/internal/alerts"
	"github.com/KromaEnergia/api-contracts/internal/auth"
	"github.com/KromaEnergia/api-contracts/internal/category"
	"github.com/KromaEnergia/api-contracts/internal/config"
	"github.com/KromaEnergia/api-contracts/internal/contract"
	"github.com/KromaEnergia/api-contracts/internal/contractfield"
	"github.com/KromaEnergia/api-contracts/internal/dashboard"
	"github.com/KromaEnergia/api-contracts/internal/files"
	"github.com/KromaEnergia/api-contracts/internal/logger"
	"github.com/KromaEnergia/api-contracts/internal/responsible"
	"github.com/KromaEnergia/api-contracts/internal/storage"
	"github.com/KromaEnergia/api-contracts/internal/utils"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// .env is optional; real deployments set the environment directly
	godotenv.Load()
	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET not set")
	}

	db, err := config.ConnectDatabase(cfg.DB)
	if err != nil {
		log.Fatal("could not connect to the database: ", err)
	}

	// One-time idempotent schema setup: AutoMigrate creates the tables and
	// the unique indexes that back the per-tenant uniqueness guarantees.
	if err := db.AutoMigrate(
		&category.Category{},
		&responsible.Responsible{},
		&contractfield.ContractField{},
		&contractfield.GlobalField{},
		&contract.Contract{},
		&files.File{},
	); err != nil {
		log.Fatal("migration failed: ", err)
	}

	store, err := storage.NewMinioStore(cfg.Minio)
	if err != nil {
		log.Fatal("could not create object store client: ", err)
	}
	if err := store.EnsureBucket(context.Background()); err != nil {
		log.Fatal("could not ensure bucket: ", err)
	}

	authAPI := auth.NewClient(cfg.AuthAPIAddress, cfg.ApplicationCode)

	// Handlers
	authHandler := auth.NewHandler(authAPI, cfg.ApplicationCode)
	categoryHandler := category.NewHandler(db)
	responsibleHandler := responsible.NewHandler(db)
	fieldHandler := contractfield.NewHandler(db)
	contractHandler := contract.NewHandler(db)
	dashboardHandler := dashboard.NewHandler(db)
	alertHandler := alerts.NewHandler(db)
	fileHandler := files.NewHandler(db, store)

	// Router
	r := mux.NewRouter()
	r.Use(logger.RequestLogger)

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Welcome to ConTrack!"})
	}).Methods("GET")
	r.HandleFunc("/one_authentication", authHandler.OneAuthentication).Methods("GET")
	r.HandleFunc("/logout", authHandler.Logout).Methods("GET")

	// Everything below requires a valid security token
	protected := r.NewRoute().Subrouter()
	protected.Use(auth.Middleware([]byte(cfg.JWTSecret), authAPI))

	protected.HandleFunc("/is_authorized", authHandler.IsAuthorized).Methods("GET")

	protected.HandleFunc("/categories", categoryHandler.Create).Methods("POST")
	protected.HandleFunc("/categories", categoryHandler.List).Methods("GET")
	protected.HandleFunc("/categories/{id}", categoryHandler.Update).Methods("PUT")

	protected.HandleFunc("/responsibles", responsibleHandler.Create).Methods("POST")
	protected.HandleFunc("/responsibles", responsibleHandler.List).Methods("GET")
	protected.HandleFunc("/responsibles/{id}", responsibleHandler.Update).Methods("PUT")

	protected.HandleFunc("/contract_fields", fieldHandler.Create).Methods("POST")
	protected.HandleFunc("/contract_fields", fieldHandler.List).Methods("GET")
	protected.HandleFunc("/contract_fields/init_group_fields", fieldHandler.InitGroupFields).Methods("GET")
	protected.HandleFunc("/contract_fields/{field_code}", fieldHandler.UpdateStatus).Methods("POST")

	protected.HandleFunc("/contracts", contractHandler.Create).Methods("POST")
	protected.HandleFunc("/contracts", contractHandler.List).Methods("GET")
	protected.HandleFunc("/contracts/search/{query}", contractHandler.Search).Methods("GET")
	protected.HandleFunc("/contracts/{id}", contractHandler.GetDetails).Methods("GET")
	protected.HandleFunc("/contracts/{id}", contractHandler.Update).Methods("PUT")
	protected.HandleFunc("/contracts/{id}", contractHandler.Delete).Methods("DELETE")

	protected.HandleFunc("/dashboard/monthly", dashboardHandler.Monthly).Methods("GET")
	protected.HandleFunc("/dashboard/monthly/get_oldest", dashboardHandler.GetOldest).Methods("GET")
	protected.HandleFunc("/dashboard/annual", dashboardHandler.Annual).Methods("GET")

	protected.HandleFunc("/alerts", alertHandler.List).Methods("GET")

	protected.HandleFunc("/files/upload", fileHandler.Upload).Methods("POST")
	protected.HandleFunc("/files/link_to_contract", fileHandler.LinkToContract).Methods("POST")
	protected.HandleFunc("/files/unlink", fileHandler.Unlink).Methods("POST")

	handler := cors.AllowAll().Handler(r)

	log.Printf("Server listening on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
