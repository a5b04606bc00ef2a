package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookcatalog/auth"
	"bookcatalog/config"
	"bookcatalog/handlers"
	"bookcatalog/middleware"
	"bookcatalog/schema"
	"bookcatalog/service"
	"bookcatalog/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	config.ValidateEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config:", err)
	}

	ctx := context.Background()
	db, err := store.NewDynamoDB(ctx, cfg.AWSRegion, cfg.AWSAccessKeyID, cfg.AWSSecretKey,
		cfg.DynamoDBEndpoint, cfg.BooksTable, cfg.CastTable)
	if err != nil {
		log.Fatal("dynamodb:", err)
	}

	translator, err := service.NewTranslateService(ctx, cfg.AWSRegion, cfg.AWSAccessKeyID, cfg.AWSSecretKey)
	if err != nil {
		log.Fatal("translate:", err)
	}

	validator, err := schema.NewValidator()
	if err != nil {
		log.Fatal("schema:", err)
	}

	booksHandler := &handlers.BooksHandler{
		Service: service.NewBooks(db, validator, auth.NewResolver(), translator),
	}
	castHandler := &handlers.CastMembersHandler{
		Service: service.NewCastMembers(db, validator),
	}

	r := chi.NewRouter()
	r.Use(middleware.AllowAll())
	r.Use(middleware.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/books", func(r chi.Router) {
		r.Post("/", booksHandler.Add)
		r.Get("/{bookId}", booksHandler.Get)
		r.Put("/{bookId}", booksHandler.Update)
		r.Delete("/{bookId}", booksHandler.Delete)
		r.Get("/{bookId}/translation", booksHandler.Translate)
		r.Get("/{bookId}/cast", castHandler.Get)
	})

	server := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Println("server listening on :" + cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("shutdown:", err)
	}
}
