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

	"foxscrb-server/internal/config"
	"foxscrb-server/internal/handler"
	"foxscrb-server/internal/middleware"
	"foxscrb-server/internal/render"
	"foxscrb-server/internal/repository"
	"foxscrb-server/internal/service"
	"foxscrb-server/internal/session"
	"foxscrb-server/internal/storage"

	_ "github.com/go-kivik/kivik/v4/couchdb"

	"github.com/go-kivik/kivik/v4"
	"github.com/gorilla/mux"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	couchURL := fmt.Sprintf("http://%s:%s@%s:%s",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
	)

	client, err := kivik.New("couch", couchURL)
	if err != nil {
		log.Fatalf("Failed to connect to CouchDB: %v", err)
	}

	exists, err := client.DBExists(context.Background(), cfg.Database.Name)
	if err != nil {
		log.Fatalf("Failed to check database existence: %v", err)
	}

	if !exists {
		if err := client.CreateDB(context.Background(), cfg.Database.Name); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
		log.Printf("Created database: %s", cfg.Database.Name)
	}

	userRepo := repository.NewUserRepository(client, cfg.Database.Name)
	noteRepo := repository.NewNoteRepository(client, cfg.Database.Name)

	avatarStore, err := storage.NewDiskAvatarStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatalf("Failed to set up avatar storage: %v", err)
	}

	renderer, err := render.New()
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	sessionManager := session.NewManager(cfg.Session.Secret, cfg.Session.Name)

	authService := service.NewAuthService(userRepo, service.NewLogNotifier(), cfg.Reset.Secret, cfg.Reset.Expiration)
	noteService := service.NewNoteService(noteRepo)
	profileService := service.NewProfileService(userRepo, avatarStore)

	authHandler := handler.NewAuthHandler(authService, sessionManager, renderer)
	noteHandler := handler.NewNoteHandler(noteService, sessionManager, renderer)
	profileHandler := handler.NewProfileHandler(profileService, sessionManager, renderer, cfg.Upload.MaxFileSize)

	r := mux.NewRouter()

	r.Use(middleware.LoggerMiddleware())

	r.HandleFunc("/", rootHandler).Methods("GET")
	r.HandleFunc("/health", healthHandler).Methods("GET")

	users := r.PathPrefix("/users").Subrouter()
	users.HandleFunc("/register", authHandler.ShowRegister).Methods("GET")
	users.HandleFunc("/register", authHandler.Register).Methods("POST")
	users.HandleFunc("/login", authHandler.ShowLogin).Methods("GET")
	users.HandleFunc("/login", authHandler.Login).Methods("POST")
	users.HandleFunc("/logout", authHandler.Logout).Methods("GET")
	users.HandleFunc("/forgot-password", authHandler.ShowForgotPassword).Methods("GET")
	users.HandleFunc("/forgot-password", authHandler.ForgotPassword).Methods("POST")

	notes := r.PathPrefix("/notes").Subrouter()
	notes.Use(middleware.RequireAuth(sessionManager))
	notes.HandleFunc("", noteHandler.List).Methods("GET")
	notes.HandleFunc("/add", noteHandler.ShowAdd).Methods("GET")
	notes.HandleFunc("/add", noteHandler.Add).Methods("POST")
	notes.HandleFunc("/edit/{id}", noteHandler.ShowEdit).Methods("GET")
	notes.HandleFunc("/edit/{id}", noteHandler.Update).Methods("PUT")
	notes.HandleFunc("/delete/{id}", noteHandler.Delete).Methods("DELETE")
	notes.HandleFunc("/archive", noteHandler.ListArchived).Methods("GET")
	notes.HandleFunc("/archive/{id}", noteHandler.Archive).Methods("POST")
	notes.HandleFunc("/unarchive/{id}", noteHandler.Unarchive).Methods("POST")

	profile := r.PathPrefix("/profile").Subrouter()
	profile.Use(middleware.RequireAuth(sessionManager))
	profile.HandleFunc("", profileHandler.Show).Methods("GET")
	profile.HandleFunc("", profileHandler.Update).Methods("POST")
	profile.HandleFunc("/change-password", profileHandler.ChangePassword).Methods("POST")

	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Upload.Dir))),
	)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.MethodOverride(r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting FoxScrb server on %s (env: %s)", addr, cfg.Server.Env)
		log.Printf("Connected to CouchDB at %s:%s", cfg.Database.Host, cfg.Database.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/notes", http.StatusSeeOther)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"foxscrb-server"}`))
}
