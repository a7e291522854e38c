package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/camden-git/filmcatalogbackend/config"
	"github.com/camden-git/filmcatalogbackend/database"
	"github.com/camden-git/filmcatalogbackend/handlers"
	"github.com/camden-git/filmcatalogbackend/repository"
	"github.com/camden-git/filmcatalogbackend/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	db, err := database.InitGormDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}
	if err := database.AutoMigrateModels(db); err != nil {
		log.Fatalf("FATAL: Failed to migrate database schema: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("FATAL: Failed to get underlying sql.DB: %v", err)
	}

	movieRepo := repository.NewGormMovieRepository(db)
	lookupRepo := repository.NewGormLookupRepository(db)
	actorRepo := repository.NewGormActorRepository(db)
	awardRepo := repository.NewGormAwardRepository(db)
	reviewRepo := repository.NewGormReviewRepository(db)

	assembler := services.NewAssembler(movieRepo)
	movieService := services.NewMovieService(movieRepo)
	randomPicker := services.NewRandomPicker(sqlDB, cfg.RandomMinRating)
	searchService := services.NewSearchService(sqlDB)
	awardService := services.NewAwardService(awardRepo)
	reviewService := services.NewReviewService(reviewRepo)

	log.Printf("Using database: %s", cfg.DatabasePath)
	log.Printf("Random pick rating threshold: %.1f", cfg.RandomMinRating)

	r := chi.NewRouter()

	corsOptions := cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}

	corsHandler := cors.New(corsOptions)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsHandler.Handler)

	movieHandler := &handlers.MovieHandler{
		Service:   movieService,
		Assembler: assembler,
		Picker:    randomPicker,
		SQLDB:     sqlDB,
		Cfg:       cfg,
	}
	lookupHandler := &handlers.LookupHandler{Repo: lookupRepo}
	actorHandler := &handlers.ActorHandler{Repo: actorRepo}
	awardHandler := &handlers.AwardHandler{Service: awardService}
	reviewHandler := &handlers.ReviewHandler{Service: reviewService}
	searchHandler := &handlers.SearchHandler{Service: searchService, Cfg: cfg}

	r.Route("/api", func(r chi.Router) {
		r.Route("/movies", func(r chi.Router) {
			r.Post("/", movieHandler.CreateMovie)
			r.Get("/random", movieHandler.RandomMovie)
			r.Get("/top-rated", movieHandler.TopRatedMovies)
			r.Get("/latest", movieHandler.LatestMovies)
			r.Route("/{movie_id}", func(r chi.Router) {
				r.Get("/", movieHandler.GetMovie)
				r.Put("/", movieHandler.UpdateMovie)
				r.Delete("/", movieHandler.DeleteMovie)
				r.Get("/preview", movieHandler.GetMoviePreview)
				r.Put("/{kind}", movieHandler.ReplaceAssociation)
			})
		})

		r.Route("/lookup", func(r chi.Router) {
			r.Get("/genres", lookupHandler.ListGenres)
			r.Post("/genres", lookupHandler.CreateGenre)
			r.Delete("/genres/{id}", lookupHandler.DeleteGenre)
			r.Get("/studios", lookupHandler.ListStudios)
			r.Post("/studios", lookupHandler.CreateStudio)
			r.Delete("/studios/{id}", lookupHandler.DeleteStudio)
			r.Get("/countries", lookupHandler.ListCountries)
			r.Post("/countries", lookupHandler.CreateCountry)
			r.Delete("/countries/{id}", lookupHandler.DeleteCountry)
			r.Get("/languages", lookupHandler.ListLanguages)
			r.Post("/languages", lookupHandler.CreateLanguage)
			r.Delete("/languages/{id}", lookupHandler.DeleteLanguage)
			r.Get("/roles", lookupHandler.ListRoles)
			r.Post("/roles", lookupHandler.CreateRole)
			r.Delete("/roles/{id}", lookupHandler.DeleteRole)
		})

		r.Route("/actors/{actor_id}", func(r chi.Router) {
			r.Get("/", actorHandler.GetActor)
			r.Get("/info", actorHandler.GetActorInfo)
			r.Put("/info", actorHandler.UpsertActorInfo)
		})
		r.Get("/actor-infos", actorHandler.ListActorInfos)

		r.Route("/oscaraward", func(r chi.Router) {
			r.Get("/actor/{actor_id}", awardHandler.GetByActor)
			r.Get("/movie/{movie_id}", awardHandler.GetByMovie)
		})

		r.Get("/reviewmovie/{movie_id}", reviewHandler.GetByMovie)

		r.Get("/search", searchHandler.Search)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	serverAddr := ":" + port
	fmt.Printf("Server starting on http://localhost:%s\n", port)
	log.Printf("Server listening on %s", serverAddr)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}
