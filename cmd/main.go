package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/profiler"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/vetcare-app/vetcare-backend/pkg/auth"
	"github.com/vetcare-app/vetcare-backend/pkg/communication"
	"github.com/vetcare-app/vetcare-backend/pkg/database"
	"github.com/vetcare-app/vetcare-backend/pkg/environment"
	"github.com/vetcare-app/vetcare-backend/pkg/locking"
	"github.com/vetcare-app/vetcare-backend/pkg/logger"
	"github.com/vetcare-app/vetcare-backend/pkg/staff"
	"github.com/vetcare-app/vetcare-backend/pkg/users"
)

const serviceName = "vetcare-backend"

func main() {
	env, err := environment.Load(".env")
	if err != nil {
		logger.New(false).Fatal(err)
	}

	var logging logger.Interface = logger.New(!env.IsProduction())
	if env.IsProduction() && env.GCPProjectID != "" {
		googleLogger, err := logger.NewGoogleCloudLogger(context.Background(), env.GCPProjectID, serviceName)
		if err != nil {
			logging.Fatal(err)
		}
		defer googleLogger.Close()
		logging = googleLogger

		err = profiler.Start(profiler.Config{Service: serviceName, ProjectID: env.GCPProjectID})
		if err != nil {
			logging.Error("Profiler could not be started", err)
		}
	}

	logging.Info("Server is starting up...")

	location, err := time.LoadLocation(env.TimeZone)
	if err != nil {
		logging.Fatal(err)
	}

	client, err := database.Connect(context.Background(), env.DatabaseURL)
	if err != nil {
		logging.Fatal(err)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := client.Disconnect(ctx)
		if err != nil {
			logging.Error("Problem disconnecting from database", err)
		}
	}()

	logging.Info("Database connected")

	db := client.Database(env.Database)

	userRepository := users.UserRepository{DB: db.Collection(database.CollectionUsers), Logger: logging}
	staffRepository := &staff.MongoDBStaffRepository{DB: db.Collection(database.CollectionStaff), Logger: logging}

	indexContext, cancelIndexes := context.WithTimeout(context.Background(), 10*time.Second)
	for _, ensure := range []func(context.Context) error{userRepository.EnsureIndexes, staffRepository.EnsureIndexes} {
		err = ensure(indexContext)
		if err != nil {
			logging.Fatal(err)
		}
	}
	cancelIndexes()

	service := staff.NewService(staffRepository, userRepository, logging)
	service.Location = location

	if env.Redis != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: env.Redis, Password: env.RedisPassword})
		defer redisClient.Close()

		service.Locker = locking.NewLockerRedis(redisClient)
		service.UserCache = users.NewUserCacheRedis(redisClient)
		logging.Info("Using redis for locks and caching")
	} else {
		userCache, err := users.NewUserCacheMemory(1024)
		if err != nil {
			logging.Fatal(err)
		}
		service.UserCache = userCache
	}

	if env.TransactionsEnabled() {
		service.Transactor = &database.MongoTransactor{Client: client}
	}

	responseManager := communication.ResponseManager{Logger: logging, HideInternalErrors: env.IsProduction()}
	authentication := auth.AuthenticationMiddleware{ResponseManager: &responseManager, Secret: env.Secret}
	staffHandler := staff.Handler{Service: service, Logger: logging, ResponseManager: &responseManager}

	r := mux.NewRouter()
	r.Use(communication.LoggingMiddleware(logging))
	r.HandleFunc("/health", func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)

		_, err := fmt.Fprint(writer, "ok")
		if err != nil {
			logging.Error("Problem writing health response", err)
		}
	}).Methods(http.MethodGet)

	staffHandler.RegisterRoutes(r.PathPrefix("/api/staff").Subrouter(), &authentication)

	server := &http.Server{
		Addr:         ":" + env.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logging.Info("Listening on " + server.Addr)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logging.Fatal(err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logging.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = server.Shutdown(ctx)
	if err != nil {
		logging.Error("Problem shutting down server", err)
	}
}
