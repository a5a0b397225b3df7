package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"video-share/cmd/config"
	"video-share/pkg/auth"
	"video-share/pkg/database"
	"video-share/pkg/handlers"
	"video-share/pkg/s3"
	"video-share/pkg/store"
)

func main() {
	config.Load()
	gin.SetMode(config.GinMode)

	var users store.UserStore
	var videos store.VideoStore
	switch config.StoreDriver {
	case "sqlite":
		db, err := database.Open(config.SQLitePath)
		if err != nil {
			logrus.Fatalf("opening database: %v", err)
		}
		defer db.Close()
		users = store.NewGormUserStore(db)
		videos = store.NewGormVideoStore(db)
		logrus.Infof("Using sqlite store at %s", config.SQLitePath)
	default:
		users = store.NewMemoryUserStore()
		videos = store.NewMemoryVideoStore()
		logrus.Info("Using in-memory store, state resets on restart")
	}

	if err := store.Seed(videos, time.Now()); err != nil {
		logrus.Fatalf("seeding catalog: %v", err)
	}

	tokens := auth.NewManager(config.JWTSecret, time.Duration(config.TokenTTLHours)*time.Hour)
	h := handlers.New(users, videos, tokens)
	h.Google = auth.NewGoogleVerifier(config.GoogleClientID)
	if h.Google == nil {
		logrus.Warn("Google sign-in disabled, no client id configured")
	}

	if config.S3Bucket != "" {
		uploader, err := s3.New(config.AWSRegion, config.S3Bucket)
		if err != nil {
			logrus.Fatalf("initializing s3 uploader: %v", err)
		}
		h.Uploader = uploader
	}

	r := gin.Default()
	r.MaxMultipartMemory = 10 << 20

	corsCfg := cors.DefaultConfig()
	if len(config.CORSOrigins) == 1 && config.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = config.CORSOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	h.Routes(r)

	logrus.Infof("Backend listening on :%s", config.Port)
	if err := r.Run(":" + config.Port); err != nil {
		logrus.Fatalf("server: %v", err)
	}
}
