package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"medimind.xyz/medimind-service/pkg/common"
	"medimind.xyz/medimind-service/pkg/db"
	medimindHttp "medimind.xyz/medimind-service/pkg/http"
	"medimind.xyz/medimind-service/pkg/medimind"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	dbType := os.Getenv(common.EnvKeyDBType)
	switch dbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	case "mysql":
		dbInstance = db.GetInstance(db.UseMySQLDialector())
	default:
		log.Fatal("Unknown MEDIMIND_DB_TYPE: " + dbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyDefaultRate), 64); err != nil {
		log.Fatal("Invalid MEDIMIND_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid MEDIMIND_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	core := medimind.MediMind{
		Db: *dbInstance,
	}
	core.WithAllServices()

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":3000"
	}

	rs := &medimindHttp.RestfulServer{
		Server:           gin.Default(),
		Core:             &core,
		RateLimiterStore: medimind.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
