package main

import (
	stdLog "log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/seat-booking/booking/app"
	"github.com/Astemirdum/seat-booking/booking/config"
)

//go:generate go run github.com/swaggo/swag/cmd/swag init -g cmd/booking/main.go -d ../../ -o ../../swagger --ot go

// @title Library Seat Booking API
// @version 1.0
// @description Reserve library seats, manage libraries, seats, schedules and librarians.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
