package main

import (
	stdLog "log"
	"os"
	"time"

	"github.com/Astemirdum/bookshelf-service/bookshelf/app"
	"github.com/Astemirdum/bookshelf-service/bookshelf/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.InfoLevel),
		config.WithReadTimeout(10*time.Second),
		config.WithWriteTimeout(time.Minute),
	)

	if err := app.Run(cfg); err != nil {
		os.Exit(1)
	}
}
