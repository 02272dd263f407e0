package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"

	"github.com/QuangTung97/crowdfund/config"
	"github.com/QuangTung97/crowdfund/pkg/otellib"
	"github.com/QuangTung97/crowdfund/repository"
	"github.com/QuangTung97/crowdfund/service/funding"
)

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the server",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}

func startServer() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	tracerProvider, shutdown := otellib.InitOtel("crowdfund-api", "local", conf.Jaeger)
	defer shutdown()

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	db := conf.MySQL.MustConnect()
	provider := repository.NewProvider(db)

	service := funding.NewService(
		provider,
		repository.NewCampaign(),
		repository.NewContribution(),
		repository.NewAccount(),
		repository.NewEvent(),
		logger,
	)

	err := service.Load(context.Background())
	if err != nil {
		panic(err)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		otelgin.Middleware("crowdfund-api", otelgin.WithTracerProvider(tracerProvider)),
		otellib.SetLoggerMiddleware(logger),
	)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	funding.NewServer(service).Register(router)

	startHTTPServer(conf, logger, service, router)
}

func startHTTPServer(
	conf config.Config, logger *zap.Logger,
	service *funding.Service, router *gin.Engine,
) {
	fmt.Println("HTTP:", conf.Server.HTTP.ListenString())

	httpServer := &http.Server{
		Addr:    conf.Server.HTTP.ListenString(),
		Handler: router,
	}

	workerCtx, workerCancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
		fmt.Println("Shutdown HTTP server successfully")
	}()

	if conf.AutoSettle.Enabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			service.RunAutoSettle(workerCtx, conf.AutoSettle.Interval)
		}()
	}

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, os.Kill)
	<-stop

	workerCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := httpServer.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	wg.Wait()
	_ = logger.Sync()
}
