package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/martify/go-storefront/internal/auth"
	"github.com/martify/go-storefront/internal/catalog"
	"github.com/martify/go-storefront/internal/checkout"
	"github.com/martify/go-storefront/internal/config"
	"github.com/martify/go-storefront/internal/coupon"
	"github.com/martify/go-storefront/internal/httpx"
	kafkax "github.com/martify/go-storefront/internal/kafka"
	"github.com/martify/go-storefront/internal/postgres"
	"github.com/martify/go-storefront/internal/redisx"
	"github.com/martify/go-storefront/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer db.Close()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("db schema: %v", err)
	}

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer
	prod := kafkax.NewProducer(cfg.KafkaBrokers, checkout.TopicOrderPlaced, 1024)
	prod.Start(ctx)

	// Domain wiring
	cat := catalog.Default()
	coupons := coupon.Default()
	sessions := &httpx.Sessions{
		Manager: session.NewManager(),
		Redis:   rdb,
		Catalog: cat,
	}
	orderRepo := &checkout.Repo{DB: db}
	placer := &checkout.Service{
		Orders:   orderRepo,
		Producer: prod,
		Service:  cfg.ServiceName,
	}
	authSvc := &auth.Service{Accounts: &auth.Repo{DB: db}}

	// Handlers
	router := httpx.NewRouter()
	(&httpx.CatalogHandler{Catalog: cat}).Register(router)
	(&httpx.CartHandler{Catalog: cat, Coupons: coupons, Sessions: sessions}).Register(router)
	(&httpx.CompareHandler{Catalog: cat, Sessions: sessions}).Register(router)
	(&httpx.WishlistHandler{Catalog: cat, Sessions: sessions}).Register(router)
	(&httpx.RecentHandler{Catalog: cat, Sessions: sessions}).Register(router)
	(&httpx.AuthHandler{Auth: authSvc, Sessions: sessions}).Register(router)
	(&httpx.CheckoutHandler{Service: placer, Orders: orderRepo, Sessions: sessions}).Register(router)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close()      // close inbox -> flush & close writer
	cancel()          // stop producer loop
	prod.WaitClosed() // drain
}
