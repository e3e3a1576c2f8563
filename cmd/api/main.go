package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "library-ops-backend/internal/adapter/http"
	"library-ops-backend/internal/adapter/middleware"
	"library-ops-backend/internal/adapter/repository/mysql"
	"library-ops-backend/internal/config"
	"library-ops-backend/internal/infrastructure/cache"
	"library-ops-backend/internal/infrastructure/db"
	"library-ops-backend/internal/usecase/inventory"
	"library-ops-backend/internal/usecase/lending"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	loans := mysql.NewLoanRepository(gdb)
	members := mysql.NewMemberRepository(gdb)
	titles := mysql.NewTitleRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	ledger := lending.NewUsecase(guow, loans, members, titles, lending.Config{
		MaxLoans:       cfg.MaxLoans,
		DailyFineRate:  cfg.DailyFineRate,
		LoanPeriodDays: cfg.LoanPeriodDays,
	})
	inv := inventory.NewUsecase(guow, titles)

	h := httpadp.NewHandler()
	lh := httpadp.NewLendingHandler(ledger)
	ih := httpadp.NewInventoryHandler(inv)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	e.GET("/health", h.Health)

	e.POST("/loans", lh.Borrow)
	e.GET("/loans", lh.List)
	e.GET("/loans/overdue", lh.ListOverdue)
	e.GET("/loans/:loan_id", lh.Get)
	e.GET("/loans/:loan_id/fine", lh.FinePreview)
	e.POST("/loans/:loan_id/return", lh.Return)
	e.POST("/loans/:loan_id/extend", lh.Extend)
	e.POST("/loans/:loan_id/lost", lh.MarkLost)

	e.GET("/members/:member_id/loans", lh.ListByMember)
	e.GET("/members/:member_id/loans/active", lh.ListActiveByMember)
	e.GET("/members/:member_id/stats", lh.MemberStats)
	e.GET("/members/:member_id/capacity", lh.MemberCapacity)

	e.GET("/titles/:title_id", ih.Get)
	e.GET("/titles/:title_id/loans", lh.ListByTitle)
	e.POST("/titles/:title_id/copies", ih.AddCopies)
	e.DELETE("/titles/:title_id/copies", ih.RemoveCopies)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
