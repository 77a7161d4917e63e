package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "github.com/adriangcodes/dev1004-assessment-3/internal/adapter/http"
	appmw "github.com/adriangcodes/dev1004-assessment-3/internal/adapter/middleware"
	"github.com/adriangcodes/dev1004-assessment-3/internal/adapter/repository/mysql"
	"github.com/adriangcodes/dev1004-assessment-3/internal/config"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/collateral"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/currency"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/deal"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/interestterm"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/loanrequest"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/transaction"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/user"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/wallet"
	"github.com/adriangcodes/dev1004-assessment-3/internal/infrastructure/cache"
	"github.com/adriangcodes/dev1004-assessment-3/internal/infrastructure/db"
	collateraluc "github.com/adriangcodes/dev1004-assessment-3/internal/usecase/collateral"
	dealuc "github.com/adriangcodes/dev1004-assessment-3/internal/usecase/deal"
	requestuc "github.com/adriangcodes/dev1004-assessment-3/internal/usecase/loanrequest"
	transactionuc "github.com/adriangcodes/dev1004-assessment-3/internal/usecase/transaction"
	walletuc "github.com/adriangcodes/dev1004-assessment-3/internal/usecase/wallet"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(
		&user.User{}, &currency.Currency{}, &interestterm.InterestTerm{},
		&loanrequest.LoanRequest{}, &wallet.Wallet{}, &deal.Deal{},
		&collateral.Collateral{}, &transaction.Transaction{},
	); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	uow := mysql.NewGormUoW(gdb)
	requests := mysql.NewLoanRequestRepository(gdb)
	users := mysql.NewUserRepository(gdb)
	currencies := mysql.NewCurrencyRepository(gdb)
	terms := mysql.NewInterestTermRepository(gdb)

	h := httpadp.NewHandler()
	lh := httpadp.NewLoanRequestHandler(requestuc.NewUsecase(uow, requests, users, currencies, terms))
	dh := httpadp.NewDealHandler(dealuc.NewUsecase(uow))
	ch := httpadp.NewCollateralHandler(collateraluc.NewUsecase(uow, collateraluc.ForfeitDestination(cfg.ForfeitDestination)))
	th := httpadp.NewTransactionHandler(transactionuc.NewUsecase(uow))
	wh := httpadp.NewWalletHandler(walletuc.NewUsecase(uow))
	rh := httpadp.NewRefDataHandler(currencies, terms)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// retried money moves replay instead of double-spending
	idem := appmw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", h.Health)

	e.GET("/currencies", rh.ListCurrencies)
	e.GET("/interest-terms", rh.ListInterestTerms)

	e.POST("/loan-requests", lh.CreateLoanRequest)
	e.GET("/loan-requests/:request_id", lh.GetLoanRequest)
	e.GET("/users/:user_id/loan-requests", lh.ListBorrowerLoanRequests)
	e.POST("/loan-requests/expire", lh.ExpireLoanRequests)

	e.POST("/deals", dh.FundLoanRequest, idem)
	e.GET("/deals/:deal_id", dh.GetDeal)
	e.GET("/users/:user_id/deals/lending", dh.ListLenderDeals)
	e.GET("/users/:user_id/deals/borrowing", dh.ListBorrowerDeals)

	e.POST("/collaterals", ch.PostCollateral, idem)
	e.GET("/collaterals/:collateral_id", ch.GetCollateral)
	e.POST("/collaterals/:collateral_id/release", ch.ReleaseCollateral, idem)
	e.POST("/collaterals/:collateral_id/forfeit", ch.ForfeitCollateral, idem)

	e.POST("/deals/:deal_id/schedule", th.GenerateSchedule)
	e.GET("/users/:user_id/transactions", th.ListUserTransactions)
	e.POST("/transactions/:transaction_id/paid", th.MarkTransactionPaid, idem)

	e.POST("/wallets", wh.OpenWallet)
	e.POST("/wallets/deposit", wh.Deposit, idem)
	e.GET("/users/:user_id/wallets", wh.ListUserWallets)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
