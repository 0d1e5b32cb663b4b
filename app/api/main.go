package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/base/database/mongoclient"
	"github.com/strategic-club/commerce-api/base/keylock"
	"github.com/strategic-club/commerce-api/base/log"
	bValidator "github.com/strategic-club/commerce-api/base/validator"
	"github.com/strategic-club/commerce-api/domain"
	"github.com/strategic-club/commerce-api/domain/commitment"
	ledgerDomain "github.com/strategic-club/commerce-api/domain/ledger"
	mmiddleware "github.com/strategic-club/commerce-api/middleware"
	"github.com/strategic-club/commerce-api/service/chain"
	evmledger "github.com/strategic-club/commerce-api/service/ledger/evm"
	memoryledger "github.com/strategic-club/commerce-api/service/ledger/memory"
	"github.com/strategic-club/commerce-api/service/query"
	auction_delivery "github.com/strategic-club/commerce-api/stores/auction/delivery/http"
	auction_repository "github.com/strategic-club/commerce-api/stores/auction/repository"
	auction_usecase "github.com/strategic-club/commerce-api/stores/auction/usecase"
	auth_delivery "github.com/strategic-club/commerce-api/stores/auth/delivery/http"
	auth_middleware "github.com/strategic-club/commerce-api/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/strategic-club/commerce-api/stores/auth/usecase"
	event_delivery "github.com/strategic-club/commerce-api/stores/event/delivery/http"
	event_repository "github.com/strategic-club/commerce-api/stores/event/repository"
	event_usecase "github.com/strategic-club/commerce-api/stores/event/usecase"
	hc_delivery "github.com/strategic-club/commerce-api/stores/healthcheck/delivery/http"
	hc_repo "github.com/strategic-club/commerce-api/stores/healthcheck/repository"
	hc_usecase "github.com/strategic-club/commerce-api/stores/healthcheck/usecase"
	mint_delivery "github.com/strategic-club/commerce-api/stores/mint/delivery/http"
	mint_repository "github.com/strategic-club/commerce-api/stores/mint/repository"
	mint_usecase "github.com/strategic-club/commerce-api/stores/mint/usecase"
	redeem_delivery "github.com/strategic-club/commerce-api/stores/redeem/delivery/http"
	redeem_repository "github.com/strategic-club/commerce-api/stores/redeem/repository"
	redeem_usecase "github.com/strategic-club/commerce-api/stores/redeem/usecase"
	settings_delivery "github.com/strategic-club/commerce-api/stores/settings/delivery/http"
	settings_repository "github.com/strategic-club/commerce-api/stores/settings/repository"
	settings_usecase "github.com/strategic-club/commerce-api/stores/settings/usecase"
	tgflag_delivery "github.com/strategic-club/commerce-api/stores/tgflag/delivery/http"
	tgflag_repository "github.com/strategic-club/commerce-api/stores/tgflag/repository"
	tgflag_usecase "github.com/strategic-club/commerce-api/stores/tgflag/usecase"
	withdrawal_delivery "github.com/strategic-club/commerce-api/stores/withdrawal/delivery/http"
	withdrawal_usecase "github.com/strategic-club/commerce-api/stores/withdrawal/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Init(true)
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init asset ledger
	var assetLedger ledgerDomain.AssetLedger
	switch mode := viper.GetString("ledger.mode"); mode {
	case "memory":
		context.Info("init memory ledger")
		assetLedger = memoryledger.New(domain.Address(viper.GetString("ledger.escrowAddress")))
	default:
		context.Info("init evm ledger")
		networks := viper.Sub("networks")
		keys := networks.AllSettings()
		rpcs := make(map[int32]string)
		for k := range keys {
			chainId := networks.GetInt32(fmt.Sprintf("%s.chainId", k))
			rpcUrl := networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
			rpcs[chainId] = rpcUrl
		}
		chainService, err := chain.NewClient(context, &chain.ClientCfg{
			RpcUrls:     rpcs,
			OperatorKey: viper.GetString("ledger.operatorKey"),
		})
		if err != nil {
			context.WithField("err", err).Warn("chainService started with error")
		}
		assetLedger = evmledger.New(viper.GetInt32("ledger.chainId"), chainService)
	}

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient)
	auctionRepo := auction_repository.New(q)
	mintRepo := mint_repository.New(q)
	redeemRepo := redeem_repository.New(q)
	tgflagRepo := tgflag_repository.New(q)
	settingsRepo := settings_repository.New(q)
	eventRepo := event_repository.New(q)

	// one asset lock shared by the engines and the withdrawal guard
	assetLocks := keylock.New()

	hc := hc_usecase.New(hcRepo)
	eventUC := event_usecase.New(eventRepo)
	tgflagUC := tgflag_usecase.New(tgflagRepo, eventUC)
	settingsUC := settings_usecase.New(settingsRepo, eventUC)
	auctionUC := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		AuctionRepo: auctionRepo,
		TgFlag:      tgflagUC,
		Settings:    settingsUC,
		Ledger:      assetLedger,
		Event:       eventUC,
		Locks:       assetLocks,
	})
	mintUC := mint_usecase.New(&mint_usecase.MintUseCaseCfg{
		MintRepo: mintRepo,
		TgFlag:   tgflagUC,
		Settings: settingsUC,
		Ledger:   assetLedger,
		Event:    eventUC,
		Locks:    assetLocks,
	})
	redeemUC := redeem_usecase.New(&redeem_usecase.RedeemUseCaseCfg{
		RedeemRepo: redeemRepo,
		TgFlag:     tgflagUC,
		Settings:   settingsUC,
		Ledger:     assetLedger,
		Event:      eventUC,
		Locks:      assetLocks,
	})
	withdrawalUC := withdrawal_usecase.New(&withdrawal_usecase.WithdrawalUseCaseCfg{
		Ledger:    assetLedger,
		Reservers: []commitment.Reserver{auctionRepo, mintRepo, redeemRepo},
		Event:     eventUC,
		Owner:     domain.Address(viper.GetString("owner.address")),
		Locks:     assetLocks,
	})
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"))

	// seed the proceeds address on first boot
	if _, err := settingsUC.GetPaymentAddress(context); err == domain.ErrNotFound {
		seed := domain.Address(viper.GetString("payment.erc20Address"))
		if !seed.IsNull() {
			if err := settingsUC.SetPaymentAddress(context, seed); err != nil {
				context.WithField("err", err).Error("seed payment address failed")
			}
		}
	}

	adminAddresses := viper.GetStringSlice("admin.addresses")
	authMiddleware := auth_middleware.New(auth, adminAddresses)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth)
	auction_delivery.New(e, auctionUC, authMiddleware)
	mint_delivery.New(e, mintUC, authMiddleware)
	redeem_delivery.New(e, redeemUC, authMiddleware)
	tgflag_delivery.New(e, tgflagUC, authMiddleware)
	settings_delivery.New(e, settingsUC, authMiddleware)
	withdrawal_delivery.New(e, withdrawalUC, authMiddleware)
	event_delivery.New(e, eventUC)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
