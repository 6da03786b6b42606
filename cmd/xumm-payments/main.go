package main

import (
	"context"
	"database/sql"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/labstack/echo"
	echo_middleware "github.com/labstack/echo/middleware"
	_ "github.com/lib/pq"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sys/unix"
	"gopkg.in/reform.v1"
	"gopkg.in/reform.v1/dialects/postgresql"

	"github.com/XRPL-Labs/xumm-payments/engine"
	"github.com/XRPL-Labs/xumm-payments/httputils"
	"github.com/XRPL-Labs/xumm-payments/shop"
	"github.com/XRPL-Labs/xumm-payments/store"
	"github.com/XRPL-Labs/xumm-payments/updates"
	"github.com/XRPL-Labs/xumm-payments/webhook"
	"github.com/XRPL-Labs/xumm-payments/xrpl"
	"github.com/XRPL-Labs/xumm-payments/xumm"
)

var (
	VERSION = "dev"

	webAddrF   = flag.String("web-addr", ":8081", "Webhook and callback server address.")
	debugAddrF = flag.String("debug-addr", "127.0.0.1:8082", "Debug and metrics server address.")

	accountF        = flag.String("account", "", "Merchant XRPL account receiving payments.")
	currencyF       = flag.String("currency", xrpl.XRP, "Requested payment currency code.")
	issuerF         = flag.String("issuer", "", "Issuer address for non-XRP currencies.")
	destinationTagF = flag.Uint("destination-tag", 0, "Destination tag stamped on payment transactions.")
	refundTagF      = flag.Uint("refund-destination-tag", 0, "Destination tag stamped on refund transactions.")
	feeF            = flag.Int64("fee", 12, "Transaction fee in drops.")

	paymentReturnURLF = flag.String("payment-return-url", "", "Return URL template for payment sign-requests (order GUID substituted).")
	refundReturnURLF  = flag.String("refund-return-url", "", "Return URL template for refund sign-requests (order GUID and count substituted).")

	completedURLF = flag.String("completed-url", "/order/completed/%d", "Redirect target for paid orders.")
	detailsURLF   = flag.String("details-url", "/order/details/%d", "Redirect target for unpaid orders.")
	homeURLF      = flag.String("home-url", "/", "Redirect target when the order cannot be found.")

	ownerMailF = flag.String("owner-mail", "", "Store owner address for refund-approval mails.")

	cancelOnNotFoundF      = flag.Bool("cancel-on-not-found", false, "Cancel the order when its sign-request is gone.")
	cancelOnNotInteractedF = flag.Bool("cancel-on-not-interacted", false, "Cancel the order when the sign-request was never opened.")

	onLoggerDebugLevelF = flag.Bool("logger-debug-level", false, "Enable debug level logger.")
)

func main() {
	var wg sync.WaitGroup
	flag.Parse()
	if *onLoggerDebugLevelF {
		defaultLogger("DEBUG")
	} else {
		defaultLogger("INFO")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	zap.L().Info("Starting xumm-payments service...", zap.String("version", VERSION))
	defer func() { zap.L().Info("Done.") }()

	handleTerm(cancel)

	sqlDB := setupPostgres(os.Getenv("PG_CONN"), 0, 5, 5)
	db := reform.NewDB(sqlDB, postgresql.Dialect, reform.NewPrintfLogger(zap.L().Sugar().Debugf))
	if _, err := db.Exec("SELECT version();"); err != nil {
		zap.L().Panic("Failed to check version to PostgreSQL.", zap.Error(err))
	}

	var pub *updates.Publisher
	if natsURL := os.Getenv("NATS_URL"); natsURL != "" {
		nc, err := nats.Connect(natsURL)
		if err != nil {
			zap.L().Panic("Failed connect to NATS.", zap.Error(err))
		}
		defer nc.Close()
		ec, err := nats.NewEncodedConn(nc, nats.JSON_ENCODER)
		if err != nil {
			zap.L().Panic("Failed create encoded conn to NATS.", zap.Error(err))
		}
		pub = updates.NewPublisher(ec)
		zap.L().Info("NATS - Connected!")
	}

	signClient := xumm.NewClient(os.Getenv("XUMM_API_KEY"), os.Getenv("XUMM_API_SECRET"))
	if endpoint := os.Getenv("XUMM_ENDPOINT"); endpoint != "" {
		signClient.SetEndpoint(endpoint)
	}
	pong, err := signClient.Ping(ctx)
	if err != nil || !pong {
		zap.L().Panic("Failed ping the sign platform with provided credentials.", zap.Error(err))
	}

	ledgerEndpoint := os.Getenv("XRPL_ENDPOINT")
	if ledgerEndpoint == "" {
		ledgerEndpoint = "wss://xrplcluster.com"
	}
	ledgerClient := xrpl.NewClient(ledgerEndpoint)

	dataStore := store.New(db)
	hostShop := shop.New(db, *ownerMailF)

	eng := engine.NewEngine(engine.Config{
		Account:               *accountF,
		Currency:              *currencyF,
		Issuer:                *issuerF,
		DestinationTag:        uint32(*destinationTagF),
		RefundDestinationTag:  uint32(*refundTagF),
		Fee:                   *feeF,
		PaymentReturnURL:      *paymentReturnURLF,
		RefundReturnURL:       *refundReturnURLF,
		PaymentInstruction:    "Sign the request to pay your order.",
		RefundInstruction:     "Sign the request to refund the order.",
		CancelOnNotFound:      *cancelOnNotFoundF,
		CancelOnNotInteracted: *cancelOnNotInteractedF,
	}, engine.Deps{
		Sign:       signClient,
		Ledger:     ledgerClient,
		Orders:     hostShop,
		Processing: hostShop,
		Attrs:      dataStore,
		Mail:       hostShop,
		Notify:     shop.NewLogNotifier(),
		Settings:   hostShop,
		Journal:    dataStore,
		Updates:    pub,
	})
	prometheus.MustRegister(engine.Metrics()...)

	// Web server
	e := echo.New()

	e.Use(echo_middleware.CORSWithConfig(echo_middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			echo.GET,
			echo.POST,
			echo.OPTIONS,
			echo.HEAD,
		},
	}))

	e.Use(echo_middleware.Recover())
	e.Use(echo_middleware.Logger())
	e.Use(echo_middleware.BodyLimit("64K"))

	webhook.NewHandler(eng, *completedURLF, *detailsURLF, *homeURLF).Register(e)

	wg.Add(1)
	go func() {
		defer wg.Done()
		zap.L().Info("start webhook server",
			zap.String("address", *webAddrF),
			zap.Strings("paths", []string{
				"/webhook/xumm",
				"/xumm/payment/:order_guid",
				"/xumm/refund/:order_guid",
			}),
		)
		if err := e.Start(*webAddrF); err != nil {
			zap.L().Error("failed run webhook server", zap.Error(err))
		}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			zap.L().Error("failed shutdown webhook server", zap.Error(err))
		}
		zap.L().Debug("success shutdown webhook server")
	}()

	debugSrv := &http.Server{Addr: *debugAddrF, Handler: httputils.RunDebugMux()}
	wg.Add(1)
	go func() {
		defer wg.Done()
		zap.L().Info("start debug server", zap.String("address", *debugAddrF))
		if err := debugSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Error("failed run debug server", zap.Error(err))
		}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		if err := debugSrv.Close(); err != nil {
			zap.L().Error("failed close debug server", zap.Error(err))
		}
	}()

	wg.Wait()
}

// Configure configure zap logger.
//
// Available values of level:
// - DEBUG
// - INFO
// - WARN
// - ERROR
// - DPANIC
// - PANIC
// - FATAL
func defaultLogger(levelSet string) {
	level := zapcore.InfoLevel
	if err := level.Set(levelSet); err != nil {
		panic(err)
	}
	config := zap.NewDevelopmentConfig()
	config.Level.SetLevel(level)
	l, err := config.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(l)
	zap.RedirectStdLog(l.Named("stdlog"))
}

func handleTerm(cancel context.CancelFunc) {
	// handle termination signals: first one gracefully, force exit on the second one
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, unix.SIGTERM, unix.SIGINT)
	go func() {
		s := <-signals
		zap.L().Warn("Shutting down.", zap.String("signal", unix.SignalName(s.(unix.Signal))))
		cancel()

		s = <-signals
		zap.L().Panic("Exiting!", zap.String("signal", unix.SignalName(s.(unix.Signal))))
	}()
}

func setupPostgres(conn string, maxLifetime time.Duration, maxOpen, maxIdle int) *sql.DB {
	sqlDB, err := sql.Open("postgres", conn)
	if err != nil {
		zap.L().Panic("Failed to connect to PostgreSQL.", zap.Error(err))
	}
	sqlDB.SetConnMaxLifetime(maxLifetime)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	if err = sqlDB.Ping(); err != nil {
		zap.L().Panic("Failed to connect ping PostgreSQL.", zap.Error(err))
	}
	zap.L().Info("Postgres - Connected!")

	return sqlDB
}
