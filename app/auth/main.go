package main

import (
	"context"
	"net/http"
	"syscall"
	"time"

	"github.com/go-kit/kit/endpoint"
	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	deliveryHTTP "github.com/superj80820/credential-service/auth/delivery/http"
	accountMongoRepo "github.com/superj80820/credential-service/auth/repository/account/mongo"
	authJWTRepo "github.com/superj80820/credential-service/auth/repository/auth/jwt"
	passwordBcryptRepo "github.com/superj80820/credential-service/auth/repository/password/bcrypt"
	accountUseCaseLib "github.com/superj80820/credential-service/auth/usecase/account"
	authUseCaseLib "github.com/superj80820/credential-service/auth/usecase/auth"
	httpKit "github.com/superj80820/credential-service/kit/http"
	httpMiddlewareKit "github.com/superj80820/credential-service/kit/http/middleware"
	loggerKit "github.com/superj80820/credential-service/kit/logger"
	traceKit "github.com/superj80820/credential-service/kit/trace"
	utilKit "github.com/superj80820/credential-service/kit/util"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/trace"
)

const (
	SYSTEM_NAME  = "credential"
	SERVICE_NAME = "auth"
)

func main() {
	var (
		enableTracer       = utilKit.GetEnvBool("ENABLE_TRACER", false)
		enableMetric       = utilKit.GetEnvBool("ENABLE_METRIC", false)
		env                = utilKit.GetEnvString("ENV", "development")
		httpAddr           = utilKit.GetEnvString("HTTP_ADDR", ":9092")
		mongoURI           = utilKit.GetEnvString("MONGO_URI", "mongodb://localhost:27017")
		accessTokenSecret  = utilKit.GetRequireEnvString("ACCESS_TOKEN_SECRET")
		refreshTokenSecret = utilKit.GetRequireEnvString("REFRESH_TOKEN_SECRET")
	)

	logLevel := loggerKit.InfoLevel
	if env == "development" {
		logLevel = loggerKit.DebugLevel
	}
	logger, err := loggerKit.NewLogger("./go.log", logLevel)
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	mongoDB, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		panic(err)
	}
	defer func() {
		if err := mongoDB.Disconnect(context.Background()); err != nil {
			logger.Error(err.Error())
		}
	}()

	var tracer trace.Tracer
	if enableTracer {
		tracer, err = traceKit.CreateTracer(context.Background(), SERVICE_NAME)
		if err != nil {
			panic(err)
		}
	} else {
		tracer = traceKit.CreateNoOpTracer()
	}

	accountRepo, err := accountMongoRepo.CreateAccountRepo(ctx, mongoDB)
	if err != nil {
		panic(err)
	}
	authRepo, err := authJWTRepo.CreateAuthRepo(accessTokenSecret, refreshTokenSecret)
	if err != nil {
		panic(err)
	}
	passwordHasher := passwordBcryptRepo.CreatePasswordHasher()

	accountUseCase, err := accountUseCaseLib.CreateAccountUseCase(accountRepo, passwordHasher, logger)
	if err != nil {
		panic(err)
	}
	authUseCase, err := authUseCaseLib.CreateAuthUseCase(authRepo, accountRepo, passwordHasher, logger)
	if err != nil {
		panic(err)
	}

	customMiddleware := endpoint.Chain(
		httpMiddlewareKit.CreateLoggingMiddleware(logger),
		httpMiddlewareKit.CreateMetrics(SYSTEM_NAME, SERVICE_NAME),
	)

	r := mux.NewRouter()
	options := []httptransport.ServerOption{
		httptransport.ServerBefore(httpKit.CustomBeforeCtx(tracer)),
		httptransport.ServerAfter(httpKit.CustomAfterCtx),
		httptransport.ServerErrorEncoder(httpKit.EncodeHTTPErrorResponse()),
	}
	r.Methods("POST").Path("/api/v1/user/register").Handler(
		httptransport.NewServer(
			customMiddleware(deliveryHTTP.MakeAccountRegisterEndpoint(accountUseCase)),
			deliveryHTTP.DecodeAccountRegisterRequest,
			deliveryHTTP.EncodeAccountRegisterResponse,
			options...,
		))
	r.Methods("GET").Path("/api/v1/user").Handler(
		httptransport.NewServer(
			customMiddleware(deliveryHTTP.MakeAccountFetchEndpoint(accountUseCase)),
			deliveryHTTP.DecodeAccountFetchRequest,
			deliveryHTTP.EncodeAccountFetchResponse,
			options...,
		))
	r.Methods("POST").Path("/api/v1/auth/login").Handler(
		httptransport.NewServer(
			customMiddleware(deliveryHTTP.MakeAuthLoginEndpoint(authUseCase)),
			deliveryHTTP.DecodeAuthLoginRequest,
			deliveryHTTP.EncodeAuthLoginResponse,
			options...,
		))
	r.Methods("POST").Path("/api/v1/auth/logout").Handler(
		httptransport.NewServer(
			customMiddleware(deliveryHTTP.MakeAuthLogoutEndpoint(authUseCase)),
			deliveryHTTP.DecodeAuthLogoutRequest,
			deliveryHTTP.EncodeAuthLogoutResponse,
			options...,
		))
	r.Methods("POST").Path("/api/v1/auth/refresh").Handler(
		httptransport.NewServer(
			customMiddleware(deliveryHTTP.MakeRefreshAccessTokenEndpoint(authUseCase)),
			deliveryHTTP.DecodeRefreshAccessTokenRequest,
			deliveryHTTP.EncodeRefreshAccessTokenResponse,
			options...,
		))
	r.Methods("POST").Path("/api/v1/auth/verify").Handler(
		httptransport.NewServer(
			customMiddleware(deliveryHTTP.MakeAuthVerifyEndpoint(authUseCase)),
			deliveryHTTP.DecodeAuthVerifyRequest,
			deliveryHTTP.EncodeAuthVerifyResponse,
			options...,
		))
	if enableMetric {
		r.Handle("/metrics", promhttp.Handler())
	}

	httpSrv := http.Server{
		Addr:    httpAddr,
		Handler: r,
	}

	g := new(run.Group)
	{
		g.Add(func() error {
			return httpSrv.ListenAndServe()
		}, func(err error) {
			if err != nil {
				logger.Error(err.Error())
			}
			httpSrv.Close()
		})
	}
	{
		g.Add(run.SignalHandler(context.Background(), syscall.SIGINT, syscall.SIGTERM))
	}
	if err := g.Run(); err != nil {
		logger.Error(err.Error())
	}
}
