package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/diabetaku-api/analysis"
	"github.com/bitmark-inc/diabetaku-api/score"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// scoring context, shared read-only by every request
	engine *score.Engine

	// dataset statistics computed at startup
	report *analysis.Report

	// backend of the reference dataset, nil for a file
	datastore Pinger

	metrics *Metrics
}

// NewServer new instance of server
func NewServer(engine *score.Engine, report *analysis.Report, datastore Pinger) *Server {
	return &Server{
		engine:    engine,
		report:    report,
		datastore: datastore,
		metrics:   NewMetrics(),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(requestID())
	r.Use(s.metrics.middleware())

	apiRoute := r.Group("/api")
	apiRoute.Use(Ginrus("API"))
	{
		apiRoute.GET("/information", s.information)
		apiRoute.POST("/assessments", s.assess)
	}

	datasetRoute := apiRoute.Group("/dataset")
	datasetRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	{
		datasetRoute.GET("/summary", s.datasetSummary)
		datasetRoute.GET("/distributions", s.datasetDistributions)
		datasetRoute.GET("/correlations", s.datasetCorrelations)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(Ginrus("Metric"))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("", gin.WrapH(s.metrics.Handler()))
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	if s.datastore != nil {
		err := s.datastore.Ping()
		if shouldInterupt(err, c) {
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
