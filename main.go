package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/diabetaku-api/analysis"
	"github.com/bitmark-inc/diabetaku-api/api"
	"github.com/bitmark-inc/diabetaku-api/consts"
	"github.com/bitmark-inc/diabetaku-api/risk"
	"github.com/bitmark-inc/diabetaku-api/score"
	"github.com/bitmark-inc/diabetaku-api/store"
	"github.com/bitmark-inc/diabetaku-api/utils"
)

var (
	server    *api.Server
	datastore store.Closer
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("diabetaku")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("dataset.source", store.SourceCSV)
	viper.SetDefault("mongo.pool", 10)
}

// openDatasetSource connects the backend named by dataset.source
func openDatasetSource(ctx context.Context) (store.DatasetSource, api.Pinger, error) {
	switch source := viper.GetString("dataset.source"); source {
	case store.SourceCSV:
		return store.NewCSVSource(viper.GetString("dataset.file")), nil, nil

	case store.SourceMongo:
		opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
		opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
		mongoClient, err := mongo.NewClient(opts)
		if nil != err {
			return nil, nil, fmt.Errorf("create mongo client with error: %s", err)
		}

		if err := mongoClient.Connect(ctx); nil != err {
			return nil, nil, fmt.Errorf("connect mongo database with error: %s", err)
		}

		src := store.NewMongoSource(mongoClient, viper.GetString("mongo.database"))
		datastore = src
		return src, src, nil

	case store.SourcePostgres:
		ormDB, err := gorm.Open("postgres", viper.GetString("orm.conn"))
		if err != nil {
			return nil, nil, err
		}

		src := store.NewORMSource(ormDB)
		datastore = src
		return src, src, nil

	default:
		return nil, nil, fmt.Errorf("unknown dataset source %q", source)
	}
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if datastore != nil {
			log.Info("Shutting down dataset store")
			datastore.Close()
		}

		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// English messages are compiled in, translations come from i18n.dir
	defaults := append(risk.Messages(), consts.Messages()...)
	if err := utils.InitI18NBundle(viper.GetString("i18n.dir"), defaults...); err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Loaded languages: ", utils.Languages())

	src, pinger, err := openDatasetSource(initialCtx)
	if err != nil {
		log.Panic(err)
	}

	engine, dataset, err := score.Bootstrap(initialCtx, src,
		score.FileModel(viper.GetString("model.file"), viper.GetString("model.name")))
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Initialized scoring engine")

	report, err := analysis.Analyze(dataset)
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Analyzed reference dataset")

	// Init http server
	server = api.NewServer(engine, report, pinger)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
