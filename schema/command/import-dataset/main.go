package main

import (
	"context"
	"flag"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/diabetaku-api/schema"
	"github.com/bitmark-inc/diabetaku-api/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("diabetaku")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var (
		file    string
		targets string
	)
	flag.StringVar(&file, "f", "", "reference dataset csv (defaults to DIABETAKU_DATASET_FILE)")
	flag.StringVar(&targets, "to", "mongo,postgres", "comma separated import targets")
	flag.Parse()

	if file == "" {
		file = viper.GetString("dataset.file")
	}

	records, err := store.ReadRecordsFile(file)
	if err != nil {
		panic(err)
	}

	// reject the file before writing anything
	if _, err := schema.NewDataset(records); err != nil {
		panic(err)
	}

	ctx := context.Background()
	for _, target := range strings.Split(targets, ",") {
		switch strings.TrimSpace(target) {
		case store.SourceMongo:
			importMongo(ctx, records)
		case store.SourcePostgres:
			importPostgres(ctx, records)
		default:
			log.Panicf("unknown import target %q", target)
		}
	}
}

func importMongo(ctx context.Context, records []schema.Record) {
	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()

	client, err := mongo.NewClient(options.Client().ApplyURI(viper.GetString("mongo.conn")))
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	src := store.NewMongoSource(client, viper.GetString("mongo.database"))
	defer src.Close()

	if err := src.Import(ctx, records); err != nil {
		panic(err)
	}
}

func importPostgres(ctx context.Context, records []schema.Record) {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	src := store.NewORMSource(db)
	defer src.Close()

	if err := src.Migrate(); err != nil {
		panic(err)
	}

	if err := src.Import(ctx, records); err != nil {
		panic(err)
	}
}
