package score

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/diabetaku-api/classifier"
	"github.com/bitmark-inc/diabetaku-api/schema"
)

// DatasetLoader provides the reference dataset
type DatasetLoader interface {
	Load(ctx context.Context) (*schema.Dataset, error)
}

// ModelLoader provides the trained classifier
type ModelLoader func() (*classifier.Model, error)

// FileModel loads a classifier artifact from disk and optionally renames it
func FileModel(path, name string) ModelLoader {
	return func() (*classifier.Model, error) {
		m, err := classifier.LoadFile(path)
		if err != nil {
			return nil, err
		}
		if name != "" {
			m = m.Renamed(name)
		}
		return m, nil
	}
}

// Bootstrap reads the dataset and the classifier concurrently and builds the
// engine. Either failure aborts the whole load.
func Bootstrap(ctx context.Context, dataset DatasetLoader, model ModelLoader) (*Engine, *schema.Dataset, error) {
	var (
		ds *schema.Dataset
		m  *classifier.Model
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ds, err = dataset.Load(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		m, err = model()
		return err
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("bootstrap failed")
		return nil, nil, err
	}

	e, err := NewEngine(ds, m)
	if err != nil {
		return nil, nil, err
	}
	return e, ds, nil
}
