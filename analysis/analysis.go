// Package analysis derives descriptive statistics of the reference dataset
// for the dashboard: a summary, per-class distributions and the correlation
// matrix of the columns.
package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/bitmark-inc/diabetaku-api/schema"
)

const (
	ageColumn     = 1
	bmiColumn     = 5
	hba1cColumn   = 6
	glucoseColumn = 7

	ageBinWidth = 10
	ageBinCount = 10
)

type Summary struct {
	TotalPatients int     `json:"total_patients"`
	AverageAge    float64 `json:"average_age"`
	DiabetesRate  float64 `json:"diabetes_rate"`
	FeatureCount  int     `json:"feature_count"`
}

// Histogram counts values per bin. Bin i covers [Edges[i], Edges[i+1]) and
// the last bin also takes everything above it.
type Histogram struct {
	Edges  []float64 `json:"edges"`
	Counts []int     `json:"counts"`
}

// Spread is the five-number summary of a column plus its mean
type Spread struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
}

type ClassDistribution struct {
	Diabetes int       `json:"diabetes"`
	Count    int       `json:"count"`
	Age      Histogram `json:"age"`
	BMI      Spread    `json:"bmi"`
	HbA1c    Spread    `json:"hba1c_level"`
	Glucose  Spread    `json:"blood_glucose_level"`
}

type Correlations struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// Report is computed once and never mutated
type Report struct {
	Summary       Summary             `json:"summary"`
	Distributions []ClassDistribution `json:"distributions"`
	Correlations  Correlations        `json:"correlations"`
}

// Analyze builds the report of a dataset
func Analyze(ds *schema.Dataset) (*Report, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, schema.Errorf(schema.ErrData, "analyze dataset", "dataset is empty")
	}

	return &Report{
		Summary:       Summarize(ds),
		Distributions: Distributions(ds),
		Correlations:  Correlate(ds),
	}, nil
}

// Summarize returns the headline numbers of the dataset
func Summarize(ds *schema.Dataset) Summary {
	labels := ds.Labels()
	positives := 0
	for _, l := range labels {
		positives += l
	}

	return Summary{
		TotalPatients: ds.Len(),
		AverageAge:    stat.Mean(ds.Column(ageColumn), nil),
		DiabetesRate:  float64(positives) / float64(len(labels)) * 100,
		FeatureCount:  schema.FeatureCount,
	}
}

// Distributions splits the dataset by label, class 0 first
func Distributions(ds *schema.Dataset) []ClassDistribution {
	labels := ds.Labels()
	out := make([]ClassDistribution, 0, 2)

	for class := 0; class <= 1; class++ {
		rows := make([]int, 0)
		for i, l := range labels {
			if l == class {
				rows = append(rows, i)
			}
		}

		out = append(out, ClassDistribution{
			Diabetes: class,
			Count:    len(rows),
			Age:      ageHistogram(pick(ds, ageColumn, rows)),
			BMI:      spread(pick(ds, bmiColumn, rows)),
			HbA1c:    spread(pick(ds, hba1cColumn, rows)),
			Glucose:  spread(pick(ds, glucoseColumn, rows)),
		})
	}

	return out
}

// Correlate returns the Pearson correlation of every pair of feature and
// label columns. A pair involving a constant column is reported as 0.
func Correlate(ds *schema.Dataset) Correlations {
	columns := append(append([]string{}, schema.FeatureColumns...), schema.LabelColumn)
	n, k := ds.Len(), len(columns)

	data := mat.NewDense(n, k, nil)
	for j := 0; j < schema.FeatureCount; j++ {
		data.SetCol(j, ds.Column(j))
	}
	labels := ds.Labels()
	for i, l := range labels {
		data.Set(i, k-1, float64(l))
	}

	var corr mat.SymDense
	stat.CorrelationMatrix(&corr, data, nil)

	// the diagonal comes back as exactly 1 even for a constant column
	constant := make([]bool, k)
	for j := 0; j < k; j++ {
		col := mat.Col(nil, j, data)
		constant[j] = floats.Min(col) == floats.Max(col)
	}

	values := make([][]float64, k)
	for i := 0; i < k; i++ {
		values[i] = make([]float64, k)
		for j := 0; j < k; j++ {
			v := corr.At(i, j)
			if constant[i] || constant[j] || math.IsNaN(v) || math.IsInf(v, 0) {
				v = 0
			}
			values[i][j] = v
		}
	}

	return Correlations{Columns: columns, Values: values}
}

func pick(ds *schema.Dataset, column int, rows []int) []float64 {
	all := ds.Column(column)
	out := make([]float64, 0, len(rows))
	for _, r := range rows {
		out = append(out, all[r])
	}
	return out
}

func ageHistogram(ages []float64) Histogram {
	edges := make([]float64, ageBinCount+1)
	for i := range edges {
		edges[i] = float64(i * ageBinWidth)
	}

	h := Histogram{Edges: edges, Counts: make([]int, ageBinCount)}
	if len(ages) == 0 {
		return h
	}

	sorted := make([]float64, 0, len(ages))
	for _, a := range ages {
		sorted = append(sorted, math.Max(a, 0))
	}
	sort.Float64s(sorted)

	dividers := append(append([]float64{}, edges[:ageBinCount]...), math.Inf(1))
	counts := stat.Histogram(nil, dividers, sorted, nil)
	for i, c := range counts {
		h.Counts[i] = int(c)
	}
	return h
}

// spread uses the empirical quantile, so every reported value is an
// observed one
func spread(x []float64) Spread {
	if len(x) == 0 {
		return Spread{}
	}

	sorted := append([]float64{}, x...)
	sort.Float64s(sorted)

	return Spread{
		Min:    floats.Min(sorted),
		Q1:     stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, sorted, nil),
		Max:    floats.Max(sorted),
		Mean:   stat.Mean(sorted, nil),
	}
}
