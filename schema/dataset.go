package schema

import "math"

const (
	// ReferenceCollection is the mongo collection holding reference records
	ReferenceCollection = "reference_records"

	// LabelColumn is the name of the outcome column
	LabelColumn = "diabetes"
)

// FeatureColumns lists the reference dataset columns in model order
var FeatureColumns = []string{
	"gender",
	"age",
	"hypertension",
	"heart_disease",
	"smoking_history",
	"bmi",
	"hba1c_level",
	"blood_glucose_level",
}

// Record is one row of the reference dataset. Values are kept as floats
// because historical rows carry fractional ages.
type Record struct {
	ID                uint    `json:"-" bson:"-" gorm:"primary_key"`
	Gender            float64 `json:"gender" bson:"gender"`
	Age               float64 `json:"age" bson:"age"`
	Hypertension      float64 `json:"hypertension" bson:"hypertension"`
	HeartDisease      float64 `json:"heart_disease" bson:"heart_disease"`
	SmokingHistory    float64 `json:"smoking_history" bson:"smoking_history"`
	BMI               float64 `json:"bmi" bson:"bmi"`
	HbA1cLevel        float64 `json:"hba1c_level" bson:"hba1c_level" gorm:"column:hba1c_level"`
	BloodGlucoseLevel float64 `json:"blood_glucose_level" bson:"blood_glucose_level"`
	Diabetes          int     `json:"diabetes" bson:"diabetes" gorm:"index"`
}

// TableName is the postgres table of reference records
func (Record) TableName() string {
	return ReferenceCollection
}

// Values returns the feature columns of the record in model order
func (r Record) Values() []float64 {
	return []float64{
		r.Gender,
		r.Age,
		r.Hypertension,
		r.HeartDisease,
		r.SmokingHistory,
		r.BMI,
		r.HbA1cLevel,
		r.BloodGlucoseLevel,
	}
}

// Dataset is the reference dataset. It is read-only after NewDataset returns.
type Dataset struct {
	rows   [][]float64
	labels []int
}

// NewDataset checks the records and builds a Dataset from them
func NewDataset(records []Record) (*Dataset, error) {
	if len(records) == 0 {
		return nil, Errorf(ErrData, "build dataset", "reference dataset is empty")
	}

	ds := &Dataset{
		rows:   make([][]float64, 0, len(records)),
		labels: make([]int, 0, len(records)),
	}
	for i, r := range records {
		if r.Diabetes != 0 && r.Diabetes != 1 {
			return nil, Errorf(ErrData, "build dataset", "row %d: label %d is not binary", i, r.Diabetes)
		}
		values := r.Values()
		for j, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, Errorf(ErrData, "build dataset", "row %d: column %s is not finite", i, FeatureColumns[j])
			}
		}
		ds.rows = append(ds.rows, values)
		ds.labels = append(ds.labels, r.Diabetes)
	}
	return ds, nil
}

// Len returns the number of rows
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Column returns a copy of the feature column at index i
func (d *Dataset) Column(i int) []float64 {
	col := make([]float64, len(d.rows))
	for n, row := range d.rows {
		col[n] = row[i]
	}
	return col
}

// Labels returns a copy of the outcome column
func (d *Dataset) Labels() []int {
	labels := make([]int, len(d.labels))
	copy(labels, d.labels)
	return labels
}

// Row returns a copy of row i
func (d *Dataset) Row(i int) []float64 {
	row := make([]float64, len(d.rows[i]))
	copy(row, d.rows[i])
	return row
}
