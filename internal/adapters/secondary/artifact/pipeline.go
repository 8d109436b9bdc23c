package artifact

import (
	"errors"
	"fmt"

	"housing-price-service/internal/core/domain"
)

// PipelineModel takes named, mixed-type fields and encodes them itself before
// applying a linear regressor. Encoded columns are laid out as all numeric
// columns first, then each categorical column's one-hot block, in declaration order.
type PipelineModel struct {
	Numeric     []NumericColumn     `json:"numeric"`
	Categorical []CategoricalColumn `json:"categorical"`
	Regressor   LinearModel         `json:"regressor"`
}

// NumericColumn is mean-imputed and standardized.
type NumericColumn struct {
	Name  string  `json:"name"`
	Mean  float64 `json:"mean"`
	Scale float64 `json:"scale"`
}

// CategoricalColumn is one-hot encoded. Unknown categories encode to all zeros.
type CategoricalColumn struct {
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
}

func (m *PipelineModel) width() int {
	n := len(m.Numeric)
	for _, c := range m.Categorical {
		n += len(c.Categories)
	}
	return n
}

func (m *PipelineModel) validate() error {
	if len(m.Numeric) == 0 && len(m.Categorical) == 0 {
		return errors.New("pipeline has no input columns")
	}

	seen := make(map[string]bool)
	for _, c := range m.Numeric {
		if c.Name == "" {
			return errors.New("numeric column without a name")
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate column %q", c.Name)
		}
		seen[c.Name] = true
		if c.Scale == 0 {
			return fmt.Errorf("column %q: scale must be non-zero", c.Name)
		}
	}
	for _, c := range m.Categorical {
		if c.Name == "" {
			return errors.New("categorical column without a name")
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate column %q", c.Name)
		}
		seen[c.Name] = true
		if len(c.Categories) == 0 {
			return fmt.Errorf("column %q: categories are required", c.Name)
		}
	}

	if got, want := len(m.Regressor.Coefficients), m.width(); got != want {
		return fmt.Errorf("regressor has %d coefficients, encoded width is %d", got, want)
	}
	return nil
}

func (m *PipelineModel) Predict(in domain.PredictorInput) ([]float64, error) {
	if !in.Structured {
		return nil, errors.New("pipeline model expects a feature record")
	}
	x, err := m.encode(in.Record)
	if err != nil {
		return nil, err
	}
	y, err := dot(m.Regressor.Intercept, m.Regressor.Coefficients, x)
	if err != nil {
		return nil, err
	}
	return []float64{y}, nil
}

func (m *PipelineModel) encode(rec domain.FeatureMap) ([]float64, error) {
	x := make([]float64, 0, m.width())

	for _, c := range m.Numeric {
		v := c.Mean
		if raw, ok := rec[c.Name]; ok && raw != nil {
			f, err := domain.Float(raw)
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", c.Name, err)
			}
			v = f
		}
		x = append(x, (v-c.Mean)/c.Scale)
	}

	for _, c := range m.Categorical {
		label := categoryLabel(rec[c.Name])
		for _, cat := range c.Categories {
			if label == cat {
				x = append(x, 1)
			} else {
				x = append(x, 0)
			}
		}
	}

	return x, nil
}

func categoryLabel(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
