package fit

// Result holds the coefficients of a fitted polynomial, highest power first.
type Result struct {
	Degree int       `json:"degree" yaml:"degree"`
	Coeffs []float64 `json:"coeffs" yaml:"coeffs"`
	Points int       `json:"points" yaml:"points"`
}

func (r Result) Eval(x float64) (y float64) {
	for _, c := range r.Coeffs {
		y = y*x + c
	}

	return
}

func (r Result) Slope() float64 {
	if len(r.Coeffs) < 2 {
		return 0
	}

	return r.Coeffs[len(r.Coeffs)-2]
}

func (r Result) Intercept() float64 {
	if len(r.Coeffs) == 0 {
		return 0
	}

	return r.Coeffs[len(r.Coeffs)-1]
}

type Estimate struct {
	Value float64 `json:"value" yaml:"value"`
	Fit   Result  `json:"fit" yaml:"fit"`
}

type Trendline struct {
	Degree int       `json:"degree" yaml:"degree"`
	X      []float64 `json:"x" yaml:"x"`
	Y      []float64 `json:"y" yaml:"y"`
}
