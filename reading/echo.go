package reading

import (
	"strconv"
	"strings"
)

func joinValues(vs []float64) string {
	ss := make([]string, 0, len(vs))
	for _, v := range vs {
		ss = append(ss, strconv.FormatFloat(v, 'g', -1, 64))
	}

	return strings.Join(ss, ", ")
}

// Echo renders the stored values of r, e.g. "Added Wavelength (m): 4e-07, 5e-07".
func Echo(r Reading, labels Labels) string {
	var ss strings.Builder

	ss.WriteString("Added ")
	ss.WriteString(labels.X)
	ss.WriteString(": ")
	ss.WriteString(joinValues(r.X))
	ss.WriteString("\n")
	ss.WriteString("Added ")
	ss.WriteString(labels.Y)
	ss.WriteString(": ")
	ss.WriteString(joinValues(r.Y))

	return ss.String()
}

// Pool concatenates the points of all readings, in order.
func Pool(rs []Reading) Reading {
	var pooled Reading

	for _, r := range rs {
		pooled.X = append(pooled.X, r.X...)
		pooled.Y = append(pooled.Y, r.Y...)
	}

	return pooled
}
