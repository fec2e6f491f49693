package reading

type Store interface {
	Add(xText, yText string) (Reading, error)
	AddValues(xs, ys []float64) (Reading, error)

	Get(idx int) (Reading, error)
	All() ([]Reading, error)
	Len() (int, error)

	Policy() Policy
}

// Storage only ever appends; Load returns readings in insertion order.
type Storage interface {
	Append(r Reading) error
	Load() ([]Reading, error)
	Count() (int, error)
}
