package reading

import "sync"

// NewMemStorage keeps readings for the lifetime of the process.
func NewMemStorage() Storage {
	return &memStorageImpl{}
}

type memStorageImpl struct {
	lock     sync.RWMutex
	readings []Reading
}

func (impl *memStorageImpl) Append(r Reading) error {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	impl.readings = append(impl.readings, r.Clone())

	return nil
}

func (impl *memStorageImpl) Load() ([]Reading, error) {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	return append([]Reading{}, impl.readings...), nil
}

func (impl *memStorageImpl) Count() (int, error) {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	return len(impl.readings), nil
}
