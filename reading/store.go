package reading

import (
	"sync"
	"time"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
)

func NewStore(storage Storage, logger l.Wrapper, options ...Option) Store {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "storeImpl"))

	if storage == nil {
		storage = NewMemStorage()
	}

	opts := optionNew(options...)

	if opts.idGenerator == nil {
		opts.idGenerator = snowflake.ID
	}

	return &storeImpl{
		logger:  logger,
		storage: storage,
		policy:  opts.policy,
		newID:   opts.idGenerator,
	}
}

type storeImpl struct {
	logger  l.Wrapper
	storage Storage
	policy  Policy
	newID   func() uint64

	lock sync.Mutex
}

func (impl *storeImpl) Policy() Policy {
	return impl.policy
}

func (impl *storeImpl) Add(xText, yText string) (r Reading, err error) {
	xs, err := ParseValues(FieldX, xText)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err)).Debug("reject x input")

		return
	}

	ys, err := ParseValues(FieldY, yText)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err)).Debug("reject y input")

		return
	}

	return impl.AddValues(xs, ys)
}

func (impl *storeImpl) AddValues(xs, ys []float64) (r Reading, err error) {
	cxs, cys, err := impl.policy.Validate(xs, ys)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err)).Debug("reject values")

		return
	}

	nr := Reading{
		ID: impl.newID(),
		X:  cxs,
		Y:  cys,
		At: time.Now(),
	}

	impl.lock.Lock()
	defer impl.lock.Unlock()

	err = impl.storage.Append(nr)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.IntField("points", nr.Len())).Error("append reading failed")

		return
	}

	r = nr.Clone()

	return
}

func (impl *storeImpl) Get(idx int) (r Reading, err error) {
	rs, err := impl.All()
	if err != nil {
		return
	}

	if idx < 0 || idx >= len(rs) {
		err = commerr.ErrNotFound

		return
	}

	r = rs[idx]

	return
}

func (impl *storeImpl) All() ([]Reading, error) {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	rs, err := impl.storage.Load()
	if err != nil {
		return nil, err
	}

	out := make([]Reading, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Clone())
	}

	return out, nil
}

func (impl *storeImpl) Len() (int, error) {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	return impl.storage.Count()
}
