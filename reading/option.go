package reading

type Options struct {
	policy      Policy
	policySet   bool
	idGenerator func() uint64
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{}
	for _, o := range option {
		o(opts)
	}

	if !opts.policySet {
		opts.policy = StrictPolicy()
	}

	return opts
}

func PolicyOption(p Policy) Option {
	return func(o *Options) {
		o.policy = p
		o.policySet = true
	}
}

func IDGeneratorOption(fn func() uint64) Option {
	return func(o *Options) {
		o.idGenerator = fn
	}
}
