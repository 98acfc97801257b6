package grooveshark

const (
	// DefaultLimit is sent by methods whose limit defaults to 10 when the
	// caller does not pass WithLimit.
	DefaultLimit = 10
)

// ListOption sets an optional paging argument on listing methods.
type ListOption func(*listOptions)

type listOptions struct {
	limit int
	page  int
}

// WithLimit caps the number of returned items. Values below 1 are ignored.
func WithLimit(n int) ListOption {
	return func(o *listOptions) {
		if n > 0 {
			o.limit = n
		}
	}
}

// WithPage selects a result page for methods that page. Values below 1
// are ignored.
func WithPage(n int) ListOption {
	return func(o *listOptions) {
		if n > 0 {
			o.page = n
		}
	}
}

// applyListOptions adds limit and page to params. defaultLimit is sent
// when no limit was given; zero means the key is omitted.
func applyListOptions(params Params, defaultLimit int, opts []ListOption) Params {
	o := listOptions{limit: defaultLimit}
	for _, opt := range opts {
		opt(&o)
	}
	if o.limit > 0 {
		params["limit"] = o.limit
	}
	if o.page > 0 {
		params["page"] = o.page
	}
	return params
}
