package social

// Factory produces a new Adapter instance per call.
type Factory interface {
	CreateAdapter() (Adapter, error)
}

// FactoryFunc adapts a plain constructor function to Factory.
type FactoryFunc func() (Adapter, error)

// CreateAdapter calls f.
func (f FactoryFunc) CreateAdapter() (Adapter, error) { return f() } //nolint:ireturn
