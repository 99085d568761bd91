package udf

import (
	"github.com/Invicton-Labs/go-pigudf/collections"
	"github.com/Invicton-Labs/go-pigudf/gensync"
	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/multierr"
)

// The names the power function has historically been registered under.
const (
	MyExpName       = "com.acme.pig.MyExp"
	PigDummyUDFName = "com.acme.pig.pigdummyudf"
)

var PowerAliases = []string{MyExpName, PigDummyUDFName}

// Registry maps function names to implementations. One implementation
// can be registered under several names.
type Registry struct {
	funcs gensync.Map[string, EvalFunc]
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds fn under every given name. Names that are empty or
// already taken are skipped, and an error listing all of them is returned.
func (r *Registry) Register(fn EvalFunc, names ...string) error {
	if fn == nil {
		return stackerr.Errorf("Cannot register a nil function")
	}
	var err error
	for _, name := range names {
		if name == "" {
			err = multierr.Append(err, stackerr.Errorf("Function name cannot be empty"))
			continue
		}
		if _, loaded := r.funcs.LoadOrStore(name, fn); loaded {
			err = multierr.Append(err, stackerr.Errorf("Function `%s` is already registered", name))
		}
	}
	return err
}

func (r *Registry) Lookup(name string) (EvalFunc, bool) {
	return r.funcs.Load(name)
}

// Names returns all registered names in ascending order.
func (r *Registry) Names() []string {
	return collections.SortSliceAscendingCopy(r.funcs.Keys())
}

// RegisterPower registers a single Power evaluator under all of its
// historical names.
func RegisterPower(r *Registry, input PowerInput) (*Power, error) {
	p := NewPower(input)
	if err := r.Register(p, PowerAliases...); err != nil {
		return nil, err
	}
	return p, nil
}
