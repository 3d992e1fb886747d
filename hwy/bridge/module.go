package bridge

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ajroetker/hwysimd/hwy"
	"github.com/ajroetker/hwysimd/hwy/dtype"
	"github.com/ajroetker/hwysimd/hwy/mem"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Kernel computes the results of one intrinsic from its bound arguments.
// Sequence arguments may be modified in place; results must match the
// intrinsic's Out types.
type Kernel func(args []Data) ([]Data, error)

// Intrinsic is one named kernel with its call signature.
type Intrinsic struct {
	Name string
	In   Signature
	Out  []dtype.DataType
	// WriteBack lists argument slots whose sequence lanes are copied back
	// into the caller's collection after the kernel runs.
	WriteBack []int
	// Optional is the number of trailing In slots a call may leave out.
	// The kernel then receives only the arguments that were given.
	Optional int
	Fn       Kernel
}

// signatureFor returns the slots bound for a call with n arguments.
func (in *Intrinsic) signatureFor(n int) Signature {
	if n < len(in.In) && n >= len(in.In)-in.Optional {
		return in.In[:n]
	}
	return in.In
}

// ModuleFactory produces the module for one target.
type ModuleFactory func(hwy.Target) (*Module, error)

// ModuleOption configures a Module.
type ModuleOption func(*moduleConfig)

type moduleConfig struct {
	allocOpts  []mem.Option
	vectorName string
	hasF64     bool
	logger     *zap.Logger
}

// WithAllocatorOptions passes extra options to the module's allocator.
// The alignment always equals the register width.
func WithAllocatorOptions(opts ...mem.Option) ModuleOption {
	return func(c *moduleConfig) {
		c.allocOpts = append(c.allocOpts, opts...)
	}
}

// WithVectorTypeName sets the name the container type is published under.
func WithVectorTypeName(name string) ModuleOption {
	return func(c *moduleConfig) {
		c.vectorName = name
	}
}

// WithF64 sets whether the target supports double-precision lanes.
func WithF64(ok bool) ModuleOption {
	return func(c *moduleConfig) {
		c.hasF64 = ok
	}
}

// WithModuleLogger sets the module logger. It defaults to Logger().
func WithModuleLogger(l *zap.Logger) ModuleOption {
	return func(c *moduleConfig) {
		c.logger = l
	}
}

// Module is the set of intrinsics compiled for one target, together with
// the marshaller that binds host values to them.
type Module struct {
	target     hwy.Target
	m          *Marshaller
	hasF64     bool
	intrinsics map[string]*Intrinsic
	log        *zap.Logger
}

// NewModule creates an empty module for target and publishes its
// container type.
func NewModule(target hwy.Target, opts ...ModuleOption) (*Module, error) {
	cfg := moduleConfig{vectorName: "vector", hasF64: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = Logger()
	}
	reg, err := dtype.NewRegistry(target.Width())
	if err != nil {
		return nil, fmt.Errorf("target %s: %w", target.Name(), err)
	}
	allocOpts := append(slices.Clone(cfg.allocOpts), mem.WithAlignment(target.Width()))
	m := NewMarshaller(reg, mem.NewAllocator(allocOpts...))
	m.log = cfg.logger
	if _, err := m.RegisterVectorType(cfg.vectorName); err != nil {
		return nil, fmt.Errorf("target %s: %w", target.Name(), err)
	}
	return &Module{
		target:     target,
		m:          m,
		hasF64:     cfg.hasF64,
		intrinsics: make(map[string]*Intrinsic),
		log:        cfg.logger.With(zap.String("target", target.Name())),
	}, nil
}

// Target returns the target the module was built for.
func (mod *Module) Target() hwy.Target { return mod.target }

// Width returns the register width in bytes.
func (mod *Module) Width() int { return mod.m.reg.Width() }

// SIMD returns the register width in bits, or 0 when the target runs
// without SIMD.
func (mod *Module) SIMD() int {
	if mod.target.Level == hwy.DispatchScalar {
		return 0
	}
	return mod.Width() * 8
}

// HasF64 reports whether double-precision intrinsics are available.
func (mod *Module) HasF64() bool { return mod.hasF64 }

// Marshaller returns the module's marshaller.
func (mod *Module) Marshaller() *Marshaller { return mod.m }

// Names returns the sorted names of all registered intrinsics.
func (mod *Module) Names() []string {
	names := lo.Keys(mod.intrinsics)
	slices.Sort(names)
	return names
}

// Lookup returns the intrinsic registered under name.
func (mod *Module) Lookup(name string) (*Intrinsic, bool) {
	in, ok := mod.intrinsics[name]
	return in, ok
}

// Register adds an intrinsic. Names must be unique within a module.
func (mod *Module) Register(in Intrinsic) error {
	if in.Name == "" || in.Fn == nil {
		return internalErrorf("intrinsic needs a name and a kernel")
	}
	if _, dup := mod.intrinsics[in.Name]; dup {
		return internalErrorf("intrinsic %q already registered", in.Name)
	}
	for _, t := range slices.Concat(in.In, Signature(in.Out)) {
		if !t.Valid() {
			return internalErrorf("intrinsic %q: invalid type id:%d", in.Name, uint8(t))
		}
	}
	if in.Optional < 0 || in.Optional > len(in.In) {
		return internalErrorf("intrinsic %q: %d optional slots for %d arguments", in.Name, in.Optional, len(in.In))
	}
	for _, i := range in.WriteBack {
		if i < 0 || i >= len(in.In)-in.Optional || in.In[i].Class() != dtype.ClassSequence {
			return internalErrorf("intrinsic %q: write-back slot %d is not a required sequence", in.Name, i)
		}
	}
	mod.intrinsics[in.Name] = &in
	return nil
}

// Call binds args to the intrinsic's signature, runs its kernel and
// encodes the results. No results yield nil, one result its value and
// several a Tuple. Argument buffers and result sequences are released
// before Call returns, whatever the outcome.
func (mod *Module) Call(name string, args ...any) (out any, err error) {
	in, ok := mod.intrinsics[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q on %s", ErrNotFound, name, mod.target.Name())
	}
	defer func() {
		if err != nil {
			mod.log.Debug("intrinsic call failed", zap.String("name", name), zap.Error(err))
		}
	}()

	bound, err := mod.m.Bind(Tuple(args), in.signatureFor(len(args)))
	defer func() {
		if cerr := bound.Clear(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()
	if err != nil {
		return nil, err
	}

	results, err := in.Fn(bound.Data())
	defer func() {
		for _, d := range results {
			if cerr := mod.m.Clear(d); cerr != nil {
				err = errors.Join(err, cerr)
			}
		}
	}()
	if err != nil {
		return nil, err
	}

	if len(results) != len(in.Out) {
		return nil, internalErrorf("%s returned %d results, want %d", name, len(results), len(in.Out))
	}
	for i, d := range results {
		if typeOf(d) != in.Out[i] {
			return nil, internalErrorf("%s result %d is %s, want %s", name, i, typeOf(d), in.Out[i])
		}
	}

	out, err = mod.encodeResults(results)
	if err != nil {
		return nil, err
	}

	// The caller's collections are only touched once the call can no
	// longer fail.
	writes := make([]func(), 0, len(in.WriteBack))
	for _, i := range in.WriteBack {
		apply, err := mod.m.prepareEncodeInto(bound.Slots[i].Obj, bound.Slots[i].Data)
		if err != nil {
			return nil, err
		}
		writes = append(writes, apply)
	}
	for _, apply := range writes {
		apply()
	}
	return out, nil
}

// encodeResults encodes no results as nil, one as its value and several
// as a Tuple.
func (mod *Module) encodeResults(results []Data) (any, error) {
	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return mod.m.Encode(results[0])
	}
	tup := make(Tuple, len(results))
	for i, d := range results {
		v, err := mod.m.Encode(d)
		if err != nil {
			return nil, err
		}
		tup[i] = v
	}
	return tup, nil
}
