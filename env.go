package grove

import (
	"io"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/lyraproj/issue/issue"
)

// Module is the set of types a module exports.
type Module struct {
	Name  string
	Types map[string]Factory
}

// Resolver looks up a module that is not in the catalog.
type Resolver func(name string) (*Module, bool)

var (
	catalogMu sync.RWMutex
	catalog   = map[string]*Module{}
	resolvers []Resolver
	globals   = map[string]Factory{}
)

// RegisterModule makes m importable by name.
func RegisterModule(m *Module) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	catalog[m.Name] = m
}

// RegisterResolver adds a fallback consulted when a name is not in the catalog.
func RegisterResolver(r Resolver) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	resolvers = append(resolvers, r)
}

// RegisterType registers a type that can be constructed without a module prefix.
func RegisterType(name string, f Factory) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	globals[name] = f
}

func findModule(name string) (*Module, bool) {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	if m, ok := catalog[name]; ok {
		return m, true
	}
	for _, r := range resolvers {
		if m, ok := r(name); ok {
			return m, true
		}
	}
	return nil, false
}

func findGlobalType(name string) (Factory, bool) {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	f, ok := globals[name]
	return f, ok
}

// Env holds the variables and imported modules of one session.
type Env struct {
	vars    map[string]Value
	modules map[string]*Module
	trace   *log.Logger
}

func NewEnv() *Env {
	return &Env{
		vars:    make(map[string]Value),
		modules: make(map[string]*Module),
	}
}

// SetTrace logs imports and bindings to w. A nil w disables tracing.
func (e *Env) SetTrace(w io.Writer) {
	if w == nil {
		e.trace = nil
		return
	}
	e.trace = log.New(w, "grove: ", 0)
}

func (e *Env) tracef(format string, args ...interface{}) {
	if e.trace != nil {
		e.trace.Printf(format, args...)
	}
}

// Lookup returns the value bound to name.
func (e *Env) Lookup(name string) (Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Bind binds name to v, replacing any previous value.
func (e *Env) Bind(name string, v Value) {
	e.tracef("bind %s = %v", name, v)
	e.vars[name] = v
}

// Names returns the bound variable names in sorted order.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Module returns an imported module.
func (e *Env) Module(name string) (*Module, bool) {
	m, ok := e.modules[name]
	return m, ok
}

// Import resolves name and registers it in the session.
func (e *Env) Import(name string) error {
	m, ok := findModule(name)
	if !ok {
		return newError(ImportFailed, issue.H{`name`: name})
	}
	e.tracef("import %s (%d types)", name, len(m.Types))
	e.modules[name] = m
	return nil
}

// Construct instantiates the type found at a dotted path.
func (e *Env) Construct(path []string) (*Object, error) {
	var f Factory
	if len(path) == 1 {
		var ok bool
		f, ok = findGlobalType(path[0])
		if !ok {
			return nil, newError(UndefinedType, issue.H{`module`: `__main__`, `name`: path[0]})
		}
	} else {
		m, ok := e.modules[path[0]]
		if !ok {
			return nil, newError(UndefinedModule, issue.H{`name`: path[0]})
		}
		name := strings.Join(path[1:], ".")
		f, ok = m.Types[name]
		if !ok {
			return nil, newError(UndefinedType, issue.H{`module`: path[0], `name`: name})
		}
	}
	return f()
}
