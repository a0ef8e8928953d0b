package bdd

import (
	"github.com/openfta/bdd/boolgraph"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Bdd is one construction of a Binary Decision Diagram with attributed
// edges: a single terminal, a unique table enforcing canonicity, and one
// compute table per primitive operator. A Bdd is built once, from a single
// boolgraph.Gate tree, by New; there is no operation to add variables or
// gates to an existing Bdd afterwards, since attributed-edge ROBDDs are
// grown purely through Apply and ite, both of which allocate vertices on
// demand.
type Bdd struct {
	one *vertex // the single terminal; id is always 1

	unique   *uniqueTable
	andCache *computeCache
	orCache  *computeCache

	nextID int

	root    Function
	modules map[int]Function // module index -> module's own root function

	indexToOrder map[int]int // variable/module index -> ordering position

	garbageCollection bool
	gcStats           gcStats

	log *logrus.Entry
}

// New converts a preprocessed Boolean graph into a BDD. indexToOrder gives
// the total variable ordering the converter must respect: it maps every
// basic-event index reachable from root to its position in that order.
// Module gates do not need an entry of their own; New assigns one as each
// module is discovered, from the module gate's own Index/Order fields.
//
// The returned Bdd owns one strong reference to its root and to every
// module's root; call Close when done with it.
func New(root *boolgraph.Gate, indexToOrder map[int]int, opts ...Option) (*Bdd, error) {
	if root == nil {
		return nil, errors.New("bdd: root gate is nil")
	}
	settings := defaultSettings()
	for _, opt := range opts {
		opt(&settings)
	}

	order := make(map[int]int, len(indexToOrder))
	for k, v := range indexToOrder {
		order[k] = v
	}

	bd := &Bdd{
		one:               &vertex{terminal: true, id: 1},
		unique:            newUniqueTable(settings.nodeCapacity),
		andCache:          newComputeCache(primAND, settings.cacheCapacity),
		orCache:           newComputeCache(primOR, settings.cacheCapacity),
		nextID:            2,
		modules:           make(map[int]Function),
		indexToOrder:      order,
		garbageCollection: true,
		log:               newLogger(settings),
	}

	if settings.eagerModules {
		if err := bd.buildModulesEagerly(root, make(map[int]bool)); err != nil {
			return nil, errors.Wrap(err, "build bdd")
		}
	}

	visited := make(map[int]Function)
	rootFn, err := bd.convertGate(root, visited)
	if err != nil {
		return nil, errors.Wrap(err, "build bdd")
	}
	bd.root = bd.addRef(rootFn)

	return bd, nil
}

// buildModulesEagerly walks the graph ahead of the main conversion pass and
// forces every module gate's sub-BDD to be built immediately, instead of the
// default of building it lazily the first time the main pass reaches its
// proxy. This only changes when the work happens, not what result it
// produces: moduleProxy already memoizes by index, so the main pass finds
// each eagerly-built module already present in bd.modules and skips
// rebuilding it.
func (bd *Bdd) buildModulesEagerly(g *boolgraph.Gate, seen map[int]bool) error {
	if g == nil || seen[g.ID] {
		return nil
	}
	seen[g.ID] = true
	if g.Module {
		if _, err := bd.moduleProxy(g); err != nil {
			return err
		}
	}
	for _, arg := range g.Args {
		if arg.Kind == boolgraph.GateArg {
			if err := bd.buildModulesEagerly(arg.Gate, seen); err != nil {
				return err
			}
		}
	}
	return nil
}

// Root returns the function computed by the top gate.
func (bd *Bdd) Root() Function {
	return bd.root
}

// Module returns the function of the module registered under index, and
// whether one was built under that index.
func (bd *Bdd) Module(index int) (Function, bool) {
	f, ok := bd.modules[index]
	return f, ok
}

// Modules returns every module built during conversion, keyed by proxy
// index. The returned map is owned by the caller; mutating it has no effect
// on the Bdd.
func (bd *Bdd) Modules() map[int]Function {
	out := make(map[int]Function, len(bd.modules))
	for k, v := range bd.modules {
		out[k] = v
	}
	return out
}

// IndexToOrder returns the ordering position assigned to a variable or
// module index, and whether one exists.
func (bd *Bdd) IndexToOrder(index int) (int, bool) {
	order, ok := bd.indexToOrder[index]
	return order, ok
}
