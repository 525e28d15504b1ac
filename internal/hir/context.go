package hir

import "strconv"

// FxDecl is everything the fx (typed-pure) registry keeps for a declaration:
// full signature, kept for call-site binding and purity verification
// (spec §3.3). Purity verification itself is the external collaborator's
// job (spec §4.2); this struct only carries what call-binding needs.
type FxDecl struct {
	Name       string
	Params     []FxParam
	ReturnType string
}

// FnDecl is the untyped-function registry's counterpart, carrying enough to
// bind named args, defaults, and a trailing rest parameter.
type FnDecl struct {
	Name   string
	Params []Param
}

// Registries holds the two process-wide-in-the-source, scoped-to-one-
// compilation-here mappings from spec §3.3. Spec's Design Notes ask that
// these live on an explicit context rather than as package-level state, so
// concurrent compilations never share them (spec §5, §9).
type Registries struct {
	Fx map[string]*FxDecl
	Fn map[string]*FnDecl
}

// NewRegistries returns empty, ready-to-use registries.
func NewRegistries() *Registries {
	return &Registries{Fx: map[string]*FxDecl{}, Fn: map[string]*FnDecl{}}
}

// LoopContext is one entry of the loop-context stack: the synthesized
// function name a `recur` inside this loop must tail-call (spec §3.4).
type LoopContext struct {
	Name string
}

// Context is the compilation-scoped state threaded through lowering: the
// registries and the loop-context stack (spec §9 Design Notes — replacing
// the reference design's process-wide globals with an explicit value
// passed through the recursion, named LoweringCtx in prose).
type Context struct {
	Registries *Registries
	loopStack  []LoopContext
	loopCount  int
}

// NewContext returns a fresh, empty compilation context. Registries are
// cleared here, not mutated in place, so two independent lowerings never
// observe each other's state (spec §5).
func NewContext() *Context {
	return &Context{Registries: NewRegistries()}
}

// PushLoop synthesizes a unique loop name, pushes it onto the stack, and
// returns it (spec §4.4 step 1-2).
func (c *Context) PushLoop() string {
	name := synthesizeLoopName(c.loopCount)
	c.loopCount++
	c.loopStack = append(c.loopStack, LoopContext{Name: name})
	return name
}

// PopLoop pops the most recently pushed loop context (spec §4.4 step 5).
func (c *Context) PopLoop() {
	if len(c.loopStack) == 0 {
		return
	}
	c.loopStack = c.loopStack[:len(c.loopStack)-1]
}

// CurrentLoop returns the name `recur` should tail-call, and whether any
// loop context is open (spec §3.4 invariant: recur outside a loop is
// rejected).
func (c *Context) CurrentLoop() (string, bool) {
	if len(c.loopStack) == 0 {
		return "", false
	}
	return c.loopStack[len(c.loopStack)-1].Name, true
}

func synthesizeLoopName(n int) string {
	return "loop_" + strconv.Itoa(n)
}
