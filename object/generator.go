package object

// Generator is a suspended computation wrapping a Frame. Advancing a
// generator resumes its frame in place until the body yields or exhausts;
// exhaustion is reported by the frame interpreter raising StopIteration.
// Constructing a Generator never executes the function body (spec section
// 4.3, step 3) — only advancing it does.
type Generator struct {
	base

	frame     *Frame
	exhausted bool
}

func (g *Generator) Type() Kind { return KindGenerator }

func (g *Generator) Inspect() string { return "<generator>" }

// Frame returns the generator's suspended frame.
func (g *Generator) Frame() *Frame { return g.frame }

// Exhausted reports whether the generator has already run to completion.
func (g *Generator) Exhausted() bool { return g.exhausted }

// MarkExhausted records that the generator's frame has run to completion.
// Called by the frame interpreter once the underlying frame returns rather
// than yields again.
func (g *Generator) MarkExhausted() { g.exhausted = true }

// NewGenerator wraps frame in a fresh, non-exhausted Generator.
func NewGenerator(frame *Frame) *Generator {
	return &Generator{frame: frame}
}
