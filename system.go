package ecs

// System is a scheduled unit of work. It declares its resource accesses
// once per phase-bucket validation pass, then is invoked with those same
// parameters freshly fetched from the store (§4.3). User code never
// implements this interface directly; it is produced by NewSystem0
// through NewSystem10.
type System interface {
	name() string
	declareAccesses(t *AccessTable) error
	invoke(ctx *systemContext) error
}

// funcSystem wraps a user function of some arity behind the uniform
// System interface. declare and call are closures captured at
// construction time by the arity-specific NewSystemN constructors below,
// mirroring the Rust original's impl_system!/impl_into_system! macro
// expansion over arities 0..10 (scheduler/system.rs).
type funcSystem struct {
	label   string
	declare func(t *AccessTable) error
	call    func(ctx *systemContext) error
}

func (s *funcSystem) name() string                        { return s.label }
func (s *funcSystem) declareAccesses(t *AccessTable) error { return s.declare(t) }
func (s *funcSystem) invoke(ctx *systemContext) error      { return s.call(ctx) }

func namedOrAnonymous(name string) string {
	if name == "" {
		return "system"
	}
	return name
}

// NewSystem0 builds a system taking no parameters.
func NewSystem0(name string, fn func()) System {
	return &funcSystem{
		label:   namedOrAnonymous(name),
		declare: func(t *AccessTable) error { return nil },
		call: func(ctx *systemContext) error {
			fn()
			return nil
		},
	}
}

// NewSystem1 builds a system of one parameter.
func NewSystem1[P1 Param](name string, fn func(P1)) System {
	var p1 P1
	return &funcSystem{
		label: namedOrAnonymous(name),
		declare: func(t *AccessTable) error {
			return p1.declare(t)
		},
		call: func(ctx *systemContext) error {
			v1, err := p1.fetch(ctx)
			if err != nil {
				return err
			}
			fn(v1.(P1))
			return nil
		},
	}
}

func NewSystem2[P1, P2 Param](name string, fn func(P1, P2)) System {
	var p1 P1
	var p2 P2
	return &funcSystem{
		label: namedOrAnonymous(name),
		declare: func(t *AccessTable) error {
			if err := p1.declare(t); err != nil {
				return err
			}
			return p2.declare(t)
		},
		call: func(ctx *systemContext) error {
			v1, err := p1.fetch(ctx)
			if err != nil {
				return err
			}
			v2, err := p2.fetch(ctx)
			if err != nil {
				return err
			}
			fn(v1.(P1), v2.(P2))
			return nil
		},
	}
}

func NewSystem3[P1, P2, P3 Param](name string, fn func(P1, P2, P3)) System {
	var p1 P1
	var p2 P2
	var p3 P3
	return &funcSystem{
		label: namedOrAnonymous(name),
		declare: func(t *AccessTable) error {
			if err := p1.declare(t); err != nil {
				return err
			}
			if err := p2.declare(t); err != nil {
				return err
			}
			return p3.declare(t)
		},
		call: func(ctx *systemContext) error {
			v1, err := p1.fetch(ctx)
			if err != nil {
				return err
			}
			v2, err := p2.fetch(ctx)
			if err != nil {
				return err
			}
			v3, err := p3.fetch(ctx)
			if err != nil {
				return err
			}
			fn(v1.(P1), v2.(P2), v3.(P3))
			return nil
		},
	}
}

func NewSystem4[P1, P2, P3, P4 Param](name string, fn func(P1, P2, P3, P4)) System {
	var p1 P1
	var p2 P2
	var p3 P3
	var p4 P4
	return &funcSystem{
		label: namedOrAnonymous(name),
		declare: func(t *AccessTable) error {
			for _, d := range []func(*AccessTable) error{p1.declare, p2.declare, p3.declare, p4.declare} {
				if err := d(t); err != nil {
					return err
				}
			}
			return nil
		},
		call: func(ctx *systemContext) error {
			v1, err := p1.fetch(ctx)
			if err != nil {
				return err
			}
			v2, err := p2.fetch(ctx)
			if err != nil {
				return err
			}
			v3, err := p3.fetch(ctx)
			if err != nil {
				return err
			}
			v4, err := p4.fetch(ctx)
			if err != nil {
				return err
			}
			fn(v1.(P1), v2.(P2), v3.(P3), v4.(P4))
			return nil
		},
	}
}

func NewSystem5[P1, P2, P3, P4, P5 Param](name string, fn func(P1, P2, P3, P4, P5)) System {
	var p1 P1
	var p2 P2
	var p3 P3
	var p4 P4
	var p5 P5
	return &funcSystem{
		label: namedOrAnonymous(name),
		declare: func(t *AccessTable) error {
			for _, d := range []func(*AccessTable) error{p1.declare, p2.declare, p3.declare, p4.declare, p5.declare} {
				if err := d(t); err != nil {
					return err
				}
			}
			return nil
		},
		call: func(ctx *systemContext) error {
			v1, err := p1.fetch(ctx)
			if err != nil {
				return err
			}
			v2, err := p2.fetch(ctx)
			if err != nil {
				return err
			}
			v3, err := p3.fetch(ctx)
			if err != nil {
				return err
			}
			v4, err := p4.fetch(ctx)
			if err != nil {
				return err
			}
			v5, err := p5.fetch(ctx)
			if err != nil {
				return err
			}
			fn(v1.(P1), v2.(P2), v3.(P3), v4.(P4), v5.(P5))
			return nil
		},
	}
}

func NewSystem6[P1, P2, P3, P4, P5, P6 Param](name string, fn func(P1, P2, P3, P4, P5, P6)) System {
	var p1 P1
	var p2 P2
	var p3 P3
	var p4 P4
	var p5 P5
	var p6 P6
	return &funcSystem{
		label: namedOrAnonymous(name),
		declare: func(t *AccessTable) error {
			for _, d := range []func(*AccessTable) error{p1.declare, p2.declare, p3.declare, p4.declare, p5.declare, p6.declare} {
				if err := d(t); err != nil {
					return err
				}
			}
			return nil
		},
		call: func(ctx *systemContext) error {
			v1, err := p1.fetch(ctx)
			if err != nil {
				return err
			}
			v2, err := p2.fetch(ctx)
			if err != nil {
				return err
			}
			v3, err := p3.fetch(ctx)
			if err != nil {
				return err
			}
			v4, err := p4.fetch(ctx)
			if err != nil {
				return err
			}
			v5, err := p5.fetch(ctx)
			if err != nil {
				return err
			}
			v6, err := p6.fetch(ctx)
			if err != nil {
				return err
			}
			fn(v1.(P1), v2.(P2), v3.(P3), v4.(P4), v5.(P5), v6.(P6))
			return nil
		},
	}
}

func NewSystem7[P1, P2, P3, P4, P5, P6, P7 Param](name string, fn func(P1, P2, P3, P4, P5, P6, P7)) System {
	var p1 P1
	var p2 P2
	var p3 P3
	var p4 P4
	var p5 P5
	var p6 P6
	var p7 P7
	return &funcSystem{
		label: namedOrAnonymous(name),
		declare: func(t *AccessTable) error {
			for _, d := range []func(*AccessTable) error{p1.declare, p2.declare, p3.declare, p4.declare, p5.declare, p6.declare, p7.declare} {
				if err := d(t); err != nil {
					return err
				}
			}
			return nil
		},
		call: func(ctx *systemContext) error {
			v1, err := p1.fetch(ctx)
			if err != nil {
				return err
			}
			v2, err := p2.fetch(ctx)
			if err != nil {
				return err
			}
			v3, err := p3.fetch(ctx)
			if err != nil {
				return err
			}
			v4, err := p4.fetch(ctx)
			if err != nil {
				return err
			}
			v5, err := p5.fetch(ctx)
			if err != nil {
				return err
			}
			v6, err := p6.fetch(ctx)
			if err != nil {
				return err
			}
			v7, err := p7.fetch(ctx)
			if err != nil {
				return err
			}
			fn(v1.(P1), v2.(P2), v3.(P3), v4.(P4), v5.(P5), v6.(P6), v7.(P7))
			return nil
		},
	}
}

func NewSystem8[P1, P2, P3, P4, P5, P6, P7, P8 Param](name string, fn func(P1, P2, P3, P4, P5, P6, P7, P8)) System {
	var p1 P1
	var p2 P2
	var p3 P3
	var p4 P4
	var p5 P5
	var p6 P6
	var p7 P7
	var p8 P8
	return &funcSystem{
		label: namedOrAnonymous(name),
		declare: func(t *AccessTable) error {
			for _, d := range []func(*AccessTable) error{p1.declare, p2.declare, p3.declare, p4.declare, p5.declare, p6.declare, p7.declare, p8.declare} {
				if err := d(t); err != nil {
					return err
				}
			}
			return nil
		},
		call: func(ctx *systemContext) error {
			v1, err := p1.fetch(ctx)
			if err != nil {
				return err
			}
			v2, err := p2.fetch(ctx)
			if err != nil {
				return err
			}
			v3, err := p3.fetch(ctx)
			if err != nil {
				return err
			}
			v4, err := p4.fetch(ctx)
			if err != nil {
				return err
			}
			v5, err := p5.fetch(ctx)
			if err != nil {
				return err
			}
			v6, err := p6.fetch(ctx)
			if err != nil {
				return err
			}
			v7, err := p7.fetch(ctx)
			if err != nil {
				return err
			}
			v8, err := p8.fetch(ctx)
			if err != nil {
				return err
			}
			fn(v1.(P1), v2.(P2), v3.(P3), v4.(P4), v5.(P5), v6.(P6), v7.(P7), v8.(P8))
			return nil
		},
	}
}

func NewSystem9[P1, P2, P3, P4, P5, P6, P7, P8, P9 Param](name string, fn func(P1, P2, P3, P4, P5, P6, P7, P8, P9)) System {
	var p1 P1
	var p2 P2
	var p3 P3
	var p4 P4
	var p5 P5
	var p6 P6
	var p7 P7
	var p8 P8
	var p9 P9
	return &funcSystem{
		label: namedOrAnonymous(name),
		declare: func(t *AccessTable) error {
			for _, d := range []func(*AccessTable) error{p1.declare, p2.declare, p3.declare, p4.declare, p5.declare, p6.declare, p7.declare, p8.declare, p9.declare} {
				if err := d(t); err != nil {
					return err
				}
			}
			return nil
		},
		call: func(ctx *systemContext) error {
			v1, err := p1.fetch(ctx)
			if err != nil {
				return err
			}
			v2, err := p2.fetch(ctx)
			if err != nil {
				return err
			}
			v3, err := p3.fetch(ctx)
			if err != nil {
				return err
			}
			v4, err := p4.fetch(ctx)
			if err != nil {
				return err
			}
			v5, err := p5.fetch(ctx)
			if err != nil {
				return err
			}
			v6, err := p6.fetch(ctx)
			if err != nil {
				return err
			}
			v7, err := p7.fetch(ctx)
			if err != nil {
				return err
			}
			v8, err := p8.fetch(ctx)
			if err != nil {
				return err
			}
			v9, err := p9.fetch(ctx)
			if err != nil {
				return err
			}
			fn(v1.(P1), v2.(P2), v3.(P3), v4.(P4), v5.(P5), v6.(P6), v7.(P7), v8.(P8), v9.(P9))
			return nil
		},
	}
}

func NewSystem10[P1, P2, P3, P4, P5, P6, P7, P8, P9, P10 Param](name string, fn func(P1, P2, P3, P4, P5, P6, P7, P8, P9, P10)) System {
	var p1 P1
	var p2 P2
	var p3 P3
	var p4 P4
	var p5 P5
	var p6 P6
	var p7 P7
	var p8 P8
	var p9 P9
	var p10 P10
	return &funcSystem{
		label: namedOrAnonymous(name),
		declare: func(t *AccessTable) error {
			for _, d := range []func(*AccessTable) error{p1.declare, p2.declare, p3.declare, p4.declare, p5.declare, p6.declare, p7.declare, p8.declare, p9.declare, p10.declare} {
				if err := d(t); err != nil {
					return err
				}
			}
			return nil
		},
		call: func(ctx *systemContext) error {
			v1, err := p1.fetch(ctx)
			if err != nil {
				return err
			}
			v2, err := p2.fetch(ctx)
			if err != nil {
				return err
			}
			v3, err := p3.fetch(ctx)
			if err != nil {
				return err
			}
			v4, err := p4.fetch(ctx)
			if err != nil {
				return err
			}
			v5, err := p5.fetch(ctx)
			if err != nil {
				return err
			}
			v6, err := p6.fetch(ctx)
			if err != nil {
				return err
			}
			v7, err := p7.fetch(ctx)
			if err != nil {
				return err
			}
			v8, err := p8.fetch(ctx)
			if err != nil {
				return err
			}
			v9, err := p9.fetch(ctx)
			if err != nil {
				return err
			}
			v10, err := p10.fetch(ctx)
			if err != nil {
				return err
			}
			fn(v1.(P1), v2.(P2), v3.(P3), v4.(P4), v5.(P5), v6.(P6), v7.(P7), v8.(P8), v9.(P9), v10.(P10))
			return nil
		},
	}
}
