package reactive

import "reflect"

// EffectFunc is either a nullary effect or a nullary effect that
// returns a cleanup function, expressed as a generic constraint rather
// than runtime arity dispatch.
type EffectFunc interface {
	~func() | ~func() func()
}

// Watch registers an effect that runs once immediately and re-runs
// whenever one of its tracked dependencies actually changes. If effect
// returns a cleanup function, that cleanup runs immediately before
// every re-run and once at scope disposal.
//
// No handle is returned: individual watchers cannot be disposed on
// their own, only the whole Scope.
func Watch[T EffectFunc](s *Scope, effect T) {
	s.eng.NewEffect(func() any {
		switch fn := any(effect).(type) {
		case func():
			fn()
			return nil
		case func() func():
			return fn()
		default:
			// A named function type satisfies the constraint but matches
			// neither case above; call it through reflection.
			out := reflect.ValueOf(effect).Call(nil)
			if len(out) == 0 {
				return nil
			}
			return out[0].Interface()
		}
	})
}
