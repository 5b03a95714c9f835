package script

import (
	"fmt"
	"math"
	"math/rand"
)

// Infinity is the finite "inf" sentinel definition files compare against.
const Infinity = 1000000

// Builtins returns the symbols every evaluation sees: pi, inf and
// randfrom(a, b), which draws from rng.
func Builtins(rng *rand.Rand) Env {
	return Env{
		"pi":  math.Pi,
		"inf": Infinity,
		"randfrom": func(args ...any) (float64, error) {
			if len(args) != 2 {
				return 0, fmt.Errorf("randfrom: want 2 arguments, got %d", len(args))
			}
			a, okA := ToFloat(args[0])
			b, okB := ToFloat(args[1])
			if !okA || !okB {
				return 0, fmt.Errorf("randfrom(%v, %v): %w", args[0], args[1], ErrNotNumber)
			}
			return a + rng.Float64()*(b-a), nil
		},
	}
}

// With returns a copy of env extended by the given key/value pairs.
func (env Env) With(kv ...any) Env {
	out := make(Env, len(env)+len(kv)/2)
	for k, v := range env {
		out[k] = v
	}
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("script: env key %v is not a string", kv[i]))
		}
		out[key] = kv[i+1]
	}
	return out
}

// EnvContext adapts a plain Env to the Context interface.
type EnvContext Env

// Env implements Context.
func (c EnvContext) Env() Env {
	return Env(c)
}
