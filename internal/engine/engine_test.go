package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceReadWrite(t *testing.T) {
	e := New()
	n := e.NewSource(0, nil)

	assert.Equal(t, 0, e.Read(n))

	e.WriteSource(n, 13)
	assert.Equal(t, 13, e.Read(n))
}

func TestSourceEqualitySuppressesWrite(t *testing.T) {
	e := New()
	calls := 0
	alwaysEqual := func(prev, next any) bool {
		calls++
		return true
	}

	n := e.NewSource(13, alwaysEqual)
	e.WriteSource(n, 14)

	assert.Equal(t, 13, e.Read(n))
	assert.Equal(t, 1, calls)
}

func TestComputedBailoutStopsPropagation(t *testing.T) {
	e := New()
	a := e.NewSource(0, nil)

	runsB, runsC := 0, 0
	b := e.NewComputed(func() any {
		runsB++
		return e.Read(a).(int) * 0 // always 0
	}, nil)
	c := e.NewComputed(func() any {
		runsC++
		return e.Read(b).(int) + 1
	}, nil)

	assert.Equal(t, 1, runsB)
	assert.Equal(t, 1, runsC)

	e.WriteSource(a, 10)

	assert.Equal(t, 2, runsB)
	assert.Equal(t, 1, runsC) // b's value didn't change, c never re-ran
	assert.Equal(t, 1, e.Read(c))
}

func TestDiamondRunsOncePerChange(t *testing.T) {
	e := New()
	name := e.NewSource("John Doe", nil)

	first := e.NewComputed(func() any {
		s := e.Read(name).(string)
		for i, r := range s {
			if r == ' ' {
				return s[:i]
			}
		}
		return s
	}, nil)
	last := e.NewComputed(func() any {
		s := e.Read(name).(string)
		for i, r := range s {
			if r == ' ' {
				return s[i+1:]
			}
		}
		return ""
	}, nil)

	fullRuns := 0
	full := e.NewComputed(func() any {
		fullRuns++
		return e.Read(first).(string) + "/" + e.Read(last).(string)
	}, nil)

	assert.Equal(t, "John/Doe", e.Read(full))
	assert.Equal(t, 1, fullRuns)

	e.WriteSource(name, "Bob Fisher")

	assert.Equal(t, "Bob/Fisher", e.Read(full))
	assert.Equal(t, 2, fullRuns)
}

func TestEffectRunsOnceAtDeclarationAndOnChange(t *testing.T) {
	e := New()
	a := e.NewSource(13, nil)
	b := e.NewSource(42, nil)

	var aLog, bLog []int
	e.NewEffect(func() any {
		aLog = append(aLog, e.Read(a).(int))
		return nil
	})
	e.NewEffect(func() any {
		bLog = append(bLog, e.Read(b).(int))
		return nil
	})

	assert.Equal(t, []int{13}, aLog)
	assert.Equal(t, []int{42}, bLog)

	e.WriteSource(a, 14)
	assert.Equal(t, []int{13, 14}, aLog)
	assert.Equal(t, []int{42}, bLog)

	e.WriteSource(b, 43)
	assert.Equal(t, []int{13, 14}, aLog)
	assert.Equal(t, []int{42, 43}, bLog)
}

func TestReentrantWriteExtendsDigestWithNewPass(t *testing.T) {
	e := New()
	a := e.NewSource(false, nil)
	b := e.NewSource(100, nil)

	var bLog []int
	e.NewEffect(func() any {
		bLog = append(bLog, e.Read(b).(int))
		return nil
	})

	var aLog []bool
	e.NewEffect(func() any {
		v := e.Read(a).(bool)
		aLog = append(aLog, v)
		if v {
			e.WriteSource(b, 200)
		}
		return nil
	})

	assert.Equal(t, []bool{false}, aLog)
	assert.Equal(t, []int{100}, bLog)

	e.WriteSource(a, true)

	assert.Equal(t, []bool{false, true}, aLog)
	assert.Equal(t, []int{100, 200}, bLog)
}

func TestCleanupRunsBeforeRerunAndOnDispose(t *testing.T) {
	e := New()
	count := e.NewSource(0, nil)

	var log []string
	e.NewEffect(func() any {
		v := e.Read(count).(int)
		log = append(log, "run")
		_ = v
		return func() { log = append(log, "cleanup") }
	})

	assert.Equal(t, []string{"run"}, log)

	e.WriteSource(count, 1)
	assert.Equal(t, []string{"run", "cleanup", "run"}, log)

	e.Dispose()
	assert.Equal(t, []string{"run", "cleanup", "run", "cleanup"}, log)
}

func TestWritableDerivationOverride(t *testing.T) {
	e := New()
	a := e.NewSource(13, nil)
	b := e.NewComputed(func() any {
		return e.Read(a).(int) * 2
	}, nil)

	var watched []int
	e.NewEffect(func() any {
		watched = append(watched, e.Read(b).(int))
		return nil
	})
	assert.Equal(t, []int{26}, watched)

	e.WriteComputed(b, 100)
	assert.Equal(t, 100, e.Read(b))
	assert.Equal(t, []int{26, 100}, watched)

	e.WriteSource(a, 26)
	assert.Equal(t, 52, e.Read(b))
	assert.Equal(t, []int{26, 100, 52}, watched)
}

func TestOverriddenDerivationBailoutThenRejoin(t *testing.T) {
	e := New()
	a := e.NewSource(0, nil)

	bRuns := 0
	b := e.NewComputed(func() any {
		bRuns++
		return e.Read(a).(int)
	}, nil)

	cmRuns := 0
	e.NewComputed(func() any {
		cmRuns++
		return e.Read(a).(int)
	}, nil)

	dmRuns := 0
	e.NewComputed(func() any {
		dmRuns++
		return e.Read(b).(int)
	}, nil)

	assert.Equal(t, 1, bRuns)
	assert.Equal(t, 1, cmRuns)
	assert.Equal(t, 1, dmRuns)

	e.WriteComputed(b, 123)
	assert.Equal(t, 1, cmRuns)
	assert.Equal(t, 2, dmRuns)

	e.WriteSource(a, 124)
	assert.Equal(t, 2, cmRuns)
	assert.Equal(t, 3, dmRuns)
}

func TestGoroutineGuardPanics(t *testing.T) {
	e := New()
	n := e.NewSource(0, nil)

	done := make(chan struct{})
	var panicked bool
	go func() {
		defer func() {
			panicked = recover() != nil
			close(done)
		}()
		e.Read(n)
	}()
	<-done

	assert.True(t, panicked)
}

func TestDisposedScopePanics(t *testing.T) {
	e := New()
	n := e.NewSource(0, nil)
	e.Dispose()

	assert.Panics(t, func() {
		e.WriteSource(n, 1)
	})
}
