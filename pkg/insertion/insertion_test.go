package insertion_test

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rescache/pkg/insertion"
)

var errRejected = errors.New("value rejected")

type registry struct {
	values map[string]any
}

func newRegistry() *registry { return &registry{values: map[string]any{}} }

func (r *registry) Put(key string, value any) any {
	old := r.values[key]
	r.values[key] = value
	return old
}

type bag struct{ items []string }

func (b *bag) Put(item string) error {
	if item == "" {
		return errRejected
	}
	b.items = append(b.items, item)
	return nil
}

type counter struct{ total int }

func (c *counter) Put(name string, n int) (int, bool) {
	c.total += n
	return c.total, c.total > 10
}

type exploding struct{}

func (exploding) Put(v any) { panic("boom") }

type labelKey string

type attrs map[string]string

func (a attrs) Put(key, value string) { a[key] = "attr:" + value }

type tags map[string]bool

func (t tags) Put(tag string) { t[tag] = true }

func TestInsertion_Binary(t *testing.T) {
	r := insertion.New()

	ins, err := r.Resolve(insertion.Keyed(reflect.TypeFor[*registry](), "k"), "v")
	require.NoError(t, err)
	assert.Equal(t, insertion.Binary, ins.Kind())
	assert.True(t, ins.Alive())
	assert.Equal(t, "Put", ins.Method().Name)

	viaResolver := newRegistry()
	direct := newRegistry()

	prev, err := ins.Invoke(viaResolver, "v")
	require.NoError(t, err)
	assert.Nil(t, prev)
	direct.Put("k", "v")
	assert.Equal(t, direct.values, viaResolver.values)

	prev, err = ins.Invoke(viaResolver, "w")
	require.NoError(t, err)
	assert.Equal(t, "v", prev)
	assert.Equal(t, "w", viaResolver.values["k"])

	_, err = ins.Invoke(viaResolver, nil)
	require.NoError(t, err)
	assert.Contains(t, viaResolver.values, "k")
	assert.Nil(t, viaResolver.values["k"])
}

func TestInsertion_Unary(t *testing.T) {
	r := insertion.New()

	ins, err := r.Resolve(insertion.Unkeyed(reflect.TypeFor[*bag]()), "x")
	require.NoError(t, err)
	assert.Equal(t, insertion.Unary, ins.Kind())

	b := &bag{}
	result, err := ins.Invoke(b, "first")
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, []string{"first"}, b.items)
}

func TestInsertion_Unresolved(t *testing.T) {
	r := insertion.New()

	// only a two-argument Put exists
	ins, err := r.Resolve(insertion.Unkeyed(reflect.TypeFor[*registry]()), "v")
	require.NoError(t, err)
	assert.Equal(t, insertion.Unresolved, ins.Kind())
	assert.False(t, ins.Alive())

	reg := newRegistry()
	result, err := ins.Invoke(reg, "v")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.Empty(t, reg.values)

	result, err = ins.Invoke(nil, nil)
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestInsertion_MultipleResults(t *testing.T) {
	r := insertion.New()
	c := &counter{}

	result, err := r.Put(c, "hits", 4)
	require.NoError(t, err)
	assert.Equal(t, []any{4, false}, result)

	result, err = r.Put(c, "hits", 8)
	require.NoError(t, err)
	assert.Equal(t, []any{12, true}, result)
}

func TestInsertion_ApplicationErrorPassesThrough(t *testing.T) {
	r := insertion.New()

	_, err := r.Add(&bag{}, "")
	require.Error(t, err)
	assert.Same(t, errRejected, err)
	assert.NotErrorIs(t, err, insertion.ErrAccess)

	var accessErr *insertion.AccessError
	assert.False(t, errors.As(err, &accessErr))
}

func TestInsertion_PanicPropagates(t *testing.T) {
	r := insertion.New()

	ins, err := r.Resolve(insertion.Unkeyed(reflect.TypeFor[exploding]()), 1)
	require.NoError(t, err)
	require.Equal(t, insertion.Unary, ins.Kind())

	assert.PanicsWithValue(t, "boom", func() {
		_, _ = ins.Invoke(exploding{}, 1)
	})
}

func TestInsertion_AccessErrors(t *testing.T) {
	r := insertion.New()

	keyed, err := r.Resolve(insertion.Keyed(reflect.TypeFor[*registry](), "k"), "v")
	require.NoError(t, err)
	unary, err := r.Resolve(insertion.Unkeyed(reflect.TypeFor[*bag]()), "x")
	require.NoError(t, err)
	mapped, err := r.Resolve(insertion.Keyed(reflect.TypeFor[map[string]int](), "k"), 1)
	require.NoError(t, err)

	tests := []struct {
		name     string
		ins      *insertion.Insertion
		instance any
		value    any
	}{
		{"nil instance", keyed, nil, "v"},
		{"nil pointer", keyed, (*registry)(nil), "v"},
		{"other shape", keyed, &bag{}, "v"},
		{"value of wrong type", unary, &bag{}, 42},
		{"nil for non-nillable parameter", unary, &bag{}, nil},
		{"nil map", mapped, map[string]int(nil), 1},
		{"map element of wrong type", mapped, map[string]int{}, "one"},
		{"map of other type", mapped, map[string]string{}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.ins.Invoke(tt.instance, tt.value)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, insertion.ErrAccess)

			var accessErr *insertion.AccessError
			require.ErrorAs(t, err, &accessErr)
			assert.Equal(t, tt.ins.Target().Shape, accessErr.Shape)
			assert.NotEmpty(t, accessErr.Reason)
		})
	}
}

func TestInsertion_Map(t *testing.T) {
	r := insertion.New()

	t.Run("string key", func(t *testing.T) {
		m := map[string]int{}
		prev, err := r.Put(m, "a", 1)
		require.NoError(t, err)
		assert.Nil(t, prev)

		prev, err = r.Put(m, "a", 2)
		require.NoError(t, err)
		assert.Equal(t, 1, prev)
		assert.Equal(t, map[string]int{"a": 2}, m)

		ins, err := r.Resolve(insertion.Keyed(reflect.TypeOf(m), "a"), 0)
		require.NoError(t, err)
		assert.Equal(t, insertion.Binary, ins.Kind())
		assert.Equal(t, "", ins.Method().Name)
	})

	t.Run("string-kinded key", func(t *testing.T) {
		m := map[labelKey]any{}
		_, err := r.Put(m, "env", "prod")
		require.NoError(t, err)
		assert.Equal(t, "prod", m[labelKey("env")])
	})

	t.Run("non-string key is unresolved", func(t *testing.T) {
		m := map[int]string{}
		result, err := r.Put(m, "1", "one")
		require.NoError(t, err)
		assert.Nil(t, result)
		assert.Empty(t, m)
	})

	t.Run("declared two-argument method wins over assignment", func(t *testing.T) {
		a := attrs{}
		ins, err := r.Resolve(insertion.Keyed(reflect.TypeOf(a), "color"), "red")
		require.NoError(t, err)
		assert.Equal(t, insertion.Binary, ins.Kind())
		assert.Equal(t, "Put", ins.Method().Name)

		result, err := ins.Invoke(a, "red")
		require.NoError(t, err)
		assert.Nil(t, result)
		assert.Equal(t, attrs{"color": "attr:red"}, a)
	})

	t.Run("declared one-argument method on a map", func(t *testing.T) {
		tg := tags{}
		ins, err := r.Resolve(insertion.Unkeyed(reflect.TypeOf(tg)), "hot")
		require.NoError(t, err)
		assert.Equal(t, insertion.Unary, ins.Kind())

		_, err = ins.Invoke(tg, "hot")
		require.NoError(t, err)
		assert.Equal(t, tags{"hot": true}, tg)
	})

	t.Run("unkeyed is unresolved", func(t *testing.T) {
		m := map[string]int{}
		ins, err := r.Resolve(insertion.Unkeyed(reflect.TypeOf(m)), 1)
		require.NoError(t, err)
		assert.Equal(t, insertion.Unresolved, ins.Kind())
	})
}

func TestInsertion_ConcurrentInvoke(t *testing.T) {
	r := insertion.New()
	ins, err := r.Resolve(insertion.Keyed(reflect.TypeFor[*registry](), "k"), 0)
	require.NoError(t, err)

	const workers = 16
	regs := make([]*registry, workers)
	for i := range regs {
		regs[i] = newRegistry()
	}

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for v := range 100 {
				_, err := ins.Invoke(regs[n], v)
				assert.NoError(t, err)
			}
		}(i)
	}
	wg.Wait()

	for _, reg := range regs {
		assert.Equal(t, 99, reg.values["k"])
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "unresolved", insertion.Unresolved.String())
	assert.Equal(t, "unary", insertion.Unary.String())
	assert.Equal(t, "binary", insertion.Binary.String())
}

func TestTarget_String(t *testing.T) {
	shape := reflect.TypeFor[*registry]()
	assert.Equal(t, `*insertion_test.registry["k"]`, insertion.Keyed(shape, "k").String())
	assert.Equal(t, "*insertion_test.registry", insertion.Unkeyed(shape).String())
}
