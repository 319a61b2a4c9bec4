package exc

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExceptionError(t *testing.T) {
	t.Parallel()

	e := New(Location{URI: "schema.graphql", Offset: 4, Line: 1, Column: 5}, CodeExpected, `Expected "{" but got "x"`)
	require.Equal(t, CodeExpected, e.Code())
	require.Equal(t, `Expected "{" but got "x"`, e.Message())
	require.Equal(t, `schema.graphql:1:5 -- S0001: Expected "{" but got "x"`, e.Error())

	bare := New(Location{URI: "schema.graphql"}, CodeFileNotFound, "missing")
	require.Equal(t, "schema.graphql -- M0001: missing", bare.Error())
}

func TestWrap(t *testing.T) {
	t.Parallel()

	require.Nil(t, Wrap(Location{}, CodeUnknownFatal, nil))

	cause := errors.New("boom")
	w := WrapUnknown(Location{URI: "a"}, cause)
	require.Equal(t, CodeUnknownFatal, w.Code())
	require.Equal(t, "boom", w.Message())
	require.True(t, errors.Is(w, cause))

	inner := New(Location{URI: "b"}, CodeInvalidNumber, "bad number")
	outer := Wrap(Location{URI: "c"}, CodeUnknownFatal, inner)
	require.Equal(t, "bad number", outer.Message())
	var target Exception
	require.True(t, errors.As(outer, &target))
}

func TestReporter(t *testing.T) {
	t.Parallel()

	r := NewReporter([]string{CodeFileNotFound})
	require.Nil(t, r.Err())

	var wg sync.WaitGroup
	for x := 9; x >= 0; x = x - 1 {
		wg.Add(1)
		go func(x int) {
			defer wg.Done()
			_ = r.Report(New(Location{URI: fmt.Sprintf("f%d", x)}, CodeExpected, "e"))
		}(x)
	}
	wg.Wait()

	reported := r.Reported()
	require.Len(t, reported, 10)
	for x, e := range reported {
		require.Equal(t, fmt.Sprintf("f%d", x), e.Location().URI)
	}

	require.Nil(t, r.Report(New(Location{URI: "z"}, CodeFileNotFound, "missing")))
	require.NotNil(t, r.Report(New(Location{URI: "z"}, CodeExpected, "fatal")))

	var me MultiException
	require.True(t, errors.As(r.Err(), &me))
	require.Len(t, me, 12)
}
