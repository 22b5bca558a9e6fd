package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcat2(t *testing.T) {
	assert := assert.New(t)

	a := map[string]int{"a": 1}
	b := map[string]int{"b": 2, "c": 3}

	all := maps.Collect(Concat2(maps.All(a), maps.All(b)))
	assert.Equal(map[string]int{"a": 1, "b": 2, "c": 3}, all)

	count := 0
	for range Concat2(maps.All(a), maps.All(b)) {
		count++
		break
	}
	assert.Equal(1, count)
}

func TestFilter2(t *testing.T) {
	assert := assert.New(t)

	seq := slices.All([]string{"a", "b", "c", "d"})
	odd := maps.Collect(Filter2(seq, func(n int, _ string) bool { return n%2 == 1 }))
	assert.Equal(map[int]string{1: "b", 3: "d"}, odd)
}
