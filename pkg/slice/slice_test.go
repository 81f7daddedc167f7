// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/herstyle/pkg/slice"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []int{5, 3}, slice.Map([]string{"dress", "hat"}, func(s string) int { return len(s) }))

	var none []string
	mapped := slice.Map(none, strings.ToUpper)
	assert.NotNil(t, mapped)
	assert.Empty(t, mapped)
}

func TestFilterAndUnique(t *testing.T) {
	words := []string{"red", "a", "linen", "red", "x"}

	long := slice.Filter(words, func(word string) bool { return len(word) > 1 })
	assert.Equal(t, []string{"red", "linen", "red"}, long)
	assert.Equal(t, []string{"red", "linen"}, slice.Unique(long))
}
