// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/herstyle/pkg/pointer"
)

func TestApply(t *testing.T) {
	name := "Linen Dress"

	assert.False(t, pointer.Apply(&name, nil))
	assert.Equal(t, "Linen Dress", name)

	assert.True(t, pointer.Apply(&name, pointer.To("Silk Scarf")))
	assert.Equal(t, "Silk Scarf", name)
}

func TestDeref(t *testing.T) {
	var missing *float64
	assert.Zero(t, pointer.Deref(missing))
	assert.Equal(t, 19.5, pointer.Deref(pointer.To(19.5)))
}
