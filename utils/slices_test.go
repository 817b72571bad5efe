package utils_test

import (
	"strconv"
	"testing"

	"github.com/NethermindEth/seqcore/utils"
	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, utils.Map([]int{1, 2, 3}, strconv.Itoa))
	assert.Nil(t, utils.Map(nil, strconv.Itoa))
}

func TestFilter(t *testing.T) {
	even := utils.Filter([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)
	assert.Nil(t, utils.Filter([]int{1, 3}, func(v int) bool { return v%2 == 0 }))
}

func TestNonNilSlice(t *testing.T) {
	assert.Equal(t, []int{}, utils.NonNilSlice[int](nil))
	assert.Equal(t, []int{1}, utils.NonNilSlice([]int{1}))
}
