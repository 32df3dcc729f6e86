package lrumap_test

import (
	"fmt"

	"github.com/venkatsvpr/lrumap"
)

func Example() {
	c, err := lrumap.New[int, int](2)
	if err != nil {
		panic(err)
	}

	c.Put(1, 10)
	c.Put(2, 20)
	c.Get(1)
	c.Put(3, 30) // evicts 2

	if v, ok := c.Get(1); ok {
		*v++
	}
	_, ok := c.Get(2)

	fmt.Println(c, ok)
	// Output: {1,11},{3,30} false
}
