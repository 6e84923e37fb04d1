package fressian_test

import (
	"fmt"

	"github.com/rawbytedev/fressian"
)

func ExampleMarshal() {
	data, err := fressian.Marshal([]int{0, 1, 2, 3})
	if err != nil {
		panic(err)
	}
	fmt.Println(data)
	// Output: [232 0 1 2 3]
}

func ExampleDiagnose() {
	data, _ := fressian.Marshal(map[string]any{"hola": []any{1.5, nil}})
	s, err := fressian.Diagnose(data)
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output: {"hola" [1.5 null]}
}
