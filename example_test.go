package ksuid_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/sxyafiq/ksuid"
)

func ExampleParse() {
	id, err := ksuid.Parse("0ujtsYcgvSTl8PAuAdqWYSMnLOv")
	if err != nil {
		panic(err)
	}

	fmt.Println(id.Timestamp().UTC().Format(time.RFC3339))
	fmt.Println(id.RawTimestamp())
	fmt.Printf("%X\n", id.Payload())
	// Output:
	// 2017-10-10T04:00:47Z
	// 107608047
	// B5A1CD34B5F99D1154FB6853345C9735
}

func ExampleParse_errors() {
	for _, s := range []string{"abc", "***************************", "fffffffffffffffffffffffffff"} {
		_, err := ksuid.Parse(s)
		switch {
		case errors.Is(err, ksuid.ErrInvalidLength):
			fmt.Println("invalid length")
		case errors.Is(err, ksuid.ErrInvalidCharacter):
			fmt.Println("invalid character")
		case errors.Is(err, ksuid.ErrValueTooLarge):
			fmt.Println("value too large")
		}
	}
	// Output:
	// invalid length
	// invalid character
	// value too large
}

func ExampleGenerate() {
	t := time.Date(2021, time.May, 21, 20, 4, 3, 0, time.UTC)
	id, err := ksuid.Generate(t, ksuid.SourceReader(&fixedSource{}))
	if err != nil {
		panic(err)
	}

	fmt.Println(id.Timestamp().UTC())
	fmt.Printf("%x\n", id.Payload())
	// Output:
	// 2021-05-21 20:04:03 +0000 UTC
	// 07070707070707070707070707070707
}

func ExampleSort() {
	a := ksuid.MustParse("1srOrx2ZWZBpBUvZwXKQmoEYga2")
	b := ksuid.MustParse("0ujtsYcgvSTl8PAuAdqWYSMnLOv")
	ids := []ksuid.KSUID{a, b}

	ksuid.Sort(ids)
	for _, id := range ids {
		fmt.Println(id)
	}
	// Output:
	// 0ujtsYcgvSTl8PAuAdqWYSMnLOv
	// 1srOrx2ZWZBpBUvZwXKQmoEYga2
}

type fixedSource struct{}

func (fixedSource) Uint64() uint64 { return 0x0707070707070707 }
