package zipmap_test

import (
	"fmt"

	"github.com/meigma/zipmap"
)

func ExampleMap() {
	m := zipmap.New()
	m.Set(1, []byte("hola"))
	m.Set("greeting", []byte("hello"))

	fmt.Println(m)
	fmt.Println(m.Len())

	data, err := m.Bytes()
	if err != nil {
		panic(err)
	}
	loaded, err := zipmap.FromBytes(data)
	if err != nil {
		panic(err)
	}
	v, err := loaded.Get("greeting")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(v))
	// Output:
	// ["1", "greeting"]
	// 2
	// hello
}

func ExampleReader() {
	m := zipmap.New()
	m.Set("config", []byte(`{"debug":true}`))
	data, err := m.Bytes()
	if err != nil {
		panic(err)
	}

	r, err := zipmap.NewReader(data, zipmap.ReaderWithCache(true))
	if err != nil {
		panic(err)
	}
	content, err := r.Get("config")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(content))

	info, ok := r.Entry("config")
	fmt.Println(ok, info.Compression)
	// Output:
	// {"debug":true}
	// true deflate
}
