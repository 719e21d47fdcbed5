package zipmap

import "fmt"

// keyString converts any accepted key representation to the canonical string
// form used for storage and lookup. Every public entry point that takes a
// key funnels through here, so integer 1 and string "1" address one entry.
func keyString(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case []byte:
		return string(k)
	case fmt.Stringer:
		return k.String()
	default:
		return fmt.Sprint(k)
	}
}
