// Package stack provides the evaluation stack used by the evaluators.
package stack

// Stack is a simple LIFO stack of values.
type Stack[V any] []V

func (s Stack[V]) Size() int {
	return len(s)
}

// Peek returns the topmost value without removing it.
func (s Stack[V]) Peek() V {
	return s[len(s)-1]
}

func (s *Stack[V]) Push(v V) {
	*s = append(*s, v)
}

func (s *Stack[V]) Pop() V {
	last := len(*s) - 1
	v := (*s)[last]
	*s = (*s)[0:last]
	return v
}
