package seq

import "github.com/roach88/riffle/eq"

// Window produces consecutive windows of up to size elements starting at
// offsets 0, step, 2*step, ... while any elements remain. The final
// window may be shorter than size if the sequence is exhausted.
//
// Each window is a fresh slice; windows never alias the input.
// Fails with ErrCodeInvalidArgument when size < 1 or step < 1.
//
//	Window(3, 2, [1 2 3 4 5 6 7]) => [[1 2 3] [3 4 5] [5 6 7] [7]]
func Window[T any](size, step int, s []T) ([][]T, error) {
	if size < 1 {
		return nil, newInvalidArgument("Window", "size must be >= 1, got %d", size)
	}
	if step < 1 {
		return nil, newInvalidArgument("Window", "step must be >= 1, got %d", step)
	}
	var out [][]T
	for at := 0; at < len(s); at += step {
		end := at + size
		if end > len(s) {
			end = len(s)
		}
		out = append(out, append([]T(nil), s[at:end]...))
	}
	return out, nil
}

// WindowExact produces the same windows as Window but discards trailing
// windows shorter than size entirely.
//
//	WindowExact(3, 2, [1 2 3 4 5 6 7]) => [[1 2 3] [3 4 5] [5 6 7]]
func WindowExact[T any](size, step int, s []T) ([][]T, error) {
	windows, err := Window(size, step, s)
	if err != nil {
		return nil, err
	}
	out := windows[:0]
	for _, w := range windows {
		if len(w) == size {
			out = append(out, w)
		}
	}
	return out, nil
}

// ChunkBy emits maximal consecutive runs of elements whose derived keys
// are equal under p. A run boundary occurs exactly where the derived key
// changes from the previous element's key.
//
//	ChunkBy(eq.Deep[int](), identity, [1 1 2 2 2 1 1]) => [[1 1] [2 2 2] [1 1]]
func ChunkBy[T, K any](p eq.Predicate[K], key func(T) K, s []T) [][]T {
	if len(s) == 0 {
		return nil
	}
	var out [][]T
	run := []T{s[0]}
	prev := key(s[0])
	for _, v := range s[1:] {
		k := key(v)
		if p(k, prev) {
			run = append(run, v)
		} else {
			out = append(out, run)
			run = []T{v}
		}
		prev = k
	}
	return append(out, run)
}

// ChunkByHeader treats the derived key of the first element as the
// header value. A new chunk begins each time the key returns to the
// header after having departed from it; consecutive header-keyed
// elements with no intervening departure stay in the current chunk.
// The result has the shape "header element + body until the header
// reappears".
//
//	ChunkByHeader(eq.Deep[int](), identity, [1 2 3 1 4 5 1]) => [[1 2 3] [1 4 5] [1]]
func ChunkByHeader[T, K any](p eq.Predicate[K], key func(T) K, s []T) [][]T {
	if len(s) == 0 {
		return nil
	}
	header := key(s[0])
	var out [][]T
	chunk := []T{s[0]}
	departed := false
	for _, v := range s[1:] {
		isHeader := p(key(v), header)
		if isHeader && departed {
			out = append(out, chunk)
			chunk = []T{v}
			departed = false
			continue
		}
		if !isHeader {
			departed = true
		}
		chunk = append(chunk, v)
	}
	return append(out, chunk)
}
