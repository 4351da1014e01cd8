// 11 Oct 2026

// Package white strips white space from sequences typed or pasted on
// the command line.
package white

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// Remove takes out all the white space from *s, in place. The length
// is adjusted, the capacity is unchanged.
func Remove(s *[]byte) {
	b := (*s)[:0]
	for _, c := range *s {
		if !asciiSpace[c] {
			b = append(b, c)
		}
	}
	*s = b
}

// Strings returns a copy of ss with the white space removed from each.
func Strings(ss []string) []string {
	r := make([]string, len(ss))
	for i, s := range ss {
		b := []byte(s)
		Remove(&b)
		r[i] = string(b)
	}
	return r
}
