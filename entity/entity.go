package entity

import "strings"

// named maps recognized entity references to their literal characters.
var named = map[string]string{
	"&nbsp;":   "\u00a0",
	"&amp;":    "&",
	"&lt;":     "<",
	"&gt;":     ">",
	"&quot;":   `"`,
	"&#39;":    "'",
	"&ldquo;":  "“",
	"&rdquo;":  "”",
	"&lsquo;":  "‘",
	"&rsquo;":  "’",
	"&mdash;":  "—",
	"&ndash;":  "–",
	"&hellip;": "…",
	"&trade;":  "™",
	"&copy;":   "©",
	"&reg;":    "®",
	"&euro;":   "€",
	"&pound;":  "£",
	"&yen;":    "¥",
	"&cent;":   "¢",
	"&times;":  "×",
	"&divide;": "÷",
	"&plusmn;": "±",
	"&minus;":  "−",
}

// maxReferenceLength limits the look-ahead when scanning for a reference.
const maxReferenceLength = 32

// Lookup returns the literal character for an entity reference, including
// the leading '&' and the trailing ';'. The second return value reports if the
// reference is one of the recognized entities.
func Lookup(ref string) (string, bool) {
	lit, ok := named[ref]
	return lit, ok
}

// Known returns the number of recognized entities.
func Known() int {
	return len(named)
}

// Reference checks if s has a syntactically valid entity reference at
// byte position i. It returns the length of the reference in bytes (0 if there
// is none), the decoded literal and wether the reference is recognized.
// For unrecognized references, literal is the reference itself.
//
// Valid references are of the forms
//
//     &name;   &#123;   &#x7B;
//
func Reference(s string, i int) (n int, literal string, known bool) {
	if i < 0 || i >= len(s) || s[i] != '&' {
		return 0, "", false
	}
	end := refEnd(s, i)
	if end < 0 {
		return 0, "", false
	}
	ref := s[i : end+1]
	if lit, ok := named[ref]; ok {
		return len(ref), lit, true
	}
	return len(ref), ref, false
}

// refEnd returns the position of the ';' terminating a reference starting
// at s[i] == '&', or -1.
func refEnd(s string, i int) int {
	j := i + 1
	numeric, hex := false, false
	if j < len(s) && s[j] == '#' {
		numeric = true
		j++
		if j < len(s) && (s[j] == 'x' || s[j] == 'X') {
			hex = true
			j++
		}
	}
	start := j
	for ; j < len(s) && j-i < maxReferenceLength; j++ {
		c := s[j]
		switch {
		case c == ';':
			if j == start {
				return -1
			}
			return j
		case c >= '0' && c <= '9':
		case hex && (c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'):
		case !numeric && (c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'):
		default:
			return -1
		}
		if !numeric && j == start && c >= '0' && c <= '9' {
			return -1 // names start with a letter
		}
	}
	return -1
}

// Decode replaces every recognized entity reference in s by its literal
// character. Unrecognized references and all other content are left as they
// are. Decode is a single pass, replacements are not scanned again.
func Decode(s string) string {
	if strings.IndexByte(s, '&') < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '&' {
			if n, lit, ok := Reference(s, i); ok {
				b.WriteString(lit)
				i += n
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
