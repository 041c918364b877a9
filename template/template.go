// Package template implements the seed-to-character template engine:
// character classes, the fixed per-type template tables, deterministic
// seed-byte-to-character mapping, and the Shannon entropy metric.
package template

import (
	"fmt"
	"math"

	"github.com/scode/masterpassword/sitetype"
)

// classCandidates maps a template class character to its compile-time
// constant set of candidate characters. Copied byte-for-byte from the
// algorithm this spec pins (see spec.md §4.3); any other class
// character is a programming error.
var classCandidates = map[byte]string{
	'V': "AEIOU",
	'C': "BCDFGHJKLMNPQRSTVWXYZ",
	'v': "aeiou",
	'c': "bcdfghjklmnpqrstvwxyz",
	'A': "AEIOUBCDFGHJKLMNPQRSTVWXYZ",
	'a': "AEIOUaeiouBCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz",
	'n': "0123456789",
	'o': "@&%?,=[]_:-+*$#!'^~;()/.",
	'x': "AEIOUaeiouBCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz0123456789!@#$%^&*()",
	' ': " ",
}

// templatesFor returns the ordered, fixed list of templates for a
// generated SiteType. Calling it with Stored is a programming error.
func templatesFor(t sitetype.SiteType) []string {
	switch t {
	case sitetype.Maximum:
		return []string{
			"anoxxxxxxxxxxxxxxxxx", "axxxxxxxxxxxxxxxxxno",
		}
	case sitetype.Long:
		return []string{
			"CvcvnoCvcvCvcv", "CvcvCvcvnoCvcv", "CvcvCvcvCvcvno", "CvccnoCvcvCvcv",
			"CvccCvcvnoCvcv", "CvccCvcvCvcvno", "CvcvnoCvccCvcv", "CvcvCvccnoCvcv",
			"CvcvCvccCvcvno", "CvcvnoCvcvCvcc", "CvcvCvcvnoCvcc", "CvcvCvcvCvccno",
			"CvccnoCvccCvcv", "CvccCvccnoCvcv", "CvccCvccCvcvno", "CvcvnoCvccCvcc",
			"CvcvCvccnoCvcc", "CvcvCvccCvccno", "CvccnoCvcvCvcc", "CvccCvcvnoCvcc",
			"CvccCvcvCvccno",
		}
	case sitetype.Medium:
		return []string{
			"CvcnoCvc", "CvcCvcno",
		}
	case sitetype.Basic:
		return []string{
			"aaanaaan", "aannaaan", "aaannaaa",
		}
	case sitetype.Short:
		return []string{
			"Cvcn",
		}
	case sitetype.PIN:
		return []string{
			"nnnn",
		}
	case sitetype.Name:
		return []string{
			"cvccvcvcv",
		}
	case sitetype.Phrase:
		return []string{
			"cvcc cvc cvccvcv cvc", "cvc cvccvcvcv cvcv", "cv cvccv cvc cvcvccv",
		}
	default:
		panic(fmt.Sprintf("template: %v has no templates", t))
	}
}

// Encode applies the template engine to seed, producing the password
// text for the given SiteType. seed must contain at least
// 1+maxTemplateLength bytes; the spec guarantees a 32-byte seed always
// suffices since no template exceeds 20 characters.
func Encode(t sitetype.SiteType, seed []byte) (string, error) {
	if t == sitetype.Stored {
		panic("template: Encode called with Stored site type")
	}

	templates := templatesFor(t)
	tmpl := templates[int(seed[0])%len(templates)]
	if len(tmpl) > 32 {
		panic("template: template exceeds 32 characters")
	}
	if len(seed) < 1+len(tmpl) {
		return "", fmt.Errorf("template: seed too short: need %d bytes, have %d", 1+len(tmpl), len(seed))
	}

	out := make([]byte, len(tmpl))
	for i := 0; i < len(tmpl); i++ {
		class := tmpl[i]
		candidates, ok := classCandidates[class]
		if !ok {
			panic(fmt.Sprintf("template: unknown character class %q", class))
		}
		out[i] = candidates[int(seed[i+1])%len(candidates)]
	}
	return string(out), nil
}

// Entropy returns the minimum, over all templates of the given type, of
// the sum of log2(class size) across the template's characters.
func Entropy(t sitetype.SiteType) float64 {
	templates := templatesFor(t)
	min := math.Inf(1)
	for _, tmpl := range templates {
		e := templateEntropy(tmpl)
		if e < min {
			min = e
		}
	}
	return min
}

func templateEntropy(tmpl string) float64 {
	var sum float64
	for i := 0; i < len(tmpl); i++ {
		candidates, ok := classCandidates[tmpl[i]]
		if !ok {
			panic(fmt.Sprintf("template: unknown character class %q", tmpl[i]))
		}
		sum += math.Log2(float64(len(candidates)))
	}
	return sum
}
