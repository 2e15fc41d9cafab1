package symbol

import "github.com/spmbpe/preprocess"

// Project maps symbols through offsets back into slices of the
// original string. symbols must already be in start-byte order;
// Project doesn't sort them itself, since every engine produces its
// output that way already.
func Project(original string, offsets preprocess.OffsetMap, symbols []Symbol) []string {
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, original[offsets.At(s.Start):offsets.At(s.End)])
	}
	return out
}
