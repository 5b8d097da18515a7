package blockcodec

import "sync"

// Sizes of the three code-point tables. DecodeSize is the exclusive upper
// bound of every code point in either alphabet, so the reverse table is a
// plain direct-indexed array.
const (
	LongSize   = 32768
	ShortSize  = 128
	DecodeSize = 42183

	// ShortFlag tags a decoded value as belonging to the secondary alphabet.
	ShortFlag = 0x8000

	// invalidCode marks a decode-table slot outside either alphabet.
	invalidCode = 0xFFFF
)

// codeRange is a half-open Unicode range [Lo, Hi).
type codeRange struct {
	Lo, Hi rune
}

// primaryRanges lists the 49 ranges that supply the 32,768 primary code
// points, walked in this exact order. Order is part of the wire contract:
// changing it changes the alphabet.
var primaryRanges = []codeRange{
	{19904, 40892}, {13312, 19894}, {40960, 42125}, {5121, 5741}, {9451, 9885},
	{10224, 10627}, {9003, 9140}, {11392, 11499}, {10765, 10868}, {10871, 10972},
	{592, 688}, {4352, 4442}, {6176, 6264}, {5024, 5109}, {11936, 12019},
	{5792, 5867}, {4608, 4681}, {1657, 1728}, {4888, 4955}, {10649, 10712},
	{8942, 9001}, {4824, 4881}, {1162, 1217}, {4547, 4602}, {6624, 6679},
	{10973, 11028}, {42128, 42183}, {11568, 11622}, {6016, 6068}, {8656, 8708},
	{3585, 3633}, {8880, 8928}, {11264, 11311}, {11312, 11359}, {4470, 4515},
	{7424, 7468}, {4304, 4347}, {6528, 6570}, {4704, 4745}, {6272, 6313},
	{6470, 6510}, {12549, 12589}, {9216, 9255}, {1329, 1367}, {1377, 1415},
	{1920, 1958}, {4256, 4294}, {11520, 11558}, {2308, 2345},
}

// secondaryRanges lists the 4 ranges that supply the 128 short code points.
var secondaryRanges = []codeRange{
	{9143, 9180}, {10025, 10060}, {4096, 4130}, {7545, 7579},
}

// Tables bundles the three immutable lookup arrays built from the range
// lists above.
type Tables struct {
	Long   [LongSize]uint16
	Short  [ShortSize]uint16
	Decode [DecodeSize]uint16
}

var (
	tablesOnce sync.Once
	tables     *Tables
)

// Get returns the process-wide alphabet tables, building them on first call.
// Construction is idempotent and safe under concurrent first-use races.
func Get() *Tables {
	tablesOnce.Do(func() {
		tables = buildTables()
	})
	return tables
}

func buildTables() *Tables {
	t := &Tables{}
	for i := range t.Decode {
		t.Decode[i] = invalidCode
	}

	idx := 0
	for _, r := range primaryRanges {
		for c := r.Lo; c < r.Hi; c++ {
			if idx >= LongSize {
				break
			}
			t.Long[idx] = uint16(c)
			t.Decode[c] = uint16(idx)
			idx++
		}
		if idx >= LongSize {
			break
		}
	}

	idx = 0
	for _, r := range secondaryRanges {
		for c := r.Lo; c < r.Hi; c++ {
			if idx >= ShortSize {
				break
			}
			t.Short[idx] = uint16(c)
			t.Decode[c] = uint16(idx) | ShortFlag
			idx++
		}
		if idx >= ShortSize {
			break
		}
	}

	return t
}

// Lookup resolves a code unit to its decoded value, reporting whether the
// code unit belongs to the alphabet at all.
func (t *Tables) Lookup(codeUnit uint16) (uint16, bool) {
	if int(codeUnit) >= DecodeSize {
		return 0, false
	}
	v := t.Decode[codeUnit]
	if v == invalidCode {
		return 0, false
	}
	return v, true
}
