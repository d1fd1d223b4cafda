// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// The Representer (§4.3): converts host values into Nodes, dispatching
// first on the NodeRepresentable/ScalarRepresentable protocol and
// falling back, for exactly two reflect kinds (slice/array and map), to
// a bounded generic conversion. Structs with neither capability are a
// representation failure, not a reflected struct dump: struct-tag
// driven marshaling belongs to the Encoder/Decoder bridge, out of scope
// here.

package libyaml

import (
	"encoding/base64"
	"fmt"
	"math"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
	decimalType  = reflect.TypeOf(apd.Decimal{})
	uuidType     = reflect.TypeOf(uuid.UUID{})
	urlType      = reflect.TypeOf(url.URL{})
)

// Represent converts in into a Node tree under the given options. It
// panics with a *YAMLError on failure (via Fail/failf), recovered at
// the package's exported boundary.
func Represent(in reflect.Value, opts *Options) *Node {
	return represent(in, opts)
}

func represent(v reflect.Value, opts *Options) *Node {
	if !v.IsValid() {
		return newScalar("null", "!!null", 0, "")
	}

	if v.CanInterface() {
		iface := v.Interface()
		if nr, ok := iface.(NodeRepresentable); ok {
			n, err := nr.ToYAMLNode()
			if err != nil {
				Fail(err)
			}
			return n
		}
		if sr, ok := iface.(ScalarRepresentable); ok {
			n, err := sr.RepresentScalar(opts)
			if err != nil {
				Fail(err)
			}
			return n
		}
		if m, ok := iface.(Marshaler); ok {
			out, err := m.MarshalYAML()
			if err != nil {
				Fail(err)
			}
			if out == nil {
				return newScalar("null", "!!null", 0, "")
			}
			return represent(reflect.ValueOf(out), opts)
		}
	}

	switch v.Type() {
	case timeType:
		return representTimestamp(v.Interface().(time.Time))
	case durationType:
		return newScalar(v.Interface().(time.Duration).String(), "", 0, "")
	case decimalType:
		d := v.Interface().(apd.Decimal)
		return newScalar(d.String(), "", 0, "")
	case uuidType:
		return newScalar(v.Interface().(uuid.UUID).String(), "!!str", 0, "")
	case urlType:
		u := v.Interface().(url.URL)
		return newScalar(u.String(), "!!str", 0, "")
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.Type() == reflect.PointerTo(decimalType) {
			if v.IsNil() {
				return newScalar("null", "!!null", 0, "")
			}
			return newScalar(v.Interface().(*apd.Decimal).String(), "", 0, "")
		}
		if v.IsNil() {
			return newScalar("null", "!!null", 0, "")
		}
		if isZero(v) {
			return newScalar("null", "!!null", 0, "")
		}
		return represent(v.Elem(), opts)

	case reflect.Interface:
		if v.IsNil() {
			return newScalar("null", "!!null", 0, "")
		}
		if isZero(v) {
			return newScalar("null", "!!null", 0, "")
		}
		return represent(v.Elem(), opts)

	case reflect.Bool:
		if v.Bool() {
			return newScalar("true", "!!bool", 0, "")
		}
		return newScalar("false", "!!bool", 0, "")

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return newScalar(strconv.FormatInt(v.Int(), 10), "!!int", 0, "")

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return newScalar(strconv.FormatUint(v.Uint(), 10), "!!int", 0, "")

	case reflect.Float32:
		return newScalar(formatFloat(v.Float(), 32, opts.FloatStrategy), "!!float", 0, "")
	case reflect.Float64:
		return newScalar(formatFloat(v.Float(), 64, opts.FloatStrategy), "!!float", 0, "")

	case reflect.String:
		return representString(v.String())

	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return newScalar(base64.StdEncoding.EncodeToString(v.Bytes()), "!!binary", 0, "")
		}
		return representSequence(v, opts)
	case reflect.Array:
		return representSequence(v, opts)

	case reflect.Map:
		return representMapping(v, opts)

	default:
		Fail(&RepresenterError{Message: fmt.Sprintf("cannot represent value of type %s: no NodeRepresentable, ScalarRepresentable or Marshaler capability", v.Type())})
		return nil
	}
}

// representString applies the "string masquerade" rule (§8 scenario 2,
// §4.3 table): a string whose content would resolve to a non-str tag is
// single-quoted with an explicit !!str tag so a decoder never mistakes
// it for a bool/int/float/null/timestamp.
func representString(s string) *Node {
	rtag, _ := (&Resolver{}).resolve(s)
	if rtag != "!!str" {
		return newScalar(s, "!!str", TaggedStyle|SingleQuotedStyle, "")
	}
	return newScalar(s, "!!str", 0, "")
}

func representSequence(v reflect.Value, opts *Options) *Node {
	items := make([]*Node, v.Len())
	for i := range items {
		items[i] = represent(v.Index(i), opts)
	}
	return newSequence(items, "", 0, "")
}

// keyNode wraps a reflect.Value map key for sorted iteration by its
// represented Node form, per §4.1's ordering rules.
type keyNode struct {
	key  reflect.Value
	node *Node
}

func representMapping(v reflect.Value, opts *Options) *Node {
	keys := v.MapKeys()
	wrapped := make([]keyNode, len(keys))
	for i, k := range keys {
		wrapped[i] = keyNode{key: k, node: represent(k, opts)}
	}
	sort.SliceStable(wrapped, func(i, j int) bool {
		return wrapped[i].node.Less(wrapped[j].node)
	})

	pairs := make([]*Node, 0, len(wrapped)*2)
	for _, kn := range wrapped {
		pairs = append(pairs, kn.node, represent(v.MapIndex(kn.key), opts))
	}
	return newMapping(pairs, "", 0, "")
}

func representTimestamp(t time.Time) *Node {
	return newScalar(formatTimestamp(t, 3), "!!timestamp", 0, "")
}

// formatTimestamp implements §4.3.2: split into integral + fractional
// seconds, round the fractional part to digits (3 or 9), renormalize on
// carry, trim trailing zeros, and omit the fraction entirely when it
// rounds to zero.
func formatTimestamp(t time.Time, digits int) string {
	t = t.UTC()
	scale := int64(1)
	for i := 0; i < 9-digits; i++ {
		scale *= 10
	}
	ns := int64(t.Nanosecond())
	roundedUnits := (ns + scale/2) / scale
	maxUnits := int64(1)
	for i := 0; i < digits; i++ {
		maxUnits *= 10
	}
	if roundedUnits >= maxUnits {
		t = t.Add(time.Second)
		roundedUnits = 0
	}

	base := t.Format("2006-01-02T15:04:05")
	if roundedUnits == 0 {
		return base + "Z"
	}
	frac := fmt.Sprintf("%0*d", digits, roundedUnits)
	frac = strings.TrimRight(frac, "0")
	if frac == "" {
		return base + "Z"
	}
	return base + "." + frac + "Z"
}

// formatFloat implements §4.3.1's two strategies.
func formatFloat(f float64, bits int, strategy FloatStrategy) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}

	var s string
	switch strategy {
	case FloatDecimal:
		s = strconv.FormatFloat(f, 'g', -1, bits)
	default: // FloatScientific
		precision, fallbackDigits := 17, 15
		if bits == 32 {
			precision, fallbackDigits = 9, 7
		}
		s = fmt.Sprintf("%.*g", precision, f)
		if !strings.ContainsAny(s, "eE") {
			s = strconv.FormatFloat(f, 'e', fallbackDigits-1, bits)
			if back, err := strconv.ParseFloat(s, bits); err != nil || back != f {
				s = strconv.FormatFloat(f, 'e', precision-1, bits)
			}
		}
	}

	// Historical formatter quirk (§9): a sign-on-exponent formatter can
	// produce the digraph "e+-NN"; normalize it to "e-NN" so it never
	// reaches the output. Go's own formatters don't exhibit this, so
	// this is a defensive no-op in practice.
	s = strings.Replace(s, "+-", "-", 1)

	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
