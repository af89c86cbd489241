// Package sjis converts UTF-8 text into the Shift_JIS (Windows-31J / CP932) bytes expected by
// Japanese carrier label-printing software.
//
// Encoding never fails. Runes that have no Shift_JIS code point are replaced with a substitute
// byte and counted, so that one rare glyph in a customer name cannot reject a whole batch.
package sjis

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
)

// Charset is the charset label carrier import tools expect in the content type.
const Charset = "Shift_JIS"

// DefaultSubstitute replaces runes that cannot be encoded.
const DefaultSubstitute byte = '?'

// cp932Folds maps code points that JIS-oriented UTF-8 producers emit to the code points that
// CP932 actually defines for the same glyph.
var cp932Folds = strings.NewReplacer(
	"〜", "～", // wave dash
	"−", "－", // minus sign
	"‖", "∥", // double vertical line
	"—", "―", // em dash
	"¢", "￠", // cent sign
	"£", "￡", // pound sign
	"¬", "￢", // not sign
)

// Result is the outcome of a single Encode call.
type Result struct {
	Bytes []byte
	// Substitutions is the number of runes replaced by the substitute byte.
	Substitutions int
}

// Degraded reports whether any rune was lost.
func (r Result) Degraded() bool {
	return r.Substitutions > 0
}

// Encoder is stateless and safe for concurrent use; every call builds its own transformer.
type Encoder struct {
	substitute byte
}

// NewEncoder returns an Encoder substituting unmappable runes with DefaultSubstitute.
func NewEncoder() Encoder {
	return Encoder{substitute: DefaultSubstitute}
}

// NewEncoderWithSubstitute returns an Encoder using the given ASCII substitute byte.
func NewEncoderWithSubstitute(substitute byte) Encoder {
	if substitute >= utf8.RuneSelf {
		substitute = DefaultSubstitute
	}
	return Encoder{substitute: substitute}
}

// Encode converts text to Shift_JIS. It tries a strict pass over the whole text first and
// only falls back to rune-by-rune conversion when some rune is unmappable.
func (e Encoder) Encode(text string) Result {
	text = cp932Folds.Replace(text)

	if b, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(text)); err == nil {
		return Result{Bytes: b}
	}

	return e.encodeRunes(text)
}

func (e Encoder) encodeRunes(text string) Result {
	sub := e.substitute
	if sub == 0 {
		sub = DefaultSubstitute
	}

	enc := japanese.ShiftJIS.NewEncoder()
	out := make([]byte, 0, len(text))
	substitutions := 0

	var buf [utf8.UTFMax]byte
	for _, r := range text {
		if r < utf8.RuneSelf {
			out = append(out, byte(r))
			continue
		}

		n := utf8.EncodeRune(buf[:], r)
		b, err := enc.Bytes(buf[:n])
		if err != nil || r == utf8.RuneError {
			out = append(out, sub)
			substitutions++
			continue
		}
		out = append(out, b...)
	}

	return Result{Bytes: out, Substitutions: substitutions}
}

// Decode converts Shift_JIS bytes back to UTF-8.
func Decode(b []byte) (string, error) {
	out, err := japanese.ShiftJIS.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
