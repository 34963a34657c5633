package conv

import (
	"golang.org/x/text/encoding/unicode"

	"github.com/wippyai/rfc-runtime/errors"
)

// Character data crosses the SDK boundary as SAP_UC units, which the library
// treats as UTF-16LE code units. Encoders/decoders are stateless and safe for
// concurrent use, so a single codec pair is shared.
var ucCodec = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// ucEncode converts a Go string to SAP_UC bytes.
func ucEncode(s string) ([]byte, error) {
	b, err := ucCodec.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, errors.Wrap(errors.PhaseEncode, errors.KindInvalidFormat, err,
			"string is not encodable as UTF-16")
	}
	return b, nil
}

// ucDecode converts SAP_UC bytes back to a Go string.
func ucDecode(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", errors.InvalidFormat(errors.PhaseDecode, nil,
			"uneven SAP_UC region length")
	}
	out, err := ucCodec.NewDecoder().Bytes(b)
	if err != nil {
		return "", errors.Wrap(errors.PhaseDecode, errors.KindInvalidFormat, err,
			"region is not valid UTF-16")
	}
	return string(out), nil
}

// ucUnitCount returns the number of SAP_UC units the string occupies.
func ucUnitCount(s string) (int, error) {
	b, err := ucEncode(s)
	if err != nil {
		return 0, err
	}
	return len(b) / 2, nil
}
