package params

import (
	"fmt"
	"sort"

	"github.com/wippyai/rfc-runtime/sdk"
)

// Well-known connection parameter keys.
const (
	KeyAppHost     = "ASHOST" // application server host
	KeyMsgHost     = "MSHOST" // message server host (load balancing)
	KeySysNr       = "SYSNR"  // system number
	KeyMsgService  = "MSSERV" // message server service/port
	KeyGroup       = "GROUP"  // logon group (load balancing)
	KeySysID       = "SYSID"  // system id
	KeyClient      = "CLIENT" // logon client
	KeyUser        = "USER"   // logon user
	KeyPassword    = "PASSWD" // logon password
	KeyLanguage    = "LANG"   // logon language
	KeyTrace       = "TRACE"  // SDK trace level, see TraceLevel
	KeySAPRouter   = "SAPROUTER"
	KeySNCMode     = "SNC_MODE"
	KeySNCQop      = "SNC_QOP"
	KeySNCMyName   = "SNC_MYNAME"
	KeySNCPartner  = "SNC_PARTNERNAME"
	KeySSOTicket   = "MYSAPSSO2" // SSO assertion ticket
	KeyX509Cert    = "X509CERT"  // X.509 client certificate
	KeyDestination = "DEST"      // sapnwrfc.ini destination name
)

// Params is a set of connection parameters. The zero value is usable.
type Params map[string]string

// Set stores a parameter, overwriting any previous value, and returns the
// receiver for chaining.
func (p Params) Set(name, value string) Params {
	p[name] = value
	return p
}

// Get returns the value of a parameter.
func (p Params) Get(name string) (string, bool) {
	v, ok := p[name]
	return v, ok
}

// Clone returns an independent copy.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Slice renders the parameters as the SDK's name/value pair list, in
// deterministic key order.
func (p Params) Slice() []sdk.ConnectionParameter {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]sdk.ConnectionParameter, 0, len(p))
	for _, k := range keys {
		out = append(out, sdk.ConnectionParameter{Name: k, Value: p[k]})
	}
	return out
}

// Redacted returns a copy safe for logging: credential-bearing values are
// replaced with a placeholder.
func (p Params) Redacted() Params {
	out := p.Clone()
	for _, k := range []string{KeyPassword, KeySSOTicket, KeyX509Cert} {
		if _, ok := out[k]; ok {
			out[k] = "***"
		}
	}
	return out
}

// TraceLevel is the value range of the TRACE parameter.
type TraceLevel uint8

const (
	TraceOff     TraceLevel = 0
	TraceBrief   TraceLevel = 1
	TraceVerbose TraceLevel = 2
	TraceFull    TraceLevel = 3
)

func (t TraceLevel) String() string {
	return fmt.Sprintf("%d", uint8(t))
}

// ParseTraceLevel converts the textual TRACE parameter value.
func ParseTraceLevel(s string) (TraceLevel, error) {
	switch s {
	case "0":
		return TraceOff, nil
	case "1":
		return TraceBrief, nil
	case "2":
		return TraceVerbose, nil
	case "3":
		return TraceFull, nil
	}
	return TraceOff, fmt.Errorf("invalid trace level %q (want 0-3)", s)
}

// WithTrace sets the TRACE parameter.
func (p Params) WithTrace(level TraceLevel) Params {
	return p.Set(KeyTrace, level.String())
}
