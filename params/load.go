package params

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadFile reads the named destination profile from a YAML parameter file.
//
// The file groups parameters by destination, the same way sapnwrfc.ini
// groups them by DEST:
//
//	destinations:
//	  dev:
//	    ashost: dev.sap.example.com
//	    sysnr: "00"
//	    client: "100"
//	    user: DEVELOPER
//
// Keys are case-insensitive in the file and are upper-cased into the
// returned Params.
func LoadFile(path, destination string) (Params, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read parameter file %s: %w", path, err)
	}

	section := v.GetStringMapString("destinations." + strings.ToLower(destination))
	if len(section) == 0 {
		return nil, fmt.Errorf("parameter file %s has no destination %q", path, destination)
	}

	out := make(Params, len(section))
	for k, val := range section {
		out[strings.ToUpper(k)] = val
	}
	if trace, ok := out[KeyTrace]; ok {
		if _, err := ParseTraceLevel(trace); err != nil {
			return nil, fmt.Errorf("destination %q: %w", destination, err)
		}
	}
	return out, nil
}

// FromEnv collects parameters from environment variables carrying the given
// prefix. With prefix "SAP", the variable SAP_ASHOST becomes ASHOST.
func FromEnv(prefix string) Params {
	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.AutomaticEnv()

	out := make(Params)
	for _, key := range []string{
		KeyAppHost, KeyMsgHost, KeySysNr, KeyMsgService, KeyGroup, KeySysID,
		KeyClient, KeyUser, KeyPassword, KeyLanguage, KeyTrace, KeySAPRouter,
		KeySNCMode, KeySNCQop, KeySNCMyName, KeySNCPartner, KeySSOTicket,
		KeyX509Cert,
	} {
		if val := v.GetString(key); val != "" {
			out[key] = val
		}
	}
	return out
}
