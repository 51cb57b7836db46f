package paramx

import (
	"time"

	"golang.org/x/text/language"
)

// Config holds the serialization defaults applied by the New constructor
// through the FromConfig option.
//
// This struct contains only data, no behavior beyond validation.
// Configuration can be loaded from any source (environment variables, a YAML
// file, code) and passed explicitly; all fields are optional and receive
// defaults from Validate.
//
// Example usage:
//
//	cfg := paramx.Config{
//	    DefaultMethod: "serialized",
//	    Locale:        "de",
//	}
//
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
//	id := paramx.New("id", 42, paramx.FromConfig(cfg))
type Config struct {
	// DefaultMethod is the serialization entry point used when WithMethod is
	// not supplied: "serialized" or "tostring".
	//
	// Optional field. Default: tostring
	DefaultMethod string `env:"PARAMX_DEFAULT_METHOD" yaml:"default_method"`

	// DefaultURLEncode is whether serialized values are percent-encoded
	// before path substitution.
	//
	// Optional field. Default: true
	DefaultURLEncode bool `env:"PARAMX_URL_ENCODE" envDefault:"true" yaml:"url_encode"`

	// TimeLayout is the reference-time layout applied by FromConfig as the
	// default format string, so date-like parameters built without WithFormat
	// render with it.
	//
	// Optional field. Default: RFC 3339
	TimeLayout string `env:"PARAMX_TIME_LAYOUT" yaml:"time_layout"`

	// Locale is the BCP 47 tag the format provider built by Provider applies,
	// e.g. "en" or "de-DE". Empty means the invariant provider.
	//
	// Optional field. Default: "" (invariant)
	Locale string `env:"PARAMX_LOCALE" yaml:"locale"`
}

// Validate checks that the configuration is valid and applies defaults to
// empty fields: DefaultMethod must parse to a known SerializationMethod and
// Locale must be a well-formed BCP 47 tag.
func (c *Config) Validate() error {
	if c.DefaultMethod == "" {
		c.DefaultMethod = MethodToString.String()
	}
	if _, err := ParseMethod(c.DefaultMethod); err != nil {
		return NewInvalidConfigurationError("DefaultMethod", err.Error())
	}

	if c.TimeLayout == "" {
		c.TimeLayout = time.RFC3339
	}

	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			return NewInvalidConfigurationError("Locale", err.Error())
		}
	}

	return nil
}

// Provider returns the format provider the configuration selects: a
// locale-aware provider for a non-empty Locale, Invariant() otherwise.
// Call Validate first; an unparseable locale falls back to the invariant
// provider here.
func (c Config) Provider() FormatProvider {
	if c.Locale == "" {
		return Invariant()
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return Invariant()
	}
	return Locale(tag)
}
