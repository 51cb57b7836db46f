package paramx

// Option adjusts the policy fields of a descriptor built through New.
type Option func(s *settings)

type settings struct {
	format    string
	urlEncode bool
	method    SerializationMethod
}

func defaultSettings() settings {
	return settings{
		urlEncode: true,
		method:    MethodToString,
	}
}

// WithFormat sets the format string applied on the stringification path.
func WithFormat(format string) Option {
	return func(s *settings) {
		s.format = format
	}
}

// WithURLEncode sets whether the serialized value must be percent-encoded
// before path substitution.
func WithURLEncode(encode bool) Option {
	return func(s *settings) {
		s.urlEncode = encode
	}
}

// WithMethod selects the serialization entry point for the parameter.
func WithMethod(method SerializationMethod) Option {
	return func(s *settings) {
		s.method = method
	}
}

// FromConfig applies a validated Config's defaults, including TimeLayout as
// the default format string. Only date-like values pick the layout up; the
// stringification path ignores a non-verb format on values without a
// format-aware conversion. Options placed after it still override individual
// fields.
func FromConfig(cfg Config) Option {
	return func(s *settings) {
		s.urlEncode = cfg.DefaultURLEncode
		if m, err := ParseMethod(cfg.DefaultMethod); err == nil {
			s.method = m
		}
		if cfg.TimeLayout != "" {
			s.format = cfg.TimeLayout
		}
	}
}
