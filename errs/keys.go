// Package errs defines the error kinds returned by commando.
// This file contains the translation keys of every error message.
package errs

// Prefix for all commando translation keys
const (
	prefixKey      = "commando"
	ErrorPrefixKey = prefixKey + ".error"
)

// Parse errors
const (
	ErrSyntaxKey           = ErrorPrefixKey + ".syntax"
	ErrUnknownOptionKey    = ErrorPrefixKey + ".unknown_option"
	ErrExpectedArgumentKey = ErrorPrefixKey + ".expected_argument"
	ErrInvalidValueKey     = ErrorPrefixKey + ".invalid_value"
	ErrBooleanExpectedKey  = ErrorPrefixKey + ".boolean_expected"
	ErrIntegerExpectedKey  = ErrorPrefixKey + ".integer_expected"
	ErrFileResolutionKey   = ErrorPrefixKey + ".file_resolution"
	ErrRequiredMissingKey  = ErrorPrefixKey + ".required_missing"
	ErrRequiredOptionKey   = ErrorPrefixKey + ".required_option"
	ErrRequiredArgumentKey = ErrorPrefixKey + ".required_argument"
	ErrUnmetDependencyKey  = ErrorPrefixKey + ".unmet_dependency"
)

// Usage errors
const (
	ErrUsageKey               = ErrorPrefixKey + ".usage"
	ErrUnknownVerbKey         = ErrorPrefixKey + ".unknown_verb"
	ErrInvalidChainKey        = ErrorPrefixKey + ".invalid_chain"
	ErrNumericFlagKey         = ErrorPrefixKey + ".numeric_flag"
	ErrNamedArgumentKey       = ErrorPrefixKey + ".named_argument"
	ErrInvalidOptionNameKey   = ErrorPrefixKey + ".invalid_option_name"
	ErrDuplicateOptionKey     = ErrorPrefixKey + ".duplicate_option"
	ErrIndexWriteKey          = ErrorPrefixKey + ".index_write"
	ErrInvalidVerbArgumentKey = ErrorPrefixKey + ".invalid_verb_argument"
	ErrConfiguringCommandKey  = ErrorPrefixKey + ".configuring_command"
	ErrInvalidDeclarationsKey = ErrorPrefixKey + ".invalid_declarations"
	ErrUnknownFieldKey        = ErrorPrefixKey + ".unknown_field"
)

// Getter errors
const (
	ErrOptionNotSetKey              = ErrorPrefixKey + ".option_not_set"
	ErrUnsupportedTypeConversionKey = ErrorPrefixKey + ".unsupported_type_conversion"
)

// Completion errors
const (
	ErrUnsupportedShellKey   = ErrorPrefixKey + ".unsupported_shell"
	ErrCompletionNotReadyKey = ErrorPrefixKey + ".completion_not_ready"
	ErrCompletionInstallKey  = ErrorPrefixKey + ".completion_install"
)
