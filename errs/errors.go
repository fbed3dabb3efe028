package errs

import "github.com/napalu/commando/i18n"

// Parse errors. Every error returned by Command.Parse matches one of these with errors.Is.
var (
	ErrSyntax           = i18n.NewError(ErrSyntaxKey)
	ErrUnknownOption    = i18n.NewError(ErrUnknownOptionKey)
	ErrExpectedArgument = i18n.NewError(ErrExpectedArgumentKey)
	ErrInvalidValue     = i18n.NewError(ErrInvalidValueKey)
	ErrBooleanExpected  = i18n.NewChildError(ErrInvalidValue, ErrBooleanExpectedKey)
	ErrIntegerExpected  = i18n.NewChildError(ErrInvalidValue, ErrIntegerExpectedKey)
	ErrFileResolution   = i18n.NewError(ErrFileResolutionKey)
	ErrRequiredMissing  = i18n.NewError(ErrRequiredMissingKey)
	ErrRequiredOption   = i18n.NewChildError(ErrRequiredMissing, ErrRequiredOptionKey)
	ErrRequiredArgument = i18n.NewChildError(ErrRequiredMissing, ErrRequiredArgumentKey)
	ErrUnmetDependency  = i18n.NewError(ErrUnmetDependencyKey)
)

// Usage errors are caused by invalid declarations and are never trapped
var (
	ErrUsage               = i18n.NewError(ErrUsageKey)
	ErrUnknownVerb         = i18n.NewChildError(ErrUsage, ErrUnknownVerbKey)
	ErrInvalidChain        = i18n.NewChildError(ErrUsage, ErrInvalidChainKey)
	ErrNumericFlag         = i18n.NewChildError(ErrUsage, ErrNumericFlagKey)
	ErrNamedArgument       = i18n.NewChildError(ErrUsage, ErrNamedArgumentKey)
	ErrInvalidOptionName   = i18n.NewChildError(ErrUsage, ErrInvalidOptionNameKey)
	ErrDuplicateOption     = i18n.NewChildError(ErrUsage, ErrDuplicateOptionKey)
	ErrIndexWrite          = i18n.NewChildError(ErrUsage, ErrIndexWriteKey)
	ErrInvalidVerbArgument = i18n.NewChildError(ErrUsage, ErrInvalidVerbArgumentKey)
	ErrConfiguringCommand  = i18n.NewChildError(ErrUsage, ErrConfiguringCommandKey)
	ErrInvalidDeclarations = i18n.NewChildError(ErrUsage, ErrInvalidDeclarationsKey)
	ErrUnknownField        = i18n.NewChildError(ErrInvalidDeclarations, ErrUnknownFieldKey)
)

// Getter errors
var (
	ErrOptionNotSet              = i18n.NewError(ErrOptionNotSetKey)
	ErrUnsupportedTypeConversion = i18n.NewError(ErrUnsupportedTypeConversionKey)
)

// Completion errors
var (
	ErrUnsupportedShell   = i18n.NewError(ErrUnsupportedShellKey)
	ErrCompletionNotReady = i18n.NewError(ErrCompletionNotReadyKey)
	ErrCompletionInstall  = i18n.NewError(ErrCompletionInstallKey)
)
