// Package messages holds the translation keys of user-facing text which is not an error
package messages

const (
	prefixKey = "commando.msg"

	MsgHelpDescriptionKey     = prefixKey + ".help_description"
	MsgRequiredKey            = prefixKey + ".required"
	MsgDefaultKey             = prefixKey + ".default"
	MsgArgumentPlaceholderKey = prefixKey + ".argument_placeholder"
	MsgArgumentTitleKey       = prefixKey + ".argument_title"
	MsgErrorPrefixKey         = prefixKey + ".error_prefix"
)
