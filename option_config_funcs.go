package commando

// WithDescription the description will be used in help output presented to the user
func WithDescription(description string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.SetDescription(description)
	}
}

// WithTitle sets the name displayed for the option - mostly useful for positional arguments
func WithTitle(title string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.SetTitle(title)
	}
}

// WithAlias records alternate names for the option. When the option is registered on a Command
// every alias resolves to it.
func WithAlias(aliases ...string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		for _, alias := range aliases {
			option.AddAlias(alias)
		}
	}
}

// SetRequired when true, the option must receive a value
func SetRequired(required bool) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.SetRequired(required)
	}
}

// SetBoolean when true, the option takes no value: its presence inverts the default (false unless set)
func SetBoolean(boolean bool) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		*err = option.SetBoolean(boolean)
	}
}

// WithIncrement turns the option into a counter, e.g. -vvv yields 3. A max of 0 leaves the counter uncapped.
func WithIncrement(max int) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		*err = option.SetIncrement(max)
	}
}

// WithFile resolves values to absolute paths. With allowGlobbing the value is the list of matching
// files. With requireExists a value resolving to no file is rejected.
func WithFile(requireExists, allowGlobbing bool) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.SetFileRequirements(requireExists, allowGlobbing)
	}
}

// WithNeeds accepts the names of options which must hold a value whenever this option is used
func WithNeeds(names ...string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.SetNeeds(names...)
	}
}

// WithRule sets a function used to accept or reject raw values
func WithRule(rule RuleFunc) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.SetRule(rule)
	}
}

// WithChoices restricts values to choices - see Option.SetChoices
func WithChoices(choices ...string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.SetChoices(choices...)
	}
}

// WithMap sets a function used to transform validated values
func WithMap(mapper MapFunc) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.SetMap(mapper)
	}
}

// WithDefault sets the default value. Order matters: the default is validated against the rule, the
// boolean/increment/file settings and the map configured before it.
func WithDefault(value any) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		*err = option.SetDefault(value)
	}
}
