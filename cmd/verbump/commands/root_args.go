package commands

type RootArgs struct {
	logLevel  *string
	logFormat *string
	root      *string
	config    *string
	color     *string
	bump      *string
	dryRun    *bool
}

func NewRootArgs() *RootArgs {
	return &RootArgs{
		logLevel:  new(string),
		logFormat: new(string),
		root:      new(string),
		config:    new(string),
		color:     new(string),
		bump:      new(string),
		dryRun:    new(bool),
	}
}

func (a *RootArgs) GetLogLevel() string {
	return *a.logLevel
}

func (a *RootArgs) GetLogFormat() string {
	return *a.logFormat
}

func (a *RootArgs) GetRoot() string {
	return *a.root
}

func (a *RootArgs) GetConfig() string {
	return *a.config
}

func (a *RootArgs) GetColor() string {
	return *a.color
}

func (a *RootArgs) GetBump() string {
	return *a.bump
}

func (a *RootArgs) GetDryRun() bool {
	return *a.dryRun
}
