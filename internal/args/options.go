package args

// General holds the options shared by every command.
var General struct {
	Verbose          []bool `short:"v" long:"verbose"             env:"CONSTDECODE_VERBOSITY"          description:"Show verbose debug information"`
	LogFormat        string `          long:"log-format"          env:"CONSTDECODE_LOG_FORMAT"         description:"Log format (json or text)." choice:"text" choice:"json" default:"text"`
	LogColor         string `          long:"log-color"           env:"CONSTDECODE_LOG_COLOR"          description:"Should the log output be colored? yes, no or auto" choice:"yes" choice:"no" choice:"auto" default:"auto"`
	LogFullTimestamp bool   `          long:"log-full-timestamp"  env:"CONSTDECODE_LOG_FULL_TIMESTAMP" description:"Display full timestamp in logs."`
	Alphabets        string `short:"A" long:"alphabets"           env:"CONSTDECODE_ALPHABETS"          description:"YAML file defining additional named alphabets"`
}
