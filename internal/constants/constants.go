package constants

const (
	Version        = `0.1.0`
	AppName        = `prodsearch`
	ConfigFile     = `config`
	ConfigFileType = `yaml`
	ConfigDir      = `.prodsearch`
	EnvPrefix      = `PRODSEARCH`
)
