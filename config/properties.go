package config

type Properties struct {
	Encoding           string `yaml:"encoding" env:"PROPERTIES_ENCODING" env-default:"iso-8859-1"`
	IgnoreUnresolvable bool   `yaml:"ignore_unresolvable" env:"PROPERTIES_IGNORE_UNRESOLVABLE" env-default:"false"`
}
