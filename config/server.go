package config

// Server values may hold ${...} placeholders resolved from the remote
// properties at startup.
type Server struct {
	Addr     string `yaml:"addr" env:"SERVER_ADDR" env-default:":8080"`
	Greeting string `yaml:"greeting" env:"SERVER_GREETING" env-default:"${greeting:hello}"`
}
