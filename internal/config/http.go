package config

type HTTP struct {
	Port    uint32 `env:"HTTP_PORT" envDefault:"8000"`
	Swagger bool   `env:"HTTP_SWAGGER" envDefault:"true"`
	// Debug surfaces the underlying error message in 5xx response bodies.
	// Keep it off in production-like environments.
	Debug bool `env:"HTTP_DEBUG"`
}
