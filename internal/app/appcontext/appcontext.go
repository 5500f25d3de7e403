package appcontext

const (
	EnvServer Env = iota
	EnvWorker
	EnvCLI
)

// Env tells shared wiring which entrypoint is assembling the app.
type Env int

func (e Env) String() string {
	switch e {
	case EnvServer:
		return "server"
	case EnvWorker:
		return "worker"
	case EnvCLI:
		return "cli"
	}
	return "unknown"
}

type Ctx struct {
	Env Env
}

func Declare(env Env) Ctx {
	return Ctx{
		Env: env,
	}
}
