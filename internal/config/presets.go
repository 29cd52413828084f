package config

var Presets = map[string]map[string]*Config{
	"integrate": {
		"quick": {
			Kind: "integrate", Method: "rk4", Problem: "exp",
			Steps: 50, Tol: DefaultTol,
		},
		"fine": {
			Kind: "integrate", Method: "rk4", Problem: "exp",
			Steps: 1000, Tol: DefaultTol,
		},
		"euler_coarse": {
			Kind: "integrate", Method: "euler", Problem: "decay",
			Steps: 20, Tol: DefaultTol,
		},
	},
	"system": {
		"oscillator": {
			Kind: "system", Method: "rk4", Problem: "oscillator",
			Steps: 200,
		},
		"predator_prey": {
			Kind: "system", Method: "rk4", Problem: "predator_prey",
			Steps: 2000,
		},
	},
	"root": {
		"sqrt2_bisect": {
			Kind: "root", Method: "bisect", Problem: "sqrt2",
			Tol: 1e-9,
		},
		"sqrt2_newton": {
			Kind: "root", Method: "newton", Problem: "sqrt2",
			Tol: 1e-9, MaxIter: DefaultMaxIter,
		},
		"dottie": {
			Kind: "root", Method: "newton", Problem: "cosx",
			Tol: 1e-12, MaxIter: DefaultMaxIter,
		},
	},
	"solve": {
		"classic": {
			Kind: "solve", Problem: "classic3", Pivot: true,
		},
		"unpivoted": {
			Kind: "solve", Problem: "classic3", Pivot: false,
		},
	},
	"eig": {
		"dominant": {
			Kind: "eig", Problem: "diag521", Iters: 40, Scale: true,
		},
		"golden": {
			Kind: "eig", Problem: "fib", Iters: 60, Scale: true,
		},
	},
}

func GetPreset(kind, preset string) *Config {
	kindPresets, ok := Presets[kind]
	if !ok {
		return nil
	}
	cfg, ok := kindPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(kind string) []string {
	kindPresets, ok := Presets[kind]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(kindPresets))
	for name := range kindPresets {
		names = append(names, name)
	}
	return names
}
