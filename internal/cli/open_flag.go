package cli

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/danieljhkim/slap/internal/opener"
)

// editorSentinel is the value -o takes when no application is given.
const editorSentinel = "$EDITOR"

// openValue is the pflag.Value behind -o[=APP]. The flag's presence turns open
// mode on; its value optionally names an application.
type openValue struct {
	set bool
	app string
}

var _ pflag.Value = (*openValue)(nil)

func (v *openValue) String() string {
	if !v.set {
		return ""
	}
	if v.app == "" {
		return editorSentinel
	}
	return v.app
}

func (v *openValue) Set(s string) error {
	v.set = true
	if s == editorSentinel {
		s = ""
	}
	v.app = s
	return nil
}

func (v *openValue) Type() string {
	return "app"
}

// target returns where created paths should be opened.
func (v *openValue) target() opener.Target {
	if v.app == "" {
		return opener.EditorTarget()
	}
	return opener.ApplicationTarget(v.app)
}

// boolShorthands are the short flags that may precede o in a cluster like -po.
const boolShorthands = "ptd"

// NormalizeArgs rewrites an attached -o value such as -ocode or -pocode into
// -o=code so pflag does not read the value as more shorthand flags. Only
// arguments before the first path are touched.
func NormalizeArgs(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)

	for i := 0; i < len(out); i++ {
		arg := out[i]
		if arg == "--" || len(arg) < 2 || arg[0] != '-' {
			break
		}
		if arg == "--completion" {
			i++
			continue
		}
		if strings.HasPrefix(arg, "--") {
			continue
		}
		out[i] = attachOpenValue(arg)
	}
	return out
}

// attachOpenValue inserts "=" after o in a short flag cluster when o is
// followed by a value.
func attachOpenValue(arg string) string {
	cluster := arg[1:]
	idx := strings.IndexByte(cluster, 'o')
	if idx < 0 || idx == len(cluster)-1 || cluster[idx+1] == '=' {
		return arg
	}
	for _, c := range cluster[:idx] {
		if !strings.ContainsRune(boolShorthands, c) {
			return arg
		}
	}
	return "-" + cluster[:idx+1] + "=" + cluster[idx+1:]
}
